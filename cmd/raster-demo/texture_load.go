package main

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"golang.org/x/image/draw"

	"github.com/kestrelgfx/microraster/raster"
)

// loadTexture decodes an arbitrary image file and resamples it to w x h
// RGB565 texels using x/image/draw's nearest-neighbor scaler, matching the
// sampler's own nearest-neighbor semantics (spec.md §6).
func loadTexture(path string, w, h int) (raster.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return raster.Texture{}, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return raster.Texture{}, fmt.Errorf("raster-demo: decode %s: %w", path, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	data := make([]uint16, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := dst.At(x, y).RGBA()
			data[y*w+x] = pack565(uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}
	return raster.Texture{Width: uint16(w), Height: uint16(h), Data: data}, nil
}

func pack565(r, g, b uint8) uint16 {
	return (uint16(r>>3) << 11) | (uint16(g>>2) << 5) | uint16(b>>3)
}
