// Package framebuffer is a reference implementation of raster.Framebuffer
// that stores packed RGB565 color and float32 depth. It is deliberately
// outside the raster package: the core
// rasterizer never owns pixel storage, only calls through the Framebuffer
// interface (spec.md §3 Component H / §9 "the external framebuffer holds
// the color and depth buffers").
//
// Grounded on the teacher's video backends (video_voodoo.go,
// voodoo_software.go), which keep a packed-565 color plane alongside a
// parallel depth plane and expose a SetPixel-style write path.
package framebuffer

import "github.com/kestrelgfx/microraster/raster"

// Buffer is an in-memory color+depth target sized at construction time.
type Buffer struct {
	width, height uint16
	color         []uint16  // packed RGB565, row-major
	depth         []float32 // in [0,1], row-major
}

// New allocates a Buffer of the given dimensions, with depth cleared to 0
// (the far plane under spec.md's "greater is closer" depth convention).
func New(width, height uint16) *Buffer {
	n := int(width) * int(height)
	return &Buffer{
		width:  width,
		height: height,
		color:  make([]uint16, n),
		depth:  make([]float32, n),
	}
}

// Clear resets every pixel to bg (packed RGB565) and depth to 0.
func (b *Buffer) Clear(bg uint16) {
	for i := range b.color {
		b.color[i] = bg
		b.depth[i] = 0
	}
}

// Width and Height report the buffer's fixed dimensions.
func (b *Buffer) Width() uint16  { return b.width }
func (b *Buffer) Height() uint16 { return b.height }

// SetPixel implements raster.Framebuffer, packing rgb to RGB565 and
// storing it alongside z.
func (b *Buffer) SetPixel(x, y uint16, z float32, rgb raster.Vec3) {
	i := int(y)*int(b.width) + int(x)
	b.color[i] = pack565(rgb)
	b.depth[i] = z
}

// GetDepth implements raster.Framebuffer.
func (b *Buffer) GetDepth(x, y uint16) float32 {
	return b.depth[int(y)*int(b.width)+int(x)]
}

// At returns the packed RGB565 color stored at (x,y).
func (b *Buffer) At(x, y uint16) uint16 {
	return b.color[int(y)*int(b.width)+int(x)]
}

// pack565 quantizes a clamped [0,1] RGB triple into a packed RGB565 word:
// 5 bits red, 6 bits green, 5 bits blue.
func pack565(c raster.Vec3) uint16 {
	r := uint16(c.X*31 + 0.5)
	g := uint16(c.Y*63 + 0.5)
	b := uint16(c.Z*31 + 0.5)
	return (r << 11) | (g << 5) | b
}

// Unpack565 expands a packed RGB565 word to 8-bit-per-channel RGB, for
// display/export paths outside the hot rasterization loop.
func Unpack565(c uint16) (r, g, b uint8) {
	r5 := c >> 11
	g6 := (c >> 5) & 0x3F
	b5 := c & 0x1F
	r = uint8(r5<<3 | r5>>2)
	g = uint8(g6<<2 | g6>>4)
	b = uint8(b5<<3 | b5>>2)
	return
}
