package raster

import (
	"encoding/binary"
	"math"
)

// fakeFB is a minimal Framebuffer for tests: records every SetPixel call
// and answers GetDepth from a plain grid, mirroring the teacher's
// hand-rolled test doubles in video_voodoo_test.go rather than a mock
// library.
type fakeFB struct {
	w, h  int
	depth []float32
	color map[[2]int]Vec3
	calls int
}

func newFakeFB(w, h int) *fakeFB {
	return &fakeFB{
		w:     w,
		h:     h,
		depth: make([]float32, w*h),
		color: make(map[[2]int]Vec3),
	}
}

func (f *fakeFB) SetPixel(x, y uint16, z float32, rgb Vec3) {
	f.depth[int(y)*f.w+int(x)] = z
	f.color[[2]int{int(x), int(y)}] = rgb
	f.calls++
}

func (f *fakeFB) GetDepth(x, y uint16) float32 {
	return f.depth[int(y)*f.w+int(x)]
}

// putF32s packs a slice of float32 into little-endian bytes, for building
// raw vertex buffers in tests without a real mesh format.
func putF32s(vs ...float32) []byte {
	buf := make([]byte, len(vs)*4)
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// rgbShader is a fixed-stride shader: 3 position floats + 3 color floats
// in, the color floats out unmodified as RGB.
func rgbShader() Shader {
	return Shader{
		VertexOutElements: 6,
		Vertex: func(raw []byte, out []float32) {
			for i := 0; i < 6; i++ {
				out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
			}
		},
		Fragment: func(in []float32) (r, g, b, a float32) {
			return in[3], in[4], in[5], 1
		},
	}
}
