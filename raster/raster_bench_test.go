package raster

import "testing"

// BenchmarkRasterizeTriangle exercises the per-pixel hot path, matching the
// teacher's cpu_benchmark_test.go / audio_benchmark_test.go style:
// ReportAllocs plus a tight b.N loop over the operation under test.
func BenchmarkRasterizeTriangle(b *testing.B) {
	fb := newFakeFB(256, 256)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 256, 256))
	ctx.SetCulling(false)
	ctx.SetShader(solidShader())

	raw := putF32s(
		-0.8, -0.8, 0,
		0.8, -0.8, 0,
		0, 0.8, 0,
	)
	call := DrawCall{Primitive: Triangles, Vertices: raw, Stride: 12, Count: 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.Draw(fb, call)
	}
}

// BenchmarkRasterizeLine exercises the Bresenham walk.
func BenchmarkRasterizeLine(b *testing.B) {
	fb := newFakeFB(256, 256)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 256, 256))
	ctx.SetShader(solidShader())

	raw := putF32s(-1, -1, 0, 1, 1, 0)
	call := DrawCall{Primitive: Lines, Vertices: raw, Stride: 12, Count: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx.Draw(fb, call)
	}
}
