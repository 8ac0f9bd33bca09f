package raster

import "testing"

func TestAssemblerLineLoopClosesPath(t *testing.T) {
	fb := newFakeFB(20, 20)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 20, 20))
	ctx.SetShader(solidShader())

	// A 3-point loop: every adjacent pair, plus the closing edge back to
	// the first vertex, must be rasterized.
	raw := putF32s(
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	)
	ctx.Draw(fb, DrawCall{Primitive: LineLoop, Vertices: raw, Stride: 12, Count: 3})

	if fb.calls == 0 {
		t.Fatalf("line loop produced no pixels")
	}

	corners := [][2]float32{{-1, -1}, {1, -1}, {0, 1}}
	vp := NewViewport(0, 0, 20, 20)
	for _, c := range corners {
		sx, sy := vp.toScreen(c[0], c[1])
		x, y := int(sx), int(sy)
		if x == vp.W {
			x--
		}
		if y == vp.H {
			y--
		}
		if _, ok := fb.color[[2]int{x, y}]; !ok {
			t.Errorf("loop corner %v (screen %d,%d) not covered", c, x, y)
		}
	}
}

func TestAssemblerLinesIndependentPairs(t *testing.T) {
	fb := newFakeFB(20, 20)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 20, 20))
	ctx.SetShader(solidShader())

	raw := putF32s(
		-1, 0, 0,
		1, 0, 0,
		0, -1, 0,
		0, 1, 0,
	)
	ctx.Draw(fb, DrawCall{Primitive: Lines, Vertices: raw, Stride: 12, Count: 4})

	if fb.calls == 0 {
		t.Fatalf("independent line pairs produced no pixels")
	}
}

func TestAssemblerTriangleFanPivot(t *testing.T) {
	fb := newFakeFB(50, 50)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 50, 50))
	ctx.SetShader(solidShader())
	ctx.SetCulling(false)

	// A fan around a center pivot: pivot v0, then v1..v3 sweep the upper
	// half of a diamond (two triangles).
	raw := putF32s(
		0, 0, 0, // pivot
		1, 0, 0,
		0, 1, 0,
		-1, 0, 0,
	)
	ctx.Draw(fb, DrawCall{Primitive: TriangleFan, Vertices: raw, Stride: 12, Count: 4})

	if fb.calls == 0 {
		t.Fatalf("triangle fan produced no pixels")
	}
}

func TestAssemblerIndexedDrawCall(t *testing.T) {
	fb := newFakeFB(50, 50)
	ctx := NewContext()
	ctx.SetViewport(NewViewport(0, 0, 50, 50))
	ctx.SetShader(solidShader())
	ctx.SetCulling(false)

	raw := putF32s(
		-1, -1, 0,
		1, -1, 0,
		0, 1, 0,
	)
	// Indices duplicate the single triangle's vertices in reverse.
	ctx.Draw(fb, DrawCall{
		Primitive: Triangles,
		Vertices:  raw,
		Stride:    12,
		Count:     3,
		Indices:   []uint16{2, 1, 0},
	})

	if fb.calls == 0 {
		t.Fatalf("indexed triangle draw produced no pixels")
	}
}
