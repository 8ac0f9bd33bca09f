// triangle.go - Edge-function triangle rasterizer (Component F): winding
// resolution, scanline walk, barycentric attribute interpolation.
//
// Grounded on voodoo_software.go's rasterizeTriangle: bounding-box setup,
// signed edge-function area test, and "swap v0/v2 to make front-facing"
// winding handling are all adapted from that method, generalized from a
// hard-coded Gouraud-RGBA vertex to an arbitrary-width attribute record
// and from a single culling convention to the CW/CCW dual spec.md §4.6
// requires.

package raster

import "math"

// rasterizeTriangle resolves winding/culling, then scans the triangle's
// screen-space bounding box, shading every pixel whose three edge
// functions are all non-negative (spec.md §4.6's closed-edge fill rule:
// shared edges between adjacent triangles may be double-filled, tolerated
// by the depth test).
func rasterizeTriangle(ctx *Context, fb Framebuffer, v0, v1, v2 attrRecord) {
	n := ctx.shader.VertexOutElements

	x0, y0 := ctx.viewport.toScreen(v0[0], v0[1])
	x1, y1 := ctx.viewport.toScreen(v1[0], v1[1])
	x2, y2 := ctx.viewport.toScreen(v2[0], v2[1])

	// o uses edgeFunction's sign: positive when v0,v1,v2 run
	// counter-clockwise as seen on screen (Y down), i.e. counter-clockwise
	// in NDC (Y up).
	o := edgeFunction(x0, y0, x1, y1, x2, y2)
	if o == 0 {
		return // degenerate
	}

	var frontFacing bool
	if ctx.winding == CCW {
		frontFacing = o > 0
	} else {
		frontFacing = o < 0
	}
	if !frontFacing && ctx.cull {
		return
	}

	// Whichever of (v0,v1,v2) or (v0,v2,v1) has positive area under our
	// edge-function convention is the canonically-wound order the scan
	// below requires; this is independent of the front/back decision
	// above, which only governs culling.
	a, b, c := &v0, &v1, &v2
	if o < 0 {
		b, c = c, b
	}

	sx0, sy0 := ctx.viewport.toScreen(a[0], a[1])
	sx1, sy1 := ctx.viewport.toScreen(b[0], b[1])
	sx2, sy2 := ctx.viewport.toScreen(c[0], c[1])

	area := edgeFunction(sx0, sy0, sx1, sy1, sx2, sy2)
	invArea := 1 / area

	minX := int(math.Floor(float64(minOf3(sx0, sx1, sx2))))
	maxX := int(math.Ceil(float64(maxOf3(sx0, sx1, sx2))))
	minY := int(math.Floor(float64(minOf3(sy0, sy1, sy2))))
	maxY := int(math.Ceil(float64(maxOf3(sy0, sy1, sy2))))

	if minX < ctx.viewport.X0 {
		minX = ctx.viewport.X0
	}
	if minY < ctx.viewport.Y0 {
		minY = ctx.viewport.Y0
	}
	if maxXBound := ctx.viewport.X0 + ctx.viewport.W; maxX > maxXBound {
		maxX = maxXBound
	}
	if maxYBound := ctx.viewport.Y0 + ctx.viewport.H; maxY > maxYBound {
		maxY = maxYBound
	}

	var out attrRecord
	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0 := edgeFunction(sx1, sy1, sx2, sy2, px, py)
			w1 := edgeFunction(sx2, sy2, sx0, sy0, px, py)
			w2 := edgeFunction(sx0, sy0, sx1, sy1, px, py)

			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			b0 := w0 * invArea
			b1 := w1 * invArea
			b2 := w2 * invArea

			for i := 0; i < n; i++ {
				out[i] = b0*a[i] + b1*b[i] + b2*c[i]
			}
			shadeFragment(ctx, fb, x, y, out[:n])
		}
	}
}

// edgeFunction computes the signed area of the parallelogram spanned by
// (c-a) and (b-a) — positive when c lies to the left of a->b.
func edgeFunction(ax, ay, bx, by, cx, cy float32) float32 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
