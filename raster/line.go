// line.go - Bresenham line rasterizer (Component E) with per-pixel
// attribute interpolation.
//
// The integer DDA here mirrors the Bresenham-style integer stepping
// video_compositor.go uses for its scaled blit path (see the
// "Scaled path using Bresenham-style integer arithmetic" comment there);
// this generalizes that technique to carry an interpolated attribute
// record instead of a fixed source-pixel index.

package raster

// rasterizeLine walks the screen-space segment between v0 and v1 with a
// Bresenham integer stepper, interpolating the attribute record linearly
// by parameter t = cur/len and invoking the fragment stage at each step.
//
// spec.md §4.3 requires the walk to be clipped to the viewport (an
// intentional deviation from the reference target, which lets
// out-of-range pixel addresses reach the framebuffer callbacks).
func rasterizeLine(ctx *Context, fb Framebuffer, v0, v1 attrRecord) {
	n := ctx.shader.VertexOutElements

	x0f, y0f := ctx.viewport.toScreen(v0[0], v0[1])
	x1f, y1f := ctx.viewport.toScreen(v1[0], v1[1])
	x0, y0 := ctx.viewport.clampEdge(int(x0f), int(y0f))
	x1, y1 := ctx.viewport.clampEdge(int(x1f), int(y1f))

	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)

	steps := dx
	if dy > steps {
		steps = dy
	}

	var out attrRecord

	if steps == 0 {
		lerpAttrs(out[:n], v0[:n], v1[:n], 0)
		clipAndShade(ctx, fb, x0, y0, out[:n])
		return
	}

	err := dx - dy
	x, y := x0, y0
	for cur := 0; ; cur++ {
		t := float32(cur) / float32(steps)
		lerpAttrs(out[:n], v0[:n], v1[:n], t)
		clipAndShade(ctx, fb, x, y, out[:n])

		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// clipAndShade clips an out-of-viewport pixel address rather than letting
// it reach the framebuffer callbacks (spec.md §4.3's documented edge fix).
func clipAndShade(ctx *Context, fb Framebuffer, x, y int, in []float32) {
	if !ctx.viewport.contains(x, y) {
		return
	}
	shadeFragment(ctx, fb, x, y, in)
}

func lerpAttrs(out, v0, v1 []float32, t float32) {
	for i := range out {
		out[i] = v0[i]*(1-t) + v1[i]*t
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
