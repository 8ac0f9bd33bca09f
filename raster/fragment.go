// fragment.go - Fragment stage (Component D): depth test, shading, and the
// pixel write, shared by the point, line and triangle rasterizers.

package raster

// shadeFragment runs the fragment stage at screen pixel (x,y) for
// interpolated attribute record in, per spec.md §4.4:
//  1. map NDC z in [-1,+1] to depth [1,0] (greater is closer)
//  2. depth test against fb.GetDepth
//  3. invoke the fragment shader
//  4. clamp RGB to [0,1] (alpha is ignored; alpha blending is a non-goal)
//  5. write color+depth via fb.SetPixel
func shadeFragment(ctx *Context, fb Framebuffer, x, y int, in []float32) {
	if !ctx.viewport.contains(x, y) {
		return
	}

	z := (in[2] - 1) * -0.5
	if z <= fb.GetDepth(uint16(x), uint16(y)) {
		return
	}

	r, g, b, _ := ctx.shader.Fragment(in)
	rgb := Vec3{
		X: clamp01(r),
		Y: clamp01(g),
		Z: clamp01(b),
	}
	fb.SetPixel(uint16(x), uint16(y), z, rgb)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// rasterizePoint implements the POINTS assembler path (spec.md §4.7):
// points outside the NDC cube are dropped entirely, otherwise shaded
// directly with no further assembly.
func rasterizePoint(ctx *Context, fb Framebuffer, v attrRecord) {
	if v[0] < -1 || v[0] > 1 || v[1] < -1 || v[1] > 1 || v[2] < -1 || v[2] > 1 {
		return
	}
	sx, sy := ctx.viewport.toScreen(v[0], v[1])
	x, y := ctx.viewport.clampEdge(int(sx), int(sy))
	n := ctx.shader.VertexOutElements
	shadeFragment(ctx, fb, x, y, v[:n])
}
