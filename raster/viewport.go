// viewport.go - Viewport (Component C): maps NDC to window-space pixel
// coordinates.

package raster

// Viewport holds the active rectangle, precomputed at configuration time.
type Viewport struct {
	X0, Y0 int
	W, H   int
	hw, hh float32 // half-size, precomputed
}

// NewViewport builds a Viewport covering [x0,x1)x[y0,y1).
func NewViewport(x0, y0, x1, y1 int) Viewport {
	w, h := x1-x0, y1-y0
	return Viewport{
		X0: x0, Y0: y0,
		W: w, H: h,
		hw: float32(w) / 2,
		hh: float32(h) / 2,
	}
}

// toScreen maps an NDC (x,y) pair to window-space pixel coordinates. Y is
// flipped so NDC +1 lands at the top of the viewport.
func (vp Viewport) toScreen(xNDC, yNDC float32) (sx, sy float32) {
	sx = (xNDC+1)*vp.hw + float32(vp.X0)
	sy = (yNDC-1)*(-vp.hh) + float32(vp.Y0)
	return sx, sy
}

// contains reports whether the integer pixel (x,y) lies inside the
// viewport rectangle.
func (vp Viewport) contains(x, y int) bool {
	return x >= vp.X0 && x < vp.X0+vp.W && y >= vp.Y0 && y < vp.Y0+vp.H
}

// clampEdge pulls a pixel coordinate that landed exactly on the viewport's
// far (exclusive) edge back onto the last valid pixel. NDC +1 maps via
// toScreen to exactly x0+W or y0+H, one past the last column/row; without
// this a vertex sitting precisely on the NDC boundary reads as out of
// viewport even though +1 is not out of range. Coordinates beyond the far
// edge are left untouched so genuinely out-of-viewport pixels still fail
// contains.
func (vp Viewport) clampEdge(x, y int) (int, int) {
	if x == vp.X0+vp.W {
		x--
	}
	if y == vp.Y0+vp.H {
		y--
	}
	return x, y
}
