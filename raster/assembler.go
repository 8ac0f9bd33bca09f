// assembler.go - Primitive assembler (Component G): a small state machine
// that buffers 1-3 vertex attribute records and emits completed primitives
// to the line or triangle rasterizer.
//
// Grounded on voodoo_software.go's FlushTriangles/rasterizeTriangle batch
// model (teacher's VoodooEngine assembles a fixed 3-vertex triangle per
// TRIANGLE_CMD register write; this generalizes that single-shape assembly
// into the 8-kind state machine spec.md §4.7 requires).

package raster

// assemblerK bounds the working buffer (spec.md: "K=4 by default").
const assemblerK = 4

type assembler struct {
	kind PrimitiveType
	buf  [assemblerK]attrRecord
	n    int
}

func (a *assembler) reset(kind PrimitiveType) {
	a.kind = kind
	a.n = 0
}

// feed hands one post-transform vertex attribute record to the assembler.
// When enough vertices have accumulated to form a primitive, it rasterizes
// it immediately via the point, line or triangle rasterizer.
func (a *assembler) feed(ctx *Context, fb Framebuffer, rec attrRecord) {
	switch a.kind {
	case Points:
		rasterizePoint(ctx, fb, rec)

	case Lines:
		if a.n == 0 {
			a.buf[0] = rec
			a.n = 1
		} else {
			rasterizeLine(ctx, fb, a.buf[0], rec)
			a.n = 0
		}

	case LineStrip, LineLoop:
		if a.n == 0 {
			a.buf[0] = rec
			a.n = 1
		} else {
			rasterizeLine(ctx, fb, a.buf[0], rec)
			a.buf[0] = rec
		}

	case LineFan:
		if a.n == 0 {
			a.buf[0] = rec // pivot
			a.n = 1
		} else {
			rasterizeLine(ctx, fb, a.buf[0], rec)
		}

	case Triangles:
		a.buf[a.n] = rec
		a.n++
		if a.n == 3 {
			rasterizeTriangle(ctx, fb, a.buf[0], a.buf[1], a.buf[2])
			a.n = 0
		}

	case TriangleStrip:
		if a.n < 3 {
			a.buf[a.n] = rec
			a.n++
			if a.n == 3 {
				rasterizeTriangle(ctx, fb, a.buf[0], a.buf[1], a.buf[2])
			}
		} else {
			// Occupancy 3: swap pattern preserves consistent winding.
			rasterizeTriangle(ctx, fb, a.buf[2], a.buf[1], rec)
			a.buf[0] = a.buf[2]
			a.buf[1] = rec
			a.n = 2
		}

	case TriangleFan:
		if a.n < 2 {
			a.buf[a.n] = rec
			a.n++
		} else {
			rasterizeTriangle(ctx, fb, a.buf[0], a.buf[1], rec)
			a.buf[1] = rec
		}
	}
}
