// shader.go - Shader binding (Component B): the active vertex/fragment
// callback pair and the declared width of the attribute record they share.

package raster

// MaxAttrs bounds the width of a vertex attribute record. Positions 0,1,2
// are reserved for clip/NDC-space x/y/z after perspective divide; any
// further elements are opaque attributes carried from vertex to fragment
// shader untouched by the rasterizer.
const MaxAttrs = 16

// attrRecord is the fixed-capacity attribute record the interpolators read
// and write. Only the first N elements (N = Shader.VertexOutElements) are
// meaningful for a given draw.
type attrRecord [MaxAttrs]float32

// VertexFunc decodes one raw vertex (a stride-wide slice into the caller's
// vertex buffer) and writes exactly VertexOutElements floats to out.
type VertexFunc func(raw []byte, out []float32)

// FragmentFunc shades one interpolated attribute record and returns RGBA in
// [0,1] (components may be out of range; the fragment stage clamps RGB and
// ignores A).
type FragmentFunc func(in []float32) (r, g, b, a float32)

// Shader is the active vertex/fragment callback pair plus the declared
// attribute record width. It is set once before a draw and only read
// during it — never written concurrently with a Draw call using it.
type Shader struct {
	Vertex            VertexFunc
	Fragment          FragmentFunc
	VertexOutElements int
}

func (s Shader) valid() bool {
	return s.Vertex != nil && s.Fragment != nil &&
		s.VertexOutElements >= 3 && s.VertexOutElements <= MaxAttrs
}
