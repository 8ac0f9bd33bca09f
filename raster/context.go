// context.go - Draw dispatch (Component H) and the explicit renderer
// configuration spec.md §5/§9 describes as process-wide globals.
//
// spec.md leaves the choice between a thread-local renderer and an
// explicit context struct open ("Design Notes"); this port takes the
// latter: Context bundles the active shader, viewport, winding and
// culling state and is passed explicitly to Draw, rather than mutating
// package-level globals the way voodoo_software.go's VoodooSoftwareBackend
// and video_voodoo.go's VoodooEngine mutate instance fields under a mutex.
// Concurrent Draw calls against the *same* Context remain unsupported, per
// spec.md §5; independent Contexts may run concurrently.

package raster

// Winding selects which screen-space vertex order a Context treats as
// front-facing.
type Winding int

const (
	CCW Winding = iota
	CW
)

// Framebuffer is the pair of callbacks the host must provide (spec.md §6).
// The rasterizer never owns color or depth storage; it only calls through
// this interface.
type Framebuffer interface {
	// SetPixel stores color and depth for a covered, depth-passing
	// fragment.
	SetPixel(x, y uint16, z float32, rgb Vec3)
	// GetDepth returns the depth currently stored at (x,y), in [0,1].
	GetDepth(x, y uint16) float32
}

// Context bundles the small set of configuration values spec.md describes
// as process-wide: the active shader, viewport, winding mode and
// back-face culling toggle. The configuration must be stable for the
// duration of one Draw call; it may be changed freely between draws.
type Context struct {
	shader   Shader
	viewport Viewport
	winding  Winding
	cull     bool

	asm assembler // per-draw scratch; reset at the start of every Draw
}

// NewContext returns a Context with CCW winding, back-face culling
// enabled, and no shader or viewport configured yet.
func NewContext() *Context {
	return &Context{winding: CCW, cull: true}
}

// SetShader installs the active vertex/fragment callback pair. Debug
// builds (Debug == true) assert Shader.VertexOutElements is in range
// (spec.md §7).
func (c *Context) SetShader(s Shader) {
	if Debug && !s.valid() {
		panic("raster: invalid shader binding")
	}
	c.shader = s
}

// SetViewport installs the active viewport rectangle.
func (c *Context) SetViewport(vp Viewport) { c.viewport = vp }

// SetWinding selects which screen-space vertex order is front-facing.
func (c *Context) SetWinding(w Winding) { c.winding = w }

// SetCulling enables or disables back-face culling.
func (c *Context) SetCulling(enabled bool) { c.cull = enabled }

// Draw submits one primitive stream. It returns only after the last
// fragment of the last primitive has been submitted to fb; there is no
// suspension point and no cancellation mechanism (spec.md §5).
func (c *Context) Draw(fb Framebuffer, call DrawCall) {
	if Debug {
		assertDrawCall(c, call)
	}

	c.asm.reset(call.Primitive)

	var scratch attrRecord
	n := c.shader.VertexOutElements

	if call.Primitive == LineLoop && call.Count > 0 {
		last := call.vertexAt(call.Count - 1)
		c.shader.Vertex(last, scratch[:n])
		c.asm.feed(c, fb, scratch)
	}

	for i := 0; i < call.Count; i++ {
		raw := call.vertexAt(i)
		c.shader.Vertex(raw, scratch[:n])
		c.asm.feed(c, fb, scratch)
	}
}

// Debug gates the programmer-error assertions spec.md §7 describes
// ("an implementation should assert in debug builds"). The hot path never
// checks these when Debug is false.
var Debug = false

func assertDrawCall(c *Context, call DrawCall) {
	if !c.shader.valid() {
		panic("raster: Draw called with no valid shader bound")
	}
	if !call.Primitive.valid() {
		panic("raster: primitive type out of range")
	}
	if call.Stride <= 0 {
		panic("raster: stride must be positive")
	}
	if call.Indices == nil && call.Count*call.Stride > len(call.Vertices) {
		panic("raster: vertex buffer shorter than Count*Stride")
	}
}
