// Package mesh is a minimal indexed-triangle-mesh loader (Component L):
// it owns no rendering logic, only packs position/normal/uv attributes
// into the raw-byte-vertex-plus-stride shape raster.DrawCall expects
// (spec.md §9's "Raw byte vertex input" design note: "express as a typed
// span plus a decoding closure rather than pointer arithmetic").
//
// Grounded on the teacher's assembler/ package, which reads a small
// textual source format into a flat in-memory structure before handing
// it to an emitter; this applies the same "parse once into a compact
// byte-oriented buffer" shape to vertex data instead of instructions.
package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/kestrelgfx/microraster/raster"
)

// Vertex is one decoded mesh vertex: position, normal and texture
// coordinate. Stride-packed into bytes by Mesh.Pack.
type Vertex struct {
	Pos raster.Vec3
	N   raster.Vec3
	UV  raster.Vec2
}

// Stride is the byte size of one packed Vertex (8 float32 fields).
const Stride = 8 * 4

// Mesh is a loaded indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Pack encodes Vertices into the little-endian raw byte buffer a
// raster.DrawCall consumes, paired with Indices and Stride.
func (m *Mesh) Pack() raster.DrawCall {
	buf := make([]byte, len(m.Vertices)*Stride)
	for i, v := range m.Vertices {
		off := i * Stride
		putVec3(buf[off:], v.Pos)
		putVec3(buf[off+12:], v.N)
		putVec2(buf[off+24:], v.UV)
	}
	return raster.DrawCall{
		Primitive: raster.Triangles,
		Vertices:  buf,
		Stride:    Stride,
		Count:     len(m.Indices),
		Indices:   m.Indices,
	}
}

// DecodeVertex reads a packed Vertex back out of a raw stride slice, for
// use inside a vertex shader callback.
func DecodeVertex(raw []byte) Vertex {
	return Vertex{
		Pos: getVec3(raw),
		N:   getVec3(raw[12:]),
		UV:  getVec2(raw[24:]),
	}
}

func putVec3(b []byte, v raster.Vec3) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Y))
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(v.Z))
}

func putVec2(b []byte, v raster.Vec2) {
	binary.LittleEndian.PutUint32(b[0:4], math.Float32bits(v.X))
	binary.LittleEndian.PutUint32(b[4:8], math.Float32bits(v.Y))
}

func getVec3(b []byte) raster.Vec3 {
	return raster.Vec3{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
		Z: math.Float32frombits(binary.LittleEndian.Uint32(b[8:12])),
	}
}

func getVec2(b []byte) raster.Vec2 {
	return raster.Vec2{
		X: math.Float32frombits(binary.LittleEndian.Uint32(b[0:4])),
		Y: math.Float32frombits(binary.LittleEndian.Uint32(b[4:8])),
	}
}

// Load reads a small line-oriented text format:
//
//	v x y z nx ny nz u v
//	f i0 i1 i2
//
// one vertex or triangle per line. It is intentionally not OBJ: OBJ's
// per-corner index triples and optional face formats are out of scope
// for a demo-only loader.
func Load(r io.Reader) (*Mesh, error) {
	m := &Mesh{}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" || text[0] == '#' {
			continue
		}
		switch text[0] {
		case 'v':
			var x, y, z, nx, ny, nz, u, v float32
			if _, err := fmt.Sscanf(text, "v %f %f %f %f %f %f %f %f",
				&x, &y, &z, &nx, &ny, &nz, &u, &v); err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", line, err)
			}
			m.Vertices = append(m.Vertices, Vertex{
				Pos: raster.Vec3{X: x, Y: y, Z: z},
				N:   raster.Vec3{X: nx, Y: ny, Z: nz},
				UV:  raster.Vec2{X: u, Y: v},
			})
		case 'f':
			var i0, i1, i2 uint16
			if _, err := fmt.Sscanf(text, "f %d %d %d", &i0, &i1, &i2); err != nil {
				return nil, fmt.Errorf("mesh: line %d: %w", line, err)
			}
			m.Indices = append(m.Indices, i0, i1, i2)
		default:
			return nil, fmt.Errorf("mesh: line %d: unrecognized record %q", line, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
