// texture.go - RGB565 nearest-neighbor texture sampler (Component I).
//
// Grounded on voodoo_software.go's texel fetch path, which unpacks a
// packed-565 framebuffer word by masking and dividing by the field's
// bitmask rather than its maximum channel value; spec.md §6 preserves
// that quirk deliberately rather than "fixing" it to a perceptually
// correct divisor. A field at full intensity decodes to exactly 1.0
// (0xF800/0xF800, 0x07E0/0x07E0, 0x001F/0x001F).

package raster

// Texture is a packed RGB565 image sampled with nearest-neighbor lookup.
type Texture struct {
	Width, Height uint16
	Data          []uint16 // row-major, len == int(Width)*int(Height)
}

// Sample fetches the texel nearest to uv, wrapping uv into [0,1) first
// (spec.md §6: texture coordinates repeat rather than clamp).
func (t Texture) Sample(uv Vec2) (r, g, b float32) {
	u := wrap01(uv.X)
	v := wrap01(uv.Y)

	tx := int(u * float32(t.Width-1))
	ty := int(v * float32(t.Height-1))
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}
	if tx >= int(t.Width) {
		tx = int(t.Width) - 1
	}
	if ty >= int(t.Height) {
		ty = int(t.Height) - 1
	}

	c := t.Data[ty*int(t.Width)+tx]
	return decode565(c)
}

// decode565 unpacks a packed RGB565 texel into float channels, dividing
// each field by its bitmask rather than its numeric maximum value - the
// quirk this package preserves intentionally (see the file comment).
func decode565(c uint16) (r, g, b float32) {
	r = float32(c&0xF800) / float32(0xF800)
	g = float32(c&0x07E0) / float32(0x07E0)
	b = float32(c&0x001F) / float32(0x001F)
	return
}

func wrap01(v float32) float32 {
	f := v - float32(int(v))
	if f < 0 {
		f++
	}
	return f
}
