package raster

import "testing"

// TestDecode565BitExactness pins the deliberate un-normalized channel
// divide spec.md §6 documents: masked fields are divided by the mask
// itself, not by 31/63/65535.
func TestDecode565BitExactness(t *testing.T) {
	// Pure red at full 5-bit intensity: 0b11111_000000_00000 = 0xF800.
	r, g, b := decode565(0xF800)
	if r != 1 {
		t.Errorf("red channel = %v, want 1", r)
	}
	if g != 0 || b != 0 {
		t.Errorf("g,b = %v,%v, want 0,0", g, b)
	}

	// Pure green at full 6-bit intensity: 0x07E0.
	r, g, b = decode565(0x07E0)
	if g != 1 || r != 0 || b != 0 {
		t.Errorf("decode565(0x07E0) = (%v,%v,%v), want (0,1,0)", r, g, b)
	}

	// The lowest nonzero red field does not divide evenly; pin the exact
	// quirky (mask-divide) value rather than a "corrected" one.
	r, _, _ = decode565(0x0800) // lowest nonzero red bit
	want := float32(0x0800) / float32(0xF800)
	if r != want {
		t.Errorf("decode565(0x0800) red = %v, want %v", r, want)
	}
}

func TestTextureSampleNearestNeighbor(t *testing.T) {
	// width-1 scaling (spec.md §6) means index (width-1) is reachable
	// only from the wrapped-away uv=1.0, so a 3-wide row only ever yields
	// columns 0 and 1 for uv in [0,1); test against those.
	tex := Texture{
		Width:  3,
		Height: 1,
		Data:   []uint16{0xF800, 0x07E0, 0x001F},
	}
	r, g, b := tex.Sample(Vec2{X: 0, Y: 0})
	if r != 1 || g != 0 || b != 0 {
		t.Errorf("Sample(0,0) = (%v,%v,%v), want column-0 red texel", r, g, b)
	}
	r, g, b = tex.Sample(Vec2{X: 0.6, Y: 0})
	if g != 1 || r != 0 || b != 0 {
		t.Errorf("Sample(0.6,0) = (%v,%v,%v), want column-1 green texel", r, g, b)
	}
}

func TestTextureSampleWraps(t *testing.T) {
	tex := Texture{Width: 2, Height: 2, Data: []uint16{0xF800, 0, 0, 0}}
	a, _, _ := tex.Sample(Vec2{X: 0, Y: 0})
	b, _, _ := tex.Sample(Vec2{X: 1.0, Y: 0}) // wraps to 0.0
	if a != b {
		t.Errorf("uv=0 and uv=1 should sample the same wrapped texel: %v vs %v", a, b)
	}
}
