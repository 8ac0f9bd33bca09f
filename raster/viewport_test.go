package raster

import "testing"

func TestViewportToScreenCenter(t *testing.T) {
	vp := NewViewport(0, 0, 4, 4)
	x, y := vp.toScreen(0, 0)
	if x != 2 || y != 2 {
		t.Errorf("toScreen(0,0) = (%v,%v), want (2,2)", x, y)
	}
}

func TestViewportToScreenYFlip(t *testing.T) {
	vp := NewViewport(0, 0, 10, 10)
	_, yTop := vp.toScreen(0, 1)
	_, yBottom := vp.toScreen(0, -1)
	if yTop >= yBottom {
		t.Errorf("NDC +1 should map above NDC -1 on screen: yTop=%v yBottom=%v", yTop, yBottom)
	}
}

func TestViewportContains(t *testing.T) {
	vp := NewViewport(5, 5, 15, 15)
	if !vp.contains(5, 5) {
		t.Errorf("(5,5) should be inside [5,15)")
	}
	if vp.contains(15, 15) {
		t.Errorf("(15,15) should be outside (exclusive bound)")
	}
	if vp.contains(4, 5) {
		t.Errorf("(4,5) should be outside")
	}
}
