package core

import "testing"

func TestRGBLerp(t *testing.T) {
	top := RGB{R: 135, G: 206, B: 235}
	bottom := RGB{R: 110, G: 150, B: 200}

	if top.Lerp(bottom, 0) != top {
		t.Errorf("Lerp(0) = %v, expected %v", top.Lerp(bottom, 0), top)
	}
	if top.Lerp(bottom, 1) != bottom {
		t.Errorf("Lerp(1) = %v, expected %v", top.Lerp(bottom, 1), bottom)
	}

	// 135*0.5 + 110*0.5 = 122.5 -> 122
	mid := top.Lerp(bottom, 0.5)
	if mid.R != 122 || mid.G != 178 || mid.B != 217 {
		t.Errorf("Lerp(0.5) = %v, expected {122 178 217}", mid)
	}

	// Out of range t is clamped
	if top.Lerp(bottom, 2) != bottom {
		t.Error("Lerp should clamp t above 1")
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		c        RGB
		expected string
	}{
		{RGB{}, "#000000"},
		{RGB{R: 255, G: 255, B: 255}, "#ffffff"},
		{RGB{R: 135, G: 206, B: 235}, "#87ceeb"},
	}

	for _, tc := range tests {
		if got := tc.c.Hex(); got != tc.expected {
			t.Errorf("Hex(%v) = %q, expected %q", tc.c, got, tc.expected)
		}
	}
}

func TestRGBA(t *testing.T) {
	r, g, b, a := RGB{R: 255, G: 0, B: 1}.RGBA()
	if r != 0xffff || g != 0 || b != 0x0101 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}
