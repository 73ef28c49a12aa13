package core

import (
	"image/color"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(8, 6)

	if f.Width() != 8 || f.Height() != 6 {
		t.Fatalf("dimensions = %dx%d, expected 8x6", f.Width(), f.Height())
	}
	if len(f.Pix()) != 8*6*4 {
		t.Errorf("len(Pix()) = %d, expected %d", len(f.Pix()), 8*6*4)
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Get(x, y) != (RGB{}) {
				t.Fatalf("new frame should be black, got %v at (%d, %d)", f.Get(x, y), x, y)
			}
		}
	}
	// Alpha is always opaque
	if f.Pix()[3] != 0xff {
		t.Errorf("alpha = %d, expected 255", f.Pix()[3])
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(10, 10)
	red := RGB{R: 255}

	f.Set(5, 5, red)
	if f.Get(5, 5) != red {
		t.Errorf("Get(5, 5) = %v, expected %v", f.Get(5, 5), red)
	}

	// Out of bounds should be silent
	f.Set(-1, 0, red)
	f.Set(100, 0, red)
	f.Set(0, -1, red)
	f.Set(0, 100, red)

	if f.Get(-1, 0) != (RGB{}) {
		t.Error("Out of bounds Get should return black")
	}
}

func TestFrameHLine(t *testing.T) {
	f := NewFrame(10, 5)
	c := Gray(100)
	f.HLine(-3, 4, 2, c)

	for x := 0; x < 4; x++ {
		if f.Get(x, 2) != c {
			t.Errorf("HLine: expected %v at (%d, 2), got %v", c, x, f.Get(x, 2))
		}
	}
	if f.Get(4, 2) != (RGB{}) {
		t.Error("HLine end should be exclusive")
	}

	// Off-screen row is ignored
	f.HLine(0, 10, 7, c)
}

func TestFrameVLine(t *testing.T) {
	f := NewFrame(10, 10)
	c := RGB{R: 10, G: 20, B: 30}
	f.VLine(3, 2, 6, c)

	for y := 2; y < 6; y++ {
		if f.Get(3, y) != c {
			t.Errorf("VLine: expected %v at (3, %d), got %v", c, y, f.Get(3, y))
		}
	}
	if f.Get(3, 1) != (RGB{}) || f.Get(3, 6) != (RGB{}) {
		t.Error("VLine should not touch rows outside [y0, y1)")
	}

	// Clipped at both ends
	f.VLine(4, -100, 100, c)
	for y := 0; y < 10; y++ {
		if f.Get(4, y) != c {
			t.Errorf("clipped VLine: expected %v at (4, %d)", c, y)
		}
	}
}

func TestFrameResizeAndCopy(t *testing.T) {
	f := NewFrame(4, 4)
	f.Fill(Gray(9))

	f.Resize(2, 3)
	if f.Width() != 2 || f.Height() != 3 {
		t.Errorf("After resize, dimensions should be 2x3, got %dx%d", f.Width(), f.Height())
	}
	if f.Get(0, 0) != (RGB{}) {
		t.Error("Resize should clear the frame")
	}

	src := NewFrame(3, 3)
	src.Set(1, 1, Gray(77))
	f.CopyFrom(src)
	if f.Width() != 3 || f.Get(1, 1) != Gray(77) {
		t.Error("CopyFrom should copy size and pixels")
	}
}

func TestFrameImage(t *testing.T) {
	f := NewFrame(3, 2)
	f.Set(2, 1, RGB{R: 255, G: 128, B: 0})

	if f.Bounds().Dx() != 3 || f.Bounds().Dy() != 2 {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
	got := color.RGBAModel.Convert(f.At(2, 1)).(color.RGBA)
	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("At(2, 1) = %v, expected %v", got, want)
	}
}
