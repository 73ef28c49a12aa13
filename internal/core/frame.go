package core

import (
	"image"
	"image/color"
)

// Frame is an RGBA pixel buffer the renderer draws into.
// It decouples rendering from any display backend: the terminal platform
// turns it into half-block cells, the window platform uploads Pix directly,
// and tests inspect pixels without opening a window.
type Frame struct {
	width  int
	height int
	pix    []uint8
}

// NewFrame creates a black frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		width:  width,
		height: height,
	}
	f.allocate()
	f.Clear()
	return f
}

// allocate creates the underlying pixel storage.
func (f *Frame) allocate() {
	f.pix = make([]uint8, f.width*f.height*4)
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height in pixels.
func (f *Frame) Height() int {
	return f.height
}

// Dims returns the frame size.
func (f *Frame) Dims() Dims {
	return Dims{W: f.width, H: f.height}
}

// Pix returns the raw RGBA bytes, row-major with a stride of 4*Width.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// Resize changes the frame dimensions. Content is discarded since every
// tick redraws the whole frame.
func (f *Frame) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.allocate()
	f.Clear()
}

// Clear fills the frame with opaque black.
func (f *Frame) Clear() {
	f.Fill(RGB{})
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c RGB) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i] = c.R
		f.pix[i+1] = c.G
		f.pix[i+2] = c.B
		f.pix[i+3] = 0xff
	}
}

// Set colors the pixel at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i] = c.R
	f.pix[i+1] = c.G
	f.pix[i+2] = c.B
	f.pix[i+3] = 0xff
}

// Get returns the pixel at (x, y), or black for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGB{}
	}
	i := (y*f.width + x) * 4
	return RGB{R: f.pix[i], G: f.pix[i+1], B: f.pix[i+2]}
}

// HLine colors row y over columns [x0, x1), clipped to the frame.
func (f *Frame) HLine(x0, x1, y int, c RGB) {
	if y < 0 || y >= f.height {
		return
	}
	x0 = Max(x0, 0)
	x1 = Min(x1, f.width)
	for x := x0; x < x1; x++ {
		f.Set(x, y, c)
	}
}

// VLine colors column x over rows [y0, y1), clipped to the frame.
func (f *Frame) VLine(x, y0, y1 int, c RGB) {
	if x < 0 || x >= f.width {
		return
	}
	y0 = Max(y0, 0)
	y1 = Min(y1, f.height)
	for y := y0; y < y1; y++ {
		f.Set(x, y, c)
	}
}

// CopyFrom makes f an exact copy of src, resizing if needed.
func (f *Frame) CopyFrom(src *Frame) {
	f.Resize(src.width, src.height)
	copy(f.pix, src.pix)
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.width, f.height)
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	return f.Get(x, y)
}
