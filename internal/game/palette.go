package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) floats() (r, g, b float32) {
	return float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0
}

var Palette = struct {
	Head       RGB
	Segment    RGB
	Food       RGB
	Background RGB
}{
	Head:       RGB{R: 179, G: 179, B: 179},
	Segment:    RGB{R: 77, G: 77, B: 77},
	Food:       RGB{R: 255, G: 255, B: 255},
	Background: RGB{R: 10, G: 10, B: 10},
}
