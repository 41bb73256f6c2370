package layout

// Rect is an axis-aligned rectangle in PDF points, bottom-left origin
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Geometry describes a page split into SlotsPerPage horizontal bands.
// Slots are numbered top to bottom, coordinates are bottom-origin.
type Geometry struct {
	Width  float64
	Height float64
}

// A4 is the page size used for measuring source bands and for the output
var A4 = Geometry{Width: 595.28, Height: 841.89}

// BandHeight returns the height of one slot
func (g Geometry) BandHeight() float64 {
	return g.Height / SlotsPerPage
}

// YOf returns the bottom edge of the given slot
func (g Geometry) YOf(slot int) float64 {
	return g.Height - float64(slot)*g.BandHeight()
}

// Band returns the full-width rectangle covered by slot
func (g Geometry) Band(slot int) Rect {
	return Rect{
		X:      0,
		Y:      g.YOf(slot),
		Width:  g.Width,
		Height: g.BandHeight(),
	}
}

// Offset is the vertical translation moving content of source slot src
// onto destination slot dst. Negative values shift down.
func (g Geometry) Offset(dst, src int) float64 {
	return g.YOf(dst) - g.YOf(src)
}
