package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestBandsPartitionPage(t *testing.T) {
	for _, g := range []Geometry{A4, {Width: 612, Height: 792}, {Width: 100, Height: 1}} {
		if g.YOf(SlotsPerPage) != 0 {
			t.Errorf("%v: bottom band starts at %g, want 0", g, g.YOf(SlotsPerPage))
		}
		top := g.Height
		for slot := 1; slot <= SlotsPerPage; slot++ {
			band := g.Band(slot)
			if band.X != 0 || band.Width != g.Width {
				t.Errorf("%v slot %d: band %+v does not span full width", g, slot, band)
			}
			if math.Abs(band.Y+band.Height-top) > eps {
				t.Errorf("%v slot %d: band top %g, want %g", g, slot, band.Y+band.Height, top)
			}
			want := g.Height - float64(slot)*g.Height/4
			if math.Abs(band.Y-want) > eps {
				t.Errorf("%v slot %d: band bottom %g, want %g", g, slot, band.Y, want)
			}
			top = band.Y
		}
		if math.Abs(top) > eps {
			t.Errorf("%v: bands end at %g, want 0", g, top)
		}
	}
}

func TestOffset(t *testing.T) {
	g := Geometry{Width: 400, Height: 800}
	tests := []struct {
		dst, src int
		want     float64
	}{
		{1, 1, 0},
		{1, 4, 600},
		{4, 1, -600},
		{2, 3, 200},
		{3, 2, -200},
	}
	for _, tt := range tests {
		if got := g.Offset(tt.dst, tt.src); got != tt.want {
			t.Errorf("Offset(%d, %d) = %g, want %g", tt.dst, tt.src, got, tt.want)
		}
	}
}

func TestOffsetMovesSourceBandOntoDestination(t *testing.T) {
	g := A4
	for dst := 1; dst <= SlotsPerPage; dst++ {
		for src := 1; src <= SlotsPerPage; src++ {
			moved := g.Band(src).Y + g.Offset(dst, src)
			if math.Abs(moved-g.Band(dst).Y) > eps {
				t.Errorf("src %d moved to %g, want %g", src, moved, g.Band(dst).Y)
			}
		}
	}
}
