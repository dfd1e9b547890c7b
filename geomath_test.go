package osm2lanelet

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func TestPerpendicularsUnitLength(t *testing.T) {
	line := orb.LineString{{0.0, 0.0}, {5.0, 0.0}, {8.0, 5.0}, {8.0, 10.0}, {5.0, 14.0}, {2.0, 14.0}}
	perps := computePerpendiculars(line)
	if len(perps) != len(line) {
		t.Errorf("Perpendicular count must be %d, but got %d", len(line), len(perps))
	}
	for i, perp := range perps {
		magnitude := math.Hypot(perp.X(), perp.Y())
		if math.Abs(magnitude-1.0) > 1e-12 {
			t.Errorf("Perpendicular %d must be a unit vector, but got magnitude %.15f", i, magnitude)
		}
	}
}

func TestPerpendicularsStraightLine(t *testing.T) {
	line := orb.LineString{{0.0, 0.0}, {10.0, 0.0}, {20.0, 0.0}}
	perps := computePerpendiculars(line)
	for i, perp := range perps {
		if math.Abs(perp.X()) > 1e-12 || math.Abs(perp.Y()-1.0) > 1e-12 {
			t.Errorf("Left normal of an eastward line must be (0, 1), but got (%f, %f) at %d", perp.X(), perp.Y(), i)
		}
	}
}

func TestPerpendicularsCornerSmoothing(t *testing.T) {
	line := orb.LineString{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}
	perps := computePerpendiculars(line)
	correct := math.Sqrt(2) / 2.0
	if math.Abs(perps[1].X()+correct) > 1e-12 || math.Abs(perps[1].Y()-correct) > 1e-12 {
		t.Errorf("Corner normal must be (%f, %f), but got (%f, %f)", -correct, correct, perps[1].X(), perps[1].Y())
	}
}

func TestPerpendicularsDegenerateSegment(t *testing.T) {
	line := orb.LineString{{3.0, 4.0}, {3.0, 4.0}}
	perps := computePerpendiculars(line)
	for i, perp := range perps {
		if perp.X() != -1.0 || perp.Y() != 0.0 {
			t.Errorf("Fallback direction (0, 1) must rotate to normal (-1, 0), but got (%f, %f) at %d", perp.X(), perp.Y(), i)
		}
	}
}

func TestNormalizeFallback(t *testing.T) {
	unit := normalize(orb.Point{0.0, 0.0})
	if unit.X() != 0.0 || unit.Y() != 1.0 {
		t.Errorf("Near-zero vector must normalize to (0, 1), but got (%f, %f)", unit.X(), unit.Y())
	}
}

func TestOffsetPoint(t *testing.T) {
	pt := offsetPoint(orb.Point{1.0, 2.0}, orb.Point{0.0, 1.0}, 2.75)
	if pt.X() != 1.0 || pt.Y() != 4.75 {
		t.Errorf("Offset point must be (1, 4.75), but got (%f, %f)", pt.X(), pt.Y())
	}
	pt = offsetPoint(orb.Point{1.0, 2.0}, orb.Point{0.0, 1.0}, -2.75)
	if pt.X() != 1.0 || pt.Y() != -0.75 {
		t.Errorf("Offset point must be (1, -0.75), but got (%f, %f)", pt.X(), pt.Y())
	}
}

func TestReverseIDs(t *testing.T) {
	ids := []osm.NodeID{-1, -2, -3, -4}
	reversed := reverseIDs(ids)
	correct := []osm.NodeID{-4, -3, -2, -1}
	for i := range correct {
		if reversed[i] != correct[i] {
			t.Errorf("Reversed sequence at %d must be %d, but got %d", i, correct[i], reversed[i])
		}
	}
	if ids[0] != -1 {
		t.Errorf("Input slice must stay untouched, but got %d at 0", ids[0])
	}
}
