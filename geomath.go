package osm2lanelet

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// directionEpsilon is the segment length below which two points are treated as
// coincident and a direction can not be derived from them
const directionEpsilon = 1e-10

// normalize returns the unit vector for given one. A near-zero vector falls
// back to (0, 1) instead of dividing by zero.
func normalize(vec orb.Point) orb.Point {
	d := math.Hypot(vec.X(), vec.Y())
	if d <= directionEpsilon {
		return orb.Point{0.0, 1.0}
	}
	return orb.Point{vec.X() / d, vec.Y() / d}
}

// leftPerp returns the unit vector rotated 90 degrees to the left of the
// travel direction: (dx, dy) -> (-dy, dx)
func leftPerp(dir orb.Point) orb.Point {
	return normalize(orb.Point{-dir.Y(), dir.X()})
}

// computePerpendiculars returns one left-hand unit normal per point of the
// line, smoothed at corners by averaging the incoming and outgoing segment
// directions. Interior points see two segments, endpoints see one.
func computePerpendiculars(line orb.LineString) []orb.Point {
	perps := make([]orb.Point, 0, len(line))
	for i := range line {
		sum := orb.Point{}
		if i > 0 {
			dir := normalize(orb.Point{line[i].X() - line[i-1].X(), line[i].Y() - line[i-1].Y()})
			sum = orb.Point{sum.X() + dir.X(), sum.Y() + dir.Y()}
		}
		if i < len(line)-1 {
			dir := normalize(orb.Point{line[i+1].X() - line[i].X(), line[i+1].Y() - line[i].Y()})
			sum = orb.Point{sum.X() + dir.X(), sum.Y() + dir.Y()}
		}
		perps = append(perps, leftPerp(normalize(sum)))
	}
	return perps
}

// offsetPoint shifts the point along the given unit direction by distance
// meters. Negative distance shifts to the opposite side.
func offsetPoint(pt, dir orb.Point, distance float64) orb.Point {
	return orb.Point{pt.X() + dir.X()*distance, pt.Y() + dir.Y()*distance}
}

// reverseIDs returns a new slice with ids in the opposite order
func reverseIDs(ids []osm.NodeID) []osm.NodeID {
	inputLen := len(ids)
	output := make([]osm.NodeID, inputLen)
	for i, id := range ids {
		output[inputLen-i-1] = id
	}
	return output
}
