package osm2lanelet

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

const (
	earthRadiusM = 6371000.0
	pi180        = math.Pi / 180.0
	pi180Rev     = 180.0 / math.Pi
)

// projection is an equirectangular lat/lon <-> local-meters mapping around a
// fixed origin. Curvature error is negligible for map extents of a few
// kilometers, which is all this converter is meant for.
type projection struct {
	originLat float64
	originLon float64
}

// newProjection places the origin at the midpoint of the declared bounds, or
// at the first source node when bounds are absent
func newProjection(src *osm.OSM) projection {
	if src.Bounds != nil {
		return projection{
			originLat: (src.Bounds.MinLat + src.Bounds.MaxLat) / 2.0,
			originLon: (src.Bounds.MinLon + src.Bounds.MaxLon) / 2.0,
		}
	}
	if len(src.Nodes) != 0 {
		return projection{originLat: src.Nodes[0].Lat, originLon: src.Nodes[0].Lon}
	}
	return projection{}
}

// ToXY projects geographic coordinates to planar meters
func (proj projection) ToXY(lat, lon float64) orb.Point {
	x := (lon - proj.originLon) * pi180 * earthRadiusM * math.Cos(proj.originLat*pi180)
	y := (lat - proj.originLat) * pi180 * earthRadiusM
	return orb.Point{x, y}
}

// ToLatLon is the exact algebraic inverse of ToXY under the same origin
func (proj projection) ToLatLon(pt orb.Point) (float64, float64) {
	lat := proj.originLat + (pt.Y()/earthRadiusM)*pi180Rev
	lon := proj.originLon + (pt.X()/(earthRadiusM*math.Cos(proj.originLat*pi180)))*pi180Rev
	return lat, lon
}
