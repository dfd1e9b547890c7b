package osm2lanelet

import (
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// WayData is a centerline way eligible for conversion. The geometric fields
// are filled during the perpendicular phase, before any lanelet is built.
type WayData struct {
	ID       osm.WayID
	Nodes    []osm.NodeID
	Oneway   bool
	highway  HighwayType
	maxSpeed string
	name     string

	geom      orb.LineString // projected node positions, same order as Nodes
	perps     []orb.Point    // left unit normal per node, same order as Nodes
	halfWidth float64
}

// speedUnitChars are trimmed from the right of a `maxspeed` value before the
// digit check, so "50 km/h" and "30 mph" pass as numeric
const speedUnitChars = " mph/k"

func isNumericSpeed(speed string) bool {
	trimmed := strings.TrimRight(speed, speedUnitChars)
	if trimmed == "" {
		return false
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// speedLimit returns the way's raw `maxspeed` value when it is numeric (unit
// suffixes tolerated), otherwise the category default
func (way *WayData) speedLimit() string {
	if way.maxSpeed != "" && isNumericSpeed(way.maxSpeed) {
		return way.maxSpeed
	}
	if found, ok := defaultSpeeds[way.highway]; ok {
		return found
	}
	return fallbackSpeed
}

// collectWays filters source ways down to convertible centerlines: a known
// highway category and at least two resolvable node references. Unconvertible
// highway ways are returned as skip results, not errors.
func collectWays(src *osm.OSM, nodes map[osm.NodeID]*Node) ([]*WayData, []wayResult) {
	ways := make([]*WayData, 0, len(src.Ways))
	skipped := []wayResult{}
	for _, way := range src.Ways {
		highwayText := way.Tags.Find("highway")
		if highwayText == "" {
			continue
		}
		halfWidth, ok := halfWidths[getHighwayType(highwayText)]
		if !ok {
			skipped = append(skipped, wayResult{wayID: way.ID, skipped: SKIP_UNKNOWN_CATEGORY})
			continue
		}
		refs := make([]osm.NodeID, 0, len(way.Nodes))
		geom := make(orb.LineString, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			node, found := nodes[wayNode.ID]
			if !found {
				continue
			}
			refs = append(refs, wayNode.ID)
			geom = append(geom, node.Geom)
		}
		if len(refs) < 2 {
			skipped = append(skipped, wayResult{wayID: way.ID, skipped: SKIP_SHORT_GEOMETRY})
			continue
		}
		oneway := false
		onewayText := way.Tags.Find("oneway")
		if onewayText == "yes" || onewayText == "1" || onewayText == "true" {
			oneway = true
		}
		ways = append(ways, &WayData{
			ID:        way.ID,
			Nodes:     refs,
			Oneway:    oneway,
			highway:   getHighwayType(highwayText),
			maxSpeed:  way.Tags.Find("maxspeed"),
			name:      way.Tags.Find("name"),
			geom:      geom,
			halfWidth: halfWidth,
		})
	}
	return ways, skipped
}
