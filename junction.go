package osm2lanelet

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// junctionEntry is a single way's contribution at one of its endpoints: the
// left normal and the half-width at that position
type junctionEntry struct {
	perp      orb.Point
	halfWidth float64
}

// boundaryTriple holds the three output node ids materialized once per
// junction. Every lanelet touching the junction references these same ids,
// which is what keeps adjacent lanelets topologically connected.
type boundaryTriple struct {
	left   osm.NodeID
	centre osm.NodeID
	right  osm.NodeID
}

func (triple boundaryTriple) side(side boundarySide) osm.NodeID {
	switch side {
	case SIDE_LEFT:
		return triple.left
	case SIDE_RIGHT:
		return triple.right
	default:
		return triple.centre
	}
}

// collectEndpointEntries groups every way's normal and half-width at its first
// and last positions by source node id. Interior coincidences never count as
// junctions, so interior positions are not recorded.
func collectEndpointEntries(ways []*WayData) map[osm.NodeID][]junctionEntry {
	entries := make(map[osm.NodeID][]junctionEntry)
	for _, way := range ways {
		for _, pos := range [2]int{0, len(way.Nodes) - 1} {
			ref := way.Nodes[pos]
			entries[ref] = append(entries[ref], junctionEntry{
				perp:      way.perps[pos],
				halfWidth: way.halfWidth,
			})
		}
	}
	return entries
}

// mergedOffset averages the contributions of every way touching a junction:
// the offset direction is the normalized vector sum of all normals, the
// half-width is their arithmetic mean
func mergedOffset(entries []junctionEntry) (orb.Point, float64) {
	sum := orb.Point{}
	width := 0.0
	for _, entry := range entries {
		sum = orb.Point{sum.X() + entry.perp.X(), sum.Y() + entry.perp.Y()}
		width += entry.halfWidth
	}
	return normalize(sum), width / float64(len(entries))
}

// sortedJunctionRefs returns the source node ids with two or more endpoint
// contributions in ascending order. Map iteration order is not deterministic,
// output ids have to be.
func sortedJunctionRefs(entries map[osm.NodeID][]junctionEntry) []osm.NodeID {
	refs := make([]osm.NodeID, 0, len(entries))
	for ref, list := range entries {
		if len(list) < 2 {
			continue
		}
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}
