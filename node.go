package osm2lanelet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// Node is a source centerline node together with its projected planar
// position. Immutable once indexed.
type Node struct {
	ID   osm.NodeID
	Lat  float64
	Lon  float64
	Geom orb.Point // planar meters around the map origin
}

// indexNodes projects every source node once so later phases work in planar space only
func indexNodes(src *osm.OSM, proj projection) map[osm.NodeID]*Node {
	nodes := make(map[osm.NodeID]*Node, len(src.Nodes))
	for _, node := range src.Nodes {
		nodes[node.ID] = &Node{
			ID:   node.ID,
			Lat:  node.Lat,
			Lon:  node.Lon,
			Geom: proj.ToXY(node.Lat, node.Lon),
		}
	}
	return nodes
}
