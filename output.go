package osm2lanelet

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// idAllocator owns the id counters for synthesized entities. Output ids are
// negative and decrease monotonically; the node, way and relation spaces are
// independent of each other and disjoint from source ids.
type idAllocator struct {
	node     int64
	way      int64
	relation int64
}

func newIDAllocator() *idAllocator {
	return &idAllocator{node: -1, way: -1, relation: -1}
}

func (alloc *idAllocator) nextNode() osm.NodeID {
	id := alloc.node
	alloc.node--
	return osm.NodeID(id)
}

func (alloc *idAllocator) nextWay() osm.WayID {
	id := alloc.way
	alloc.way--
	return osm.WayID(id)
}

func (alloc *idAllocator) nextRelation() osm.RelationID {
	id := alloc.relation
	alloc.relation--
	return osm.RelationID(id)
}

// laneletWriter accumulates synthesized entities into the target OSM
// document. Entities are appended once and never mutated afterwards.
type laneletWriter struct {
	out   *osm.OSM
	alloc *idAllocator
	proj  projection
}

func newLaneletWriter(bounds *osm.Bounds, proj projection, generator string) *laneletWriter {
	return &laneletWriter{
		out: &osm.OSM{
			Version:   "0.6",
			Generator: generator,
			Bounds:    bounds,
		},
		alloc: newIDAllocator(),
		proj:  proj,
	}
}

// addNode converts the planar point back to geographic coordinates and
// appends a fresh output node. Elevation is fixed at zero, the converter has
// no elevation model.
func (writer *laneletWriter) addNode(pt orb.Point) osm.NodeID {
	lat, lon := writer.proj.ToLatLon(pt)
	id := writer.alloc.nextNode()
	writer.out.Nodes = append(writer.out.Nodes, &osm.Node{
		ID:      id,
		Visible: true,
		Lat:     lat,
		Lon:     lon,
		Tags:    osm.Tags{{Key: "ele", Value: "0"}},
	})
	return id
}

func (writer *laneletWriter) addWay(nodeIDs []osm.NodeID, style lineStyle) osm.WayID {
	id := writer.alloc.nextWay()
	way := &osm.Way{
		ID:      id,
		Visible: true,
		Nodes:   make(osm.WayNodes, 0, len(nodeIDs)),
		Tags:    style.tags(),
	}
	for _, nodeID := range nodeIDs {
		way.Nodes = append(way.Nodes, osm.WayNode{ID: nodeID})
	}
	writer.out.Ways = append(writer.out.Ways, way)
	return id
}

func (writer *laneletWriter) addLanelet(left, right osm.WayID, tags osm.Tags) osm.RelationID {
	id := writer.alloc.nextRelation()
	writer.out.Relations = append(writer.out.Relations, &osm.Relation{
		ID:      id,
		Visible: true,
		Members: osm.Members{
			{Type: osm.TypeWay, Ref: int64(left), Role: "left"},
			{Type: osm.TypeWay, Ref: int64(right), Role: "right"},
		},
		Tags: tags,
	})
	return id
}
