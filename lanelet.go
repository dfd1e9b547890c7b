package osm2lanelet

import (
	"github.com/paulmach/osm"
)

type boundarySide uint16

const (
	SIDE_LEFT = boundarySide(iota + 1)
	SIDE_CENTRE
	SIDE_RIGHT
)

func (iotaIdx boundarySide) String() string {
	return [...]string{"left", "centre", "right"}[iotaIdx-1]
}

type lineStyle uint16

const (
	LINE_SOLID = lineStyle(iota + 1)
	LINE_DASHED
)

func (iotaIdx lineStyle) String() string {
	return [...]string{"solid", "dashed"}[iotaIdx-1]
}

func (style lineStyle) tags() osm.Tags {
	return osm.Tags{
		{Key: "type", Value: "line_thin"},
		{Key: "subtype", Value: style.String()},
	}
}

// laneletTags is the tag record of a lanelet relation. The two constructors
// below build the road and walkway variants; Tags expands the record into the
// fixed order the downstream map editor expects.
type laneletTags struct {
	subtype    string
	speedLimit string
	vehicle    bool
	name       string
	oneWay     bool
}

func roadLaneletTags(speedLimit, name string, oneWay bool) laneletTags {
	return laneletTags{subtype: "road", speedLimit: speedLimit, vehicle: true, name: name, oneWay: oneWay}
}

func walkwayLaneletTags(speedLimit, name string, oneWay bool) laneletTags {
	return laneletTags{subtype: "walkway", speedLimit: speedLimit, vehicle: false, name: name, oneWay: oneWay}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (lt laneletTags) Tags() osm.Tags {
	tags := osm.Tags{
		{Key: "type", Value: "lanelet"},
		{Key: "subtype", Value: lt.subtype},
		{Key: "speed_limit", Value: lt.speedLimit},
		{Key: "location", Value: "urban"},
		{Key: "participant:vehicle", Value: yesNo(lt.vehicle)},
		{Key: "participant:pedestrian", Value: yesNo(!lt.vehicle)},
	}
	if lt.name != "" {
		tags = append(tags, osm.Tag{Key: "name", Value: lt.name})
	}
	if lt.oneWay {
		tags = append(tags, osm.Tag{Key: "one_way", Value: "yes"})
	}
	return tags
}

// laneletBuilder resolves boundary nodes and assembles boundary ways and
// lanelet relations for one conversion run
type laneletBuilder struct {
	writer *laneletWriter
	shared map[osm.NodeID]boundaryTriple
}

func newLaneletBuilder(writer *laneletWriter) *laneletBuilder {
	return &laneletBuilder{
		writer: writer,
		shared: make(map[osm.NodeID]boundaryTriple),
	}
}

// materializeJunctions creates exactly one (left, centre, right) node triple
// per junction, offsetting the source point to both sides along the merged
// normal. Must run before any way's boundary resolution.
func (builder *laneletBuilder) materializeJunctions(nodes map[osm.NodeID]*Node, entries map[osm.NodeID][]junctionEntry) {
	for _, ref := range sortedJunctionRefs(entries) {
		perp, halfWidth := mergedOffset(entries[ref])
		pt := nodes[ref].Geom
		builder.shared[ref] = boundaryTriple{
			left:   builder.writer.addNode(offsetPoint(pt, perp, halfWidth)),
			centre: builder.writer.addNode(pt),
			right:  builder.writer.addNode(offsetPoint(pt, perp, -halfWidth)),
		}
	}
}

// boundaryNode resolves the output node for way position i on the given side.
// A junction endpoint reuses the pre-materialized shared triple; every other
// position gets a fresh offset node.
func (builder *laneletBuilder) boundaryNode(way *WayData, i int, side boundarySide) osm.NodeID {
	if i == 0 || i == len(way.Nodes)-1 {
		if triple, ok := builder.shared[way.Nodes[i]]; ok {
			return triple.side(side)
		}
	}
	switch side {
	case SIDE_LEFT:
		return builder.writer.addNode(offsetPoint(way.geom[i], way.perps[i], way.halfWidth))
	case SIDE_RIGHT:
		return builder.writer.addNode(offsetPoint(way.geom[i], way.perps[i], -way.halfWidth))
	default:
		return builder.writer.addNode(way.geom[i])
	}
}

func (builder *laneletBuilder) boundaryLine(way *WayData, side boundarySide) []osm.NodeID {
	ids := make([]osm.NodeID, 0, len(way.Nodes))
	for i := range way.Nodes {
		ids = append(ids, builder.boundaryNode(way, i, side))
	}
	return ids
}

// buildLanelets turns one centerline way into its lanelet relations and
// returns how many were created. A oneway road yields a single lanelet
// between its physical edges. A two-way road yields a forward and a reverse
// lanelet split by a dashed centre line; the reverse lanelet reuses the same
// centre and right node ids in opposite traversal order, no offsets are
// recomputed.
func (builder *laneletBuilder) buildLanelets(way *WayData) int {
	_, isVehicle := vehicleRoads[way.highway]
	edgeStyle := LINE_DASHED
	if isVehicle {
		edgeStyle = LINE_SOLID
	}

	tags := walkwayLaneletTags(way.speedLimit(), way.name, way.Oneway)
	if isVehicle {
		tags = roadLaneletTags(way.speedLimit(), way.name, way.Oneway)
	}

	if way.Oneway {
		leftIDs := builder.boundaryLine(way, SIDE_LEFT)
		rightIDs := builder.boundaryLine(way, SIDE_RIGHT)
		builder.writer.addLanelet(
			builder.writer.addWay(leftIDs, edgeStyle),
			builder.writer.addWay(rightIDs, edgeStyle),
			tags.Tags())
		return 1
	}

	leftIDs := builder.boundaryLine(way, SIDE_LEFT)
	centreIDs := builder.boundaryLine(way, SIDE_CENTRE)
	rightIDs := builder.boundaryLine(way, SIDE_RIGHT)

	builder.writer.addLanelet(
		builder.writer.addWay(leftIDs, edgeStyle),
		builder.writer.addWay(centreIDs, LINE_DASHED),
		tags.Tags())
	builder.writer.addLanelet(
		builder.writer.addWay(reverseIDs(centreIDs), LINE_DASHED),
		builder.writer.addWay(reverseIDs(rightIDs), edgeStyle),
		tags.Tags())
	return 2
}
