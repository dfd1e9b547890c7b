package osm2lanelet

import "github.com/paulmach/osm"

type skipReason uint16

const (
	SKIP_NONE = skipReason(iota)
	SKIP_UNKNOWN_CATEGORY
	SKIP_SHORT_GEOMETRY
)

func (iotaIdx skipReason) String() string {
	return [...]string{"none", "unknown_category", "short_geometry"}[iotaIdx]
}

// wayResult is the outcome for a single source way: either a number of built
// lanelets or a skip reason. No partially built way ever produces a result.
type wayResult struct {
	wayID    osm.WayID
	lanelets int
	skipped  skipReason
}

// ConversionSummary aggregates per-way outcomes of one conversion run
type ConversionSummary struct {
	WaysConverted   int
	LaneletsCreated int
	SharedJunctions int
	SkippedCategory int
	SkippedGeometry int
}

func summarize(results []wayResult, sharedJunctions int) ConversionSummary {
	summary := ConversionSummary{SharedJunctions: sharedJunctions}
	for _, result := range results {
		switch result.skipped {
		case SKIP_UNKNOWN_CATEGORY:
			summary.SkippedCategory++
		case SKIP_SHORT_GEOMETRY:
			summary.SkippedGeometry++
		default:
			summary.WaysConverted++
			summary.LaneletsCreated += result.lanelets
		}
	}
	return summary
}
