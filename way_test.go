package osm2lanelet

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestIsNumericSpeed(t *testing.T) {
	cases := []struct {
		speed   string
		numeric bool
	}{
		{"50", true},
		{"50 km/h", true},
		{"30 mph", true},
		{"130", true},
		{"fast", false},
		{"", false},
		{"km/h", false},
		{"50;70", false},
		{"walk", false},
	}
	for _, c := range cases {
		if got := isNumericSpeed(c.speed); got != c.numeric {
			t.Errorf("isNumericSpeed(%q) must be %t, but got %t", c.speed, c.numeric, got)
		}
	}
}

func TestSpeedLimit(t *testing.T) {
	cases := []struct {
		highway  HighwayType
		maxSpeed string
		correct  string
	}{
		{HIGHWAY_RESIDENTIAL, "40", "40"},
		{HIGHWAY_RESIDENTIAL, "30 mph", "30 mph"},
		{HIGHWAY_RESIDENTIAL, "fast", "30"},
		{HIGHWAY_RESIDENTIAL, "", "30"},
		{HIGHWAY_MOTORWAY, "", "130"},
		{HIGHWAY_FOOTWAY, "", "50"},
		{HIGHWAY_FOOTWAY, "signals", "50"},
	}
	for _, c := range cases {
		way := &WayData{highway: c.highway, maxSpeed: c.maxSpeed}
		if got := way.speedLimit(); got != c.correct {
			t.Errorf("Speed limit for %s with maxspeed %q must be %q, but got %q", c.highway, c.maxSpeed, c.correct, got)
		}
	}
}

func TestCollectWaysFiltering(t *testing.T) {
	proj := projection{}
	src := &osm.OSM{
		Nodes: osm.Nodes{
			{ID: 1, Lat: 0.0, Lon: 0.0},
			{ID: 2, Lat: 0.0005, Lon: 0.0005},
		},
		Ways: osm.Ways{
			{ID: 100, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}}, Tags: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "oneway", Value: "yes"}}},
			{ID: 101, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}}, Tags: osm.Tags{{Key: "highway", Value: "proposed"}}},
			{ID: 102, Nodes: osm.WayNodes{{ID: 1}, {ID: 99}}, Tags: osm.Tags{{Key: "highway", Value: "residential"}}},
			{ID: 103, Nodes: osm.WayNodes{{ID: 1}, {ID: 2}}, Tags: osm.Tags{{Key: "building", Value: "yes"}}},
		},
	}
	nodes := indexNodes(src, proj)
	ways, skipped := collectWays(src, nodes)
	if len(ways) != 1 {
		t.Errorf("Exactly 1 way must be convertible, but got %d", len(ways))
	}
	if !ways[0].Oneway {
		t.Error("Way 100 must be detected as oneway")
	}
	if ways[0].halfWidth != 2.75 {
		t.Errorf("Residential half-width must be 2.75, but got %f", ways[0].halfWidth)
	}
	if len(skipped) != 2 {
		t.Errorf("Exactly 2 ways must be skipped, but got %d", len(skipped))
	}
	reasons := map[osm.WayID]skipReason{}
	for _, result := range skipped {
		reasons[result.wayID] = result.skipped
	}
	if reasons[101] != SKIP_UNKNOWN_CATEGORY {
		t.Errorf("Way 101 must be skipped for unknown category, but got %s", reasons[101])
	}
	if reasons[102] != SKIP_SHORT_GEOMETRY {
		t.Errorf("Way 102 must be skipped for short geometry, but got %s", reasons[102])
	}
}
