package osm2lanelet

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/paulmach/osm"
)

func previewDoc() *osm.OSM {
	return &osm.OSM{
		Nodes: osm.Nodes{
			{ID: -1, Lat: 0.0001, Lon: 0.0002},
			{ID: -2, Lat: 0.0003, Lon: 0.0004},
		},
		Ways: osm.Ways{
			{ID: -1, Nodes: osm.WayNodes{{ID: -1}, {ID: -2}}},
		},
	}
}

func TestPrepareWKTPreview(t *testing.T) {
	preview := PrepareWKTPreview(previewDoc())
	if !strings.Contains(preview, "LINESTRING(") {
		t.Errorf("WKT preview must contain a LINESTRING, but got %q", preview)
	}
	if !strings.HasPrefix(preview, "-1;") {
		t.Errorf("WKT preview lines must be prefixed with the way id, but got %q", preview)
	}
}

func TestPrepareGeoJSONPreview(t *testing.T) {
	preview, err := PrepareGeoJSONPreview(previewDoc())
	if err != nil {
		t.Fatal(err)
	}
	parsed := map[string]interface{}{}
	if err := json.Unmarshal([]byte(preview), &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed["type"] != "FeatureCollection" {
		t.Errorf("GeoJSON preview must be a FeatureCollection, but got %v", parsed["type"])
	}
	features, ok := parsed["features"].([]interface{})
	if !ok || len(features) != 1 {
		t.Errorf("GeoJSON preview must contain 1 feature, but got %v", parsed["features"])
	}
}

func TestWritePreviewUnknownFormat(t *testing.T) {
	converter := NewConverter(WithPreviewFormat("kml"))
	if err := converter.writePreview(previewDoc(), "preview.kml"); err == nil {
		t.Error("Unknown preview format must be rejected")
	}
}
