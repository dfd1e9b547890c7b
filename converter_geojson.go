package osm2lanelet

import (
	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// PrepareGeoJSONPreview returns every generated boundary way as a linestring
// feature of a single FeatureCollection, keyed by way id
func PrepareGeoJSONPreview(doc *osm.OSM) (string, error) {
	fc := geojson.NewFeatureCollection()
	for _, wl := range boundaryLines(doc) {
		pts2d := make([][]float64, len(wl.line))
		for i := range wl.line {
			pts2d[i] = []float64{wl.line[i].X(), wl.line[i].Y()}
		}
		feature := geojson.NewLineStringFeature(pts2d)
		feature.SetProperty("way_id", int64(wl.id))
		fc.AddFeature(feature)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return "", errors.Wrap(err, "Can't marshal FeatureCollection")
	}
	return string(b), nil
}
