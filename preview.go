package osm2lanelet

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// wayLine is the geographic polyline of one generated boundary way,
// points ordered (lon, lat)
type wayLine struct {
	id   osm.WayID
	line orb.LineString
}

// boundaryLines resolves the geometry of every generated boundary way in
// document order, for dumping into GIS-friendly preview formats
func boundaryLines(doc *osm.OSM) []wayLine {
	coords := make(map[osm.NodeID]orb.Point, len(doc.Nodes))
	for _, node := range doc.Nodes {
		coords[node.ID] = orb.Point{node.Lon, node.Lat}
	}
	lines := make([]wayLine, 0, len(doc.Ways))
	for _, way := range doc.Ways {
		line := make(orb.LineString, 0, len(way.Nodes))
		for _, wayNode := range way.Nodes {
			if pt, ok := coords[wayNode.ID]; ok {
				line = append(line, pt)
			}
		}
		lines = append(lines, wayLine{id: way.ID, line: line})
	}
	return lines
}

// writePreview dumps the generated boundary geometry in the configured format
func (converter *Converter) writePreview(doc *osm.OSM, filename string) error {
	var data string
	switch converter.previewFormat {
	case "wkt":
		data = PrepareWKTPreview(doc)
	case "geojson":
		var err error
		data, err = PrepareGeoJSONPreview(doc)
		if err != nil {
			return errors.Wrap(err, "Can't prepare GeoJSON preview")
		}
	default:
		return fmt.Errorf("Preview format '%s' is not handled yet", converter.previewFormat)
	}
	if err := os.WriteFile(filename, []byte(data), 0644); err != nil {
		return errors.Wrap(err, "Can't write preview file")
	}
	return nil
}
