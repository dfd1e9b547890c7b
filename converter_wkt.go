package osm2lanelet

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// PrepareWKTLinestring returns WKT representation of LineString
func PrepareWKTLinestring(line orb.LineString) string {
	ptsStr := make([]string, len(line))
	for i := range line {
		ptsStr[i] = fmt.Sprintf("%f %f", line[i].X(), line[i].Y())
	}
	return fmt.Sprintf("LINESTRING(%s)", strings.Join(ptsStr, ","))
}

// PrepareWKTPreview returns every generated boundary way as a WKT linestring,
// one per line, prefixed with the way id
func PrepareWKTPreview(doc *osm.OSM) string {
	var sb strings.Builder
	for _, wl := range boundaryLines(doc) {
		sb.WriteString(fmt.Sprintf("%d;%s\n", wl.id, PrepareWKTLinestring(wl.line)))
	}
	return sb.String()
}
