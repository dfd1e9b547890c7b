package main

import (
	"flag"
	"fmt"
	"os"

	osm2lanelet "github.com/osm2lanelet/osm2lanelet"
)

var (
	verbose    = flag.Bool("verbose", false, "Print per-phase progress")
	preview    = flag.String("preview", "", "Optional filename for a boundary-geometry preview dump")
	geomFormat = flag.String("geomf", "wkt", "Format of preview geometry. Expected values: wkt / geojson")
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: osm2lanelet [flags] <input.osm> <output.osm>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	converter := osm2lanelet.NewConverter(
		osm2lanelet.WithVerbose(*verbose),
		osm2lanelet.WithPreviewOutput(*preview),
		osm2lanelet.WithPreviewFormat(*geomFormat),
	)
	summary, err := converter.ConvertFile(args[0], args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("Found %d highway ways to convert.\n", summary.WaysConverted)
	fmt.Printf("Created %d lanelets.\n", summary.LaneletsCreated)
	if summary.SkippedCategory+summary.SkippedGeometry > 0 {
		fmt.Printf("Skipped ways: %d with unrecognized category, %d with insufficient geometry.\n",
			summary.SkippedCategory, summary.SkippedGeometry)
	}
	fmt.Printf("Output: %s\n\n", args[1])
	fmt.Println("Next steps:")
	fmt.Println("  1. Import the output into Vector Map Builder to inspect & refine")
	fmt.Println("  2. Strip the lat/lon coordinates before loading the map into Autoware")
}
