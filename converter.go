package osm2lanelet

import (
	"fmt"
	"time"

	"github.com/paulmach/osm"
	"github.com/pkg/errors"
)

// Converter turns OSM highway centerlines into paired Lanelet2 boundary
// lines. Zero value is not usable, construct with NewConverter.
type Converter struct {
	verbose       bool
	generator     string
	previewFormat string
	previewOutput string
}

func NewConverter(options ...func(*Converter)) *Converter {
	converter := &Converter{
		generator:     "osm2lanelet",
		previewFormat: "wkt",
	}
	for _, option := range options {
		option(converter)
	}
	return converter
}

func WithVerbose(verbose bool) func(*Converter) {
	return func(converter *Converter) {
		converter.verbose = verbose
	}
}

func WithGenerator(generator string) func(*Converter) {
	return func(converter *Converter) {
		converter.generator = generator
	}
}

func WithPreviewFormat(previewFormat string) func(*Converter) {
	return func(converter *Converter) {
		converter.previewFormat = previewFormat
	}
}

func WithPreviewOutput(previewOutput string) func(*Converter) {
	return func(converter *Converter) {
		converter.previewOutput = previewOutput
	}
}

// Convert runs the whole pipeline over an in-memory OSM document and returns
// the synthesized lanelet document plus a per-run summary. The two stages are
// strictly ordered: perpendiculars for all ways exist before junction merging,
// and every junction triple exists before any way's boundary resolution.
// Single-threaded by design, the id counters and the junction registry are
// unsynchronized.
func (converter *Converter) Convert(src *osm.OSM) (*osm.OSM, ConversionSummary) {
	proj := newProjection(src)

	/* Stage 1: index, filter, compute geometry */
	st := time.Now()
	nodes := indexNodes(src, proj)
	ways, results := collectWays(src, nodes)
	for _, way := range ways {
		way.perps = computePerpendiculars(way.geom)
	}
	endpointEntries := collectEndpointEntries(ways)
	if converter.verbose {
		fmt.Printf("\tPrepared %d ways (%d nodes)... Done in %v\n", len(ways), len(nodes), time.Since(st))
	}

	/* Stage 2: materialize shared junction nodes, then build lanelets */
	st = time.Now()
	writer := newLaneletWriter(src.Bounds, proj, converter.generator)
	builder := newLaneletBuilder(writer)
	builder.materializeJunctions(nodes, endpointEntries)
	for _, way := range ways {
		results = append(results, wayResult{wayID: way.ID, lanelets: builder.buildLanelets(way)})
	}
	summary := summarize(results, len(builder.shared))
	if converter.verbose {
		fmt.Printf("\tBuilt %d lanelets (%d shared junctions)... Done in %v\n", summary.LaneletsCreated, summary.SharedJunctions, time.Since(st))
	}
	return writer.out, summary
}

// ConvertFile reads the source file (OSM XML or PBF), converts it and writes
// the lanelet document as OSM XML. An optional geometry preview is written
// next when configured.
func (converter *Converter) ConvertFile(inputFile, outputFile string) (ConversionSummary, error) {
	src, err := readOSM(inputFile, converter.verbose)
	if err != nil {
		return ConversionSummary{}, errors.Wrap(err, "Can't read source OSM data")
	}
	out, summary := converter.Convert(src)
	if err := writeOSM(out, outputFile); err != nil {
		return summary, errors.Wrap(err, "Can't write lanelet document")
	}
	if converter.previewOutput != "" {
		if err := converter.writePreview(out, converter.previewOutput); err != nil {
			return summary, errors.Wrap(err, "Can't write geometry preview")
		}
	}
	return summary, nil
}
