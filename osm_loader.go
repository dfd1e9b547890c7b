package osm2lanelet

import (
	"context"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/pkg/errors"
)

// readOSM loads the source document, guessing the decoder from the file
// extension the same way regardless of XML or PBF input. PBF files carry no
// bounds element, so the projection origin falls back to the first node.
func readOSM(filename string, verbose bool) (*osm.OSM, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return readOSMXML(filename, verbose)
	case ".pbf":
		return readOSMPBF(filename, verbose)
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

func readOSMXML(filename string, verbose bool) (*osm.OSM, error) {
	st := time.Now()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open XML file")
	}
	src := &osm.OSM{}
	if err := xml.Unmarshal(data, src); err != nil {
		return nil, errors.Wrap(err, "Can't unmarshal XML data")
	}
	if verbose {
		fmt.Printf("\tNodes: %d, ways: %d. Done in %v\n", len(src.Nodes), len(src.Ways), time.Since(st))
	}
	return src, nil
}

func readOSMPBF(filename string, verbose bool) (*osm.OSM, error) {
	st := time.Now()
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "Can't open PBF file")
	}
	defer file.Close()

	scanner := osmpbf.New(context.Background(), file, 4)
	defer scanner.Close()

	src := &osm.OSM{}
	for scanner.Scan() {
		switch obj := scanner.Object().(type) {
		case *osm.Node:
			src.Nodes = append(src.Nodes, obj)
		case *osm.Way:
			src.Ways = append(src.Ways, obj)
		}
	}
	if scanner.Err() != nil {
		return nil, errors.Wrap(scanner.Err(), "Scanner error on PBF data")
	}
	if verbose {
		fmt.Printf("\tNodes: %d, ways: %d. Done in %v\n", len(src.Nodes), len(src.Ways), time.Since(st))
	}
	return src, nil
}

// writeOSM serializes the document as indented OSM XML
func writeOSM(doc *osm.OSM, filename string) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Can't marshal OSM data")
	}
	if err := os.WriteFile(filename, append([]byte(xml.Header), data...), 0644); err != nil {
		return errors.Wrap(err, "Can't write output file")
	}
	return nil
}
