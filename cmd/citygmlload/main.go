// Command citygmlload loads a CityGML document and prints a summary,
// generalizing cmd/dungeongen's flag-based CLI (YAML config, format
// selection, -verbose/-version/-help) from dungeon generation to city
// model ingestion.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/citygml-go/ingest/pkg/citycheck"
	"github.com/citygml-go/ingest/pkg/citygml"
	"github.com/citygml-go/ingest/pkg/colortable"
	"github.com/citygml-go/ingest/pkg/diagnostics"
)

const version = "1.0.0"

var (
	inputPath   = flag.String("input", "", "Path to the CityGML document to load (required)")
	configPath  = flag.String("config", "", "Path to a YAML Options file (optional, overridden by flags below if set)")
	colorsPath  = flag.String("colors", "", "Path to a YAML class-color override table (optional)")
	objectsMask = flag.String("objects", "", "Object mask expression, e.g. \"Building|Road\" (default: all)")
	minLOD      = flag.Int("minlod", 0, "Minimum LOD to keep")
	maxLOD      = flag.Int("maxlod", 4, "Maximum LOD to keep")
	optimize    = flag.Bool("optimize", true, "Run the merge/optimize pass on load")
	pruneEmpty  = flag.Bool("prune-empty", true, "Drop city objects left with no geometry or children")
	triangulate = flag.Bool("triangulate", true, "Tessellate polygons into triangles (false: trivial fan over the ring vertices)")
	svgOut      = flag.String("svg", "", "If set, write a footprint SVG diagnostic dump to this path")
	check       = flag.Bool("check", false, "Run structural invariant checks and print the report")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("citygmlload version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -input flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	opts, err := resolveOptions()
	if err != nil {
		return fmt.Errorf("failed to resolve options: %w", err)
	}

	if *colorsPath != "" {
		if *verbose {
			fmt.Printf("Loading color table from %s\n", *colorsPath)
		}
		table, err := colortable.Load(*colorsPath)
		if err != nil {
			return fmt.Errorf("failed to load color table: %w", err)
		}
		if unknown := table.Apply(); len(unknown) > 0 && *verbose {
			fmt.Printf("  Unknown classes in color table: %v\n", unknown)
		}
	}

	if *verbose {
		fmt.Printf("Loading %s (objects=%q, lod=[%d,%d])\n", *inputPath, *objectsMask, opts.MinLOD, opts.MaxLOD)
	}

	start := time.Now()
	model, err := citygml.LoadFile(*inputPath, opts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	elapsed := time.Since(start)

	stats := model.ComputeStats()
	fmt.Printf("Loaded %s in %v\n", *inputPath, elapsed)
	fmt.Printf("  City objects: %d\n", stats.NumCityObjects)
	fmt.Printf("  Geometries:   %d\n", stats.NumGeometries)
	fmt.Printf("  Polygons:     %d\n", stats.NumPolygons)
	fmt.Printf("  Triangles:    %d\n", stats.NumTriangles)
	fmt.Printf("  Appearances:  %d\n", stats.NumAppearances)

	if *check {
		report := citycheck.Check(model, opts.MinLOD, opts.MaxLOD, opts.PruneEmptyObjects)
		fmt.Println()
		fmt.Print(citycheck.Summary(report))
		if !report.Passed {
			return fmt.Errorf("invariant check failed")
		}
	}

	if *svgOut != "" {
		if *verbose {
			fmt.Printf("Writing footprint SVG to %s\n", *svgOut)
		}
		if err := diagnostics.SaveFootprintsSVG(model, *svgOut, diagnostics.DefaultFootprintSVGOptions()); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
	}

	return nil
}

func resolveOptions() (citygml.Options, error) {
	opts := citygml.DefaultOptions()

	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return opts, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return opts, fmt.Errorf("parsing config: %w", err)
		}
	}

	if *objectsMask != "" {
		opts.ObjectsMaskExpr = *objectsMask
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["minlod"] {
		opts.MinLOD = *minLOD
	}
	if set["maxlod"] {
		opts.MaxLOD = *maxLOD
	}
	if set["optimize"] {
		opts.Optimize = *optimize
	}
	if set["prune-empty"] {
		opts.PruneEmptyObjects = *pruneEmpty
	}
	if set["triangulate"] {
		opts.Triangulate = *triangulate
	}

	if opts.Sink == nil {
		opts.Sink = diagnostics.NewLogSink(os.Stderr)
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: citygmlload -input <file.gml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'citygmlload -help' for detailed help")
}

func printHelp() {
	fmt.Printf("citygmlload version %s\n\n", version)
	fmt.Println("A command-line tool for loading and inspecting CityGML documents.")
	fmt.Println("\nUsage:")
	fmt.Println("  citygmlload -input <file.gml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -input string")
	fmt.Println("        Path to the CityGML document to load")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to a YAML Options file")
	fmt.Println("  -colors string")
	fmt.Println("        Path to a YAML class-color override table")
	fmt.Println("  -objects string")
	fmt.Println("        Object mask expression, e.g. \"Building|Road\" (default: all)")
	fmt.Println("  -minlod int, -maxlod int")
	fmt.Println("        LOD range to keep (default 0, 4)")
	fmt.Println("  -optimize, -prune-empty, -triangulate")
	fmt.Println("        Toggle the respective load pass (default true)")
	fmt.Println("  -svg string")
	fmt.Println("        Write a footprint SVG diagnostic dump to this path")
	fmt.Println("  -check")
	fmt.Println("        Run structural invariant checks and print the report")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  citygmlload -input city.gml")
	fmt.Println("  citygmlload -input city.gml -objects \"Building|Road\" -minlod 1 -maxlod 2")
	fmt.Println("  citygmlload -input city.gml -svg footprints.svg -check -verbose")
	fmt.Printf("\nSee %s for the Options YAML schema.\n", filepath.Join("pkg", "citygml", "options.go"))
}
