// Command mapscan scans an SVG canvas and outputs its component map.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/digitaltwin-run/pwa-sub000/internal/app"
	"github.com/digitaltwin-run/pwa-sub000/internal/mapper"
)

func main() {
	svgPath := flag.String("svg", "", "Path to SVG canvas file")
	jsonOut := flag.String("json", "", "Write the map as JSON to this file ('-' for stdout)")
	flag.Parse()

	if *svgPath == "" {
		fmt.Println("Usage: mapscan -svg <path> [-json out.json]")
		os.Exit(1)
	}

	state := app.NewState()
	index := mapper.NewMapper(state)

	if err := state.LoadDocument(*svgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load canvas: %v\n", err)
		os.Exit(1)
	}

	entries := index.Components()
	fmt.Printf("Scanned %s: %d component(s)\n\n", *svgPath, len(entries))
	fmt.Printf("%-24s %-10s %-20s %10s %10s\n", "ID", "Type", "Name", "X", "Y")
	for _, e := range entries {
		fmt.Printf("%-24s %-10s %-20s %10.1f %10.1f\n",
			e.ID, e.Type, e.Name, e.Position.X, e.Position.Y)
	}

	vars := index.Variables()
	names := index.VariableNames()
	fmt.Printf("\n%d variable(s):\n", len(names))
	for _, n := range names {
		v := vars[n]
		access := "r"
		if v.Writable {
			access = "rw"
		}
		fmt.Printf("  %-32s %-8s %-3s %v\n", n, v.Type, access, v.CurrentValue)
	}

	if *jsonOut != "" {
		data, err := index.Export()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
		if *jsonOut == "-" {
			fmt.Println(string(data))
		} else if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", *jsonOut, err)
			os.Exit(1)
		}
	}
}
