// horntool is a headless CLI for inspecting and exporting horn surfaces.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/hornview/internal/config"
	"github.com/Faultbox/hornview/internal/export"
	"github.com/Faultbox/hornview/internal/surface"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "stats", "info":
		cmdStats(args)
	case "export", "x":
		cmdExport(args)
	case "normal", "n":
		cmdNormal(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`horntool - horn surface utility

Usage:
  horntool <command> [options]

Commands:
  stats  [-a A] [-b B] [-u N] [-v N]          Tessellate and print mesh statistics
  export [-a A] [-b B] [-u N] [-v N] <out.glb> Write the mesh as binary glTF
  normal [-a A] [-b B] <u> <v>                Print the point and estimated normal
  config [path]                               Write the default viewer config

Examples:
  horntool stats -u 120 -v 120
  horntool export -a 0.8 -b 3 horn.glb
  horntool normal 1.2 0.4
  horntool config ./hornview.yaml`)
}

// shapeFlags registers the -a and -b shape flags.
func shapeFlags(fs *flag.FlagSet) *surface.Params {
	p := &surface.Params{}
	fs.Float64Var(&p.A, "a", 0.5, "Surface parameter a")
	fs.Float64Var(&p.B, "b", 2.0, "Surface parameter b")
	return p
}

// meshFlags registers the shape flags plus -u and -v for subcommands that tessellate.
func meshFlags(name string, handling flag.ErrorHandling) (*flag.FlagSet, *surface.Params, *surface.Resolution) {
	fs := flag.NewFlagSet(name, handling)
	p := shapeFlags(fs)
	r := &surface.Resolution{}
	fs.IntVar(&r.StepsU, "u", 60, "Tessellation steps along u")
	fs.IntVar(&r.StepsV, "v", 60, "Tessellation steps along v")
	return fs, p, r
}

// normalFlags registers only the shape flags; a single estimate has no grid.
func normalFlags(handling flag.ErrorHandling) (*flag.FlagSet, *surface.Params) {
	fs := flag.NewFlagSet("normal", handling)
	return fs, shapeFlags(fs)
}

func cmdStats(args []string) {
	fs, p, r := meshFlags("stats", flag.ExitOnError)
	fs.Parse(args)

	start := time.Now()
	mesh, err := surface.Tessellate(*r, *p, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	b := mesh.Bounds
	fmt.Printf("Params:     a=%g b=%g\n", p.A, p.B)
	fmt.Printf("Grid:       %d x %d\n", r.StepsU, r.StepsV)
	fmt.Printf("Vertices:   %d\n", mesh.VertexCount())
	fmt.Printf("Triangles:  %d\n", mesh.TriangleCount())
	fmt.Printf("Degenerate: %d facets skipped\n", mesh.DegenerateFacets)
	fmt.Printf("Bounds:     (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	c := b.Center()
	fmt.Printf("Center:     (%.3f, %.3f, %.3f)\n", c[0], c[1], c[2])
	fmt.Printf("Time:       %s\n", elapsed)
}

func cmdExport(args []string) {
	fs, p, r := meshFlags("export", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: horntool export [options] <out.glb>")
		os.Exit(1)
	}

	mesh, err := surface.Tessellate(*r, *p, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := fs.Arg(0)
	if err := export.WriteGLB(out, mesh); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Exported: %s (%d triangles)\n", out, mesh.TriangleCount())
}

func cmdNormal(args []string) {
	fs, p := normalFlags(flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: horntool normal [options] <u> <v>")
		os.Exit(1)
	}

	var u, v float64
	if _, err := fmt.Sscan(fs.Arg(0), &u); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid u: %v\n", err)
		os.Exit(1)
	}
	if _, err := fmt.Sscan(fs.Arg(1), &v); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid v: %v\n", err)
		os.Exit(1)
	}
	if err := p.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pos := surface.Evaluate(u, v, p.A, p.B)
	n, skipped := surface.EstimateNormalStats(u, v, p.A, p.B)

	fmt.Printf("Point:   (%.6f, %.6f, %.6f)\n", pos[0], pos[1], pos[2])
	fmt.Printf("Normal:  (%.6f, %.6f, %.6f)\n", n[0], n[1], n[2])
	fmt.Printf("Length:  %.6f\n", n.Len())
	if skipped > 0 {
		fmt.Printf("Skipped: %d degenerate facets\n", skipped)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	fs.Parse(args)

	cfg := config.Default()
	path := filepath.Join(config.ConfigDir(), config.FileName)
	var err error
	if fs.NArg() > 0 {
		path = fs.Arg(0)
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote: %s\n", path)
}
