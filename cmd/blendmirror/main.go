// blendmirror is a CLI utility for mirroring sculpted blendshapes
// across a symmetric base mesh.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/meshtools/blendmirror/internal/config"
	"github.com/meshtools/blendmirror/internal/logger"
	"github.com/meshtools/blendmirror/internal/session"
	"github.com/meshtools/blendmirror/pkg/formats"
	"github.com/meshtools/blendmirror/pkg/geom"
	"github.com/meshtools/blendmirror/pkg/mesh"
)

func main() {
	config.ParseFlags()
	args := flag.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "mirror":
		cmdMirror(cfg, rest)
	case "info":
		cmdInfo(cfg, rest)
	case "check":
		cmdCheck(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`blendmirror - blendshape mirroring utility

Usage:
  blendmirror [options] <command> [command options]

Commands:
  mirror <base.obj> <shape.obj>  Synthesize the opposite-side blendshape
  info <file.obj>                Show mesh information
  check <base.obj>               Evaluate base-mesh symmetry for a seam

Options:
  -config <path>   Config file (default: ./blendmirror.yaml)
  -axis <x|y|z>    Mirror axis (default: x)
  -out <dir>       Output directory for mirrored meshes
  -debug           Enable debug logging

Examples:
  blendmirror mirror -seam 152 head.obj head_l_smile.obj
  blendmirror -axis z mirror -seam 10 head.obj head_l_blink.obj
  blendmirror info head_l_smile.obj
  blendmirror check -seam 152 head.obj`)
}

func cmdMirror(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("mirror", flag.ExitOnError)
	seam := fs.Int("seam", -1, "Seam vertex index on the mirror plane")
	fs.Parse(args)

	if fs.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "Usage: blendmirror mirror -seam <index> <base.obj> <shape.obj>")
		os.Exit(1)
	}
	if *seam < 0 {
		fmt.Fprintln(os.Stderr, "Error: -seam is required (a vertex index on the mirror plane)")
		os.Exit(1)
	}

	axis, err := geom.ParseAxis(cfg.Mirror.Axis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(cfg, logger.Log)
	if err := sess.LoadBase(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	shapePath := fs.Arg(1)
	shape, err := formats.ParseOBJFile(shapePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := sess.MirrorShape(shape, axis, *seam)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outDir := cfg.Output.Directory
	if outDir == "" {
		outDir = filepath.Dir(shapePath)
	}
	outPath := filepath.Join(outDir, out.Name+".obj")

	if err := formats.WriteOBJFile(outPath, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Mirrored: %s -> %s\n", shape.Name, outPath)
}

func cmdInfo(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: blendmirror info <file.obj>")
		os.Exit(1)
	}

	m, err := formats.ParseOBJFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sideLabel := "(none)"
	markers := mesh.Markers{Left: cfg.Naming.LeftMarker, Right: cfg.Naming.RightMarker}
	if side, err := mesh.ResolveSide(m.Name, markers); err == nil {
		sideLabel = side.String()
	}

	min, max := m.Bounds()

	fmt.Printf("Mesh:     %s\n", m.Name)
	fmt.Printf("Vertices: %d\n", m.VertexCount())
	fmt.Printf("Faces:    %d\n", m.FaceCount())
	fmt.Printf("Side:     %s\n", sideLabel)
	fmt.Printf("Bounds:   min (%.4f, %.4f, %.4f)  max (%.4f, %.4f, %.4f)\n",
		min[0], min[1], min[2], max[0], max[1], max[2])
}

func cmdCheck(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	seam := fs.Int("seam", -1, "Seam vertex index on the mirror plane")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: blendmirror check -seam <index> <base.obj>")
		os.Exit(1)
	}
	if *seam < 0 {
		fmt.Fprintln(os.Stderr, "Error: -seam is required (a vertex index on the mirror plane)")
		os.Exit(1)
	}

	axis, err := geom.ParseAxis(cfg.Mirror.Axis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sess := session.New(cfg, logger.Log)
	if err := sess.LoadBase(fs.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	corr, err := sess.Correspondence(axis, *seam)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	q := corr.Quality(sess.Base())
	plane := corr.Plane()

	fmt.Printf("Base:          %s\n", sess.Base().Name)
	fmt.Printf("Mirror plane:  %s = %g\n", axis, plane.Offset)
	fmt.Printf("Seam vertices: %d\n", q.SeamVertices)
	fmt.Printf("Max residual:  %g\n", q.MaxResidual)
	fmt.Printf("Mean residual: %g\n", q.MeanResidual)

	if q.MaxResidual > 0.01 {
		fmt.Println("\nWarning: large residuals; the base mesh is not symmetric about this plane,")
		fmt.Println("or the seam vertex does not lie on the plane of symmetry.")
	}
}
