// wiretool is a CLI utility for inspecting wirespin scenes and frames.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/glitchlab/wirespin/internal/svg"
	"github.com/glitchlab/wirespin/pkg/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "variants", "ls":
		cmdVariants()
	case "clock":
		cmdClock(args)
	case "frame":
		cmdFrame(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`wiretool - wirespin scene inspector

Usage:
  wiretool <command> [options]

Commands:
  variants                          List built-in scene variants
  clock <variant> [-n samples]      Print clock samples over one loop
  frame <variant> [-t ms] [-svg f]  Dump one frame's primitives

Examples:
  wiretool variants
  wiretool clock spinner -n 16
  wiretool frame blackhole -t 1500
  wiretool frame spinner -t 2000 -svg frame.svg`)
}

func cmdVariants() {
	for _, v := range scene.Variants() {
		cfg, err := scene.New(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%-10s scale=%-5g loop=%gms base=%s accent=%s\n",
			v, cfg.Scale, cfg.Clock.LoopMs(), cfg.Base.Hex(), cfg.Accent.Hex())
	}
}

func cmdClock(args []string) {
	fs := flag.NewFlagSet("clock", flag.ExitOnError)
	samples := fs.Int("n", 9, "Number of samples across one loop")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wiretool clock <variant> [-n samples]")
		os.Exit(1)
	}

	cfg := mustScene(fs.Arg(0))
	loop := cfg.Clock.LoopMs()

	fmt.Printf("%-10s %-8s %-8s %-8s %s\n", "t(ms)", "raw", "smooth", "eased", "degrees")
	for i := 0; i < *samples; i++ {
		t := loop * float64(i) / float64(*samples)
		s := cfg.Clock.At(t)
		fmt.Printf("%-10.1f %-8.4f %-8.4f %-8.4f %.2f\n", t, s.Raw, s.Smooth, s.Eased, s.Degrees)
	}
}

func cmdFrame(args []string) {
	fs := flag.NewFlagSet("frame", flag.ExitOnError)
	at := fs.Float64("t", 0, "Timestamp in milliseconds")
	svgPath := fs.String("svg", "", "Write the frame as SVG to this path")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: wiretool frame <variant> [-t ms] [-svg file]")
		os.Exit(1)
	}

	cfg := mustScene(fs.Arg(0))
	f := scene.ComputeFrame(*at, cfg)

	if *svgPath != "" {
		canvas := svg.New(2.2*cfg.Scale*2, 2.2*cfg.Scale*2)
		f.Render(canvas, scene.DefaultStyle())

		out, err := os.Create(*svgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
		if _, err := canvas.WriteTo(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote %s\n", *svgPath)
		return
	}

	fmt.Printf("frame %s @ %.1fms  raw=%.4f eased=%.4f degrees=%.2f\n",
		f.ID, *at, f.Sample.Raw, f.Sample.Eased, f.Sample.Degrees)

	fmt.Printf("\nedges (%d):\n", len(f.Edges))
	for i, e := range f.Edges {
		fmt.Printf("  %2d  (%8.2f,%8.2f) -> (%8.2f,%8.2f)  %s\n",
			i, e.A.X, e.A.Y, e.B.X, e.B.Y, e.Class)
	}

	fmt.Printf("\nfaces (%d):\n", len(f.Faces))
	for i, face := range f.Faces {
		fmt.Printf("  %2d  fill=%s  points=%d\n", i, face.Fill.Hex(), len(face.Points))
	}

	if len(f.Segments) > 0 {
		fmt.Printf("\nsegments (%d):\n", len(f.Segments))
		for i, s := range f.Segments {
			fmt.Printf("  %2d  (%8.2f,%8.2f) -> (%8.2f,%8.2f)  %s\n",
				i, s.A.X, s.A.Y, s.B.X, s.B.Y, s.Class)
		}
	}
}

func mustScene(name string) *scene.Config {
	cfg, err := scene.New(scene.Variant(name))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
