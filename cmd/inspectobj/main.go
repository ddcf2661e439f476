package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/thedudeguy/MeshIt/internal/design"
	"github.com/thedudeguy/MeshIt/internal/obj"
)

func main() {
	strict := flag.Bool("strict", false, "Stop at the first malformed line")
	verbose := flag.Bool("verbose", false, "Report unrecognized records")
	flag.Parse()

	opts := obj.Options{}
	if *strict {
		opts.Mode = obj.Strict
	}
	if *verbose {
		opts.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format, args...)
		}
	}

	status := 0
	for _, arg := range flag.Args() {
		mesh, rep, err := obj.ParseFile(arg, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			status = 1
			continue
		}

		st := mesh.Stats()
		fmt.Printf("\n=== %s (%d lines, %s) ===\n", arg, rep.Lines, opts.Mode)
		fmt.Printf("  vertices=%d texcoords=%d normals=%d faces=%d (quads=%d triangles=%d)\n",
			st.Vertices, st.TexCoords, st.Normals, st.Faces, st.Faces-rep.Triangles, rep.Triangles)
		if len(rep.Objects) > 0 {
			fmt.Printf("  objects: %q\n", rep.Objects)
		}
		if rep.Unrecognized > 0 {
			fmt.Printf("  unrecognized records: %d\n", rep.Unrecognized)
		}
		if b, ok := design.Bounds(mesh); ok {
			fmt.Printf("  bbox min=(%.3f,%.3f,%.3f) max=(%.3f,%.3f,%.3f)\n",
				b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
		}

		if len(rep.Skipped) > 0 {
			fmt.Printf("  skipped %d line(s):\n", len(rep.Skipped))
			for _, le := range rep.Skipped {
				fmt.Printf("    %v: %q\n", le, le.Text)
			}
		}
	}
	os.Exit(status)
}
