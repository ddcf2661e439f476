package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/thedudeguy/MeshIt/internal/batch"
	"github.com/thedudeguy/MeshIt/internal/config"
	"github.com/thedudeguy/MeshIt/internal/design"
	"github.com/thedudeguy/MeshIt/internal/obj"
	"github.com/thedudeguy/MeshIt/internal/raster"
	"github.com/thedudeguy/MeshIt/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	inputDir := flag.String("input", "", "Directory of .obj models (default: .)")
	textureDir := flag.String("textures", "", "Texture directory (default: input directory)")
	outputDir := flag.String("output", "", "Output directory (default: <input>/renders)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	strict := flag.Bool("strict", false, "Fail a model on its first malformed line")
	writeDesign := flag.Bool("design", false, "Also write <model>.design.json quad designs")
	verbose := flag.Bool("verbose", false, "Log unrecognized records while parsing")
	testN := flag.Int("test", 0, "Render only first N models for testing")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		InputDir:   *inputDir,
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		Size:       *size,
		Workers:    *workers,
		Strict:     *strict,
		Design:     *writeDesign,
	})

	paths, err := batch.Discover(cfg.InputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Limit for testing
	if *testN > 0 && *testN < len(paths) {
		paths = paths[:*testN]
	}

	if len(paths) == 0 {
		fmt.Println("No models to render.")
		os.Exit(0)
	}

	texIndex := texture.BuildIndex(cfg.TextureDir)
	texCache := texture.NewCache(texIndex)

	mode := obj.Lenient
	if cfg.Strict {
		mode = obj.Strict
	}

	fmt.Printf("OBJ quad mesh renderer → WebP (%s parse)\n", mode)
	fmt.Printf("Models: %d, Textures: %d, Workers: %d\n", len(paths), texIndex.Len(), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		TexResolver: texCache,
		Mode:        mode,
		View: raster.View{
			Yaw:            *cfg.Yaw,
			Pitch:          *cfg.Pitch,
			LightAzimuth:   *cfg.LightAzimuth,
			LightElevation: *cfg.LightElevation,
		},
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		WriteDesign: cfg.WriteDesign,
		Design:      design.Options{FitBounds: cfg.FitBounds},
		Progress:    2 * time.Second,
	}

	if *verbose {
		var mu sync.Mutex
		batchCfg.Logf = func(format string, args ...any) {
			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(os.Stderr, format, args...)
		}
	}

	results := batch.Run(batchCfg, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	manifest := batch.NewManifest(results, cfg.Strict)
	fmt.Printf("Rendered: %d/%d\n", manifest.Rendered, len(paths))

	var failed, lossy []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		} else if r.Skipped > 0 {
			lossy = append(lossy, r)
		}
	}
	for _, r := range lossy {
		fmt.Printf("  %s: %d line(s) skipped (run inspectobj for details)\n", r.Name, r.Skipped)
	}
	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		limit := 20
		if len(failed) < limit {
			limit = len(failed)
		}
		for _, e := range failed[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	for path, err := range texCache.Errors() {
		fmt.Fprintf(os.Stderr, "Warning: texture %s: %v\n", path, err)
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s (run %s)\n", manifestPath, manifest.RunID)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
