package batch

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thedudeguy/MeshIt/internal/design"
	"github.com/thedudeguy/MeshIt/internal/obj"
	"github.com/thedudeguy/MeshIt/internal/postprocess"
	"github.com/thedudeguy/MeshIt/internal/raster"
	"github.com/thedudeguy/MeshIt/internal/texture"

	"github.com/HugoSmits86/nativewebp"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	TexResolver texture.Resolver
	Mode        obj.Mode
	View        raster.View
	RenderSize  int
	Supersample int
	Workers     int
	WriteDesign bool
	Design      design.Options
	Progress    time.Duration // 0 disables the progress line

	// Logf, if set, receives parser notes prefixed with the model name.
	// It is called from worker goroutines.
	Logf func(format string, args ...any)
}

// Result holds the outcome of processing one model.
type Result struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
	Faces     int    `json:"faces"`
	Triangles int    `json:"triangles"`
	Skipped   int    `json:"skipped_lines"`
	Image     string `json:"image,omitempty"`
	Design    string `json:"design,omitempty"`
}

// Discover returns the .obj files directly inside dir, sorted by name.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: list %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".obj") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// Run processes all models using a worker pool. Results keep input order.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f models/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	// Worker pool
	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = processModel(cfg, paths[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	close(done)

	return results
}

func processModel(cfg Config, path string) Result {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := Result{Name: name, Path: path}

	opts := obj.Options{Mode: cfg.Mode}
	if cfg.Logf != nil {
		opts.Logf = func(format string, args ...any) {
			cfg.Logf(name+": "+format, args...)
		}
	}
	mesh, rep, err := obj.ParseFile(path, opts)
	if rep != nil {
		res.Skipped = len(rep.Skipped)
		res.Triangles = rep.Triangles
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Faces = len(mesh.Faces)
	if res.Faces == 0 {
		res.Error = "no faces in model"
		return res
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	img := raster.RenderMesh(mesh, resolve(cfg.TexResolver, path), cfg.View, cfg.RenderSize, cfg.Supersample)
	img = postprocess.Downsample(img, cfg.Supersample)

	res.Image = name + ".webp"
	if err := writeWebP(filepath.Join(cfg.OutputDir, res.Image), img); err != nil {
		res.Error = err.Error()
		return res
	}

	if cfg.WriteDesign {
		res.Design = name + ".design.json"
		d := design.Build(mesh, cfg.Design)
		if err := d.WriteJSON(filepath.Join(cfg.OutputDir, res.Design)); err != nil {
			res.Error = err.Error()
			return res
		}
	}

	res.Success = true
	return res
}

func resolve(r texture.Resolver, path string) *image.NRGBA {
	if r == nil {
		return nil
	}
	return r.Resolve(path)
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("WebP encode: %w", err)
	}
	return nil
}
