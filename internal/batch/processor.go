package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"polygon-renderer/internal/export"
	"polygon-renderer/internal/scene"
)

// Config holds the shared settings for a batch run.
type Config struct {
	Root      string // scene directory; outputs mirror its layout under OutputDir
	OutputDir string
	Format    export.Format
	Scale     int
	Width     int // canvas size for scenes that do not set one
	Height    int
	Workers   int
	Progress  time.Duration // progress print interval, 0 = silent
}

// Result holds the outcome of rendering one scene file.
type Result struct {
	Scene    string
	Name     string
	Image    string // output path relative to OutputDir
	Width    int
	Height   int
	Shapes   int
	Warnings []string // skipped shapes
	Success  bool
	Error    string
}

// Run renders all scene files using a worker pool. Each scene is drawn
// into its own framebuffer by a single worker.
func Run(cfg Config, paths []string) []Result {
	total := len(paths)
	results := make([]Result, total)
	var processed atomic.Int64

	// Output names are fixed before any worker starts so no two scenes
	// share a file.
	images := make([]string, total)
	owner := make(map[string]string, total)
	for i, p := range paths {
		img, err := imagePath(cfg.Root, p, cfg.format())
		if err == nil {
			key := strings.ToLower(img)
			if prev, dup := owner[key]; dup {
				err = fmt.Errorf("batch: output %s already claimed by %s", img, prev)
			} else {
				owner[key] = p
			}
		}
		if err != nil {
			results[i] = Result{Scene: p, Error: err.Error()}
			processed.Add(1)
			continue
		}
		images[i] = img
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
						fmt.Printf("  [%d/%d] %.1f scenes/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	workers := max(cfg.Workers, 1)
	sceneChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range sceneChan {
				results[idx] = processScene(cfg, paths[idx], images[idx])
				processed.Add(1)
			}
		}()
	}

	for i, img := range images {
		if img != "" {
			sceneChan <- i
		}
	}
	close(sceneChan)

	wg.Wait()
	close(done)

	return results
}

func (cfg Config) format() export.Format {
	if cfg.Format == "" {
		return export.BMP
	}
	return cfg.Format
}

// imagePath returns the output path, relative to OutputDir, for the scene
// at path: its location under root with the extension replaced. Scenes
// outside root are rejected.
func imagePath(root, path string, format export.Format) (string, error) {
	rel := filepath.Base(path)
	if root != "" {
		var err error
		rel, err = filepath.Rel(root, path)
		if err != nil {
			return "", fmt.Errorf("batch: %s: %w", path, err)
		}
		if !filepath.IsLocal(rel) {
			return "", fmt.Errorf("batch: %s is outside %s", path, root)
		}
	}
	return strings.TrimSuffix(rel, filepath.Ext(rel)) + "." + string(format), nil
}

func processScene(cfg Config, path, image string) Result {
	res := Result{Scene: path, Image: image}

	sc, err := scene.Parse(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	sc.DefaultSize(cfg.Width, cfg.Height)
	res.Name = sc.Name
	res.Width, res.Height = sc.Width, sc.Height
	res.Shapes = len(sc.Shapes)

	fb, err := sc.Render()
	if fb == nil {
		res.Error = err.Error()
		return res
	}
	res.Warnings = warnings(err)

	outPath := filepath.Join(cfg.OutputDir, image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}
	if err := export.Save(outPath, fb, export.Options{Format: cfg.format(), Scale: cfg.Scale}); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// warnings flattens the joined per-shape errors returned by raster.Render.
func warnings(err error) []string {
	if err == nil {
		return nil
	}
	var list []string
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			list = append(list, e.Error())
		}
		return list
	}
	return []string{err.Error()}
}
