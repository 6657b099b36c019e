package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"polygon-renderer/internal/batch"
	"polygon-renderer/internal/config"
	"polygon-renderer/internal/export"
	"polygon-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	sceneFile := flag.String("scene", "", "Scene JSON file (default: built-in scene)")
	batchDir := flag.String("batch", "", "Render every scene JSON file under this directory")
	output := flag.String("output", "", "Output image path (default: out.bmp)")
	outputDir := flag.String("outdir", "", "Output directory for -batch (default: renders)")
	format := flag.String("format", "", "Output format for -batch: bmp, webp or tga")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of worker goroutines for -batch (default: NumCPU)")
	width := flag.Int("width", 0, "Canvas width for scenes without one (default: 800)")
	height := flag.Int("height", 0, "Canvas height for scenes without one (default: 600)")

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
		Width:     *width,
		Height:    *height,
		Output:    *output,
		OutputDir: *outputDir,
		Workers:   *workers,
		Format:    *format,
		Scale:     *scale,
	})

	if *batchDir != "" {
		os.Exit(runBatch(cfg, *batchDir))
	}

	sc := scene.Default()
	if *sceneFile != "" {
		var err error
		sc, err = scene.Parse(*sceneFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	}
	sc.DefaultSize(cfg.Width, cfg.Height)

	fb, err := sc.Render()
	if fb == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	// An explicit -output wins over the scene's own output path.
	outPath := cfg.Output
	if *output == "" && sc.Output != "" {
		outPath = sc.Output
		if *sceneFile != "" && !filepath.IsAbs(outPath) {
			outPath = filepath.Join(filepath.Dir(*sceneFile), outPath)
		}
	}

	if err := export.Save(outPath, fb, export.Options{Scale: cfg.Scale}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Framebuffer rendered to %s\n", outPath)
}

func runBatch(cfg config.Config, dir string) int {
	paths, err := scene.Discover(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error scanning %s: %v\n", dir, err)
		return 1
	}
	if len(paths) == 0 {
		fmt.Println("No scenes to render.")
		return 0
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("Polygon renderer → %s\n", cfg.Format)
	fmt.Printf("Scenes: %d, Workers: %d\n", len(paths), cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		Root:      dir,
		OutputDir: cfg.OutputDir,
		Format:    export.Format(cfg.Format),
		Scale:     cfg.Scale,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Workers:   cfg.Workers,
		Progress:  2 * time.Second,
	}, paths)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	for _, r := range results {
		for _, w := range r.Warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s: %s\n", r.Scene, w)
		}
		if r.Success {
			success++
		} else {
			failed++
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(paths))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			if shown == 20 {
				break
			}
			fmt.Printf("  %s: %s\n", r.Scene, r.Error)
			shown++
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		return 1
	}
	return 0
}
