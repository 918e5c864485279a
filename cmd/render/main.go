package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"softrender/internal/batch"
	"softrender/internal/config"
	"softrender/internal/raster"
	"softrender/internal/scene"
	"softrender/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	texturePath := flag.String("texture", "", "Texture file (PNG/JPEG/TGA; default: checkerboard)")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	size := flag.Int("size", 0, "Output frame size in pixels (default: 256)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	wireframe := flag.Bool("wireframe", false, "Draw edges only")

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
		TexturePath: *texturePath,
		OutputDir:   *outputDir,
		Size:        *size,
		Supersample: *supersample,
		Frames:      *frames,
		Workers:     *workers,
		Wireframe:   *wireframe,
	})

	// Load texture, fall back to a procedural checkerboard
	var tex *raster.PixelBuffer
	if cfg.TexturePath != "" {
		var err error
		tex, err = texture.Load(cfg.TexturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	} else {
		tex = texture.Checker(128, 16,
			raster.Color{R: 235, G: 235, B: 235, A: 255},
			raster.Color{R: 60, G: 90, B: 170, A: 255})
	}

	mode := "textured"
	if cfg.Wireframe {
		mode = "wireframe"
	}

	fmt.Printf("softrender turntable (%s)\n", mode)
	fmt.Printf("Frames: %d, Size: %dpx (x%d supersample), Workers: %d\n",
		cfg.Frames, cfg.RenderSize, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir:   cfg.OutputDir,
		Texture:     tex,
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Wireframe:   cfg.Wireframe,
	}, scene.Cube())

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	// Count results
	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Rendered: %d/%d\n", success, len(results))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, cfg.Frames); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
