// Package batch renders turntable animations across a worker pool.
// Every frame gets its own renderer, so workers never share a pixel or
// depth buffer.
package batch

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"softrender/internal/output"
	"softrender/internal/postprocess"
	"softrender/internal/raster"
	"softrender/internal/scene"
)

// Config holds all shared resources for a turntable run. The texture is
// read-only and safely shared between workers.
type Config struct {
	OutputDir   string
	Texture     *raster.PixelBuffer
	RenderSize  int
	Supersample int
	Frames      int
	Workers     int
	Wireframe   bool
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	File    string
	Success bool
	Error   string
}

// Run renders all frames using a worker pool and reports per-frame results.
func Run(cfg Config, mesh *scene.Mesh) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
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
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, mesh, idx)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(cfg Config, mesh *scene.Mesh, frame int) Result {
	angle := 2 * math.Pi * float64(frame) / float64(cfg.Frames)
	file := fmt.Sprintf("%04d.webp", frame)
	outPath := filepath.Join(cfg.OutputDir, file)

	r, err := raster.New(cfg.RenderSize*cfg.Supersample, cfg.RenderSize*cfg.Supersample)
	if err != nil {
		return Result{Frame: frame, File: file, Error: err.Error()}
	}

	if cfg.Wireframe {
		scene.Wireframe(r, mesh, angle, raster.Color{R: 90, G: 220, B: 120, A: 255})
	} else {
		scene.Draw(r, mesh, cfg.Texture, angle)
	}

	if cfg.Supersample > 1 {
		img := postprocess.Downsample(r.Image(), cfg.RenderSize)
		if err := output.WriteWebP(outPath, img); err != nil {
			return Result{Frame: frame, File: file, Error: err.Error()}
		}
		return Result{Frame: frame, File: file, Success: true}
	}

	// Native resolution: hand the buffer straight to the file surface.
	if err := r.Present(output.WebPFile{Path: outPath}); err != nil {
		return Result{Frame: frame, File: file, Error: err.Error()}
	}
	return Result{Frame: frame, File: file, Success: true}
}
