// Command view shows the turntable scene live in a window. The window is
// purely a presentation surface: every frame is rasterized on the CPU and
// uploaded as raw pixels.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"softrender/internal/raster"
	"softrender/internal/scene"
	"softrender/internal/texture"
)

// frameSurface adapts an ebiten image to the renderer's presentation
// boundary. The frame's alpha is opaque everywhere, so the bytes are
// valid premultiplied RGBA as WritePixels expects.
type frameSurface struct {
	img *ebiten.Image
}

func (s frameSurface) Present(pix []uint8, width, height int) error {
	s.img.WritePixels(pix)
	return nil
}

type game struct {
	size  int
	mesh  *scene.Mesh
	tex   *raster.PixelBuffer
	wire  bool
	angle float64
	frame *ebiten.Image
}

func (g *game) Update() error {
	g.angle += 0.02
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	// Buffers live exactly one frame; a fresh renderer per Draw keeps
	// the depth plane at -Inf without an explicit clear.
	r, err := raster.New(g.size, g.size)
	if err != nil {
		return
	}

	if g.wire {
		scene.Wireframe(r, g.mesh, g.angle, raster.Color{R: 90, G: 220, B: 120, A: 255})
	} else {
		scene.Draw(r, g.mesh, g.tex, g.angle)
	}

	if g.frame == nil {
		g.frame = ebiten.NewImage(g.size, g.size)
	}
	r.Present(frameSurface{g.frame})
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size, g.size
}

func main() {
	size := flag.Int("size", 512, "Window size in pixels")
	texturePath := flag.String("texture", "", "Texture file (PNG/JPEG/TGA; default: checkerboard)")
	wire := flag.Bool("wireframe", false, "Draw edges only")
	flag.Parse()

	var tex *raster.PixelBuffer
	if *texturePath != "" {
		var err error
		tex, err = texture.Load(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading texture: %v\n", err)
			os.Exit(1)
		}
	} else {
		tex = texture.Checker(128, 16,
			raster.Color{R: 235, G: 235, B: 235, A: 255},
			raster.Color{R: 60, G: 90, B: 170, A: 255})
	}

	g := &game{
		size: *size,
		mesh: scene.Cube(),
		tex:  tex,
		wire: *wire,
	}

	ebiten.SetWindowTitle("softrender")
	ebiten.SetWindowSize(*size, *size)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
