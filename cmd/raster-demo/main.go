// Command raster-demo drives the rasterizer with a small spinning-cube
// scene, either as a live preview window (ebiten) or as a single
// rendered PNG frame for headless/CI use.
//
// Flag handling follows the ie32to64 converter's pattern: flag.String/
// Bool definitions, a custom flag.Usage, then flag.Parse.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	xterm "golang.org/x/term"

	"github.com/kestrelgfx/microraster/framebuffer"
	"github.com/kestrelgfx/microraster/mesh"
	"github.com/kestrelgfx/microraster/raster"
)

var texture raster.Texture // optional, loaded via -texture; zero value (Data==nil) means untextured

func main() {
	width := flag.Int("w", 320, "framebuffer width")
	height := flag.Int("h", 240, "framebuffer height")
	headless := flag.Bool("headless", false, "render one frame to -o and exit, instead of opening a preview window")
	outFile := flag.String("o", "frame.png", "output PNG path (headless mode only)")
	cullMode := flag.String("cull", "ccw", "front-face winding: ccw or cw")
	stats := flag.Bool("stats", false, "print a terminal-width-aware stats line each frame (live mode only)")
	texturePath := flag.String("texture", "", "optional image file sampled onto the cube's faces")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: raster-demo [options]\n\nRenders a spinning cube through the rasterizer.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	winding := raster.CCW
	if *cullMode == "cw" {
		winding = raster.CW
	} else if *cullMode != "ccw" {
		fmt.Fprintf(os.Stderr, "error: -cull must be ccw or cw\n")
		os.Exit(1)
	}

	if *texturePath != "" {
		tex, err := loadTexture(*texturePath, 64, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "raster-demo: %v\n", err)
			os.Exit(1)
		}
		texture = tex
	}

	fb := framebuffer.New(uint16(*width), uint16(*height))
	ctx := raster.NewContext()
	ctx.SetWinding(winding)
	ctx.SetCulling(true)
	ctx.SetViewport(raster.NewViewport(0, 0, *width, *height)) // exclusive bounds: full framebuffer

	draw := cubeMesh.Pack()

	if *headless {
		renderFrame(ctx, fb, draw, 20)
		if err := writePNG(*outFile, fb); err != nil {
			fmt.Fprintf(os.Stderr, "raster-demo: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g := &game{ctx: ctx, fb: fb, draw: draw, stats: *stats}
	ebiten.SetWindowSize(*width*2, *height*2)
	ebiten.SetWindowTitle("raster-demo")
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintf(os.Stderr, "raster-demo: %v\n", err)
		os.Exit(1)
	}
}

// game adapts the rasterizer to ebiten's update/draw loop.
type game struct {
	ctx    *raster.Context
	fb     *framebuffer.Buffer
	draw   raster.DrawCall
	angle  float32
	stats  bool
	frames int
}

func (g *game) Update() error {
	g.angle += 1.0
	g.frames++
	if g.stats && g.frames%60 == 0 {
		printStatsLine(g.frames, g.angle)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	renderFrame(g.ctx, g.fb, g.draw, g.angle)

	w, h := int(g.fb.Width()), int(g.fb.Height())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, gr, b := framebuffer.Unpack565(g.fb.At(uint16(x), uint16(y)))
			img.Set(x, y, color.RGBA{r, gr, b, 0xFF})
		}
	}
	screen.WritePixels(img.Pix)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.fb.Width()), int(g.fb.Height())
}

// renderFrame clears fb and draws the cube at the given rotation angle.
func renderFrame(ctx *raster.Context, fb *framebuffer.Buffer, call raster.DrawCall, angle float32) {
	fb.Clear(0x0000)

	model := raster.RotationMat4(angle, raster.Normalize3(raster.Vec3{X: 0, Y: 1, Z: 0.3}))
	view := raster.LookAtMat4(raster.Vec3{X: 0, Y: 1.5, Z: 4}, raster.Vec3{}, raster.Vec3{X: 0, Y: 1, Z: 0})
	proj := raster.PerspectiveMat4(60, float32(fb.Width())/float32(fb.Height()), 0.1, 100)
	mvp := raster.MulMat4(proj, raster.MulMat4(view, model))

	shader := raster.Shader{
		VertexOutElements: 8, // clip xyz [0:3], normal [3:6], uv [6:8]
		Vertex: func(raw []byte, out []float32) {
			v := mesh.DecodeVertex(raw)
			clip := mvp.TransformPosition(v.Pos)
			out[0], out[1], out[2] = clip.X, clip.Y, clip.Z
			n := model.TransformVector(v.N)
			out[3], out[4], out[5] = n.X, n.Y, n.Z
			out[6], out[7] = v.UV.X, v.UV.Y
		},
		Fragment: func(in []float32) (r, g, b, a float32) {
			n := raster.Normalize3(raster.Vec3{X: in[3], Y: in[4], Z: in[5]})
			light := raster.Normalize3(raster.Vec3{X: 0.4, Y: 0.8, Z: 0.6})
			lambert := raster.Dot3(n, light)
			if lambert < 0.15 {
				lambert = 0.15
			}
			cr, cg, cb := float32(1), float32(1), float32(1)
			if texture.Data != nil {
				cr, cg, cb = texture.Sample(raster.Vec2{X: in[6], Y: in[7]})
			}
			return lambert * cr, lambert * cg, lambert * cb, 1
		},
	}
	ctx.SetShader(shader)
	ctx.Draw(fb, call)
}

func writePNG(path string, fb *framebuffer.Buffer) error {
	w, h := int(fb.Width()), int(fb.Height())
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b := framebuffer.Unpack565(fb.At(uint16(x), uint16(y)))
			img.Set(x, y, color.RGBA{r, g, b, 0xFF})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

// printStatsLine prints a stats line truncated to the terminal width, or
// a fixed-width fallback when stdout isn't a terminal.
func printStatsLine(frames int, angle float32) {
	line := fmt.Sprintf("frame=%d angle=%.2f", frames, angle)
	width := 80
	if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if len(line) > width {
		line = line[:width]
	}
	fmt.Println(line)
}
