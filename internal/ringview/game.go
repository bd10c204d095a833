package ringview

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ScreenWidth  = 960
	ScreenHeight = 600

	textureSize = 32
)

var (
	background = color.RGBA{R: 12, G: 14, B: 22, A: 255}
	highlight  = color.RGBA{R: 255, G: 214, B: 102, A: 255}
)

// Game hosts a Model in the ebiten loop and owns one texture per cube.
type Game struct {
	model    *Model
	textures []*ebiten.Image
	notice   string
}

func NewGame(m *Model) *Game {
	g := &Game{model: m}
	g.rebuild()
	return g
}

// rebuild releases the previous textures before creating new ones.
func (g *Game) rebuild() {
	g.Release()
	n := g.model.Count()
	g.textures = make([]*ebiten.Image, n)
	for i := range g.textures {
		r, gr, b := hsvToRgb(float64(i)*360/math.Max(float64(n), 1), 0.7, 0.9)
		img := ebiten.NewImage(textureSize, textureSize)
		img.Fill(color.RGBA{R: r, G: gr, B: b, A: 255})
		g.textures[i] = img
	}
}

// Release frees every cube texture. The Game can still be rebuilt afterwards.
func (g *Game) Release() {
	for _, img := range g.textures {
		img.Deallocate()
	}
	g.textures = nil
}

func (g *Game) setCount(n int) {
	if n == g.model.Count() {
		return
	}
	if err := g.model.SetCount(n); err != nil {
		log.Printf("ringview: %v", err)
		g.notice = err.Error()
		return
	}
	g.notice = ""
	g.rebuild()
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		return inpututil.IsKeyJustPressed(k)
	}

	switch {
	case justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ):
		return ebiten.Termination
	case justPressed(ebiten.KeyUp):
		g.setCount(g.model.Count() + 1)
	case justPressed(ebiten.KeyDown):
		g.setCount(g.model.Count() - 1)
	case justPressed(ebiten.KeyRight):
		g.model.StepFocus(1)
	case justPressed(ebiten.KeyLeft):
		g.model.StepFocus(-1)
	case justPressed(ebiten.KeyF):
		g.model.ClearFocus()
	case justPressed(ebiten.KeyR):
		g.model.Replay()
	}

	g.model.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	for _, s := range g.model.Sprites(ScreenWidth, ScreenHeight) {
		x, y := s.X-s.Size/2, s.Y-s.Size/2
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(s.Size/textureSize, s.Size/textureSize)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(float32(s.Alpha))
		screen.DrawImage(g.textures[s.Index], op)
		if s.Focused {
			vector.StrokeRect(screen, float32(x), float32(y), float32(s.Size), float32(s.Size), 2, highlight, false)
		}
	}

	focus := "none"
	if f := g.model.Focus(); f >= 0 {
		focus = fmt.Sprint(f)
	}
	status := fmt.Sprintf("cubes: %d  focus: %s  TPS: %0.1f\nUp/Down: count  Left/Right: focus  F: clear  R: replay  Esc/Q: quit",
		g.model.Count(), focus, ebiten.ActualTPS())
	if g.notice != "" {
		status += "\n" + g.notice
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}
