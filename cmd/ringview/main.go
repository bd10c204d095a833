// Command ringview shows the decorative cube ring in a desktop window.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/YuHsuanChien/portfolio/internal/ringview"
)

func main() {
	count := flag.Int("count", 8, "number of cubes on the ring")
	radius := flag.Float64("radius", 8, "ring radius in world units")
	flag.Parse()

	model, err := ringview.NewModel(*count, *radius)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(ringview.ScreenWidth, ringview.ScreenHeight)
	ebiten.SetWindowTitle("Ring - Up/Down: cubes, Left/Right: focus, Esc/Q: quit")

	g := ringview.NewGame(model)
	defer g.Release()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
