package ring

import (
	"fmt"
	"math"
	"strconv"

	"github.com/YuHsuanChien/portfolio/internal/mathutil"
)

// Demotion applied to every item that is not the current one.
const (
	DemotedScale   = 0.8
	DemotedOpacity = 0.5
)

// CardStyle is what the page needs to draw one carousel card.
type CardStyle struct {
	X, Y, Z float64
	RotateY float64 // degrees
	Scale   float64
	Opacity float64
	ZIndex  int
	Current bool
}

// Style derives the card style for p. The card is turned by -angle about the
// vertical axis, and items that are not focused are shrunk and faded.
func Style(p Placement) CardStyle {
	s := CardStyle{
		X:       p.Position.X(),
		Y:       p.Position.Y(),
		Z:       p.Position.Z(),
		RotateY: -mathutil.Rad2Deg(p.Angle),
		Scale:   DemotedScale,
		Opacity: DemotedOpacity,
		ZIndex:  1,
	}
	if p.Focused {
		s.Scale, s.Opacity, s.ZIndex, s.Current = 1, 1, 10, true
	}
	return s
}

// Transform renders the CSS transform for the card.
func (s CardStyle) Transform() string {
	return fmt.Sprintf("translate3d(%spx, %spx, %spx) rotateY(%sdeg) scale(%s)",
		num(s.X), num(s.Y), num(s.Z), num(s.RotateY), num(s.Scale))
}

// num trims float noise so transforms stay stable across renders.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Declarations renders the full inline style of the card.
func (s CardStyle) Declarations() string {
	return fmt.Sprintf("transform: %s; opacity: %s; z-index: %d;", s.Transform(), num(s.Opacity), s.ZIndex)
}
