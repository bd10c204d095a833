// Package ring places N items evenly around a circle. It backs the decorative
// cube ring and the experience card carousel.
package ring

import (
	"errors"
	"fmt"
	"math"

	"github.com/YuHsuanChien/portfolio/internal/mathutil"
)

// NoFocus marks a ring without a current item.
const NoFocus = -1

// MaxCount is the largest ring Layout accepts.
const MaxCount = 1024

var (
	ErrInvalidCount  = errors.New("ring: count must be in [0, 1024]")
	ErrInvalidRadius = errors.New("ring: radius must be a positive finite number")
	ErrInvalidOffset = errors.New("ring: offset must be finite")
)

// Axis selects the trigonometric convention used to place items.
type Axis int

const (
	// Horizontal puts index 0 on +X: x = cos(a)·r, z = sin(a)·r.
	Horizontal Axis = iota
	// Vertical is the card carousel convention, index 0 on +Z (toward the
	// viewer): x = sin(a)·r, z = cos(a)·r.
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// ParseAxis accepts "horizontal" or "vertical". The empty string is Horizontal.
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "", "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("ring: unknown axis %q", s)
}

// Config describes one ring. Offset is the fixed y of every item.
type Config struct {
	Count  int
	Radius float64
	Focus  int
	Axis   Axis
	Offset float64
}

// Placement is the computed spot of one item.
//
// Facing is the yaw about +Y that turns the item's +Z front toward the ring
// center, in [0, 2π). The same convention holds for both axes.
type Placement struct {
	Index    int           `json:"index"`
	Angle    float64       `json:"angle"`
	Position mathutil.Vec3 `json:"position"`
	Facing   float64       `json:"facing"`
	Focused  bool          `json:"focused"`
}

// FacingVector is the unit vector the item's front points along.
func (p Placement) FacingVector() mathutil.Vec3 {
	return mathutil.Vec3{math.Sin(p.Facing), 0, math.Cos(p.Facing)}
}

// Validate reports why cfg cannot be laid out.
func (c Config) Validate() error {
	if c.Count < 0 || c.Count > MaxCount {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Count)
	}
	if c.Count == 0 {
		return nil
	}
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, c.Radius)
	}
	if math.IsNaN(c.Offset) || math.IsInf(c.Offset, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidOffset, c.Offset)
	}
	return nil
}

// HasFocus reports whether Focus names an item of the ring.
func (c Config) HasFocus() bool {
	return c.Focus >= 0 && c.Focus < c.Count
}

// Layout returns one Placement per index in [0, Count). Index i sits at
// angle i/N·2π; the focus only flips Focused and never moves an item.
// An empty ring yields an empty slice.
func Layout(cfg Config) ([]Placement, error) {
	return layout(cfg, 0)
}

// Carousel is Layout rotated so the focused item sits at angle 0, the front
// of the ring. Without a focus it is identical to Layout.
func Carousel(cfg Config) ([]Placement, error) {
	shift := 0
	if cfg.HasFocus() {
		shift = cfg.Focus
	}
	return layout(cfg, shift)
}

func layout(cfg Config, shift int) ([]Placement, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := cfg.Count
	out := make([]Placement, n)
	focused := cfg.HasFocus()
	for i := 0; i < n; i++ {
		slot := ((i-shift)%n + n) % n
		a := float64(slot) / float64(n) * 2 * math.Pi
		pos := position(cfg.Axis, a, cfg.Radius, cfg.Offset)
		out[i] = Placement{
			Index:    i,
			Angle:    a,
			Position: pos,
			Facing:   mathutil.WrapAngle(math.Atan2(-pos[0], -pos[2])),
			Focused:  focused && i == cfg.Focus,
		}
	}
	return out, nil
}

func position(axis Axis, a, r, y float64) mathutil.Vec3 {
	if axis == Vertical {
		return mathutil.Vec3{math.Sin(a) * r, y, math.Cos(a) * r}
	}
	return mathutil.Vec3{math.Cos(a) * r, y, math.Sin(a) * r}
}

// Step moves focus by delta with wrap-around. A focus outside the ring
// restarts from 0. An empty ring always returns NoFocus.
func Step(count, focus, delta int) int {
	if count <= 0 {
		return NoFocus
	}
	if focus < 0 || focus >= count {
		focus = 0
	}
	return ((focus+delta)%count + count) % count
}
