// Package ringview is a desktop rendition of the decorative cube ring: cubes
// on a horizontal ring, the whole group slowly spinning, viewed through a
// perspective camera.
package ringview

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/YuHsuanChien/portfolio/internal/mathutil"
	"github.com/YuHsuanChien/portfolio/internal/ring"
	"github.com/YuHsuanChien/portfolio/internal/timeline"
)

const (
	MaxCubes      = 64
	RotationSpeed = 0.01 // radians per tick
	CubeSize      = 1.0
	FieldOfView   = 75 // degrees, vertical

	entranceFade  = 400 * time.Millisecond
	entranceEvery = 80 * time.Millisecond
)

// Camera sits above and in front of the ring, looking at its center.
var Camera = mathutil.Vec3{0, 5, 20}

// Sprite is one cube projected to the screen.
type Sprite struct {
	Index   int
	X, Y    float64
	Size    float64
	Depth   float64
	Alpha   float64
	Focused bool
}

// Model is the ring state without any rendering resources.
type Model struct {
	radius     float64
	count      int
	focus      int
	rotation   float64
	placements []ring.Placement
	clock      *timeline.Clock
}

func NewModel(count int, radius float64) (*Model, error) {
	m := &Model{radius: radius, focus: ring.NoFocus}
	if err := m.SetCount(count); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) Count() int { return m.count }
func (m *Model) Focus() int { return m.focus }
func (m *Model) Rotation() float64 { return m.rotation }

// SetCount recomputes the ring and restarts the entrance.
func (m *Model) SetCount(n int) error {
	if n < 0 || n > MaxCubes {
		return fmt.Errorf("ringview: cube count %d out of range [0, %d]", n, MaxCubes)
	}
	if m.focus >= n {
		m.focus = ring.NoFocus
	}
	ps, err := ring.Layout(ring.Config{Count: n, Radius: m.radius, Focus: m.focus, Axis: ring.Horizontal})
	if err != nil {
		return err
	}
	m.count, m.placements = n, ps
	m.clock = timeline.NewClock(entrance(n))
	return nil
}

// StepFocus moves the highlighted cube by delta.
func (m *Model) StepFocus(delta int) {
	m.setFocus(ring.Step(m.count, m.focus, delta))
}

// ClearFocus removes the highlight.
func (m *Model) ClearFocus() { m.setFocus(ring.NoFocus) }

func (m *Model) setFocus(f int) {
	m.focus = f
	// Focus never moves cubes, only the flag changes.
	for i := range m.placements {
		m.placements[i].Focused = i == f
	}
}

// Replay restarts the entrance fade without rebuilding the ring.
func (m *Model) Replay() { m.clock.Restart() }

// Tick is called once per frame by the host loop.
func (m *Model) Tick(dt time.Duration) {
	m.rotation = math.Mod(m.rotation+RotationSpeed, 2*math.Pi)
	m.clock.Advance(dt)
}

func cubeTarget(i int) string { return fmt.Sprintf("cube-%d", i) }

func entrance(n int) *timeline.Timeline {
	tl := timeline.New()
	targets := make([]string, n)
	for i := range targets {
		targets[i] = cubeTarget(i)
		tl.Set(targets[i], timeline.Props{"opacity": 0})
	}
	return tl.Stagger(targets, timeline.Props{"opacity": 1}, entranceFade, entranceEvery, timeline.Power3Out)
}

// Sprites projects every cube for a w×h screen, farthest first. Cubes behind
// the camera are dropped.
func (m *Model) Sprites(w, h int) []Sprite {
	forward := Camera.Scale(-1).Normalize()
	right := forward.Cross(mathutil.Vec3{0, 1, 0}).Normalize()
	up := right.Cross(forward)
	focal := float64(h) / 2 / math.Tan(mathutil.Deg2Rad(FieldOfView)/2)

	values := m.clock.Values()
	out := make([]Sprite, 0, len(m.placements))
	for _, p := range m.placements {
		q := mathutil.RotateY(p.Position, m.rotation).Sub(Camera)
		depth := q.Dot(forward)
		if depth <= 0 {
			continue
		}
		st := ring.Style(p)
		alpha := values[cubeTarget(p.Index)]["opacity"]
		size := CubeSize * focal / depth
		if m.focus != ring.NoFocus {
			alpha *= st.Opacity
			size *= st.Scale
		}
		out = append(out, Sprite{
			Index:   p.Index,
			X:       float64(w)/2 + q.Dot(right)*focal/depth,
			Y:       float64(h)/2 - q.Dot(up)*focal/depth,
			Size:    size,
			Depth:   depth,
			Alpha:   alpha,
			Focused: p.Focused,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Depth > out[j].Depth })
	return out
}
