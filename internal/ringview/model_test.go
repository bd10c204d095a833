package ringview

import (
	"math"
	"testing"
	"time"

	"github.com/YuHsuanChien/portfolio/internal/ring"
)

func TestModelCountBounds(t *testing.T) {
	m, err := NewModel(8, 8)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	if err := m.SetCount(-1); err == nil {
		t.Fatal("SetCount(-1): expected error")
	}
	if err := m.SetCount(MaxCubes + 1); err == nil {
		t.Fatal("SetCount over max: expected error")
	}
	if m.Count() != 8 {
		t.Fatalf("count changed after rejected SetCount: %d", m.Count())
	}
	if err := m.SetCount(0); err != nil {
		t.Fatalf("SetCount(0): %v", err)
	}
	if got := m.Sprites(ScreenWidth, ScreenHeight); len(got) != 0 {
		t.Fatalf("empty ring produced %d sprites", len(got))
	}
	if _, err := NewModel(3, 0); err == nil {
		t.Fatal("zero radius: expected error")
	}
}

func TestModelFocus(t *testing.T) {
	m, _ := NewModel(4, 8)
	if m.Focus() != ring.NoFocus {
		t.Fatalf("initial focus %d", m.Focus())
	}
	m.StepFocus(-1)
	if m.Focus() != 3 {
		t.Fatalf("StepFocus(-1) from none: got %d, want 3", m.Focus())
	}
	m.StepFocus(1)
	if m.Focus() != 0 {
		t.Fatalf("wrap: got %d, want 0", m.Focus())
	}

	focused := 0
	for _, p := range m.placements {
		if p.Focused {
			focused++
		}
	}
	if focused != 1 {
		t.Fatalf("%d focused placements, want 1", focused)
	}

	// Shrinking below the focus clears it.
	m.StepFocus(3)
	_ = m.SetCount(2)
	if m.Focus() != ring.NoFocus {
		t.Fatalf("focus %d survived shrink", m.Focus())
	}
	m.ClearFocus()
	if m.Focus() != ring.NoFocus {
		t.Fatal("ClearFocus kept focus")
	}
}

func TestModelTickRotates(t *testing.T) {
	m, _ := NewModel(3, 8)
	for i := 0; i < 10; i++ {
		m.Tick(time.Second / 60)
	}
	if math.Abs(m.Rotation()-10*RotationSpeed) > 1e-12 {
		t.Fatalf("rotation %v after 10 ticks", m.Rotation())
	}
}

func TestSpritesEntranceFade(t *testing.T) {
	m, _ := NewModel(5, 8)
	for _, s := range m.Sprites(ScreenWidth, ScreenHeight) {
		if s.Alpha != 0 {
			t.Fatalf("cube %d visible before entrance: %v", s.Index, s.Alpha)
		}
	}
	m.Tick(2 * time.Second)
	for _, s := range m.Sprites(ScreenWidth, ScreenHeight) {
		if s.Alpha != 1 {
			t.Fatalf("cube %d alpha %v after entrance", s.Index, s.Alpha)
		}
	}
}

func TestSpritesProjection(t *testing.T) {
	m, _ := NewModel(4, 8)
	m.Tick(2 * time.Second)
	m.rotation = 0

	sprites := m.Sprites(ScreenWidth, ScreenHeight)
	if len(sprites) != 4 {
		t.Fatalf("got %d sprites, want 4", len(sprites))
	}
	for i := 1; i < len(sprites); i++ {
		if sprites[i-1].Depth < sprites[i].Depth {
			t.Fatalf("sprites not drawn back to front: %v before %v", sprites[i-1].Depth, sprites[i].Depth)
		}
	}

	byIndex := map[int]Sprite{}
	for _, s := range sprites {
		byIndex[s.Index] = s
	}
	// Index 1 sits at +z (nearest the camera), index 3 at -z (farthest).
	near, far := byIndex[1], byIndex[3]
	if near.Size <= far.Size {
		t.Fatalf("near cube %v not larger than far cube %v", near.Size, far.Size)
	}
	if math.Abs(near.X-ScreenWidth/2) > 1e-9 || math.Abs(far.X-ScreenWidth/2) > 1e-9 {
		t.Fatalf("cubes on the z axis off center: %v, %v", near.X, far.X)
	}
	if near.Y <= far.Y {
		t.Fatalf("near cube should project lower on screen: %v vs %v", near.Y, far.Y)
	}
	// Index 0 at +x is right of center, index 2 at -x left.
	if byIndex[0].X <= ScreenWidth/2 || byIndex[2].X >= ScreenWidth/2 {
		t.Fatalf("x cubes on wrong sides: %v, %v", byIndex[0].X, byIndex[2].X)
	}
}

func TestSpritesFocusDemotes(t *testing.T) {
	m, _ := NewModel(4, 8)
	m.Tick(2 * time.Second)
	before := map[int]Sprite{}
	for _, s := range m.Sprites(ScreenWidth, ScreenHeight) {
		before[s.Index] = s
	}
	m.StepFocus(1) // focus 0
	for _, s := range m.Sprites(ScreenWidth, ScreenHeight) {
		b := before[s.Index]
		if s.X != b.X || s.Y != b.Y {
			t.Fatalf("focus moved cube %d", s.Index)
		}
		if s.Index == 0 {
			if !s.Focused || s.Alpha != 1 || s.Size != b.Size {
				t.Fatalf("focused cube not at full style: %+v", s)
			}
			continue
		}
		if s.Focused || s.Alpha != ring.DemotedOpacity {
			t.Fatalf("cube %d not demoted: %+v", s.Index, s)
		}
	}
}

func TestModelReplay(t *testing.T) {
	m, _ := NewModel(3, 8)
	m.Tick(2 * time.Second)
	m.Replay()
	for _, s := range m.Sprites(ScreenWidth, ScreenHeight) {
		if s.Alpha != 0 {
			t.Fatalf("cube %d alpha %v after replay, want 0", s.Index, s.Alpha)
		}
	}
	if m.Count() != 3 {
		t.Fatalf("replay changed count to %d", m.Count())
	}
}
