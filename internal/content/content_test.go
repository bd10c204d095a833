package content

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/YuHsuanChien/portfolio/web"
)

func TestLoadSiteDefaults(t *testing.T) {
	s, err := LoadSite(web.Content(), "site.yaml")
	if err != nil {
		t.Fatalf("LoadSite: %v", err)
	}
	if s.Owner == "" || s.Brand == "" {
		t.Fatalf("owner/brand missing: %+v", s)
	}
	if len(s.Experience.Cards) != 3 {
		t.Fatalf("got %d experience cards, want 3", len(s.Experience.Cards))
	}
	if len(s.Portfolio) != 9 {
		t.Fatalf("got %d portfolio pictures, want 9", len(s.Portfolio))
	}
	if c, ok := s.Card("event_planner"); !ok || c.Title != "Event Planner" {
		t.Fatalf("Card(event_planner) = %+v, %v", c, ok)
	}
}

func TestLoadSiteRadiusDefault(t *testing.T) {
	fsys := fstest.MapFS{"site.yaml": {Data: []byte("owner: x\nexperience:\n  cards: []\n")}}
	s, err := LoadSite(fsys, "site.yaml")
	if err != nil {
		t.Fatal(err)
	}
	if s.Experience.Radius != DefaultCarouselRadius {
		t.Fatalf("radius = %v, want %v", s.Experience.Radius, DefaultCarouselRadius)
	}
}

func TestLoadSiteErrors(t *testing.T) {
	if _, err := LoadSite(fstest.MapFS{}, "site.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing file: err = %v", err)
	}
	bad := fstest.MapFS{"site.yaml": {Data: []byte("owner: [unterminated\n")}}
	if _, err := LoadSite(bad, "site.yaml"); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}

func TestExperiences(t *testing.T) {
	xs, err := LoadExperiences(web.Content(), "experience.json")
	if err != nil {
		t.Fatalf("LoadExperiences: %v", err)
	}
	x, ok := xs.Find("full_stack_developer")
	if !ok || x.Company == "" || len(x.Technologies) == 0 {
		t.Fatalf("Find(full_stack_developer) = %+v, %v", x, ok)
	}
	if _, ok := xs.Find("all"); ok {
		t.Fatal("Find(all) matched an entry")
	}
}

func TestDecodeExperiencesError(t *testing.T) {
	if _, err := DecodeExperiences(strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Fatal("truncated json accepted")
	}
}

func TestWall(t *testing.T) {
	pics := make([]Picture, 9)
	tiles := Wall(pics)
	if len(tiles) != 9 {
		t.Fatalf("got %d tiles", len(tiles))
	}
	for _, tl := range tiles {
		if tl.Center != (tl.Index == 4) {
			t.Errorf("tile %d: Center = %v", tl.Index, tl.Center)
		}
		wantDrift := tl.Index == 1 || tl.Index == 4 || tl.Index == 7
		if tl.Drifts != wantDrift {
			t.Errorf("tile %d: Drifts = %v", tl.Index, tl.Drifts)
		}
	}
	if tiles[5].Row != 1 || tiles[5].Col != 2 {
		t.Fatalf("tile 5 at (%d,%d), want (1,2)", tiles[5].Row, tiles[5].Col)
	}
	if Wall(nil) != nil {
		t.Fatal("empty wall is not nil")
	}
}
