package timeline

import (
	"math"
	"strings"
	"testing"
	"time"
)

const ms = time.Millisecond

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestSequentialPositions(t *testing.T) {
	tl := New().
		To("a", Props{"x": 10}, 500*ms, Linear).
		To("b", Props{"x": 10}, 300*ms, Linear).
		To("c", Props{"x": 10}, 200*ms, Linear, Offset(-100*ms)).
		To("d", Props{"x": 10}, 100*ms, Linear, At(50*ms))

	starts := map[string]time.Duration{}
	for _, tw := range tl.Tweens() {
		starts[tw.Target] = tw.Start
	}
	want := map[string]time.Duration{"a": 0, "b": 500 * ms, "c": 700 * ms, "d": 50 * ms}
	for k, v := range want {
		if starts[k] != v {
			t.Errorf("%s starts at %v, want %v", k, starts[k], v)
		}
	}
	if tl.Duration() != 900*ms {
		t.Fatalf("Duration = %v, want 900ms", tl.Duration())
	}
	if got := tl.Targets(); strings.Join(got, ",") != "a,b,c,d" {
		t.Fatalf("Targets = %v", got)
	}
}

func TestNegativeStartClamps(t *testing.T) {
	tl := New().To("a", Props{"x": 1}, 100*ms, Linear, Offset(-time.Second))
	if tw := tl.Tweens()[0]; tw.Start != 0 {
		t.Fatalf("start = %v, want 0", tw.Start)
	}
}

func TestSampleTo(t *testing.T) {
	tl := New().
		Set("el", Props{"opacity": 0}).
		To("el", Props{"opacity": 1}, time.Second, Linear).
		To("el", Props{"opacity": 0.5}, time.Second, Linear)

	cases := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{500 * ms, 0.5},
		{time.Second, 1},
		{1500 * ms, 0.75},
		{5 * time.Second, 0.5},
	}
	for _, tc := range cases {
		if got := tl.SampleTarget("el", tc.at)["opacity"]; !near(got, tc.want) {
			t.Errorf("opacity at %v = %v, want %v", tc.at, got, tc.want)
		}
	}
}

func TestSampleFromRendersImmediately(t *testing.T) {
	tl := New().
		To("other", Props{"x": 1}, time.Second, Linear).
		From("icon", Props{"y": -200, "opacity": 0}, time.Second, Linear)

	before := tl.SampleTarget("icon", 0)
	if before["y"] != -200 || before["opacity"] != 0 {
		t.Fatalf("before start = %v, want from values", before)
	}
	mid := tl.SampleTarget("icon", 1500*ms)
	if !near(mid["y"], -100) || !near(mid["opacity"], 0.5) {
		t.Fatalf("midway = %v", mid)
	}
	end := tl.SampleTarget("icon", 2*time.Second)
	if end["y"] != 0 || end["opacity"] != 1 {
		t.Fatalf("end = %v, want defaults", end)
	}
}

func TestStagger(t *testing.T) {
	dots := []string{"d0", "d1", "d2"}
	tl := New()
	for _, d := range dots {
		tl.Set(d, Props{"opacity": 0})
	}
	tl.Stagger(dots, Props{"opacity": 1}, 500*ms, 500*ms, Power3Out)
	if tl.Duration() != 1500*ms {
		t.Fatalf("Duration = %v", tl.Duration())
	}
	s := tl.Sample(750 * ms)
	if s["d0"]["opacity"] != 1 {
		t.Errorf("d0 = %v, want finished", s["d0"])
	}
	if got := s["d1"]["opacity"]; !near(got, Power3Out(0.5)) {
		t.Errorf("d1 = %v, want %v", got, Power3Out(0.5))
	}
	if s["d2"]["opacity"] != 0 {
		t.Errorf("d2 = %v, want not started", s["d2"])
	}
}

func TestEasesHitEndpoints(t *testing.T) {
	for name, e := range map[string]Ease{"linear": Linear, "power3": Power3Out, "bounce": BounceOut} {
		if !near(e(0), 0) || !near(e(1), 1) {
			t.Errorf("%s: e(0)=%v e(1)=%v", name, e(0), e(1))
		}
	}
	if Power3Out(0.5) <= 0.5 {
		t.Error("Power3Out is not decelerating")
	}
}

func TestClock(t *testing.T) {
	tl := New().To("a", Props{"x": 10}, time.Second, Linear)
	c := NewClock(tl)
	if c.Advance(400 * ms) {
		t.Fatal("finished early")
	}
	if got := c.Values()["a"]["x"]; !near(got, 4) {
		t.Fatalf("x = %v, want 4", got)
	}
	if !c.Advance(time.Second) || c.Elapsed() != time.Second {
		t.Fatalf("Advance past end: elapsed %v", c.Elapsed())
	}

	c.Restart()
	c.Loop = true
	if c.Advance(1500 * ms) {
		t.Fatal("looping clock finished")
	}
	if c.Elapsed() != 500*ms {
		t.Fatalf("looped elapsed = %v, want 500ms", c.Elapsed())
	}
}

func TestCSS(t *testing.T) {
	tl := New().
		Set(".talk", Props{"opacity": 0, "scale": 0}).
		To(".talk", Props{"opacity": 1, "scale": 1}, time.Second, Linear)
	css := tl.CSS("banner", 10)

	for _, want := range []string{
		"@keyframes banner-talk {",
		"0% { opacity: 0; transform: translate(0px, 0px) rotateZ(0deg) scale(0); }",
		"50% { opacity: 0.5; transform: translate(0px, 0px) rotateZ(0deg) scale(0.5); }",
		"100% { opacity: 1; transform: translate(0px, 0px) rotateZ(0deg) scale(1); }",
		".talk { animation: banner-talk 1s linear both; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("CSS missing %q\n%s", want, css)
		}
	}
}

func TestCSSCollapsesHolds(t *testing.T) {
	tl := New().
		To(".a", Props{"x": 10}, 100*ms, Linear).
		To(".b", Props{"x": 10}, 900*ms, Linear)
	css := tl.CSS("", 10)
	block := css[strings.Index(css, "@keyframes a"):strings.Index(css, "@keyframes b")]
	// .a moves during the first frame only: 0%, 10%, then the held 100%.
	if n := strings.Count(block, "%"); n != 3 {
		t.Fatalf("got %d keyframes for .a, want 3\n%s", n, block)
	}
}
