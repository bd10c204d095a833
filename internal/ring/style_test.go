package ring

import "testing"

func TestStyleDemotesUnfocused(t *testing.T) {
	ps, err := Carousel(Config{Count: 3, Radius: 400, Focus: 0, Axis: Vertical})
	if err != nil {
		t.Fatal(err)
	}
	cur := Style(ps[0])
	if !cur.Current || cur.Scale != 1 || cur.Opacity != 1 || cur.ZIndex != 10 {
		t.Fatalf("focused style = %+v", cur)
	}
	other := Style(ps[1])
	if other.Current || other.Scale != DemotedScale || other.Opacity != DemotedOpacity || other.ZIndex != 1 {
		t.Fatalf("demoted style = %+v", other)
	}
}

func TestTransform(t *testing.T) {
	ps, _ := Carousel(Config{Count: 3, Radius: 400, Focus: 0, Axis: Vertical})
	if got, want := Style(ps[0]).Transform(), "translate3d(0px, 0px, 400px) rotateY(0deg) scale(1)"; got != want {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
	if got, want := Style(ps[1]).Transform(), "translate3d(346.41px, 0px, -200px) rotateY(-120deg) scale(0.8)"; got != want {
		t.Fatalf("Transform() = %q, want %q", got, want)
	}
}

func TestDeclarations(t *testing.T) {
	ps, _ := Carousel(Config{Count: 2, Radius: 100, Focus: 1, Axis: Vertical})
	want := "transform: translate3d(0px, 0px, -100px) rotateY(-180deg) scale(0.8); opacity: 0.5; z-index: 1;"
	if got := Style(ps[0]).Declarations(); got != want {
		t.Fatalf("Declarations() = %q, want %q", got, want)
	}
}
