// Package timeline sequences property tweens on a single playback clock.
//
// A Timeline is declarative: tweens are appended with a position (after the
// previous one, at an absolute time, or relative to the current end) and the
// value of any property at any time is obtained with Sample. Nothing runs in
// the background; see Clock for frame-driven playback and CSS for baking a
// timeline into keyframes.
package timeline

import (
	"sort"
	"time"
)

// Props are animatable numeric properties keyed by name, for example
// "opacity", "y", "rotateZ" or "scale".
type Props map[string]float64

// defaultValue is the value of a property nobody has set.
func defaultValue(prop string) float64 {
	switch prop {
	case "opacity", "scale":
		return 1
	}
	return 0
}

type posKind int

const (
	posNext posKind = iota
	posAt
	posOffset
)

// Position says where a tween starts.
type Position struct {
	kind posKind
	d    time.Duration
}

// Next starts the tween when the timeline currently ends. It is the default.
func Next() Position { return Position{kind: posNext} }

// At starts the tween at an absolute time.
func At(d time.Duration) Position { return Position{kind: posAt, d: d} }

// Offset starts the tween d after the current end; d may be negative to
// overlap the previous tween.
func Offset(d time.Duration) Position { return Position{kind: posOffset, d: d} }

// Tween animates some properties of one target from From to To.
type Tween struct {
	Target   string
	Start    time.Duration
	Duration time.Duration
	From, To Props
	Ease     Ease

	// immediate tweens show their From values before they start.
	immediate bool
	seq       int
}

// End is when the tween finishes.
func (tw Tween) End() time.Duration { return tw.Start + tw.Duration }

// Timeline is an ordered set of tweens. The zero value is not usable; call New.
type Timeline struct {
	tweens  []Tween
	end     time.Duration
	targets []string
	initial map[string]Props
	current map[string]Props
}

func New() *Timeline {
	return &Timeline{
		initial: make(map[string]Props),
		current: make(map[string]Props),
	}
}

// Duration is the end of the last tween.
func (tl *Timeline) Duration() time.Duration { return tl.end }

// Targets lists animated targets in the order they were first used.
func (tl *Timeline) Targets() []string {
	return append([]string(nil), tl.targets...)
}

// Tweens returns a copy of the tweens ordered by start time.
func (tl *Timeline) Tweens() []Tween {
	out := append([]Tween(nil), tl.tweens...)
	sortTweens(out)
	return out
}

func (tl *Timeline) track(target string) {
	if _, ok := tl.current[target]; ok {
		return
	}
	tl.targets = append(tl.targets, target)
	tl.current[target] = Props{}
	tl.initial[target] = Props{}
}

func (tl *Timeline) valueOf(target, prop string) float64 {
	if v, ok := tl.current[target][prop]; ok {
		return v
	}
	if v, ok := tl.initial[target][prop]; ok {
		return v
	}
	return defaultValue(prop)
}

func (tl *Timeline) start(pos []Position) time.Duration {
	if len(pos) == 0 {
		return tl.end
	}
	var s time.Duration
	switch p := pos[0]; p.kind {
	case posAt:
		s = p.d
	case posOffset:
		s = tl.end + p.d
	default:
		s = tl.end
	}
	if s < 0 {
		s = 0
	}
	return s
}

func (tl *Timeline) add(tw Tween) {
	if tw.Ease == nil {
		tw.Ease = Linear
	}
	if tw.Duration < 0 {
		tw.Duration = 0
	}
	tw.seq = len(tl.tweens)
	tl.tweens = append(tl.tweens, tw)
	if e := tw.End(); e > tl.end {
		tl.end = e
	}
}

// Set fixes the values a target has before any tween touches it.
func (tl *Timeline) Set(target string, p Props) *Timeline {
	tl.track(target)
	for k, v := range p {
		tl.initial[target][k] = v
	}
	return tl
}

// To tweens target from its current values to p.
func (tl *Timeline) To(target string, p Props, d time.Duration, ease Ease, pos ...Position) *Timeline {
	tl.track(target)
	from, to := Props{}, Props{}
	for k, v := range p {
		from[k] = tl.valueOf(target, k)
		to[k] = v
		tl.current[target][k] = v
	}
	tl.add(Tween{Target: target, Start: tl.start(pos), Duration: d, From: from, To: to, Ease: ease})
	return tl
}

// From tweens target from p to its current values. The target shows p until
// the tween starts.
func (tl *Timeline) From(target string, p Props, d time.Duration, ease Ease, pos ...Position) *Timeline {
	tl.track(target)
	from, to := Props{}, Props{}
	for k, v := range p {
		from[k] = v
		to[k] = tl.valueOf(target, k)
		tl.current[target][k] = to[k]
	}
	tl.add(Tween{Target: target, Start: tl.start(pos), Duration: d, From: from, To: to, Ease: ease, immediate: true})
	return tl
}

// Stagger runs the same To tween on each target in order, spacing their
// starts by every.
func (tl *Timeline) Stagger(targets []string, p Props, d, every time.Duration, ease Ease, pos ...Position) *Timeline {
	base := tl.start(pos)
	for i, t := range targets {
		tl.To(t, p, d, ease, At(base+time.Duration(i)*every))
	}
	return tl
}

// Sample returns the value of every property of every target at time t.
func (tl *Timeline) Sample(t time.Duration) map[string]Props {
	out := make(map[string]Props, len(tl.targets))
	ordered := tl.Tweens()
	for _, target := range tl.targets {
		out[target] = tl.sampleTarget(ordered, target, t)
	}
	return out
}

// SampleTarget is Sample for a single target.
func (tl *Timeline) SampleTarget(target string, t time.Duration) Props {
	return tl.sampleTarget(tl.Tweens(), target, t)
}

func (tl *Timeline) sampleTarget(ordered []Tween, target string, t time.Duration) Props {
	props := Props{}
	for k, v := range tl.initial[target] {
		props[k] = v
	}
	for _, tw := range ordered {
		if tw.Target != target {
			continue
		}
		for k := range tw.To {
			if _, ok := props[k]; !ok {
				props[k] = defaultValue(k)
			}
		}
	}

	for k := range props {
		touched := false
		for _, tw := range ordered {
			if tw.Target != target {
				continue
			}
			to, ok := tw.To[k]
			if !ok {
				continue
			}
			from := tw.From[k]
			if t < tw.Start {
				if tw.immediate && !touched {
					props[k] = from
				}
				break
			}
			touched = true
			if t < tw.End() && tw.Duration > 0 {
				p := float64(t-tw.Start) / float64(tw.Duration)
				props[k] = from + (to-from)*tw.Ease(p)
				break
			}
			props[k] = to
		}
	}
	return props
}

func sortTweens(tws []Tween) {
	sort.SliceStable(tws, func(i, j int) bool {
		if tws[i].Start != tws[j].Start {
			return tws[i].Start < tws[j].Start
		}
		return tws[i].seq < tws[j].seq
	})
}
