package server

import (
	"fmt"
	"time"

	"github.com/YuHsuanChien/portfolio/internal/timeline"
)

// bannerDots is the number of "typing" dots next to the avatar.
const bannerDots = 3

func dotSelector(i int) string { return fmt.Sprintf(".banner-dot-%d", i) }

// bannerTimeline is the entrance of the banner: the avatar bounces in and
// tilts, the dots light up one by one and fade together, the avatar rights
// itself and the "Hi" bubble pops.
func bannerTimeline(dots int) *timeline.Timeline {
	const avatar, talk = ".banner-avatar", ".banner-talk"
	ms := time.Millisecond

	sel := make([]string, dots)
	tl := timeline.New()
	for i := range sel {
		sel[i] = dotSelector(i)
		tl.Set(sel[i], timeline.Props{"opacity": 0})
	}
	tl.Set(talk, timeline.Props{"opacity": 0, "scale": 0})

	tl.From(avatar, timeline.Props{"opacity": 0, "y": -200}, 1500*ms, timeline.BounceOut)
	tl.To(avatar, timeline.Props{"rotateZ": 5}, 300*ms, timeline.Power3Out)
	tl.Stagger(sel, timeline.Props{"opacity": 1}, 500*ms, 500*ms, timeline.Power3Out)
	tl.Stagger(sel, timeline.Props{"opacity": 0}, 500*ms, 0, timeline.Power3Out)
	tl.To(avatar, timeline.Props{"rotateZ": 0}, 300*ms, timeline.Power3Out)
	tl.To(talk, timeline.Props{"opacity": 1, "scale": 1}, 500*ms, timeline.Power3Out)
	return tl
}
