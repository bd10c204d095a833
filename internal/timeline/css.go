package timeline

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// CSS bakes the timeline into one @keyframes block per target plus a rule
// that plays it. Targets are used as CSS selectors. Easing is sampled fps
// times per second so curves CSS cannot express (bounce) survive; runs of
// identical frames are collapsed.
func (tl *Timeline) CSS(prefix string, fps int) string {
	if fps <= 0 {
		fps = 30
	}
	total := tl.Duration()
	frames := int(math.Ceil(total.Seconds()*float64(fps))) + 1
	if frames < 2 {
		frames = 2
	}

	var b strings.Builder
	ordered := tl.Tweens()
	for _, target := range tl.targets {
		name := animationName(prefix, target)
		samples := make([]Props, frames)
		for i := range samples {
			t := time.Duration(float64(total) * float64(i) / float64(frames-1))
			samples[i] = tl.sampleTarget(ordered, target, t)
		}

		fmt.Fprintf(&b, "@keyframes %s {\n", name)
		for i, p := range samples {
			if i > 0 && i < frames-1 && equalProps(p, samples[i-1]) && equalProps(p, samples[i+1]) {
				continue
			}
			pct := 100 * float64(i) / float64(frames-1)
			fmt.Fprintf(&b, "  %s%% { %s }\n", trim(pct, 2), declarations(p))
		}
		b.WriteString("}\n")
		fmt.Fprintf(&b, "%s { animation: %s %ss linear both; }\n", target, name, trim(total.Seconds(), 3))
	}
	return b.String()
}

func animationName(prefix, target string) string {
	words := strings.FieldsFunc(strings.ToLower(target), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if prefix != "" {
		words = append([]string{prefix}, words...)
	}
	return strings.Join(words, "-")
}

// declarations renders props as CSS. Transform components are combined.
func declarations(p Props) string {
	var parts []string
	if v, ok := p["opacity"]; ok {
		parts = append(parts, "opacity: "+trim(v, 3)+";")
	}

	_, hasX := p["x"]
	_, hasY := p["y"]
	_, hasR := p["rotateZ"]
	_, hasS := p["scale"]
	if hasX || hasY || hasR || hasS {
		parts = append(parts, fmt.Sprintf("transform: translate(%spx, %spx) rotateZ(%sdeg) scale(%s);",
			trim(p["x"], 2), trim(p["y"], 2), trim(p["rotateZ"], 2), trim(valueOr(p, "scale", 1), 3)))
	}

	var rest []string
	for k := range p {
		switch k {
		case "opacity", "x", "y", "rotateZ", "scale":
			continue
		}
		rest = append(rest, k)
	}
	sort.Strings(rest)
	for _, k := range rest {
		parts = append(parts, fmt.Sprintf("%s: %spx;", kebab(k), trim(p[k], 2)))
	}
	return strings.Join(parts, " ")
}

func valueOr(p Props, k string, def float64) float64 {
	if v, ok := p[k]; ok {
		return v
	}
	return def
}

func kebab(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func equalProps(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || math.Abs(v-w) > 1e-6 {
			return false
		}
	}
	return true
}

func trim(v float64, prec int) string {
	scale := math.Pow(10, float64(prec))
	v = math.Round(v*scale) / scale
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
