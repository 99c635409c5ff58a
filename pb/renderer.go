package pb

import (
	"strings"
)

// barRenderer turns a clamped progress value into the filled and empty bar
// segments for one style. The render function is bound to one of the four
// behavior classes at construction time, so no style dispatch happens per
// draw. The frame cursor makes animated styles stateful; a renderer belongs
// to exactly one bar and must not be shared.
type barRenderer struct {
	spec        styleSpec
	width       int
	spinnerOnly bool
	frame       int
	render      func(progress float64) (filled, empty string)
}

func newBarRenderer(spec styleSpec, width int, spinnerOnly bool) *barRenderer {
	r := &barRenderer{spec: spec, width: width, spinnerOnly: spinnerOnly}
	switch spec.class {
	case classSubGlyph:
		r.render = r.renderSubGlyph
	case classProgressive:
		r.render = r.renderProgressive
	case classFrames:
		r.render = r.renderFrames
	default:
		r.render = r.renderThreshold
	}
	return r
}

func (r *barRenderer) renderThreshold(progress float64) (string, string) {
	filled := int(progress * float64(r.width))
	return strings.Repeat(r.spec.filled, filled),
		strings.Repeat(r.spec.empty, r.width-filled)
}

// renderSubGlyph splits progress into full glyphs plus at most one partial
// glyph from the ramp: totalUnits = floor(p*width*(k-1)), where k is the
// ramp length and ramp[k-1] is the full glyph. The filled segment is padded
// with spaces to the bar width, so the empty segment is all spaces.
func (r *barRenderer) renderSubGlyph(progress float64) (string, string) {
	k := len(r.spec.ramp)
	units := int(progress * float64(r.width) * float64(k-1))
	full, rem := units/(k-1), units%(k-1)

	var sb strings.Builder
	sb.WriteString(strings.Repeat(r.spec.ramp[k-1], full))
	cells := full
	if rem > 0 {
		sb.WriteString(r.spec.ramp[rem])
		cells++
	}
	sb.WriteString(strings.Repeat(" ", r.width-cells))
	return sb.String(), strings.Repeat(" ", r.width)
}

// renderProgressive repeats one ramp glyph, selected by the overall progress
// value, for every filled cell. All filled cells show the same glyph.
func (r *barRenderer) renderProgressive(progress float64) (string, string) {
	filled := int(progress * float64(r.width))
	ramp := r.spec.ramp

	var glyph string
	if r.spec.banded {
		switch {
		case progress < 0.33:
			glyph = ramp[0]
		case progress < 0.66:
			glyph = ramp[1]
		default:
			glyph = ramp[2]
		}
	} else {
		idx := int(progress * float64(len(ramp)))
		if idx > len(ramp)-1 {
			idx = len(ramp) - 1
		}
		glyph = ramp[idx]
	}

	if r.spec.spacePadded {
		return strings.Repeat(glyph, filled) + strings.Repeat(" ", r.width-filled),
			strings.Repeat(" ", r.width)
	}
	return strings.Repeat(glyph, filled), strings.Repeat(ramp[0], r.width-filled)
}

// renderFrames emits one animation frame per call. The cursor advances every
// call; progress-selected styles (bounce, spin_arrow) pick the frame from
// the progress value instead of the cursor.
func (r *barRenderer) renderFrames(progress float64) (string, string) {
	frames := r.spec.frames
	idx := r.frame
	if r.spec.byProgress {
		idx = int(progress * float64(len(frames)-1))
	}
	r.frame = (r.frame + 1) % len(frames)

	s := frames[idx]
	if r.spinnerOnly && r.spec.repeatable {
		s = strings.Repeat(s, r.width/3)
	}
	return s, ""
}
