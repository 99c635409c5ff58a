package pb

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSpec(t *testing.T, name string) styleSpec {
	t.Helper()
	spec, err := lookupStyle(name)
	require.NoError(t, err)
	return spec
}

func TestThresholdFillInvariants(t *testing.T) {
	t.Parallel()

	const width = 20
	styleNames := []string{
		StyleClassic, StyleArrow, StyleEqual, StyleDot,
		StyleHash, StyleStar, StyleTriangle,
	}

	for _, name := range styleNames {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := newBarRenderer(mustSpec(t, name), width, false)

			prevFilled := -1
			for i := 0; i <= 100; i++ {
				progress := float64(i) / 100
				filled, empty := r.render(progress)

				filledLen := utf8.RuneCountInString(filled)
				emptyLen := utf8.RuneCountInString(empty)
				assert.Equal(t, width, filledLen+emptyLen,
					"width invariant broken at progress %v", progress)
				assert.GreaterOrEqual(t, filledLen, prevFilled,
					"fill not monotonic at progress %v", progress)
				prevFilled = filledLen
			}

			filled, empty := r.render(0)
			assert.Empty(t, filled)
			assert.Equal(t, width, utf8.RuneCountInString(empty))

			filled, empty = r.render(1)
			assert.Equal(t, width, utf8.RuneCountInString(filled))
			assert.Empty(t, empty)
		})
	}
}

func TestThresholdFillCustomChars(t *testing.T) {
	t.Parallel()

	r := newBarRenderer(customCharsStyle("@", "."), 10, false)
	filled, empty := r.render(0.5)
	assert.Equal(t, "@@@@@", filled)
	assert.Equal(t, ".....", empty)
}

func TestSubGlyphInterpolation(t *testing.T) {
	t.Parallel()

	// The block ramp has 7 glyphs, so one cell subdivides into 6 units:
	// totalUnits = floor(p*width*6), full = totalUnits/6, rem = totalUnits%6.
	testCases := []struct {
		progress  float64
		expFilled string
	}{
		{0, strings.Repeat(" ", 10)},
		{0.5, "▉▉▉▉▉" + strings.Repeat(" ", 5)},    // 30 units = 5 full cells
		{0.58, "▉▉▉▉▉▋" + strings.Repeat(" ", 4)},  // 34 units = 5 full + ramp[4]
		{1, strings.Repeat("▉", 10)},               // 60 units = 10 full cells
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("p=%v", tc.progress), func(t *testing.T) {
			t.Parallel()
			r := newBarRenderer(mustSpec(t, StyleBlock), 10, false)
			filled, empty := r.render(tc.progress)
			assert.Equal(t, tc.expFilled, filled)
			assert.Equal(t, strings.Repeat(" ", 10), empty)
			assert.Equal(t, 10, utf8.RuneCountInString(filled))
		})
	}
}

func TestSubGlyphBraille(t *testing.T) {
	t.Parallel()

	// 9-glyph ramp: 8 units per cell, full glyph is ⣿.
	r := newBarRenderer(mustSpec(t, StyleBraille), 10, false)
	filled, _ := r.render(0.5)
	assert.Equal(t, "⣿⣿⣿⣿⣿"+strings.Repeat(" ", 5), filled)
}

func TestProgressiveGlyphSelection(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		style               string
		width               int
		progress            float64
		expFilled, expEmpty string
	}{
		// every filled cell carries the one glyph picked by overall progress
		{StyleCircle, 4, 0.5, "◑◑", "○○"},
		{StyleCircle, 4, 1, "●●●●", ""},
		{StyleSquare, 4, 1, "■■■■", ""},
		{StyleSquare, 4, 0.3, "◱", "□□□"},
		// vertical pads with spaces instead of an empty glyph
		{StyleVertical, 4, 0.5, "▅▅  ", "    "},
		{StyleVertical, 4, 1, "████", "    "},
		// gradient picks the shade from fixed progress bands
		{StyleGradient, 5, 0.2, "░    ", "     "},
		{StyleGradient, 5, 0.5, "▒▒   ", "     "},
		{StyleGradient, 5, 0.9, "▓▓▓▓ ", "     "},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%s_p=%v", tc.style, tc.progress), func(t *testing.T) {
			t.Parallel()
			r := newBarRenderer(mustSpec(t, tc.style), tc.width, false)
			filled, empty := r.render(tc.progress)
			assert.Equal(t, tc.expFilled, filled)
			assert.Equal(t, tc.expEmpty, empty)
		})
	}
}

func TestProgressiveCustomRamp(t *testing.T) {
	t.Parallel()

	spec, err := customRampStyle([]string{".", "o", "O"})
	require.NoError(t, err)

	r := newBarRenderer(spec, 6, false)
	filled, empty := r.render(0.5)
	assert.Equal(t, "ooo", filled)
	assert.Equal(t, "...", empty)
}

func TestFrameCycling(t *testing.T) {
	t.Parallel()

	r := newBarRenderer(mustSpec(t, StyleSpinSimple), 30, false)
	var got []string
	for i := 0; i < 5; i++ {
		frame, empty := r.render(0.5)
		assert.Empty(t, empty)
		got = append(got, frame)
	}
	// the cursor advances once per draw, independent of progress
	assert.Equal(t, []string{`\`, `|`, `/`, `-`, `\`}, got)
}

func TestFrameProgressSelected(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		style    string
		progress float64
		expFrame string
	}{
		{StyleBounce, 0, "(→    )"},
		{StyleBounce, 0.5, "(    →)"},
		{StyleBounce, 1, "(←    )"},
		{StyleSpinArrow, 0, "←"},
		{StyleSpinArrow, 0.5, "↗"},
		{StyleSpinArrow, 1, "↙"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(fmt.Sprintf("%s_p=%v", tc.style, tc.progress), func(t *testing.T) {
			t.Parallel()
			r := newBarRenderer(mustSpec(t, tc.style), 30, false)
			frame, empty := r.render(tc.progress)
			assert.Equal(t, tc.expFrame, frame)
			assert.Empty(t, empty)
		})
	}
}

func TestFrameSpinnerOnly(t *testing.T) {
	t.Parallel()

	r := newBarRenderer(mustSpec(t, StyleSpinDots), 9, true)
	frame, _ := r.render(0)
	assert.Equal(t, "⠋⠋⠋", frame)

	// bounce frames are fixed-width and never repeated
	r = newBarRenderer(mustSpec(t, StyleBounce), 9, true)
	frame, _ = r.render(0)
	assert.Equal(t, "(→    )", frame)
}
