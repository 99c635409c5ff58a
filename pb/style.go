package pb

import (
	"sort"
	"strings"
)

// Built-in style identifiers.
const (
	StyleBlock      = "block"       // ▉▉▉▍
	StyleClassic    = "classic"     // ■■■■□□□□
	StyleBraille    = "braille"     // ⣿⣿⣿⡟
	StyleArrow      = "arrow"       // >>>>----
	StyleEqual      = "equal"       // ====----
	StyleDot        = "dot"         // ••••....
	StyleVertical   = "vertical"    // ▄▄▄▄
	StyleCircle     = "circle"      // ◑◑◑◑○○○○
	StyleSquare     = "square"      // ◲◲◲◲□□□□
	StyleGradient   = "gradient"    // ▒▒▒▒
	StyleHash       = "hash"        // ####....
	StyleStar       = "star"        // ★★★★☆☆☆☆
	StyleTriangle   = "triangle"    // ▲▲▲▲▽▽▽▽
	StyleBounce     = "bounce"      // (  →  )
	StyleSpinArrow  = "spin_arrow"  // ←↖↑↗
	StyleSpinSimple = "spin_simple" // |/-\
	StyleSpinDots   = "spin_dots"   // ⠋⠙⠹⠸
)

// styleClass determines how a style turns a progress value into the filled
// and empty bar segments.
type styleClass int

const (
	// classThreshold repeats the filled glyph floor(p*width) times and fills
	// the rest with the empty glyph.
	classThreshold styleClass = iota
	// classSubGlyph renders one partial glyph from a ramp at the fill
	// boundary for sub-cell granularity.
	classSubGlyph
	// classProgressive repeats, for every filled cell, the single ramp glyph
	// selected by the overall progress value. The glyph is identical across
	// cells, it is not a per-position gradient.
	classProgressive
	// classFrames emits fixed animation frames, cycling an internal cursor
	// once per draw.
	classFrames
)

// styleSpec is the immutable descriptor of one style from the catalog.
type styleSpec struct {
	name  string
	class styleClass

	filled, empty string   // classThreshold
	ramp          []string // classSubGlyph, classProgressive
	frames        []string // classFrames

	// classProgressive: pad the filled segment with spaces to the full width
	// and emit width spaces as the empty segment, instead of using ramp[0]
	// as the empty glyph.
	spacePadded bool
	// classProgressive: select the glyph by fixed progress bands
	// (<0.33, <0.66, rest) instead of scaling progress over the ramp.
	banded bool
	// classFrames: select the frame from progress instead of the cursor.
	byProgress bool
	// classFrames: the frame may be repeated width/3 times in spinner-only
	// mode.
	repeatable bool
}

//nolint:gochecknoglobals
var styles = map[string]styleSpec{
	StyleBlock: {
		name:  StyleBlock,
		class: classSubGlyph,
		ramp:  []string{" ", "▏", "▎", "▍", "▋", "▊", "▉"},
	},
	StyleClassic: {
		name:   StyleClassic,
		class:  classThreshold,
		filled: "■", empty: "□",
	},
	StyleBraille: {
		name:  StyleBraille,
		class: classSubGlyph,
		ramp:  []string{" ", "⡀", "⡄", "⡆", "⡇", "⡏", "⡟", "⡿", "⣿"},
	},
	StyleArrow: {
		name:   StyleArrow,
		class:  classThreshold,
		filled: ">", empty: "-",
	},
	StyleEqual: {
		name:   StyleEqual,
		class:  classThreshold,
		filled: "=", empty: "-",
	},
	StyleDot: {
		name:   StyleDot,
		class:  classThreshold,
		filled: "•", empty: ".",
	},
	StyleVertical: {
		name:        StyleVertical,
		class:       classProgressive,
		ramp:        []string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		spacePadded: true,
	},
	StyleCircle: {
		name:  StyleCircle,
		class: classProgressive,
		ramp:  []string{"○", "◔", "◑", "◕", "●"},
	},
	StyleSquare: {
		name:  StyleSquare,
		class: classProgressive,
		ramp:  []string{"□", "◱", "◲", "■"},
	},
	StyleGradient: {
		name:        StyleGradient,
		class:       classProgressive,
		ramp:        []string{"░", "▒", "▓"},
		spacePadded: true,
		banded:      true,
	},
	StyleHash: {
		name:   StyleHash,
		class:  classThreshold,
		filled: "#", empty: ".",
	},
	StyleStar: {
		name:   StyleStar,
		class:  classThreshold,
		filled: "★", empty: "☆",
	},
	StyleTriangle: {
		name:   StyleTriangle,
		class:  classThreshold,
		filled: "▲", empty: "▽",
	},
	StyleBounce: {
		name:  StyleBounce,
		class: classFrames,
		frames: []string{
			"(→    )", "( →   )", "(  →  )", "(   → )", "(    →)",
			"(   ← )", "(  ←  )", "( ←   )", "(←    )",
		},
		byProgress: true,
	},
	StyleSpinArrow: {
		name:       StyleSpinArrow,
		class:      classFrames,
		frames:     []string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"},
		byProgress: true,
		repeatable: true,
	},
	StyleSpinSimple: {
		name:       StyleSpinSimple,
		class:      classFrames,
		frames:     []string{`\`, `|`, `/`, `-`},
		repeatable: true,
	},
	StyleSpinDots: {
		name:       StyleSpinDots,
		class:      classFrames,
		frames:     []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		repeatable: true,
	},
}

// StyleNames returns the identifiers of all built-in styles, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupStyle(name string) (styleSpec, error) {
	spec, ok := styles[strings.ToLower(name)]
	if !ok {
		return styleSpec{}, newUnknownStyleError(name)
	}
	return spec, nil
}

// customCharsStyle builds a threshold-fill style from a user-supplied
// (filled, empty) glyph pair.
func customCharsStyle(filled, empty string) styleSpec {
	return styleSpec{
		name:   "custom",
		class:  classThreshold,
		filled: filled,
		empty:  empty,
	}
}

// customRampStyle builds a progressive style from a user-supplied glyph
// sequence. The sequence must not be empty.
func customRampStyle(ramp []string) (styleSpec, error) {
	if len(ramp) == 0 {
		return styleSpec{}, newConfigError("custom glyph list cannot be empty")
	}
	return styleSpec{
		name:  "custom_list",
		class: classProgressive,
		ramp:  ramp,
	}, nil
}
