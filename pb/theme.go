package pb

import (
	"sort"
	"strings"

	"github.com/fatih/color"
)

// Theme recolors the rendered bar segments. Implementations receive the raw
// filled and empty segments plus the clamped progress value and return the
// possibly ANSI-wrapped replacements.
type Theme interface {
	Recolor(filled, empty string, progress float64) (string, string)
}

// ThemeFunc adapts a plain function to the Theme interface.
type ThemeFunc func(filled, empty string, progress float64) (string, string)

// Recolor calls f.
func (f ThemeFunc) Recolor(filled, empty string, progress float64) (string, string) {
	return f(filled, empty, progress)
}

//nolint:gochecknoglobals
var (
	colorFaint   = color.New(color.Faint)
	colorRed     = color.New(color.FgRed)
	colorGreen   = color.New(color.FgGreen)
	colorYellow  = color.New(color.FgYellow)
	colorBlue    = color.New(color.FgBlue)
	colorCyan    = color.New(color.FgCyan)
	colorMagenta = color.New(color.FgMagenta)
	colorBold    = color.New(color.FgWhite, color.Bold)

	rainbowColors = []*color.Color{
		colorRed, colorYellow, colorGreen, colorCyan, colorBlue, colorMagenta,
	}
)

// themes maps the built-in theme names. Unknown names intentionally resolve
// to no theme at all instead of failing, so callers can pass through
// arbitrary user input.
//
//nolint:gochecknoglobals
var themes = map[string]Theme{
	"green_red":   ThemeFunc(greenRedTheme),
	"blue_yellow": ThemeFunc(blueYellowTheme),
	"gradient":    ThemeFunc(gradientTheme),
	"rainbow":     ThemeFunc(rainbowTheme),
	"monochrome":  ThemeFunc(monochromeTheme),
	"terminal":    ThemeFunc(terminalTheme),
}

// ThemeNames returns the identifiers of all built-in color themes, sorted.
// The "default" identity theme is not listed; it applies no color at all.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// lookupTheme resolves a built-in theme by name. The empty string, "default"
// and any unknown name all mean no recoloring.
func lookupTheme(name string) Theme {
	return themes[strings.ToLower(name)]
}

func greenRedTheme(filled, empty string, progress float64) (string, string) {
	c := colorRed
	if progress >= 0.5 {
		c = colorGreen
	}
	return c.Sprint(filled), colorFaint.Sprint(empty)
}

func blueYellowTheme(filled, empty string, _ float64) (string, string) {
	return colorBlue.Sprint(filled), colorYellow.Sprint(empty)
}

func gradientTheme(filled, empty string, progress float64) (string, string) {
	var c *color.Color
	switch {
	case progress < 0.33:
		c = colorRed
	case progress < 0.66:
		c = colorYellow
	default:
		c = colorGreen
	}
	return c.Sprint(filled), colorFaint.Sprint(empty)
}

func rainbowTheme(filled, empty string, _ float64) (string, string) {
	var sb strings.Builder
	for i, r := range []rune(filled) {
		sb.WriteString(rainbowColors[i%len(rainbowColors)].Sprint(string(r)))
	}
	return sb.String(), colorFaint.Sprint(empty)
}

func monochromeTheme(filled, empty string, _ float64) (string, string) {
	return colorBold.Sprint(filled), colorFaint.Sprint(empty)
}

func terminalTheme(filled, empty string, _ float64) (string, string) {
	return colorCyan.Sprint(filled), empty
}
