package pb

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultWidth of the progress bar in cells.
const DefaultWidth = 30

// ProgressBar renders a single in-place updating progress line: a styled
// bar, optionally recolored by a theme, followed by a metrics suffix. Every
// Draw rewrites the current terminal line with a carriage return; reaching
// full progress appends a newline so later output starts fresh.
//
// A ProgressBar is not safe for concurrent use. The animated frame cursor
// and the speed tracker are unguarded; each instance expects exactly one
// drawing goroutine.
type ProgressBar struct {
	renderer *barRenderer
	theme    Theme
	metrics  metricsConfig
	tracker  *speedTracker
	out      io.Writer
	logger   *logrus.Entry
}

type config struct {
	style       string
	customChars *[2]string
	customRamp  []string
	hasRamp     bool
	width       int
	spinnerOnly bool
	themeName   string
	theme       Theme
	metrics     metricsConfig
	out         io.Writer
	now         func() time.Time
	logger      *logrus.Entry
}

// Option modifies the progress bar configuration at construction time.
type Option func(*config)

// WithStyle selects one of the built-in styles by name.
func WithStyle(name string) Option {
	return func(c *config) { c.style = name }
}

// WithCustomChars renders a threshold-fill bar from the supplied
// (filled, empty) glyph pair, overriding any style name.
func WithCustomChars(filled, empty string) Option {
	return func(c *config) { c.customChars = &[2]string{filled, empty} }
}

// WithCustomRamp renders a progressive bar from the supplied glyph sequence,
// index 0 being the empty glyph. The sequence must not be empty.
func WithCustomRamp(glyphs ...string) Option {
	return func(c *config) {
		c.customRamp = glyphs
		c.hasRamp = true
	}
}

// WithWidth sets the bar width in cells.
func WithWidth(width int) Option {
	return func(c *config) { c.width = width }
}

// WithoutPercentage disables the percentage annotation, which is shown by
// default.
func WithoutPercentage() Option {
	return func(c *config) { c.metrics.percentage = false }
}

// WithCounter shows the thousands-grouped item count supplied via Current.
func WithCounter() Option {
	return func(c *config) { c.metrics.counter = true }
}

// WithETA shows the estimated remaining time supplied via ETA.
func WithETA() Option {
	return func(c *config) { c.metrics.eta = true }
}

// WithSpeed shows the throughput, either supplied via Speed or derived from
// successive Current values.
func WithSpeed() Option {
	return func(c *config) { c.metrics.speed = true }
}

// WithSpinnerOnly repeats the spinner glyph width/3 times for the spinner
// styles instead of emitting a single glyph.
func WithSpinnerOnly() Option {
	return func(c *config) { c.spinnerOnly = true }
}

// WithColorTheme selects a built-in color theme by name. Unknown names
// silently fall back to no coloring.
func WithColorTheme(name string) Option {
	return func(c *config) { c.themeName = name }
}

// WithTheme sets a caller-supplied theme, taking precedence over any theme
// name.
func WithTheme(t Theme) Option {
	return func(c *config) { c.theme = t }
}

// WithOutput redirects the terminal writes, e.g. to a synced console writer
// or a buffer. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.out = w }
}

// WithClock replaces the wall clock used for speed derivation.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithLogger sets the logger used to warn about out-of-range progress
// values.
func WithLogger(logger *logrus.Entry) Option {
	return func(c *config) { c.logger = logger }
}

// New creates a ProgressBar, applying all of the supplied options. It
// returns a ConfigError for an unknown style name, an empty custom glyph
// list or a non-positive width; drawing itself never fails.
func New(options ...Option) (*ProgressBar, error) {
	c := &config{
		style:   StyleBlock,
		width:   DefaultWidth,
		metrics: metricsConfig{percentage: true},
		out:     os.Stdout,
		now:     time.Now,
	}
	for _, option := range options {
		option(c)
	}

	spec, err := c.resolveStyle()
	if err != nil {
		return nil, err
	}
	if c.width <= 0 {
		return nil, newConfigError("width must be positive, got %d", c.width)
	}

	theme := c.theme
	if theme == nil {
		theme = lookupTheme(c.themeName)
	}

	return &ProgressBar{
		renderer: newBarRenderer(spec, c.width, c.spinnerOnly),
		theme:    theme,
		metrics:  c.metrics,
		tracker:  newSpeedTracker(c.now),
		out:      c.out,
		logger:   c.logger,
	}, nil
}

// resolveStyle picks the style source in priority order: an explicit glyph
// pair, then a custom ramp, then the catalog name.
func (c *config) resolveStyle() (styleSpec, error) {
	switch {
	case c.customChars != nil:
		return customCharsStyle(c.customChars[0], c.customChars[1]), nil
	case c.hasRamp:
		return customRampStyle(c.customRamp)
	default:
		return lookupStyle(c.style)
	}
}

// drawState holds the optional metrics supplied for a single Draw call.
type drawState struct {
	current    int64
	hasCurrent bool
	eta        time.Duration
	hasETA     bool
	speed      float64
	hasSpeed   bool
}

// DrawOption supplies an optional metric value for one Draw call.
type DrawOption func(*drawState)

// Current supplies the number of completed items for this draw.
func Current(n int64) DrawOption {
	return func(ds *drawState) {
		ds.current = n
		ds.hasCurrent = true
	}
}

// ETA supplies the estimated remaining time for this draw.
func ETA(d time.Duration) DrawOption {
	return func(ds *drawState) {
		ds.eta = d
		ds.hasETA = true
	}
}

// Speed supplies an explicit throughput in items per second, bypassing the
// derived value.
func Speed(ops float64) DrawOption {
	return func(ds *drawState) {
		ds.speed = ops
		ds.hasSpeed = true
	}
}

// Draw renders the bar at the given completion fraction and rewrites the
// current terminal line. Values outside [0, 1] are clamped, not rejected.
// When progress reaches 1 a trailing newline is written.
func (pb *ProgressBar) Draw(progress float64, options ...DrawOption) {
	var ds drawState
	for _, option := range options {
		option(&ds)
	}

	clamped := Clampf(progress, 0, 1)
	if clamped != progress && pb.logger != nil {
		pb.logger.Warnf("progress value %.2f exceeds valid range, clamped between 0 and 1", progress)
	}
	progress = clamped

	if pb.metrics.speed && !ds.hasSpeed && ds.hasCurrent {
		if speed, ok := pb.tracker.observe(ds.current); ok {
			ds.speed, ds.hasSpeed = speed, true
		}
	}

	fmt.Fprintf(pb.out, "\r%s", pb.renderLine(progress, ds))
	if progress >= 1 {
		fmt.Fprint(pb.out, "\n")
	}
}

// renderLine assembles the bar and its metrics suffix without any terminal
// control characters.
func (pb *ProgressBar) renderLine(progress float64, ds drawState) string {
	filled, empty := pb.renderer.render(progress)
	if pb.theme != nil {
		filled, empty = pb.theme.Recolor(filled, empty, progress)
	}
	return filled + empty + pb.metrics.suffix(progress, ds)
}
