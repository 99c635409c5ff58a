package console

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Console enables synced writing to stdout and stderr from multiple
// goroutines. In-place progress redraws and log lines share one mutex, so a
// log message never lands in the middle of a half-drawn bar.
type Console struct {
	IsTTY          bool
	outMx          *sync.Mutex
	Stdout, Stderr OSFileW
	stdout, stderr *consoleWriter
	theme          *theme
	logger         *logrus.Logger
}

// New returns the pointer to a new Console value wrapping the given streams.
// termType is the value of the TERM environment variable; "dumb" disables
// TTY behavior regardless of the stream.
func New(stdout, stderr OSFileW, colorize bool, termType string) *Console {
	outMx := &sync.Mutex{}
	outCW := newConsoleWriter(stdout, outMx, termType)
	errCW := newConsoleWriter(stderr, outMx, termType)
	isTTY := outCW.isTTY && errCW.isTTY

	// Default logger without any formatting
	logger := &logrus.Logger{
		Out:       errCW,
		Formatter: new(logrus.TextFormatter),
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}

	var th *theme
	// Only enable themes and a fancy logger if we're in a TTY
	if isTTY && colorize {
		th = &theme{foreground: newColor(color.FgCyan)}

		logger.Formatter = &logrus.TextFormatter{
			ForceColors:   true,
			DisableColors: false,
		}
	}
	if !colorize {
		outCW.Writer = colorable.NewNonColorable(stdout)
		errCW.Writer = colorable.NewNonColorable(stderr)
	}

	return &Console{
		IsTTY:  isTTY,
		outMx:  outMx,
		Stdout: stdout,
		Stderr: stderr,
		stdout: outCW,
		stderr: errCW,
		theme:  th,
		logger: logger,
	}
}

// NewForOS wraps the process's real standard streams, enabling ANSI
// translation on platforms that need it.
func NewForOS(colorize bool) *Console {
	return New(
		wrappedOSFile{colorable.NewColorableStdout(), os.Stdout},
		wrappedOSFile{colorable.NewColorableStderr(), os.Stderr},
		colorize,
		os.Getenv("TERM"),
	)
}

// Writer returns the synced stdout writer. Progress bars should draw
// through it so redraws and log lines never interleave.
func (c *Console) Writer() io.Writer {
	return c.stdout
}

// ErrWriter returns the synced stderr writer.
func (c *Console) ErrWriter() io.Writer {
	return c.stderr
}

// ApplyTheme adds ANSI color escape sequences to s if themes are enabled;
// otherwise it returns s unchanged.
func (c *Console) ApplyTheme(s string) string {
	if c.theme != nil {
		return c.theme.foreground.Sprint(s)
	}

	return s
}

// GetLogger returns the preconfigured plain-text logger. It will be
// configured to output colors if themes are enabled.
func (c *Console) GetLogger() *logrus.Logger {
	return c.logger
}

// SetLogger overrides the preconfigured logger.
func (c *Console) SetLogger(l *logrus.Logger) {
	c.logger = l
}

// Print writes s to stdout.
func (c *Console) Print(s string) {
	if _, err := fmt.Fprint(c.stdout, s); err != nil {
		c.logger.Errorf("could not print '%s' to stdout: %s", s, err.Error())
	}
}

// Printf writes s to stdout, formatted with optional arguments.
func (c *Console) Printf(s string, a ...interface{}) {
	if _, err := fmt.Fprintf(c.stdout, s, a...); err != nil {
		c.logger.Errorf("could not print '%s' to stdout: %s", s, err.Error())
	}
}

// TermWidth returns the terminal window width in characters. If the window
// size lookup fails, or if we're not running in a TTY, the default value of
// 80 will be returned. err will be non-nil if the lookup fails.
func (c *Console) TermWidth() (int, error) {
	if !c.IsTTY {
		return defaultTermWidth, nil
	}

	width, _, err := term.GetSize(int(c.Stdout.Fd()))
	if !(width > 0) || err != nil {
		return defaultTermWidth, err
	}

	return width, nil
}

// OSFile is a subset of the functionality implemented by os.File.
type OSFile interface {
	Fd() uintptr
}

// OSFileW is the writer variant of OSFile, typically representing os.Stdout
// and os.Stderr.
type OSFileW interface {
	io.Writer
	OSFile
}

// wrappedOSFile pairs a replacement writer (e.g. a colorable wrapper) with
// the file whose descriptor it fronts.
type wrappedOSFile struct {
	io.Writer
	file *os.File
}

func (w wrappedOSFile) Fd() uintptr { return w.file.Fd() }

// theme is a collection of colors supported by the console output.
type theme struct {
	foreground *color.Color
}

// newColor returns the requested color with the given attributes.
func newColor(attributes ...color.Attribute) *color.Color {
	c := color.New(attributes...)
	c.EnableColor()
	return c
}
