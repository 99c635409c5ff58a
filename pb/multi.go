package pb

import (
	"fmt"
	"io"
	"strings"
)

// MultiProgress tracks several independent progress rows at once, moving
// the cursor back up with ANSI escapes to rewrite them in place. The rows
// share one output stream; concurrent Update calls must be serialized by
// the caller or the cursor-movement sequences will interleave.
type MultiProgress struct {
	bars         []*ProgressBar
	out          io.Writer
	linesWritten int
}

// NewMulti builds count independent rows, each with its own frame cursor
// and speed tracker, from the same options. The percentage annotation is
// disabled on every row to keep them narrow.
func NewMulti(count int, options ...Option) (*MultiProgress, error) {
	if count <= 0 {
		return nil, newConfigError("row count must be positive, got %d", count)
	}

	bars := make([]*ProgressBar, count)
	for i := range bars {
		rowOptions := make([]Option, 0, len(options)+1)
		rowOptions = append(rowOptions, options...)
		rowOptions = append(rowOptions, WithoutPercentage())

		bar, err := New(rowOptions...)
		if err != nil {
			return nil, err
		}
		bars[i] = bar
	}

	return &MultiProgress{bars: bars, out: bars[0].out}, nil
}

// Update redraws the row at index with the given progress, labeled with
// label or a "Bar N" placeholder. It rewrites all rows, moving the cursor
// up past the previously written block first. A RangeError is returned when
// index is outside [0, count).
func (mp *MultiProgress) Update(index int, progress float64, label string) error {
	if index < 0 || index >= len(mp.bars) {
		return RangeError{Index: index, Count: len(mp.bars)}
	}

	if mp.linesWritten > 0 {
		fmt.Fprintf(mp.out, "\x1b[%dA", mp.linesWritten)
	}

	for i, bar := range mp.bars {
		if i != index {
			// leave the existing row untouched
			fmt.Fprint(mp.out, "\n")
			continue
		}

		prefix := label
		if prefix == "" {
			prefix = fmt.Sprintf("Bar %d", i+1)
		}
		fmt.Fprintf(mp.out, "%s: %s\n", prefix, bar.renderLine(Clampf(progress, 0, 1), drawState{}))
	}
	mp.linesWritten = len(mp.bars)

	return nil
}

// Complete advances the cursor past all rows so subsequent output starts
// below the last bar.
func (mp *MultiProgress) Complete() {
	fmt.Fprint(mp.out, strings.Repeat("\n", mp.linesWritten))
}
