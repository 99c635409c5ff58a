package pb

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// metricsConfig records which suffix annotations a bar was configured to
// show. Parts are emitted in fixed order: percentage, counter, ETA, speed.
type metricsConfig struct {
	percentage bool
	counter    bool
	eta        bool
	speed      bool
}

// suffix assembles the annotation parts for one draw. Parts whose value was
// not supplied are skipped; an empty part list yields an empty suffix with
// no separator.
func (m metricsConfig) suffix(progress float64, ds drawState) string {
	var parts []string

	if m.percentage {
		parts = append(parts, fmt.Sprintf("%5.1f%%", progress*100))
	}
	if m.counter && ds.hasCurrent {
		parts = append(parts, humanize.Comma(ds.current))
	}
	if m.eta && ds.hasETA && ds.eta > 0 {
		parts = append(parts, formatETA(ds.eta))
	}
	if m.speed && ds.hasSpeed {
		parts = append(parts, formatSpeed(ds.speed))
	}

	if len(parts) == 0 {
		return ""
	}
	return " │ " + strings.Join(parts, "  ")
}

func formatETA(eta time.Duration) string {
	secs := eta.Seconds()
	switch {
	case secs < 60:
		return fmt.Sprintf("ETA %.1fs", secs)
	case secs < 3600:
		return fmt.Sprintf("ETA %.1fm", secs/60)
	default:
		return fmt.Sprintf("ETA %.1fh", secs/3600)
	}
}

func formatSpeed(ops float64) string {
	switch {
	case ops < 1000:
		return fmt.Sprintf("%.1f/s", ops)
	case ops < 1e6:
		return fmt.Sprintf("%.1fK/s", ops/1000)
	default:
		return fmt.Sprintf("%.1fM/s", ops/1e6)
	}
}

// speedTracker remembers the last observed (time, count) pair so a bar can
// derive a throughput when the caller does not supply one. The clock is
// injected to keep the derivation testable with synthetic timestamps.
type speedTracker struct {
	now       func() time.Time
	lastTime  time.Time
	lastCount int64
}

func newSpeedTracker(now func() time.Time) *speedTracker {
	return &speedTracker{now: now, lastTime: now()}
}

// observe derives the ops/s since the previous observation and records the
// new one. When no time has passed it only seeds the tracker with the given
// count and reports no speed, so back-to-back draws at one timestamp never
// divide by zero.
func (t *speedTracker) observe(current int64) (float64, bool) {
	now := t.now()
	elapsed := now.Sub(t.lastTime).Seconds()
	if elapsed <= 0 {
		t.lastTime = now
		t.lastCount = current
		return 0, false
	}

	speed := float64(current-t.lastCount) / elapsed
	t.lastTime = now
	t.lastCount = current
	return speed, true
}
