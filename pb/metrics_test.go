package pb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatETA(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		eta      time.Duration
		expected string
	}{
		{500 * time.Millisecond, "ETA 0.5s"},
		{59*time.Second + 900*time.Millisecond, "ETA 59.9s"},
		{60 * time.Second, "ETA 1.0m"},
		{90 * time.Second, "ETA 1.5m"},
		{3599*time.Second + 900*time.Millisecond, "ETA 60.0m"},
		{3600 * time.Second, "ETA 1.0h"},
		{9 * time.Hour, "ETA 9.0h"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, formatETA(tc.eta))
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		ops      float64
		expected string
	}{
		{0, "0.0/s"},
		{50, "50.0/s"},
		{999.9, "999.9/s"},
		{1000, "1.0K/s"},
		{12500, "12.5K/s"},
		{1e6, "1.0M/s"},
		{2.5e6, "2.5M/s"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, formatSpeed(tc.ops))
		})
	}
}

func TestMetricsSuffix(t *testing.T) {
	t.Parallel()

	all := metricsConfig{percentage: true, counter: true, eta: true, speed: true}

	testCases := []struct {
		name     string
		metrics  metricsConfig
		progress float64
		ds       drawState
		expected string
	}{
		{"empty", metricsConfig{}, 0.5, drawState{}, ""},
		{"percentage", metricsConfig{percentage: true}, 0.5, drawState{},
			" │  50.0%"},
		{"percentage_zero", metricsConfig{percentage: true}, 0, drawState{},
			" │   0.0%"},
		{"percentage_full", metricsConfig{percentage: true}, 1, drawState{},
			" │ 100.0%"},
		{"counter_grouped", metricsConfig{counter: true}, 0.5,
			drawState{current: 1234567, hasCurrent: true},
			" │ 1,234,567"},
		{"counter_missing_value", metricsConfig{counter: true}, 0.5,
			drawState{}, ""},
		{"eta_zero_hidden", metricsConfig{eta: true}, 0.5,
			drawState{eta: 0, hasETA: true}, ""},
		{"speed_without_value", metricsConfig{speed: true}, 0.5,
			drawState{}, ""},
		{"fixed_order", all, 0.5,
			drawState{
				current: 1500, hasCurrent: true,
				eta: 30 * time.Second, hasETA: true,
				speed: 50, hasSpeed: true,
			},
			" │  50.0%  1,500  ETA 30.0s  50.0/s"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, tc.metrics.suffix(tc.progress, tc.ds))
		})
	}
}

func TestSpeedTracker(t *testing.T) {
	t.Parallel()

	now := time.Unix(1000, 0)
	tracker := newSpeedTracker(func() time.Time { return now })

	// same timestamp as construction: the observation only seeds the tracker
	speed, ok := tracker.observe(100)
	assert.False(t, ok)
	assert.Zero(t, speed)

	now = now.Add(time.Second)
	speed, ok = tracker.observe(150)
	assert.True(t, ok)
	assert.Equal(t, 50.0, speed)

	now = now.Add(2 * time.Second)
	speed, ok = tracker.observe(250)
	assert.True(t, ok)
	assert.Equal(t, 50.0, speed)
}
