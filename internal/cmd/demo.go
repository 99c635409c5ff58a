package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/stride-cli/stride/pb"
)

type demoFlags struct {
	style       string
	theme       string
	width       int
	total       int64
	duration    time.Duration
	spinnerOnly bool
	counter     bool
	eta         bool
	speed       bool
}

func getCmdDemo(gs *globalState) *cobra.Command {
	f := demoFlags{
		style:    pb.StyleBlock,
		width:    pb.DefaultWidth,
		total:    10000,
		duration: 5 * time.Second,
		counter:  true,
		eta:      true,
		speed:    true,
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Animate a single progress bar to completion",
		RunE: func(_ *cobra.Command, _ []string) error {
			options := []pb.Option{
				pb.WithStyle(f.style),
				pb.WithWidth(f.width),
				pb.WithColorTheme(f.theme),
				pb.WithOutput(gs.console.Writer()),
				pb.WithLogger(logrus.NewEntry(gs.logger)),
			}
			if f.spinnerOnly {
				options = append(options, pb.WithSpinnerOnly())
			}
			if f.counter {
				options = append(options, pb.WithCounter())
			}
			if f.eta {
				options = append(options, pb.WithETA())
			}
			if f.speed {
				options = append(options, pb.WithSpeed())
			}

			bar, err := pb.New(options...)
			if err != nil {
				return err
			}

			gs.logger.Debugf("demo: style=%s width=%d duration=%s", f.style, f.width, f.duration)

			// Less frequent updates for non-TTYs, same as redraw loops in
			// any well-behaved CLI.
			updateFreq := 50 * time.Millisecond
			if !gs.console.IsTTY {
				updateFreq = time.Second
			}
			ticker := time.NewTicker(updateFreq)
			defer ticker.Stop()

			start := time.Now()
			for range ticker.C {
				elapsed := time.Since(start)
				progress := float64(elapsed) / float64(f.duration)
				if progress >= 1 {
					break
				}

				current := int64(progress * float64(f.total))
				remaining := time.Duration((1 - progress) * float64(f.duration))
				bar.Draw(progress, pb.Current(current), pb.ETA(remaining))
			}
			bar.Draw(1, pb.Current(f.total))

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.style, "style", "s", f.style, "bar style, see 'stride styles'")
	flags.StringVarP(&f.theme, "theme", "t", f.theme, "color theme, see 'stride styles'")
	flags.IntVarP(&f.width, "width", "w", f.width, "bar width in cells")
	flags.Int64Var(&f.total, "total", f.total, "simulated item count")
	flags.DurationVarP(&f.duration, "duration", "d", f.duration, "time to run the bar for")
	flags.BoolVar(&f.spinnerOnly, "spinner-only", f.spinnerOnly, "repeat the spinner glyph over a third of the width")
	flags.BoolVar(&f.counter, "counter", f.counter, "show the item counter")
	flags.BoolVar(&f.eta, "eta", f.eta, "show the remaining time estimate")
	flags.BoolVar(&f.speed, "speed", f.speed, "show the throughput")

	return cmd
}
