package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/stride-cli/stride/pb"
)

type multiFlags struct {
	bars     int
	style    string
	width    int
	duration time.Duration
}

func getCmdMulti(gs *globalState) *cobra.Command {
	f := multiFlags{
		bars:     3,
		style:    pb.StyleBlock,
		width:    pb.DefaultWidth,
		duration: 5 * time.Second,
	}

	cmd := &cobra.Command{
		Use:   "multi",
		Short: "Animate several stacked progress bars at once",
		RunE: func(_ *cobra.Command, _ []string) error {
			mp, err := pb.NewMulti(f.bars,
				pb.WithStyle(f.style),
				pb.WithWidth(f.width),
				pb.WithOutput(gs.console.Writer()),
			)
			if err != nil {
				return err
			}

			updateFreq := 50 * time.Millisecond
			if !gs.console.IsTTY {
				updateFreq = time.Second
			}
			ticker := time.NewTicker(updateFreq)
			defer ticker.Stop()

			start := time.Now()
			for range ticker.C {
				elapsed := time.Since(start)
				done := true
				for i := 0; i < f.bars; i++ {
					// each later row runs a bit slower than the one above
					rowDuration := f.duration + time.Duration(i)*f.duration/2
					progress := pb.Clampf(float64(elapsed)/float64(rowDuration), 0, 1)
					if progress < 1 {
						done = false
					}
					if err := mp.Update(i, progress, fmt.Sprintf("task %d", i+1)); err != nil {
						return err
					}
				}
				if done {
					break
				}
			}
			mp.Complete()

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&f.bars, "bars", "n", f.bars, "number of stacked bars")
	flags.StringVarP(&f.style, "style", "s", f.style, "bar style, see 'stride styles'")
	flags.IntVarP(&f.width, "width", "w", f.width, "bar width in cells")
	flags.DurationVarP(&f.duration, "duration", "d", f.duration, "time to run the fastest bar for")

	return cmd
}
