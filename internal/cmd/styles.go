package cmd

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stride-cli/stride/pb"
)

func getCmdStyles(gs *globalState) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List the built-in bar styles and color themes",
		RunE: func(_ *cobra.Command, _ []string) error {
			for _, name := range pb.StyleNames() {
				var buf bytes.Buffer
				bar, err := pb.New(
					pb.WithStyle(name),
					pb.WithWidth(20),
					pb.WithOutput(&buf),
				)
				if err != nil {
					return err
				}

				// a sample frame below full progress, so no newline is emitted
				bar.Draw(0.65)
				preview := strings.TrimPrefix(buf.String(), "\r")
				gs.console.Printf("%-12s %s\n", name, preview)
			}

			gs.console.Printf("\ncolor themes: %s\n", strings.Join(pb.ThemeNames(), ", "))
			return nil
		},
	}
}
