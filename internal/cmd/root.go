package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/stride-cli/stride/console"
)

// globalState holds everything the subcommands need: the synced console,
// the logger and the values of the persistent flags.
type globalState struct {
	console *console.Console
	logger  *logrus.Logger

	quiet   bool
	verbose bool
	noColor bool
}

// rootCommand keeps all fields needed for the main stride command.
type rootCommand struct {
	gs  *globalState
	cmd *cobra.Command
}

func newRootCommand(gs *globalState) *rootCommand {
	c := &rootCommand{gs: gs}
	// the base command when called without any subcommands
	c.cmd = &cobra.Command{
		Use:   "stride",
		Short: "a styled terminal progress renderer",
		Long: "stride renders single-line, in-place updating progress bars\n" +
			"with a catalog of styles, color themes and throughput metrics.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}

	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(getCmdStyles(gs), getCmdDemo(gs), getCmdMulti(gs))

	return c
}

func (c *rootCommand) persistentPreRunE(_ *cobra.Command, _ []string) error {
	gs := c.gs
	if gs.console == nil {
		gs.console = console.NewForOS(!gs.noColor)
	}

	gs.logger = gs.console.GetLogger()
	switch {
	case gs.verbose:
		gs.logger.SetLevel(logrus.DebugLevel)
	case gs.quiet:
		gs.logger.SetLevel(logrus.WarnLevel)
	}

	return nil
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.BoolVarP(&c.gs.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVarP(&c.gs.quiet, "quiet", "q", false, "only log warnings and errors")
	flags.BoolVar(&c.gs.noColor, "no-color", false, "disable colored output")
	return flags
}

// Execute runs the root command and exits with a non-zero code on error.
// This is called by main.main().
func Execute() {
	gs := &globalState{}
	c := newRootCommand(gs)

	if err := c.cmd.Execute(); err != nil {
		logger := gs.logger
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.Error(err)
		os.Exit(1)
	}
}
