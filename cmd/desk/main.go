package main

import (
	"desk/di"
	"desk/shared/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := newRootCmd(di.InitializeApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. load is called once per command run;
// logs go to stderr so exported CSV on stdout stays clean.
func newRootCmd(load func() *di.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "desk",
		Short:         "Manage bookings and contact requests from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.InitLoggerWithOutput(cmd.ErrOrStderr())
		},
	}

	rootCmd.AddCommand(initCmd(load))
	rootCmd.AddCommand(exportCmd(load))
	rootCmd.AddCommand(importCmd(load))
	rootCmd.AddCommand(boardCmd(load))
	rootCmd.AddCommand(statusCmd(load))
	rootCmd.AddCommand(eventsCmd(load))

	return rootCmd
}

// withApp loads the service graph for a single command and closes it afterwards.
func withApp(load func() *di.App, run func(cmd *cobra.Command, app *di.App, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app := load()
		logger.SetLogLevel(app.Config)

		defer app.Close(cmd.Context())

		return run(cmd, app, args)
	}
}
