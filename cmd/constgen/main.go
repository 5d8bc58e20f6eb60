package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("constgen")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int
	var logFile string

	rootCmd := &cobra.Command{
		Use:          "constgen",
		Short:        "Generate Java constant-holder classes",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var path *string
			if logFile != "" {
				path = &logFile
			}
			configureLogging(verbose, path)
		},
	}

	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// configureLogging installs an unbuffered simple backend. The buffered
// default is only flushed by kutil's exit hooks, which main never runs.
func configureLogging(verbose int, path *string) {
	backend := simple.NewBackend()
	backend.Buffered = false
	backend.Configure(verbose, path)
	commonlog.SetBackend(backend)
}
