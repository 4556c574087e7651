package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "codeexplainer",
	Short: "AI-powered, point-by-point explanations of source code",
	Long: `CodeExplainer sends a piece of source code to a chat-completion API and
renders the answer as a structured explanation with headings and bullet
points. When the API cannot be reached a canned explanation for the
language is used instead.

Run it as a web app (server), an MCP tool server (serve), or one-shot
from the terminal (explain).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(newLogger(slog.LevelWarn))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".codeexplainer.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger returns a stderr text logger at level, or at debug level when
// --verbose is set. Stdout is reserved for command output and MCP traffic.
func newLogger(level slog.Level) *slog.Logger {
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
