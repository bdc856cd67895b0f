// Package cli provides the command-line entry points: the GUI itself and
// headless helpers for shape files.
package cli

import (
	"fmt"
	"os"
	"strings"

	"VisualShell/internal/logger"
	"VisualShell/internal/ui"

	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const AppID = "io.github.visualshell"

// NewRootCmd creates the root command. Without arguments it opens the
// drawing window; a CSV path opens that file.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("VISUALSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "visualshell [file.csv]",
		Short:         "Draw labeled rectangles that carry shell commands",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := ui.Options{Logger: newLogger(v)}
			if len(args) == 1 {
				opts.InitialFile = args[0]
			}
			ui.RunApp(app.NewWithID(AppID), opts)
			return nil
		},
	}

	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	if err := v.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		panic(fmt.Sprintf("bind log-level: %v", err))
	}

	rootCmd.AddCommand(newCheckCmd(v), newPDFCmd(v))
	return rootCmd
}

func newLogger(v *viper.Viper) *logger.Logger {
	return logger.NewConsole(logger.ParseLevel(v.GetString("log-level")))
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
