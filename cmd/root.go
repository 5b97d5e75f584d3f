package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	mtp "github.com/modeltoolsprotocol/go-sdk"
	"github.com/rogersnm/tasklist/internal/app"
	"github.com/rogersnm/tasklist/internal/config"
	"github.com/rogersnm/tasklist/internal/notify"
	"github.com/rogersnm/tasklist/internal/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	dataDir string
	cfg     *config.Config
)

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".tasklist")
	}
	return filepath.Join(home, ".tasklist")
}

var rootCmd = &cobra.Command{
	Use:   "tasklist",
	Short: "A short-lived task list for your terminal",
	Long: `tasklist keeps a list of short tasks for the length of one session.
Nothing is written to disk: quitting discards the list.

Run without arguments to open the interactive list, or use "tasklist run"
to apply a script of commands and print the result.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(dataDir)
		if err != nil {
			log.Printf("warning: %v; using default settings", err)
			cfg = config.Default()
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newSession(), notify.NewBoard(cfg.NoticeLifetime), tui.Options{
			DeleteDelay: cfg.DeleteDelay,
			AltScreen:   cfg.AltScreen,
		})
	},
	SilenceUsage: true,
}

// newSession returns an empty session using the configured default filter.
func newSession() *app.App {
	a := app.NewSession()
	a.SetFilter(cfg.DefaultFilter)
	return a
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir(), "settings directory path")

	mtpOpts := &mtp.DescribeOptions{
		Commands: map[string]*mtp.CommandAnnotation{
			"run": {
				Stdin: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "Task script, one command per line (add, toggle, delete, edit, save, cancel, clear-completed, clear-all, filter, show), with optional YAML front matter",
				},
				Stdout: &mtp.IODescriptor{
					ContentType: "text/plain",
					Description: "One line per notification followed by the final list in the chosen --format",
				},
				Examples: []mtp.Example{
					{Description: "Run a script file and print a table", Command: "tasklist run chores.txt"},
					{Description: "Pipe commands and get JSON", Command: "printf 'add Buy milk\\ntoggle 1\\n' | tasklist run --quiet --format json"},
					{Description: "Export pending tasks as PDF", Command: "tasklist run chores.txt --filter pending --format pdf --output chores.pdf"},
				},
			},
			"config show": {
				Stdout: &mtp.IODescriptor{
					ContentType: "application/yaml",
					Description: "Effective settings after defaults and TASKLIST_* environment overrides",
				},
			},
			"config": {
				Examples: []mtp.Example{
					{Description: "Edit settings interactively", Command: "tasklist config"},
				},
			},
		},
	}

	mtp.WithDescribe(rootCmd, mtpOpts)
}

func Execute() error {
	return rootCmd.Execute()
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
