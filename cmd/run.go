package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/tasklist/internal/export"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/rogersnm/tasklist/internal/notify"
	"github.com/rogersnm/tasklist/internal/script"
	"github.com/spf13/cobra"
)

const formatTable = "table"

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a task script and print the resulting list",
	Long: `Run reads commands from file (or stdin when file is omitted or "-"),
one per line:

  add <text>         toggle <id>        delete <id>
  edit <id>          save <text>        cancel
  clear-completed    clear-all          filter <all|completed|pending>
  show

Ids may be written as 3 or #3. Lines starting with "# " are comments.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")
		quiet, _ := cmd.Flags().GetBool("quiet")
		confirm, _ := cmd.Flags().GetBool("confirm")
		filterStr, _ := cmd.Flags().GetString("filter")

		format = strings.ToLower(format)
		if format != formatTable && !isExportFormat(format) {
			return fmt.Errorf("unknown format %q: must be table or one of %s", format, strings.Join(export.Formats, ", "))
		}
		if export.Binary(format) && output == "" {
			return fmt.Errorf("--format %s requires --output", format)
		}

		var final *model.Filter
		if filterStr != "" {
			f, err := model.ParseFilter(filterStr)
			if err != nil {
				return err
			}
			final = &f
		}

		src, name, err := openScript(cmd, args)
		if err != nil {
			return err
		}
		defer src.Close()
		if confirm && name == "stdin" {
			return fmt.Errorf("--confirm needs a script file; stdin is used by the script")
		}

		sc, err := script.Parse(src)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		runner := script.NewRunner(newSession(), notify.NewBoard(cfg.NoticeLifetime), cmd.OutOrStdout())
		runner.Quiet = quiet
		if confirm {
			runner.Confirm = confirmClearAll
		}
		if err := runner.Run(sc); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if final != nil {
			if err := runner.Step(script.Step{Verb: script.VerbFilter, Arg: string(*final)}); err != nil {
				return err
			}
		}
		return writeResult(cmd, runner, format, output)
	},
}

func isExportFormat(format string) bool {
	for _, f := range export.Formats {
		if f == format {
			return true
		}
	}
	return false
}

func openScript(cmd *cobra.Command, args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("opening script: %w", err)
	}
	return f, args[0], nil
}

func writeResult(cmd *cobra.Command, runner *script.Runner, format, output string) error {
	var data []byte
	if format == formatTable {
		data = []byte(runner.Render())
	} else {
		var err error
		data, err = export.NewExporter(runner.Title()).Export(runner.View(), format)
		if err != nil {
			return err
		}
	}

	if output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	printf(cmd, "Wrote %s\n", output)
	return nil
}

func confirmClearAll(count int) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(fmt.Sprintf("Clear all %d tasks?", count)).
		Affirmative("Clear").
		Negative("Keep").
		Value(&ok).
		Run()
	if err != nil {
		return false, fmt.Errorf("cancelled")
	}
	return ok, nil
}

func init() {
	runCmd.Flags().String("format", formatTable, "output format: table, json, csv, yaml, markdown, pdf")
	runCmd.Flags().String("output", "", "write the result to this file instead of stdout")
	runCmd.Flags().StringP("filter", "f", "", "filter applied after the script: all, completed, pending")
	runCmd.Flags().BoolP("quiet", "q", false, "do not print notifications")
	runCmd.Flags().Bool("confirm", false, "ask before clear-all removes tasks")
	rootCmd.AddCommand(runCmd)
}
