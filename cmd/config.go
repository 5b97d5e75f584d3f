package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/rogersnm/tasklist/internal/config"
	"github.com/rogersnm/tasklist/internal/model"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		updated, err := runConfigForm(cfg)
		if err != nil {
			return err
		}
		if err := config.Save(dataDir, updated); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		cfg = updated
		printf(cmd, "Saved %s\n", config.Path(dataDir))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		printf(cmd, "# %s\n%s", config.Path(dataDir), data)
		return nil
	},
}

func validateDuration(s string) error {
	if _, err := time.ParseDuration(s); err != nil {
		return fmt.Errorf("use a duration such as 500ms or 3s")
	}
	return nil
}

func runConfigForm(current *config.Config) (*config.Config, error) {
	filter := current.DefaultFilter
	lifetime := current.NoticeLifetime.String()
	delay := current.DeleteDelay.String()
	alt := current.AltScreen

	filterOpts := make([]huh.Option[model.Filter], len(model.Filters))
	for i, f := range model.Filters {
		filterOpts[i] = huh.NewOption(string(f), f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.Filter]().
				Title("Default filter").
				Options(filterOpts...).
				Value(&filter),
			huh.NewInput().
				Title("Notification lifetime").
				Value(&lifetime).
				Validate(validateDuration),
			huh.NewInput().
				Title("Delete delay").
				Value(&delay).
				Validate(validateDuration),
			huh.NewConfirm().
				Title("Use the alternate screen?").
				Value(&alt),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("cancelled")
	}

	out := *current
	out.DefaultFilter = filter
	out.AltScreen = alt
	var err error
	if out.NoticeLifetime, err = time.ParseDuration(lifetime); err != nil {
		return nil, err
	}
	if out.DeleteDelay, err = time.ParseDuration(delay); err != nil {
		return nil, err
	}
	return &out, out.Validate()
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
