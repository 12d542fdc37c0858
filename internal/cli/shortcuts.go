package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func shortcutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcuts",
		Short: "Inspect and change action shortcuts",
	}
	cmd.AddCommand(shortcutsListCmd())
	cmd.AddCommand(shortcutsSetCmd())
	return cmd
}

func shortcutsListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show action shortcuts with configured overrides applied",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			d, err := loadDeps(configPath)
			if err != nil {
				return err
			}

			actions := domain.ApplyShortcuts(domain.DefaultActions(), d.cfg.Shortcuts)
			for _, a := range actions {
				marker := " "
				if a.Shortcut != "" && a.Shortcut != a.DefaultShortcut {
					marker = "*"
				}
				fmt.Fprintf(c.OutOrStdout(), "%s %-20s %-12s %s\n",
					marker, a.Name, a.Effective(), labelStyle.Render(a.Title))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	return cmd
}

func shortcutsSetCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "set ACTION CHORD",
		Short: "Override an action's shortcut and save the configuration",
		Long: "Override an action's shortcut and save the configuration.\n" +
			"Setting the chord to \"-\" restores the action's default.",
		Args: cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			name, chord := args[0], args[1]

			d, err := loadDeps(configPath)
			if err != nil {
				return err
			}

			actions := domain.ApplyShortcuts(domain.DefaultActions(), d.cfg.Shortcuts)
			idx := -1
			for i, a := range actions {
				if a.Name == name {
					idx = i
					break
				}
			}
			if idx < 0 {
				return fmt.Errorf("unknown action %q", name)
			}

			if chord == "-" {
				actions[idx].Shortcut = actions[idx].DefaultShortcut
			} else {
				actions[idx].Shortcut = chord
			}

			d.cfg.Shortcuts = domain.CollectShortcuts(actions)
			if err := d.store.Save(d.cfg); err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "%s %s = %s\n",
				okStyle.Render("saved"), name, actions[idx].Effective())
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	return cmd
}
