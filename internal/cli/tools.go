package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/infra/exttools"
	"github.com/ApplicationsForge/textokit/internal/infra/logger"
	"github.com/ApplicationsForge/textokit/internal/usecase"
)

func toolsCmd(debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Manage and run configured external tools",
	}
	cmd.AddCommand(toolsListCmd())
	cmd.AddCommand(toolsRunCmd(debug))
	return cmd
}

func toolsListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tools defined in the configuration",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			d, err := loadDeps(configPath)
			if err != nil {
				return err
			}
			if len(d.cfg.Tools) == 0 {
				fmt.Fprintln(c.OutOrStdout(), labelStyle.Render("no tools configured"))
				return nil
			}
			for _, t := range d.cfg.Tools {
				fmt.Fprintf(c.OutOrStdout(), "%s  %s\n",
					okStyle.Render(t.Name), strings.Join(t.Argv(), " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	return cmd
}

func toolsRunCmd(debug *bool) *cobra.Command {
	var (
		configPath string
		stdin      bool
		vars       []string
	)

	cmd := &cobra.Command{
		Use:   "run NAME",
		Short: "Run a configured tool and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			d, err := loadDeps(configPath)
			if err != nil {
				return err
			}
			defer setupLogging(d.root, *debug)()

			var input []byte
			if stdin {
				input, err = io.ReadAll(c.InOrStdin())
				if err != nil {
					return err
				}
			}

			varMap := make(map[string]string, len(vars))
			for _, v := range vars {
				name, value, ok := strings.Cut(v, "=")
				if !ok || name == "" {
					return fmt.Errorf("invalid variable %q (expected NAME=VALUE)", v)
				}
				varMap[name] = value
			}

			uc := usecase.NewRunTool(exttools.New(exttools.WithLogger(logger.L())))
			res, err := uc.Execute(c.Context(), d.cfg, args[0], input, varMap)
			if err != nil {
				return err
			}

			os.Stdout.Write(res.Stdout)
			os.Stderr.Write(res.Stderr)
			if res.Truncated {
				fmt.Fprintln(os.Stderr, labelStyle.Render("output truncated"))
			}
			if res.ExitCode != 0 {
				return fmt.Errorf("tool %q exited with code %d", args[0], res.ExitCode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "feed standard input to the tool")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "template variable, NAME=VALUE (repeatable)")
	return cmd
}
