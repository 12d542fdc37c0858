package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/buildinfo"
	"github.com/ApplicationsForge/textokit/internal/domain"
	"github.com/ApplicationsForge/textokit/internal/infra/config"
	"github.com/ApplicationsForge/textokit/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "textokit",
		Short:        "textokit - headless toolkit of the Textosaurus editor",
		SilenceUsage: true,
		Version:      buildinfo.String(),
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to <config dir>/logs/textokit.log")

	cmd.AddCommand(fetchCmd(&debug))
	cmd.AddCommand(sendCmd(&debug))
	cmd.AddCommand(toolsCmd(&debug))
	cmd.AddCommand(updateCmd(&debug))
	cmd.AddCommand(shortcutsCmd())

	return cmd
}

// deps bundles what every subcommand needs: the loaded configuration, the
// store it came from, and the directory used for logs and history.
type deps struct {
	cfg   domain.Config
	store *config.Store
	root  string
}

func loadDeps(configPath string) (deps, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return deps{}, err
		}
	}
	path, _ = filepath.Abs(path)

	store := config.NewStore(path)
	cfg, err := store.Load()
	if err != nil {
		return deps{}, err
	}

	return deps{cfg: cfg, store: store, root: filepath.Dir(path)}, nil
}

func setupLogging(root string, debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Root: root, Debug: debug})
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}
