package cli

import (
	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func fetchCmd(debug *bool) *cobra.Command {
	var o transferOptions

	cmd := &cobra.Command{
		Use:   "fetch URL",
		Short: "Download a URL, following redirects",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runTransfer(*debug, o, domain.MethodGet, args[0], nil)
		},
	}

	cmd.Flags().StringVar(&o.config, "config", "", "path to the configuration file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the body to this file instead of stdout")
	cmd.Flags().IntVar(&o.timeoutMS, "timeout", -1, "inactivity timeout in milliseconds (0 disables)")
	cmd.Flags().StringArrayVarP(&o.headers, "header", "H", nil, "extra request header, \"Name: Value\" (repeatable)")
	cmd.Flags().StringVar(&o.username, "user", "", "username for HTTP basic auth")
	cmd.Flags().StringVar(&o.password, "password", "", "password for HTTP basic auth")
	cmd.Flags().IntVar(&o.throttle, "throttle", 0, "cap download speed in bytes per second")
	cmd.Flags().BoolVar(&o.noSave, "no-save", false, "do not record the transfer in the history store")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress the progress bar")

	return cmd
}
