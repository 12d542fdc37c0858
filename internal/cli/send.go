package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/domain"
)

func sendCmd(debug *bool) *cobra.Command {
	var (
		o        transferOptions
		method   string
		data     string
		dataFile string
	)

	cmd := &cobra.Command{
		Use:   "send URL",
		Short: "Issue a POST, PUT or DELETE request",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var m domain.HTTPMethod
			switch strings.ToUpper(method) {
			case "POST":
				m = domain.MethodPost
			case "PUT":
				m = domain.MethodPut
			case "DELETE":
				m = domain.MethodDelete
			default:
				return fmt.Errorf("invalid method %q (expected POST, PUT or DELETE)", method)
			}

			if data != "" && dataFile != "" {
				return fmt.Errorf("--data and --data-file are mutually exclusive")
			}
			body := []byte(data)
			if dataFile != "" {
				var err error
				body, err = os.ReadFile(dataFile)
				if err != nil {
					return err
				}
			}
			if m == domain.MethodDelete && len(body) > 0 {
				return fmt.Errorf("DELETE does not take a request body")
			}

			return runTransfer(*debug, o, m, args[0], body)
		},
	}

	cmd.Flags().StringVar(&o.config, "config", "", "path to the configuration file")
	cmd.Flags().StringVarP(&method, "method", "X", "POST", "request method: POST, PUT or DELETE")
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "read the request body from this file")
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write the response body to this file instead of stdout")
	cmd.Flags().IntVar(&o.timeoutMS, "timeout", -1, "inactivity timeout in milliseconds (0 disables)")
	cmd.Flags().StringArrayVarP(&o.headers, "header", "H", nil, "extra request header, \"Name: Value\" (repeatable)")
	cmd.Flags().StringVar(&o.username, "user", "", "username for HTTP basic auth")
	cmd.Flags().StringVar(&o.password, "password", "", "password for HTTP basic auth")
	cmd.Flags().BoolVar(&o.noSave, "no-save", false, "do not record the transfer in the history store")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress the progress bar")

	return cmd
}
