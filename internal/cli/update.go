package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ApplicationsForge/textokit/internal/buildinfo"
	"github.com/ApplicationsForge/textokit/internal/infra/downloader"
	"github.com/ApplicationsForge/textokit/internal/infra/logger"
	"github.com/ApplicationsForge/textokit/internal/usecase"
)

func updateCmd(debug *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Check for a newer release",
	}
	cmd.AddCommand(updateCheckCmd(debug))
	return cmd
}

func updateCheckCmd(debug *bool) *cobra.Command {
	var (
		configPath string
		feedURL    string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Query the release feed and compare against this build",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			d, err := loadDeps(configPath)
			if err != nil {
				return err
			}
			defer setupLogging(d.root, *debug)()

			feed := d.cfg.Update.FeedURL
			if feedURL != "" {
				feed = feedURL
			}

			fetcher := downloader.NewSyncFetcher(
				downloader.WithLogger(logger.L()),
				downloader.WithUserAgent(d.cfg.Network.UserAgent),
				downloader.WithMaxRedirects(d.cfg.Network.MaxRedirects),
			)

			uc := usecase.NewCheckUpdate(fetcher, usecase.WithFeedTimeout(d.cfg.Network.Timeout))
			check, err := uc.Execute(c.Context(), feed, buildinfo.Version)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("current:"), check.CurrentVersion)
			fmt.Fprintf(out, "%s %s\n", labelStyle.Render("latest: "), check.Latest.Version)
			if check.Newer {
				fmt.Fprintf(out, "%s newer release available", okStyle.Render("update:"))
				if check.Latest.AssetURL != "" {
					fmt.Fprintf(out, " at %s", check.Latest.AssetURL)
				}
				fmt.Fprintln(out)
			} else {
				fmt.Fprintln(out, labelStyle.Render("up to date"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the configuration file")
	cmd.Flags().StringVar(&feedURL, "feed", "", "override the release feed URL")
	return cmd
}
