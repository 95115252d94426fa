package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"confluence-poster/internal/config"
	"confluence-poster/internal/di"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts di.Options

	cmd := &cobra.Command{
		Use:   "confluence-poster",
		Short: "Publish the notification rules of every pipe on a node to a Confluence page",
		Long: `confluence-poster fetches all pipes from NODE_URL, collects the notification
rules they declare and replaces the body of Confluence page PAGE_ID with a
table of rule types per pipe.

Required environment: NODE_URL, JWT, PAGE_ID, CONFLUENCE_USERNAME, CONFLUENCE_PASSWORD.
Optional environment: LOG_LEVEL, CONFLUENCE_BASE_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts.Stdout = cmd.OutOrStdout()
			opts.Stderr = cmd.ErrOrStderr()

			application, err := di.InitializeApp(config.Load(), opts)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to initialize application: %v\n", err)
				return err
			}
			// Run logs its own failures.
			return application.Run(ctx)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln(err)
		c.PrintErrln(c.UsageString())
		return err
	})

	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the rendered table to stdout instead of updating Confluence")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR); overrides LOG_LEVEL")

	return cmd
}
