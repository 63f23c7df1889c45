// Command shipflow runs one release orchestration from a CI trigger.
//
// Exit code 0 means the run completed or was a recognized clean no-op
// (non-tag push, unsupported event, pre-existing release pull request).
// Any validation or forge failure exits 1 after a diagnostic log line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/shipflow"
	"github.com/randalmurphal/shipflow/config"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "shipflow",
		Short:         "Promote a library from its development branch to a release",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newVersionCommand())
	return root
}

func newRunCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute one release orchestration from the trigger environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(dir)
			if err != nil {
				slog.Error("failed to load configuration", "error", err)
				return err
			}

			client, err := cfg.NewForgeClient()
			if err != nil {
				slog.Error("failed to create forge client", "error", err)
				return err
			}

			orch := &shipflow.Orchestrator{
				Client:   client,
				Pipeline: cfg.NewPipeline(),
				Input:    cfg.Input,
			}

			outcome, err := orch.Run(cmd.Context())
			if err != nil {
				slog.Error("release aborted", "reason", outcome.Reason)
				return err
			}
			if outcome.Skipped {
				slog.Info("nothing to release", "reason", outcome.Reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "C", ".", "working tree to validate")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shipflow version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
