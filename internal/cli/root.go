// Package cli implements the steward command line shell: an interactive
// read-eval loop plus one-shot subcommands for asking questions and
// inspecting the assistant's status and capabilities.
package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/stewardhq/steward"
	"github.com/stewardhq/steward/config"
	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/logging"
	"github.com/stewardhq/steward/plugin"
)

type rootOptions struct {
	configPath string
	debug      bool
}

// NewRootCommand creates the `steward` command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "steward",
		Short: "steward is a plugin-routed personal assistant shell",
		Long: heredoc.Doc(`
			steward accepts free-text input, routes it to capability plugins via
			keyword matching and falls back to a conversational responder when no
			plugin claims the input. A bounded history of exchanges is kept for
			the lifetime of the session.

			Run without arguments to start an interactive session. Type 'help'
			inside the session for the available built-in commands.`),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := buildAssistant(opts)
			if err != nil {
				return err
			}
			return runShell(cmd.InOrStdin(), cmd.OutOrStdout(), assistant)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	cmd.AddCommand(
		newAskCommand(opts),
		newStatusCommand(opts),
		newCapabilitiesCommand(opts),
	)

	return cmd
}

// buildAssistant loads the configuration and wires the plugin set. This is
// the explicit registration step replacing filesystem plugin discovery: the
// fixed set of known plugins is constructed from their config fragments and
// handed to the assistant in a stable order.
func buildAssistant(opts *rootOptions) (*steward.Assistant, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(cfg.Logging.Level)
	if opts.debug {
		level = logging.LogLevelDebug
	}
	logger := logging.NewSlogLogger(level, cfg.Logging.Format, false)

	plugins := []core.Plugin{
		plugin.NewTaskTracker(func(o *plugin.TaskTrackerOptions) {
			o.Enabled = cfg.Plugins["tasks"].IsEnabled()
		}),
	}

	assistant, err := steward.New(func(o *steward.Options) {
		o.Plugins = plugins
		o.HistoryLimit = cfg.Conversation.HistoryLimit
		o.Logger = logger
	})
	if err != nil {
		return nil, fmt.Errorf("assistant startup: %w", err)
	}
	return assistant, nil
}
