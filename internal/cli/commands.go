package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/stewardhq/steward/engine"
)

func newAskCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the assistant a single question",
		Example: heredoc.Doc(`
			# Route one input and print the response
			steward ask "add task buy milk"`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := buildAssistant(opts)
			if err != nil {
				return err
			}
			question := strings.Join(args, " ")
			response := assistant.Process(question, map[string]any{"channel": "ask"})
			fmt.Fprintln(cmd.OutOrStdout(), response)
			return nil
		},
	}
}

func newStatusCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the assistant's current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := buildAssistant(opts)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), assistant.Status())
			return nil
		},
	}
}

func newCapabilitiesCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "capabilities",
		Short: "List the loaded plugins and their commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			assistant, err := buildAssistant(opts)
			if err != nil {
				return err
			}
			printCapabilities(cmd.OutOrStdout(), assistant.Capabilities())
			return nil
		},
	}
}

func printStatus(out io.Writer, st engine.Status) {
	table := uitable.New()
	table.AddRow("PLUGINS LOADED:", st.PluginCount)
	table.AddRow("CONVERSATION ACTIVE:", st.ConversationActive)
	last := st.LastInteraction
	if last == "" {
		last = "none"
	}
	table.AddRow("LAST INTERACTION:", last)
	table.AddRow("CAPABILITIES:", strings.Join(st.Plugins, ", "))
	fmt.Fprintln(out, table)
}

func printCapabilities(out io.Writer, report engine.CapabilityReport) {
	if len(report.Plugins) == 0 {
		fmt.Fprintln(out, "No plugins loaded.")
		return
	}

	names := make([]string, 0, len(report.Plugins))
	for name := range report.Plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true
	table.AddRow("PLUGIN", "DESCRIPTION", "COMMANDS")
	for _, name := range names {
		c := report.Plugins[name]
		table.AddRow(name, c.Description, strings.Join(c.Commands, "\n"))
	}
	fmt.Fprintln(out, table)
}
