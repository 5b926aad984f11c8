package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/stewardhq/steward"
)

var (
	promptColor   = color.New(color.FgCyan, color.Bold)
	responseColor = color.New(color.FgWhite)
	noticeColor   = color.New(color.FgYellow)
)

// runShell drives the interactive read-eval loop. Built-in commands are
// handled locally; everything else is routed through the assistant.
func runShell(in io.Reader, out io.Writer, assistant *steward.Assistant) error {
	noticeColor.Fprintln(out, "steward - type 'help' for commands, 'quit' to exit")

	scanner := bufio.NewScanner(in)
	for {
		promptColor.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit", "bye":
			noticeColor.Fprintln(out, "Goodbye!")
			return nil
		case "help":
			printHelp(out)
		case "status":
			printStatus(out, assistant.Status())
		case "capabilities":
			printCapabilities(out, assistant.Capabilities())
		case "reset":
			assistant.ResetConversation()
			noticeColor.Fprintln(out, "Conversation reset.")
		default:
			response := assistant.Process(input, map[string]any{"channel": "shell"})
			responseColor.Fprintf(out, "%s\n\n", response)
		}
	}
}

func printHelp(out io.Writer) {
	fmt.Fprint(out, `Available commands:
  help          Show this help message
  status        Show assistant status
  capabilities  Show available capabilities
  reset         Reset conversation history
  quit          Exit the assistant

Anything else is sent to the assistant.

`)
}
