package tui

import "strings"

// Command represents a parsed slash command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a slash command from input.
// Returns nil if the input is not a slash command.
func ParseCommand(input string) *Command {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	input = input[1:] // strip leading /
	parts := strings.SplitN(input, " ", 2)
	cmd := &Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// HelpText returns the help message for all slash commands.
func HelpText() string {
	return `Type to filter cards by title. Commands:
  /help            Show this help message
  /quit, /exit     Exit cardkit
  /cards           Show the card list
  /dashboard       Show the charts
  /filter <term>   Filter cards by title
  /clear           Clear the filter and messages
  /update          Check for updates and upgrade
Keys: tab switch page · esc clear · pgup/pgdown scroll · ctrl+c quit`
}
