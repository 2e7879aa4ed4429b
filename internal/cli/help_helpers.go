package cli

import (
	"fmt"
	"strings"
)

// showTopicHelpIfRequested prints topic help when args[idx] is a help token.
// It returns true when help was printed.
func (a *App) showTopicHelpIfRequested(topic string, args []string, idx int) bool {
	if idx < 0 || idx >= len(args) {
		return false
	}
	if !isHelpToken(args[idx]) {
		return false
	}
	printHelp(a.stdout, topic, a.cfgPath)
	return true
}

func isHelpToken(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "help" || value == "-h" || value == "--help"
}

func unknownSubcommand(command string, sub string) error {
	return fmt.Errorf("unknown %s subcommand %q", command, sub)
}
