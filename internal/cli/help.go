package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/grodin/ktfmt/internal/render"
)

const version = "0.1.0"

const formatHelpMarkdown = `# ktfmt

ktfmt reads Kotlin sources, canonicalizes them, and writes the result back.

## Styles

Exactly one style applies per run; when several style flags are given, the
last one wins.

- ` + "`--dropbox-style`" + `: 4-space indents (the default)
- ` + "`--google-style`" + `: 2-space indents, managed trailing commas
- ` + "`--kotlinlang-style`" + `: 4-space indents per kotlinlang.org

Unused imports are removed unless ` + "`--do-not-remove-unused-imports`" + `
is given. Wildcard and backtick-quoted imports are never removed.

## Checking without writing

` + "`--dry-run`" + ` (or ` + "`-n`" + `) lists the files that would change,
one per line, and leaves them untouched. Add ` + "`--set-exit-if-changed`" + `
to make the process exit non-zero when anything would change, for CI checks.

## Stdin

Pass ` + "`-`" + ` as the only filename to format stdin onto stdout.
` + "`--stdin-name=<name>`" + ` labels that input in messages and is only
valid together with ` + "`-`" + `.

## Long file lists

A single ` + "`@<path>`" + ` argument is replaced by the lines of that file,
one argument per line, verbatim. This sidesteps shell argument-length limits.
`

func (a *App) printTopicHelp(topic string) error {
	switch topic {
	case "", "root":
		printHelp(a.stdout, "", a.cfgPath)
	case "format":
		a.printFormatHelp()
	case "config":
		printConfigHelp(a.stdout, a.cfgPath)
	default:
		fmt.Fprintf(a.stdout, "unknown help topic %q\n\n", topic)
		printHelp(a.stdout, "", a.cfgPath)
	}
	return nil
}

// printFormatHelp renders the long-form formatting guide, as terminal
// markdown when the preferences and the output stream allow it.
func (a *App) printFormatHelp() {
	enabled := a.cfg.RenderMarkdown && isTerminalWriter(a.stdout)
	fmt.Fprintln(a.stdout, render.Markdown(formatHelpMarkdown, terminalWidth(a.stdout), enabled))
}

func printHelp(w io.Writer, topic string, cfgPath string) {
	switch topic {
	case "config":
		printConfigHelp(w, cfgPath)
	default:
		printRootHelp(w, cfgPath)
	}
}

func printRootHelp(w io.Writer, cfgPath string) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintf(tw, "ktfmt v%s\n", version)
	fmt.Fprintln(tw, "Formats Kotlin source files.")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  ktfmt [flags] <file>...")
	fmt.Fprintln(tw, "  ktfmt [flags] -\tread source from stdin, write to stdout")
	fmt.Fprintln(tw, "  ktfmt @<path>\tread one argument per line from <path>")
	fmt.Fprintln(tw, "  ktfmt <command>\thelp, version, config")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "FLAGS")
	fmt.Fprintln(tw, "  --dropbox-style\tformat with the Dropbox style (default)")
	fmt.Fprintln(tw, "  --google-style\tformat with the Google style")
	fmt.Fprintln(tw, "  --kotlinlang-style\tformat with the kotlinlang.org style")
	fmt.Fprintln(tw, "  -n, --dry-run\tlist files that would change, change nothing")
	fmt.Fprintln(tw, "  --set-exit-if-changed\texit non-zero when any file changes")
	fmt.Fprintln(tw, "  --do-not-remove-unused-imports\tkeep unused imports")
	fmt.Fprintln(tw, "  --stdin-name=<name>\tlogical filename for stdin input")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "EXAMPLES")
	fmt.Fprintln(tw, "  ktfmt src/main/kotlin/App.kt")
	fmt.Fprintln(tw, "  ktfmt --google-style -n $(git ls-files '*.kt')")
	fmt.Fprintln(tw, "  cat App.kt | ktfmt --stdin-name=App.kt -")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TOPICS")
	fmt.Fprintln(tw, "  ktfmt help format|config")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "CONFIG")
	fmt.Fprintf(tw, "  File:\t%s\n", cfgPath)
	fmt.Fprintln(tw, "  KTFMT_CONFIG_DIR:\tdefault config directory override")

	_ = tw.Flush()
}

func printConfigHelp(w io.Writer, cfgPath string) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	fmt.Fprintln(tw, "Show or change stored preferences.")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "USAGE")
	fmt.Fprintln(tw, "  ktfmt config\tshow current preferences")
	fmt.Fprintln(tw, "  ktfmt config show")
	fmt.Fprintln(tw, "  ktfmt config path\tprint the config file path")
	fmt.Fprintln(tw, "  ktfmt config color auto|always|never")
	fmt.Fprintln(tw, "  ktfmt config markdown on|off|status")
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "NOTES")
	fmt.Fprintln(tw, "  Preferences only affect reporting and help rendering.")
	fmt.Fprintln(tw, "  Formatting behavior comes from command-line flags alone.")
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "  File:\t%s\n", cfgPath)
	fmt.Fprintf(tw, "  KTFMT_CONFIG:\tconfig file path override\n")

	_ = tw.Flush()
}
