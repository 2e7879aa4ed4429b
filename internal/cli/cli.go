// Package cli parses ktfmt invocations and wires them to the formatter.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/grodin/ktfmt/internal/config"
	"github.com/grodin/ktfmt/internal/format"
)

// ErrFilesChanged reports that --set-exit-if-changed found files to change.
// The entrypoint maps it to a non-zero exit code without printing an error.
var ErrFilesChanged = errors.New("files would be changed")

// App encapsulates CLI runtime dependencies and loaded preferences.
type App struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	cfgPath string
	cfg     *config.Config
}

// Run executes the ktfmt CLI with the provided process arguments and streams.
func Run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	cfgPath, err := config.ResolvePath("")
	if err != nil {
		return err
	}
	cfg, loadErr := config.Load(cfgPath)
	if loadErr != nil && !errors.Is(loadErr, config.ErrConfigNotFound) {
		return loadErr
	}

	app := &App{stdin: stdin, stdout: stdout, stderr: stderr, cfgPath: cfgPath, cfg: cfg}
	return app.dispatch(args)
}

func (a *App) dispatch(args []string) error {
	if len(args) == 0 {
		printHelp(a.stdout, "", a.cfgPath)
		return nil
	}

	switch args[0] {
	case "help":
		topic := ""
		if len(args) > 1 {
			topic = strings.ToLower(strings.TrimSpace(args[1]))
		}
		return a.printTopicHelp(topic)
	case "-h", "--help":
		printHelp(a.stdout, "", a.cfgPath)
		return nil
	case "version", "--version":
		fmt.Fprintln(a.stdout, version)
		return nil
	case "config":
		return a.runConfig(args[1:])
	default:
		return a.runFormat(args)
	}
}

func (a *App) runFormat(args []string) error {
	parsed, err := ParseArgs(args)
	if err != nil {
		return err
	}
	if len(parsed.FileNames) == 0 {
		printHelp(a.stderr, "", a.cfgPath)
		return usageErrorf("no files to format")
	}

	changed, err := format.Run(format.RunOptions{
		FileNames: parsed.FileNames,
		Options:   parsed.FormattingOptions,
		DryRun:    parsed.DryRun,
		StdinName: parsed.StdinName,
		Stdin:     a.stdin,
		Stdout:    a.stdout,
		Stderr:    a.stderr,
		Color:     a.colorEnabled(a.stderr),
	})
	if err != nil {
		return err
	}
	if parsed.SetExitIfChanged && changed > 0 {
		return ErrFilesChanged
	}
	return nil
}

// colorEnabled applies the configured color mode, falling back to terminal
// detection in auto mode.
func (a *App) colorEnabled(w io.Writer) bool {
	switch a.cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return isTerminalWriter(w)
}

func (a *App) saveConfig() error {
	return config.Save(a.cfgPath, a.cfg)
}

func isTerminalWriter(w io.Writer) bool {
	fdw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(fdw.Fd()))
}

func terminalWidth(w io.Writer) int {
	const fallback = 100
	fdw, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return fallback
	}
	fd := int(fdw.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
