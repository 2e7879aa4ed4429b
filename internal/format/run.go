package format

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/grodin/ktfmt/internal/style"
)

// StdinSentinel is the filename that selects standard input.
const StdinSentinel = "-"

// DefaultStdinName labels stdin input when no --stdin-name was given.
const DefaultStdinName = "<stdin>"

// RunOptions describes one formatting run and its IO streams.
type RunOptions struct {
	FileNames []string
	Options   style.Options
	DryRun    bool
	StdinName string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Color enables colored change reports on Stderr.
	Color bool
}

// Run formats every input named by opts and returns how many of them would
// change. Files are rewritten in place unless DryRun is set, in which case
// changed paths are listed on Stdout instead. Stdin input is always written
// to Stdout, formatted.
func Run(opts RunOptions) (changed int, err error) {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	if len(opts.FileNames) == 1 && opts.FileNames[0] == StdinSentinel {
		return runStdin(opts)
	}

	report := color.New(color.FgGreen)
	if !opts.Color {
		report.DisableColor()
	}

	for _, name := range opts.FileNames {
		src, err := os.ReadFile(name)
		if err != nil {
			return changed, fmt.Errorf("read %s: %w", name, err)
		}
		formatted := Format(string(src), opts.Options)
		if formatted == string(src) {
			continue
		}
		changed++
		if opts.DryRun {
			fmt.Fprintln(opts.Stdout, name)
			continue
		}
		if err := writeInPlace(name, []byte(formatted)); err != nil {
			return changed, err
		}
		report.Fprintf(opts.Stderr, "formatted %s\n", name)
	}
	return changed, nil
}

func runStdin(opts RunOptions) (int, error) {
	name := opts.StdinName
	if name == "" {
		name = DefaultStdinName
	}

	src, err := io.ReadAll(opts.Stdin)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}
	formatted := Format(string(src), opts.Options)

	changed := 0
	if formatted != string(src) {
		changed = 1
	}
	if opts.DryRun {
		if changed > 0 {
			fmt.Fprintln(opts.Stdout, name)
		}
		return changed, nil
	}
	if _, err := io.WriteString(opts.Stdout, formatted); err != nil {
		return changed, fmt.Errorf("write %s: %w", name, err)
	}
	return changed, nil
}

// writeInPlace rewrites path with the file's existing permissions.
func writeInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
