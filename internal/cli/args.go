package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/grodin/ktfmt/internal/style"
)

// StdinMarker is the filename token that selects standard input.
const StdinMarker = "-"

// ParsedArgs is a fully validated formatter invocation.
type ParsedArgs struct {
	FileNames         []string
	FormattingOptions style.Options
	DryRun            bool
	SetExitIfChanged  bool
	StdinName         string
}

// UsageError describes a malformed or contradictory argument list. The caller
// reports it and maps it to a non-zero exit code; parsing never aborts the
// process.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Message: fmt.Sprintf(format, args...)}
}

// ParseArgs converts raw command-line tokens into a validated invocation.
//
// When the input is a single @path token, the lines of that file become the
// token list before classification; the expansion happens at most once and is
// not recursive. Every validation failure is returned as *UsageError. A
// failed argument-file read is returned as the underlying I/O error instead.
func ParseArgs(args []string) (ParsedArgs, error) {
	if len(args) == 1 && strings.HasPrefix(args[0], "@") {
		expanded, err := readArgsFile(strings.TrimPrefix(args[0], "@"))
		if err != nil {
			return ParsedArgs{}, err
		}
		args = expanded
	}

	parsed := ParsedArgs{FormattingOptions: style.DefaultOptions()}
	removeUnusedImports := true
	stdinNameSet := false

	for _, arg := range args {
		switch {
		case arg == "--dropbox-style":
			parsed.FormattingOptions = style.Dropbox()
		case arg == "--google-style":
			parsed.FormattingOptions = style.Google()
		case arg == "--kotlinlang-style":
			parsed.FormattingOptions = style.Kotlinlang()
		case arg == "--dry-run" || arg == "-n":
			parsed.DryRun = true
		case arg == "--set-exit-if-changed":
			parsed.SetExitIfChanged = true
		case arg == "--do-not-remove-unused-imports":
			removeUnusedImports = false
		case strings.HasPrefix(arg, "--stdin-name"):
			value, ok := parseKeyValue("--stdin-name", arg)
			if !ok {
				return ParsedArgs{}, usageErrorf("Found option '%s', expected '--stdin-name=<value>'", arg)
			}
			parsed.StdinName = value
			stdinNameSet = true
		case strings.HasPrefix(arg, "--"):
			return ParsedArgs{}, usageErrorf("Unexpected option: %s", arg)
		case strings.HasPrefix(arg, "@"):
			return ParsedArgs{}, usageErrorf("Unexpected option: %s", arg)
		default:
			parsed.FileNames = append(parsed.FileNames, arg)
		}
	}

	if slices.Contains(parsed.FileNames, StdinMarker) {
		if len(parsed.FileNames) > 1 {
			// List everything alongside one stdin marker; duplicate
			// markers count as conflicting inputs too.
			others := make([]string, 0, len(parsed.FileNames)-1)
			seenMarker := false
			for _, name := range parsed.FileNames {
				if name == StdinMarker && !seenMarker {
					seenMarker = true
					continue
				}
				others = append(others, name)
			}
			return ParsedArgs{}, usageErrorf(
				"Cannot read from stdin and files in the same invocation: %s, %s",
				StdinMarker, strings.Join(others, ", "))
		}
	} else if stdinNameSet {
		return ParsedArgs{}, usageErrorf("--stdin-name can only be specified when reading from stdin")
	}

	parsed.FormattingOptions.RemoveUnusedImports = removeUnusedImports
	return parsed, nil
}

// parseKeyValue splits arg on the first '=' and returns the value part.
// The value is accepted when the key before '=' matches or when a value part
// exists at all, so a token with the expected prefix but a different key
// still yields its value. Absent when arg contains no '='.
func parseKeyValue(key, arg string) (string, bool) {
	parts := strings.SplitN(arg, "=", 2)
	if len(parts) < 2 {
		return "", false
	}
	if parts[0] == key || len(parts) == 2 {
		return parts[1], true
	}
	return "", false
}

// readArgsFile returns the lines of path, one argument per line, verbatim.
// No trimming or quote handling is applied; only line terminators are
// removed.
func readArgsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read args file: %w", err)
	}
	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	content = strings.TrimSuffix(content, "\n")
	if content == "" {
		return nil, nil
	}
	return strings.Split(content, "\n"), nil
}
