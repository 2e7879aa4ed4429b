// Package format canonicalizes Kotlin source text and drives formatting runs
// over files and standard input.
package format

import (
	"regexp"
	"sort"
	"strings"

	"github.com/grodin/ktfmt/internal/style"
)

var (
	importRe = regexp.MustCompile(`^import\s+(\S+?)(?:\s+as\s+(\w+))?\s*$`)
	identRe  = regexp.MustCompile(`[\p{L}_][\p{L}\p{N}_]*`)
)

// Format returns the canonical form of src under opts. The result is stable:
// formatting already formatted text yields it unchanged.
//
// Canonicalization covers line endings, trailing whitespace, leading-tab
// expansion, blank-line runs, the final newline, and the import list
// (deduplicated, sorted, and stripped of unused entries when the options ask
// for it).
func Format(src string, opts style.Options) string {
	text := strings.ReplaceAll(src, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	lines = rewriteImports(lines, opts.RemoveUnusedImports)

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = expandLeadingTabs(line, opts.BlockIndent)
		line = strings.TrimRight(line, " \t")
		if line == "" {
			blank = true
			continue
		}
		if blank && len(out) > 0 {
			out = append(out, "")
		}
		blank = false
		out = append(out, line)
	}

	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}

type importLine struct {
	statement string
	path      string
	alias     string
}

// name returns the identifier an import binds: the alias when present,
// otherwise the last path segment.
func (imp importLine) name() string {
	if imp.alias != "" {
		return imp.alias
	}
	if idx := strings.LastIndexByte(imp.path, '.'); idx >= 0 {
		return imp.path[idx+1:]
	}
	return imp.path
}

// rewriteImports collects every import statement, deduplicates and sorts
// them, drops unused ones when asked to, and emits the block where the first
// import appeared. Wildcard and backtick-quoted imports are always kept.
func rewriteImports(lines []string, removeUnused bool) []string {
	var imports []importLine
	first := -1
	isImport := make([]bool, len(lines))
	for i, line := range lines {
		m := importRe.FindStringSubmatch(strings.TrimRight(line, " \t"))
		if m == nil {
			continue
		}
		isImport[i] = true
		if first < 0 {
			first = i
		}
		imp := importLine{path: m[1], alias: m[2]}
		imp.statement = "import " + imp.path
		if imp.alias != "" {
			imp.statement += " as " + imp.alias
		}
		imports = append(imports, imp)
	}
	if first < 0 {
		return lines
	}

	if removeUnused {
		used := usedIdentifiers(lines, isImport)
		kept := imports[:0]
		for _, imp := range imports {
			if keepImport(imp, used) {
				kept = append(kept, imp)
			}
		}
		imports = kept
	}

	sort.Slice(imports, func(i, j int) bool { return imports[i].statement < imports[j].statement })

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == first {
			seen := ""
			for _, imp := range imports {
				if imp.statement == seen {
					continue
				}
				seen = imp.statement
				out = append(out, imp.statement)
			}
			continue
		}
		if isImport[i] {
			continue
		}
		out = append(out, line)
	}
	return out
}

func keepImport(imp importLine, used map[string]bool) bool {
	if strings.HasSuffix(imp.path, ".*") {
		return true
	}
	if strings.Contains(imp.name(), "`") {
		return true
	}
	return used[imp.name()]
}

// usedIdentifiers scans every non-import line for identifier tokens.
func usedIdentifiers(lines []string, isImport []bool) map[string]bool {
	used := make(map[string]bool)
	for i, line := range lines {
		if isImport[i] {
			continue
		}
		for _, ident := range identRe.FindAllString(line, -1) {
			used[ident] = true
		}
	}
	return used
}

func expandLeadingTabs(line string, indent int) string {
	tabs := 0
	for tabs < len(line) && line[tabs] == '\t' {
		tabs++
	}
	if tabs == 0 {
		return line
	}
	return strings.Repeat(" ", tabs*indent) + line[tabs:]
}
