// Package style defines the built-in formatting presets.
package style

// Options selects the layout rules the formatter applies to a file.
type Options struct {
	// MaxWidth is the column limit for formatted output.
	MaxWidth int
	// BlockIndent is the indentation of a block relative to its parent.
	BlockIndent int
	// ContinuationIndent is the indentation of a wrapped continuation line.
	ContinuationIndent int
	// ManageTrailingCommas enables trailing-comma insertion and removal.
	ManageTrailingCommas bool
	// RemoveUnusedImports drops import statements with no remaining references.
	RemoveUnusedImports bool
}

// Dropbox returns the Dropbox style preset.
func Dropbox() Options {
	return Options{
		MaxWidth:            100,
		BlockIndent:         4,
		ContinuationIndent:  4,
		RemoveUnusedImports: true,
	}
}

// Google returns the Google style preset.
func Google() Options {
	return Options{
		MaxWidth:             100,
		BlockIndent:          2,
		ContinuationIndent:   2,
		ManageTrailingCommas: true,
		RemoveUnusedImports:  true,
	}
}

// Kotlinlang returns the kotlinlang.org style preset.
func Kotlinlang() Options {
	return Options{
		MaxWidth:            100,
		BlockIndent:         4,
		ContinuationIndent:  4,
		RemoveUnusedImports: true,
	}
}

// DefaultOptions returns the preset used when no style flag is given.
func DefaultOptions() Options {
	return Dropbox()
}
