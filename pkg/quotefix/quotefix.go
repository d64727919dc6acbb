// Package quotefix exposes smart quote normalization to other Go programs.
package quotefix

import (
	"github.com/grovetools/quotefix/internal/normalizer"
	"github.com/grovetools/quotefix/internal/quotes"
)

// TargetPath is the file rewritten by the quotefix command.
const TargetPath = normalizer.TargetPath

// Result describes one normalization pass over a file.
type Result = normalizer.Result

// Error kinds returned by NormalizeFile.
var (
	ErrNotFound   = normalizer.ErrNotFound
	ErrPermission = normalizer.ErrPermission
	ErrDecode     = normalizer.ErrDecode
	ErrWrite      = normalizer.ErrWrite
)

// Normalize replaces the four smart quote characters in text with ASCII quotes.
func Normalize(text string) string {
	return quotes.Normalize(text)
}

// NormalizeFile rewrites the file at path in place with its smart quotes replaced.
func NormalizeFile(path string) (*Result, error) {
	return normalizer.New().NormalizeFile(path)
}
