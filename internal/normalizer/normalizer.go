// Package normalizer rewrites a text file in place with its smart quotes
// replaced by plain ASCII quotes.
package normalizer

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/grovetools/core/logging"
	"github.com/grovetools/quotefix/internal/quotes"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when the target file does not exist.
	ErrNotFound = errors.New("file not found")
	// ErrPermission is returned when the target file cannot be read.
	ErrPermission = errors.New("permission denied")
	// ErrDecode is returned when the file content is not valid UTF-8.
	ErrDecode = errors.New("content is not valid UTF-8")
	// ErrWrite is returned when the transformed content cannot be written back.
	ErrWrite = errors.New("write failed")
)

// Result describes one normalization pass over a file.
type Result struct {
	Path        string
	Counts      quotes.Counts
	BytesBefore int
	BytesAfter  int
	Written     bool
}

// Changed reports whether the file contained any smart quotes.
func (r *Result) Changed() bool {
	return r.Counts.Total() > 0
}

// Normalizer reads, rewrites, and writes back a single file.
type Normalizer struct {
	logger *logrus.Entry
}

// New creates a Normalizer.
func New() *Normalizer {
	return &Normalizer{
		logger: logging.NewLogger("quotefix-normalizer"),
	}
}

// NormalizeFile replaces every smart quote in the file at path and writes the
// result back over the original. The write truncates the file in place, so a
// failed write can leave it partially written.
func (n *Normalizer) NormalizeFile(path string) (*Result, error) {
	text, mode, err := n.read(path)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Path:        path,
		Counts:      quotes.Count(text),
		BytesBefore: len(text),
	}
	out := quotes.Normalize(text)
	res.BytesAfter = len(out)

	if err := os.WriteFile(path, []byte(out), mode); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWrite, path, err)
	}
	res.Written = true

	n.logger.WithFields(logrus.Fields{
		"path":         path,
		"replacements": res.Counts.Total(),
	}).Debug("Normalized file")

	return res, nil
}

// Inspect counts the smart quotes in the file at path without modifying it.
func (n *Normalizer) Inspect(path string) (*Result, error) {
	text, _, err := n.read(path)
	if err != nil {
		return nil, err
	}

	return &Result{
		Path:        path,
		Counts:      quotes.Count(text),
		BytesBefore: len(text),
		BytesAfter:  len(quotes.Normalize(text)),
	}, nil
}

func (n *Normalizer) read(path string) (string, fs.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, classifyReadError(path, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, classifyReadError(path, err)
	}
	if !utf8.Valid(data) {
		n.logger.WithField("path", path).Debug("Rejected non UTF-8 content")
		return "", 0, fmt.Errorf("%w: %s", ErrDecode, path)
	}

	return string(data), info.Mode().Perm(), nil
}

func classifyReadError(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrPermission, path, err)
	default:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
}

// TargetPath is the file rewritten by the quotefix command, relative to the
// working directory.
const TargetPath = "app/api/admin/parse-url/route.ts"
