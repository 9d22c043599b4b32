// Package writer persists the program document as indented JSON
package writer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	perr "talentmap/internal/platform/errors"
	"talentmap/internal/platform/logger"
	dom "talentmap/internal/services/programdata/domain"
)

// filesystem seams
var (
	mkdirAll  = os.MkdirAll
	writeFile = os.WriteFile
)

// JSONFile implements dom.WriterPort for a single output file
type JSONFile struct {
	path string
}

// New returns a writer targeting path; the parent directory is created on Write
func New(path string) *JSONFile { return &JSONFile{path: path} }

// Path returns the output file path
func (w *JSONFile) Path() string { return w.path }

// Write encodes doc and replaces the output file. The write is not atomic:
// a failure part way may leave a truncated file behind
func (w *JSONFile) Write(ctx context.Context, doc dom.Document) (int, error) {
	b, err := Encode(doc)
	if err != nil {
		return 0, perr.WithField(perr.Wrap(err, perr.ErrorCodeWrite, "encode program document"), w.path)
	}
	if err := mkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return 0, perr.WithField(perr.Wrapf(err, perr.ErrorCodeWrite, "create output directory for %s", w.path), w.path)
	}
	if err := writeFile(w.path, b, 0o644); err != nil {
		return 0, perr.WithField(perr.Wrapf(err, perr.ErrorCodeWrite, "write %s", w.path), w.path)
	}
	logger.C(ctx).Debug().Str("path", w.path).Int("bytes", len(b)).Int("countries", len(doc)).Msg("program document written")
	return len(b), nil
}

// Encode renders doc as UTF-8 JSON with two-space indentation and a trailing newline.
// Non-ASCII text is emitted literally and keys are sorted, so equal documents encode identically
func Encode(doc dom.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if doc == nil {
		doc = dom.Document{}
	}
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
