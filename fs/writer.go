// Package fs exports context documents as plain-text files.
package fs

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fwojciec/wikictx"
)

// Ensure Writer implements wikictx.DocumentExporter at compile time.
var _ wikictx.DocumentExporter = (*Writer)(nil)

// Writer writes context documents into a directory, one UTF-8 text file
// per collection run, named wiki_context_<date>.txt.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes into the given directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Export writes the document and returns the artifact path.
func (w *Writer) Export(document string, generatedAt time.Time) (string, error) {
	if document == "" {
		return "", wikictx.Errorf(wikictx.EINVALID, "document required")
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, wikictx.ExportFilename(generatedAt))
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", err
	}

	return path, nil
}
