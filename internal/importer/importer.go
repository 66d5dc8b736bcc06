// Package importer turns uploaded question files into a uniform list of
// multiple choice questions.
package importer

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported question file format")
	ErrEmptyFile         = errors.New("question file is empty")
)

// Question is one parsed MCQ. Answer is kept as written in the file; the
// caller resolves it against the options.
type Question struct {
	Text    string
	Options [4]string
	Answer  string
}

func (q Question) complete() bool {
	if strings.TrimSpace(q.Text) == "" || strings.TrimSpace(q.Answer) == "" {
		return false
	}
	for _, o := range q.Options {
		if strings.TrimSpace(o) == "" {
			return false
		}
	}
	return true
}

// QuestionImporter parses the content of one file format.
type QuestionImporter interface {
	Import(ctx context.Context, data []byte) ([]Question, error)
}

// Registry picks the importer for a file by its extension.
type Registry struct {
	importers map[string]QuestionImporter
}

// NewRegistry wires the csv, xlsx, pdf and docx importers. extractor may be
// nil; the free text formats then rely on the rule based parser alone.
func NewRegistry(extractor Extractor) *Registry {
	return &Registry{importers: map[string]QuestionImporter{
		".csv":  CSVImporter{},
		".xlsx": XLSXImporter{},
		".pdf":  &PDFImporter{Extractor: extractor},
		".docx": &DocxImporter{Extractor: extractor},
	}}
}

func (r *Registry) For(filename string) (QuestionImporter, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	imp, ok := r.importers[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return imp, nil
}

// Import parses data with the importer registered for filename.
func (r *Registry) Import(ctx context.Context, filename string, data []byte) ([]Question, error) {
	imp, err := r.For(filename)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	return imp.Import(ctx, data)
}

// Supported lists the registered extensions.
func (r *Registry) Supported() []string {
	exts := make([]string, 0, len(r.importers))
	for ext := range r.importers {
		exts = append(exts, ext)
	}
	return exts
}
