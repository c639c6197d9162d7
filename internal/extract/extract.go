// Package extract turns uploaded PDF and email blobs into plain text.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"riskmai/internal/model"
)

// ErrUnsupportedType is returned for any extension other than .pdf and .eml.
var ErrUnsupportedType = errors.New("unsupported file type, only PDF and EML files are accepted")

// ExtractionError reports a blob that could not be parsed.
type ExtractionError struct {
	Message string
}

func (e *ExtractionError) Error() string {
	return "extraction failed: " + e.Message
}

// EmailBodyMode selects how multipart email bodies are flattened.
type EmailBodyMode string

const (
	// BodyConcat appends every plain part followed by every stripped HTML part.
	BodyConcat EmailBodyMode = "concat"
	// BodyPreferPlain uses the plain parts and falls back to stripped HTML only when none exist.
	BodyPreferPlain EmailBodyMode = "prefer_plain"
)

// Result is the outcome of a successful extraction.
type Result struct {
	Text  string
	Kind  string
	Email *model.EmailMeta
}

// Extractor converts an in-memory blob into text based on its declared extension.
type Extractor interface {
	Extract(blob []byte, ext string) (*Result, error)
}

// TextExtractor is the default Extractor. It holds no state besides its options.
type TextExtractor struct {
	bodyMode EmailBodyMode
}

// New returns a TextExtractor. An unknown mode falls back to BodyConcat.
func New(mode EmailBodyMode) *TextExtractor {
	if mode != BodyPreferPlain {
		mode = BodyConcat
	}
	return &TextExtractor{bodyMode: mode}
}

var _ Extractor = (*TextExtractor)(nil)

// Extract dispatches on ext, which may be given with or without a leading dot.
func (x *TextExtractor) Extract(blob []byte, ext string) (*Result, error) {
	switch NormalizeExt(ext) {
	case ".pdf":
		text, err := extractPDF(blob)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text, Kind: model.FileTypePDF}, nil
	case ".eml":
		text, meta, err := extractEmail(blob, x.bodyMode)
		if err != nil {
			return nil, err
		}
		return &Result{Text: text, Kind: model.FileTypeEmail, Email: meta}, nil
	default:
		return nil, ErrUnsupportedType
	}
}

// NormalizeExt lower-cases ext and ensures a leading dot.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// Supported reports whether the file name carries an extension Extract accepts.
func Supported(fileName string) bool {
	switch NormalizeExt(filepath.Ext(fileName)) {
	case ".pdf", ".eml":
		return true
	}
	return false
}

func extractionErrorf(format string, args ...any) *ExtractionError {
	return &ExtractionError{Message: fmt.Sprintf(format, args...)}
}
