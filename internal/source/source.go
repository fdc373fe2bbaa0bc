// Package source loads the exam document text from a PDF file, a plain
// text file, or standard input. PDF support is an explicit capability of
// the Loader, not a process-wide flag: a Loader built without a
// TextExtractor simply cannot read PDFs and says so.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoPDFSupport is returned when a .pdf input is given to a Loader
// without a PDF text extractor.
var ErrNoPDFSupport = errors.New("no PDF text extraction capability available")

// TextExtractor pulls plain text out of a document file.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Loader reads a document into a single text blob. Stdin is "-"; a
// .pdf extension routes through the PDF extractor; everything else is
// read verbatim as text.
type Loader struct {
	PDF   TextExtractor
	Stdin io.Reader
}

func (l Loader) Load(path string) (string, error) {
	if path == "-" {
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		if l.PDF == nil {
			return "", fmt.Errorf("%s: %w", path, ErrNoPDFSupport)
		}
		text, err := l.PDF.ExtractText(path)
		if err != nil {
			return "", fmt.Errorf("extract text from %s: %w", path, err)
		}
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
