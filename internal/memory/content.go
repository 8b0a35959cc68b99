package memory

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/matsen/claude-memory/internal/pdf"
)

// ReadContentFile reads memory content from a file. PDFs are converted to
// plain text; anything else is read verbatim. Read failures are returned as
// a *ValidationError.
func ReadContentFile(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		text, err := pdf.ExtractText(path)
		if err != nil {
			return "", &ValidationError{Reason: "reading file " + path, Err: err}
		}
		return text, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ValidationError{Reason: "reading file " + path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &ValidationError{Reason: "file " + path + " is not valid UTF-8"}
	}
	return string(data), nil
}

// resolveContent picks the content source for create.
// Exactly one of content and file must be set.
func resolveContent(content, file string) (string, error) {
	switch {
	case content == "" && file == "":
		return "", invalid("no content provided for custom memory (use --content or --file)")
	case content != "" && file != "":
		return "", invalid("--content and --file are mutually exclusive")
	case file != "":
		text, err := ReadContentFile(file)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", invalid("file %s has no content", file)
		}
		return text, nil
	default:
		if strings.TrimSpace(content) == "" {
			return "", invalid("no content provided for custom memory")
		}
		return content, nil
	}
}
