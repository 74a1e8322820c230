package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/tsawler/verbatim/model"
)

// FromText reads plain text where pages are delimited by form-feed (\f)
// characters. The form feed is consumed at this edge: the returned document
// carries only structural page boundaries, never a sentinel token in the
// line stream.
func FromText(r io.Reader, name string) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading text input: %w", err)
	}

	doc := model.NewDocument()
	doc.Name = name

	rawPages := strings.Split(string(data), "\f")

	// A trailing form feed produces an empty final page; drop it rather
	// than emitting a page with no lines.
	if n := len(rawPages); n > 1 && strings.TrimSpace(rawPages[n-1]) == "" {
		rawPages = rawPages[:n-1]
	}

	for _, raw := range rawPages {
		doc.AddPage(model.NewPage(splitLines(raw)))
	}

	return doc, nil
}

// splitLines splits page text into lines, handling CRLF and a trailing
// newline. Line content is otherwise preserved byte for byte; leading
// indentation is meaningful to column reflow.
func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
