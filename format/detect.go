// Package format provides input format detection for the verbatim library.
package format

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Text indicates plain text with form-feed page delimiters.
	Text
	// JSON indicates a JSON pages document.
	JSON
	// HTML indicates a paged HTML export.
	HTML
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Text:
		return "Text"
	case JSON:
		return "JSON"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Text:
		return ".txt"
	case JSON:
		return ".json"
	case HTML:
		return ".html"
	default:
		return ""
	}
}

// Detect determines input format from the filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return Text
	case ".json", ".jsonl":
		return JSON
	case ".html", ".htm":
		return HTML
	default:
		return Unknown
	}
}

// DetectFromContent inspects leading bytes to determine format. This is
// more reliable than extension-based detection for files delivered without
// useful names. Plain text is the fallback for any content that is neither
// JSON nor HTML.
func DetectFromContent(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return Text
	}

	switch trimmed[0] {
	case '{', '[':
		return JSON
	case '<':
		if detectHTMLContent(trimmed) {
			return HTML
		}
	}

	return Text
}

// detectHTMLContent checks if the data looks like HTML.
func detectHTMLContent(data []byte) bool {
	upper := strings.ToUpper(string(data[:min(len(data), 512)]))
	if strings.HasPrefix(upper, "<!DOCTYPE HTML") {
		return true
	}
	if strings.HasPrefix(upper, "<HTML") {
		return true
	}
	// XML declaration followed by html-like content could be XHTML.
	if strings.HasPrefix(upper, "<?XML") && strings.Contains(upper, "<HTML") {
		return true
	}
	// Fragment exports often start straight at a container element.
	if strings.HasPrefix(upper, "<DIV") || strings.HasPrefix(upper, "<BODY") || strings.HasPrefix(upper, "<SECTION") {
		return true
	}

	return false
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// DetectFile determines a file's format from its extension, falling back to
// content sniffing when the extension is unknown.
func DetectFile(filename string) (Format, error) {
	if f := Detect(filename); f != Unknown {
		return f, nil
	}

	fh, err := os.Open(filename)
	if err != nil {
		return Unknown, err
	}
	defer fh.Close()

	head := make([]byte, 512)
	n, err := fh.Read(head)
	if n == 0 && err != nil && err != io.EOF {
		return Unknown, err
	}

	return DetectFromContent(head[:n]), nil
}
