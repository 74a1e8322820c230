package source

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/verbatim/format"
	"github.com/tsawler/verbatim/model"
)

// Open reads a document from a file, detecting its format from the file
// name and, when that is inconclusive, from its content.
func Open(filename string) (*model.Document, error) {
	f, err := format.DetectFile(filename)
	if err != nil {
		return nil, fmt.Errorf("detecting format of %s: %w", filename, err)
	}

	fh, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer fh.Close()

	return FromReader(fh, f, filename)
}

// FromReader reads a document of a known format from r. name is recorded
// on the document for warnings and batch reports.
func FromReader(r io.Reader, f format.Format, name string) (*model.Document, error) {
	switch f {
	case format.Text:
		return FromText(r, name)
	case format.JSON:
		return FromJSON(r, name)
	case format.HTML:
		return FromHTML(r, name)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", f)
	}
}
