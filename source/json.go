package source

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/verbatim/model"
)

// jsonDocument is the explicit JSON ingestion form.
type jsonDocument struct {
	Name  string     `json:"name,omitempty"`
	Pages [][]string `json:"pages"`
}

// FromJSON reads a document from JSON. Two forms are accepted: an object
// with a "pages" array of line arrays, or a bare nested array of pages.
func FromJSON(r io.Reader, name string) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading JSON input: %w", err)
	}

	var pages [][]string

	var jd jsonDocument
	if err := json.Unmarshal(data, &jd); err == nil && jd.Pages != nil {
		pages = jd.Pages
		if name == "" {
			name = jd.Name
		}
	} else if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("parsing JSON input: %w", err)
	}

	doc := model.NewDocument()
	doc.Name = name
	for _, lines := range pages {
		doc.AddPage(model.NewPage(lines))
	}

	return doc, nil
}
