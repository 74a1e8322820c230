// Package verbatim provides a fluent API for extracting speaker-attributed
// speeches from two-column transcript documents.
//
// Basic usage:
//
//	speeches, warnings, err := verbatim.Open("record.txt").Speeches()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", verbatim.FormatWarnings(warnings))
//	}
//
// With options:
//
//	speeches, _, err := verbatim.Open("record.txt").
//	    LeftColWidth(10).
//	    OverflowThreshold(72).
//	    Speeches()
//
// For advanced use cases, the lower-level source, layout, and segment
// packages are also available.
package verbatim

import (
	"github.com/tsawler/verbatim/model"
)

// Open opens an input file and returns an Extractor for fluent
// configuration. The format (text, JSON, or HTML) is detected when a
// terminal operation runs.
//
// Example:
//
//	speeches, warnings, err := verbatim.Open("record.txt").Speeches()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-decoded document. This
// is useful when lines come from a custom upstream engine rather than a
// file.
//
// Example:
//
//	doc := model.NewDocument()
//	doc.AddPage(model.NewPage(lines))
//	speeches, warnings, err := verbatim.FromDocument(doc).Speeches()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustSpeeches is a helper that wraps a call to Speeches() and panics if
// the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	speeches := verbatim.MustSpeeches(verbatim.Open("record.txt").Speeches())
func MustSpeeches[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
