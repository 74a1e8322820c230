package verbatim

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/tsawler/verbatim/layout"
	"github.com/tsawler/verbatim/model"
	"github.com/tsawler/verbatim/profile"
	"github.com/tsawler/verbatim/segment"
	"github.com/tsawler/verbatim/source"
)

// ErrHeaderNotFound is returned when a document's first page never matches
// the header anchor pattern. It is fatal for that document only; in batch
// mode the failure is recorded and the batch continues.
var ErrHeaderNotFound = layout.ErrHeaderNotFound

// Extractor provides a fluent interface for extracting speeches from
// transcript documents. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source: either a file to open or an already-decoded document.
	filename string
	doc      *model.Document

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Extractor. Each chain method returns a new
// instance, so a configured Extractor is never mutated.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		doc:      e.doc,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// LeftColWidth sets the character offset bound for the left column: a
// line's first fragment becomes the column-0 candidate only when it starts
// within the first K characters. Default 8.
func (e *Extractor) LeftColWidth(k int) *Extractor {
	newExt := e.clone()
	if k <= 0 {
		newExt.err = fmt.Errorf("left column width must be positive, got %d", k)
		return newExt
	}
	newExt.options.leftColWidth = k
	return newExt
}

// OverflowThreshold sets the exclusive length bound for the column-1
// candidate; longer candidates have leading fragments moved back into
// column 0. Default 65.
func (e *Extractor) OverflowThreshold(t int) *Extractor {
	newExt := e.clone()
	if t <= 0 {
		newExt.err = fmt.Errorf("overflow threshold must be positive, got %d", t)
		return newExt
	}
	newExt.options.overflowThreshold = t
	return newExt
}

// AnchorPattern sets the regular expression locating the first-page header
// anchor.
func (e *Extractor) AnchorPattern(pattern string) *Extractor {
	newExt := e.clone()
	newExt.options.anchorPattern = pattern
	return newExt
}

// FooterFingerprint sets the substring identifying the first line of the
// first-page footer boilerplate. An empty fingerprint disables footer
// stripping.
func (e *Extractor) FooterFingerprint(fingerprint string) *Extractor {
	newExt := e.clone()
	newExt.options.footerFingerprint = fingerprint
	return newExt
}

// SpeakerPattern sets the regular expression matching speaker boundary
// rows. Submatch 1 must capture the label, submatch 2 the qualifier.
func (e *Extractor) SpeakerPattern(pattern string) *Extractor {
	newExt := e.clone()
	newExt.options.speakerPattern = pattern
	return newExt
}

// PresidentPattern sets the regular expression matching presiding-officer
// announcement rows.
func (e *Extractor) PresidentPattern(pattern string) *Extractor {
	newExt := e.clone()
	newExt.options.presidentPattern = pattern
	return newExt
}

// NormalizeText controls unicode normalization of raw lines before column
// splitting. Default true.
func (e *Extractor) NormalizeText(enabled bool) *Extractor {
	newExt := e.clone()
	newExt.options.normalizeText = enabled
	return newExt
}

// WithProfile overlays a corpus calibration profile on the current
// options. Explicit chain methods called after WithProfile still win.
func (e *Extractor) WithProfile(p profile.Profile) *Extractor {
	newExt := e.clone()
	newExt.options = newExt.options.applyProfile(p)
	return newExt
}

// ============================================================================
// Terminal Operations (execute extraction and return results)
// ============================================================================

// Speeches runs the full pipeline and returns the extracted speech units
// in document order.
//
// Returns the speeches, any warnings encountered during processing, and an
// error if extraction failed. Warnings indicate non-fatal issues where
// extraction succeeded but results may be imperfect.
//
// Example:
//
//	speeches, warnings, err := verbatim.Open("record.txt").Speeches()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", verbatim.FormatWarnings(warnings))
//	}
func (e *Extractor) Speeches() ([]model.Speech, []Warning, error) {
	lines, warnings, err := e.ReflowedLines()
	if err != nil {
		return nil, warnings, err
	}

	classifier, err := segment.NewClassifierWithConfig(e.options.classifierConfig())
	if err != nil {
		return nil, warnings, err
	}

	result := segment.NewSegmenterWithClassifier(classifier).Segment(lines)

	if len(result.Speeches) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarnNoSpeakersFound,
			Message: "no speaker boundaries detected; speech list is empty",
			Line:    -1,
		})
	}

	for _, idx := range result.EmptyBodies {
		speech := result.Speeches[idx]
		warnings = append(warnings, Warning{
			Code:    WarnEmptySpeechBody,
			Message: fmt.Sprintf("speech by %s has no body beyond its boundary line", speech.Speaker),
			Line:    speech.StartLine,
		})
	}

	return result.Speeches, warnings, nil
}

// ReflowedLines runs stripping and reflow only, returning the document's
// reading-order line sequence. Useful for inspecting the intermediate
// stream that segmentation consumes.
func (e *Extractor) ReflowedLines() ([]model.ReflowedLine, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}

	doc, err := e.ensureDocument()
	if err != nil {
		return nil, nil, err
	}

	stripper, err := layout.NewStripperWithConfig(e.options.stripConfig())
	if err != nil {
		return nil, nil, err
	}

	stripped, err := stripper.Strip(doc)
	if err != nil {
		return nil, nil, err
	}

	var warnings []Warning
	if !stripped.FooterFound && e.options.footerFingerprint != "" {
		warnings = append(warnings, Warning{
			Code:    WarnFooterFingerprintMissing,
			Message: "first-page footer fingerprint not found; footer stripping skipped",
			Page:    1,
			Line:    -1,
		})
	}

	reflower := layout.NewReflowerWithConfig(e.options.reflowConfig())
	lines, degenerate := reflower.ReflowDocument(stripped.Document)

	for _, d := range degenerate {
		warnings = append(warnings, Warning{
			Code:    WarnColumnReflowDegenerate,
			Message: "line yielded no usable fragment for either column",
			Page:    d.Page,
			Line:    d.Line,
		})
	}

	return lines, warnings, nil
}

// JSON runs the pipeline and returns the speeches serialized as an
// indented JSON array.
func (e *Extractor) JSON() ([]byte, []Warning, error) {
	speeches, warnings, err := e.Speeches()
	if err != nil {
		return nil, warnings, err
	}

	// An empty result serializes as [], not null.
	if speeches == nil {
		speeches = []model.Speech{}
	}

	data, err := json.MarshalIndent(speeches, "", "  ")
	if err != nil {
		return nil, warnings, fmt.Errorf("encoding speeches: %w", err)
	}
	return data, warnings, nil
}

// WriteJSON runs the pipeline and writes the speeches to w as a JSON
// array.
func (e *Extractor) WriteJSON(w io.Writer) ([]Warning, error) {
	data, warnings, err := e.JSON()
	if err != nil {
		return warnings, err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return warnings, fmt.Errorf("writing speeches: %w", err)
	}
	return warnings, nil
}

// WriteJSONLines runs the pipeline and writes the speeches to w as a JSON
// lines stream, one record per line.
func (e *Extractor) WriteJSONLines(w io.Writer) ([]Warning, error) {
	speeches, warnings, err := e.Speeches()
	if err != nil {
		return warnings, err
	}

	enc := json.NewEncoder(w)
	for i := range speeches {
		if err := enc.Encode(&speeches[i]); err != nil {
			return warnings, fmt.Errorf("encoding speech %d: %w", i, err)
		}
	}
	return warnings, nil
}

// ensureDocument decodes the input file unless a document was supplied
// directly.
func (e *Extractor) ensureDocument() (*model.Document, error) {
	if e.doc != nil {
		return e.doc, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no input specified")
	}
	return source.Open(e.filename)
}
