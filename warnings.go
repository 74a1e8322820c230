package verbatim

import (
	"fmt"
	"strings"
)

// WarningCode identifies a class of non-fatal extraction condition.
type WarningCode string

// Warning codes. The reflow and segmentation heuristics are approximate by
// nature; warnings are the auditable list of low-confidence spots that a
// reviewer may want to inspect by hand.
const (
	// WarnFooterFingerprintMissing: the first-page footer boilerplate was
	// absent and footer stripping was skipped.
	WarnFooterFingerprintMissing WarningCode = "footer_fingerprint_missing"

	// WarnColumnReflowDegenerate: a line yielded no usable fragment for
	// either column and contributed no reflowed line.
	WarnColumnReflowDegenerate WarningCode = "column_reflow_degenerate"

	// WarnNoSpeakersFound: no speaker boundaries were detected; the
	// speech list is empty.
	WarnNoSpeakersFound WarningCode = "no_speakers_found"

	// WarnEmptySpeechBody: a speaker boundary was immediately followed by
	// another boundary; the unit was emitted carrying only its boundary
	// line.
	WarnEmptySpeechBody WarningCode = "empty_speech_body"
)

// Warning describes a non-fatal condition encountered during extraction.
// Extraction succeeded but the result may be imperfect near the indicated
// location.
type Warning struct {
	// Code identifies the condition.
	Code WarningCode

	// Message is a human-readable description.
	Message string

	// Page is the 1-indexed page number, or 0 when not page-specific.
	Page int

	// Line is the relevant line locator, or -1 when not line-specific.
	// For reflow warnings this is the 0-indexed raw line within the page;
	// for segmentation warnings it is the global reflowed position.
	Line int
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	loc := ""
	switch {
	case w.Page > 0 && w.Line >= 0:
		loc = fmt.Sprintf(" (page %d, line %d)", w.Page, w.Line)
	case w.Page > 0:
		loc = fmt.Sprintf(" (page %d)", w.Page)
	case w.Line >= 0:
		loc = fmt.Sprintf(" (line %d)", w.Line)
	}
	return fmt.Sprintf("%s: %s%s", w.Code, w.Message, loc)
}

// FormatWarnings formats a list of warnings as a single string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
