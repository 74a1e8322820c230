package model

// Speech is a single speaker-attributed unit of transcript text. It spans
// from its introducing boundary line (inclusive) to the line before the next
// boundary, and is immutable once produced.
type Speech struct {
	// Speaker is the boundary label as it appears in the text, including
	// any parenthesized qualifier (e.g. "Mr. Dlamini (South Africa)").
	Speaker string `json:"speaker"`

	// Qualifier is the parenthesized portion of the label, typically a
	// country or organization name. Null in JSON when the boundary
	// carried none.
	Qualifier *string `json:"qualifier"`

	// Lines holds the speech body in reading order. The first line is the
	// boundary line itself.
	Lines []string `json:"lines"`

	// StartLine and EndLine are the global reflowed positions of the
	// first and last line of the unit, inclusive.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`
}

// IsEmpty reports whether the unit carries no content beyond its boundary
// line. Such units are still emitted, flagged with an EmptySpeechBody
// warning by the segmenter.
func (s *Speech) IsEmpty() bool {
	return len(s.Lines) <= 1
}

// LineCount returns the number of lines in the speech body, including the
// boundary line.
func (s *Speech) LineCount() int {
	return len(s.Lines)
}
