// Package segment slices a reflowed transcript into speaker-attributed
// speech units.
//
// Each reflowed line is classified exactly once by the [Classifier] into a
// tagged variant: a speaker boundary (a courtesy title followed by a
// parenthesized qualifier and a colon), a presiding-officer marker ("The
// President:" or "The Acting President:"), or plain content.
//
// The [Segmenter] then walks the boundary rows in document order. A speaker
// boundary opens a speech unit spanning from the boundary line (inclusive)
// to the line before the next boundary; a president marker opens a span
// that is discarded entirely. The final span extends to the last line of
// the document.
//
//	segmenter := segment.NewSegmenter()
//	result := segmenter.Segment(lines)
//	for _, speech := range result.Speeches {
//	    fmt.Println(speech.Speaker)
//	}
//
// A document with no boundary rows yields an empty speech list; that is a
// valid outcome, not an error.
package segment
