package segment

import (
	"github.com/tsawler/verbatim/model"
)

// Segmenter slices a reflowed line sequence into speech units.
type Segmenter struct {
	classifier *Classifier
}

// NewSegmenter creates a segmenter with the default classifier.
func NewSegmenter() *Segmenter {
	return &Segmenter{classifier: NewClassifier()}
}

// NewSegmenterWithClassifier creates a segmenter using a custom classifier.
func NewSegmenterWithClassifier(classifier *Classifier) *Segmenter {
	return &Segmenter{classifier: classifier}
}

// Result contains the outcome of segmentation.
type Result struct {
	// Speeches holds the emitted units in document order.
	Speeches []model.Speech

	// EmptyBodies lists indices into Speeches of units whose body is just
	// the boundary line. Such units are emitted but flagged; callers
	// surface them as warnings.
	EmptyBodies []int

	// BoundaryCount is the total number of boundary rows found, speaker
	// and president boundaries combined. Zero means the document had no
	// attributable speeches; that is a valid outcome, not an error.
	BoundaryCount int
}

// boundary is a classified boundary row with its index into the line slice.
type boundary struct {
	index int
	class Classification
}

// Segment classifies every line once and slices the sequence into speech
// units. A speaker boundary at index p with the next boundary at p' yields a
// unit spanning [p, p'-1]; a president boundary discards its span. The final
// span extends to the last line.
//
// Every input line ends up in exactly one place: a single emitted unit, a
// discarded president span, or the preamble before the first boundary.
func (s *Segmenter) Segment(lines []model.ReflowedLine) *Result {
	result := &Result{}

	var boundaries []boundary
	for i, line := range lines {
		class := s.classifier.Classify(line.Text)
		if class.Kind != Content {
			boundaries = append(boundaries, boundary{index: i, class: class})
		}
	}
	result.BoundaryCount = len(boundaries)

	for bi, b := range boundaries {
		if b.class.Kind != Speaker {
			continue
		}

		end := len(lines)
		if bi+1 < len(boundaries) {
			end = boundaries[bi+1].index
		}

		span := lines[b.index:end]
		texts := make([]string, len(span))
		for i, line := range span {
			texts[i] = line.Text
		}

		// A qualifier group that did not participate in the match (custom
		// patterns may make it optional) serializes as null, not "".
		var qualifier *string
		if b.class.Qualifier != "" {
			q := b.class.Qualifier
			qualifier = &q
		}

		speech := model.Speech{
			Speaker:   b.class.Speaker,
			Qualifier: qualifier,
			Lines:     texts,
			StartLine: lines[b.index].Position,
			EndLine:   lines[end-1].Position,
		}

		if speech.IsEmpty() {
			result.EmptyBodies = append(result.EmptyBodies, len(result.Speeches))
		}
		result.Speeches = append(result.Speeches, speech)
	}

	return result
}
