package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/tsawler/verbatim/model"
	"github.com/tsawler/verbatim/text"
)

// ReflowConfig holds configuration for column reflow. The defaults are
// positional heuristics calibrated to one document family; corpora with
// different typography must recalibrate them.
type ReflowConfig struct {
	// LeftColWidth is the character offset bound for the left column: the
	// first fragment starting within the first LeftColWidth characters of
	// a line becomes the column-0 candidate. Lines whose fragments all
	// start beyond it belong entirely to column 1.
	// Default: 8
	LeftColWidth int

	// OverflowThreshold is the exclusive length bound for the column-1
	// candidate, in characters. While column 1 is longer than this, its
	// leading fragment is moved into column 0. A candidate of exactly
	// this length is not redistributed.
	// Default: 65
	OverflowThreshold int

	// MaxOverflowMoves bounds the overflow-correction loop. Each move
	// removes one fragment from column 1, so the loop terminates on its
	// own; the bound guards against pathological inputs regardless.
	// Default: 64
	MaxOverflowMoves int

	// NormalizeText applies unicode normalization (compatibility folding,
	// format-character removal) to each line before splitting.
	// Default: true
	NormalizeText bool
}

// DefaultReflowConfig returns sensible default configuration.
func DefaultReflowConfig() ReflowConfig {
	return ReflowConfig{
		LeftColWidth:      8,
		OverflowThreshold: 65,
		MaxOverflowMoves:  64,
		NormalizeText:     true,
	}
}

// Reflower splits two-column lines into column fragments and reassembles a
// single reading-order line sequence per page.
type Reflower struct {
	config ReflowConfig
}

// NewReflower creates a reflower with default configuration.
func NewReflower() *Reflower {
	return &Reflower{config: DefaultReflowConfig()}
}

// NewReflowerWithConfig creates a reflower with custom configuration.
func NewReflowerWithConfig(config ReflowConfig) *Reflower {
	if config.MaxOverflowMoves <= 0 {
		config.MaxOverflowMoves = DefaultReflowConfig().MaxOverflowMoves
	}
	return &Reflower{config: config}
}

// Degenerate locates a line that yielded no usable fragment for either
// column and therefore contributed no reflowed line. Non-fatal; callers
// surface these as warnings.
type Degenerate struct {
	// Page is the 1-indexed page number.
	Page int

	// Line is the 0-indexed position of the line within its page.
	Line int
}

// fragment is a substring produced by splitting a line on runs of two or
// more spaces. Start is the rune offset of the fragment in the original
// line. Fragments are never reordered within a line, only redistributed
// between the two columns.
type fragment struct {
	text  string
	start int
}

// splitFragments splits a line on maximal runs of >=2 consecutive space
// characters, discarding empty fragments but preserving order and original
// rune offsets.
func splitFragments(line string) []fragment {
	var frags []fragment

	var cur strings.Builder
	curStart := 0
	offset := 0    // rune offset of the next rune
	spaceRun := 0  // length of the pending space run

	flush := func() {
		if cur.Len() > 0 {
			frags = append(frags, fragment{text: cur.String(), start: curStart})
			cur.Reset()
		}
	}

	for _, r := range line {
		if r == ' ' {
			spaceRun++
			offset++
			continue
		}

		if spaceRun > 0 {
			if spaceRun >= 2 {
				flush()
			} else if cur.Len() > 0 {
				cur.WriteByte(' ')
			}
			spaceRun = 0
		}
		if cur.Len() == 0 {
			curStart = offset
		}
		cur.WriteRune(r)
		offset++
	}
	flush()

	return frags
}

// SplitLine splits a single raw line into its left and right column
// strings, applying overflow correction. Either string may be empty. Both
// are trimmed of leading and trailing whitespace.
func (r *Reflower) SplitLine(line string) (left, right string) {
	if r.config.NormalizeText {
		line = text.Normalize(line)
	}

	frags := splitFragments(line)
	if len(frags) == 0 {
		return "", ""
	}

	// A line is only two-column when the split produced more than one
	// fragment and the first fragment starts inside the left margin.
	// Single-fragment lines belong entirely to column 1, whatever their
	// indent: this keeps lines without wide gaps unchanged by reflow.
	var leftFrags, rightFrags []fragment
	if len(frags) > 1 && frags[0].start < r.config.LeftColWidth {
		leftFrags = frags[:1]
		rightFrags = frags[1:]
	} else {
		rightFrags = frags
	}

	// Overflow correction: a long column-0 entry can bleed extra
	// fragments into column 1's slot through irregular spacing. While the
	// column-1 candidate is longer than the threshold (exclusive), move
	// its leading fragment back into column 0. Only applies when a
	// column-0 candidate exists. Each move shrinks the fragment list, so
	// the loop terminates within MaxOverflowMoves.
	moves := 0
	for len(leftFrags) > 0 && len(rightFrags) > 0 &&
		runeLen(joinFragments(rightFrags)) > r.config.OverflowThreshold &&
		moves < r.config.MaxOverflowMoves {
		leftFrags = append(leftFrags, rightFrags[0])
		rightFrags = rightFrags[1:]
		moves++
	}

	left = strings.TrimSpace(joinFragments(leftFrags))
	right = strings.TrimSpace(joinFragments(rightFrags))
	return left, right
}

// joinFragments joins fragment texts with single spaces, in original order.
func joinFragments(frags []fragment) string {
	switch len(frags) {
	case 0:
		return ""
	case 1:
		return frags[0].text
	}
	parts := make([]string, len(frags))
	for i, f := range frags {
		parts[i] = f.text
	}
	return strings.Join(parts, " ")
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// ReflowPage reassembles one page into reading order: every line's left
// column string in line order, then every line's right column string in
// line order. Lines whose resulting string is empty contribute nothing.
// startPos is the global position assigned to the first emitted line.
func (r *Reflower) ReflowPage(page *model.Page, startPos int) ([]model.ReflowedLine, []Degenerate) {
	lefts := make([]string, len(page.Lines))
	rights := make([]string, len(page.Lines))

	var degenerate []Degenerate
	for i, raw := range page.Lines {
		left, right := r.SplitLine(raw)
		lefts[i] = left
		rights[i] = right
		if left == "" && right == "" && strings.TrimSpace(raw) != "" {
			degenerate = append(degenerate, Degenerate{Page: page.Number, Line: i})
		}
	}

	var out []model.ReflowedLine
	pos := startPos
	emit := func(s string) {
		if s == "" {
			return
		}
		out = append(out, model.ReflowedLine{Text: s, Page: page.Number, Position: pos})
		pos++
	}

	// Column-major linearization: the left column's full page body comes
	// before the right column's.
	for _, s := range lefts {
		emit(s)
	}
	for _, s := range rights {
		emit(s)
	}

	return out, degenerate
}

// ReflowDocument reflows every page in order, assigning monotonically
// increasing global positions across the whole document.
func (r *Reflower) ReflowDocument(doc *model.Document) ([]model.ReflowedLine, []Degenerate) {
	var lines []model.ReflowedLine
	var degenerate []Degenerate

	for _, page := range doc.Pages {
		pageLines, pageDegenerate := r.ReflowPage(page, len(lines))
		lines = append(lines, pageLines...)
		degenerate = append(degenerate, pageDegenerate...)
	}

	return lines, degenerate
}
