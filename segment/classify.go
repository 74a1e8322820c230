package segment

import (
	"fmt"
	"regexp"
)

// Kind is the classification of a single reflowed line.
type Kind int

const (
	// Content indicates an ordinary line belonging to the current span.
	Content Kind = iota
	// Speaker indicates a line introducing an attributable speech.
	Speaker
	// President indicates a presiding-officer announcement line.
	President
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case Speaker:
		return "speaker"
	case President:
		return "president"
	default:
		return "content"
	}
}

// Classification is the tagged result of classifying one line. Speaker and
// Qualifier are set only when Kind is Speaker.
type Classification struct {
	Kind Kind

	// Speaker is the boundary label as written, e.g. "Mr. Adeyemi (Nigeria)".
	Speaker string

	// Qualifier is the parenthesized portion of the label, e.g. "Nigeria".
	Qualifier string
}

// ClassifierConfig holds the boundary patterns. Both are anchored at the
// start of the line.
type ClassifierConfig struct {
	// SpeakerPattern matches a speaker boundary: a courtesy title,
	// a name, a parenthesized qualifier, and a colon. Submatch 1 is the
	// full label, submatch 2 the qualifier.
	SpeakerPattern string

	// PresidentPattern matches a presiding-officer announcement.
	PresidentPattern string
}

// DefaultClassifierConfig returns patterns for English-language records.
// Other locales substitute their own courtesy titles.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		SpeakerPattern:   `^((?:Mr|Mrs|Ms|Miss|Sir|Dame|Lord|Dr|M|Mme|Mlle)\.?\s+[^():]+?\s*\(([^()]+)\))\s*:`,
		PresidentPattern: `^The (?:Acting )?President\s*:`,
	}
}

// Classifier classifies reflowed lines into boundary rows and content.
// Each line is evaluated exactly once; downstream stages consume the tagged
// result rather than re-matching.
type Classifier struct {
	speaker   *regexp.Regexp
	president *regexp.Regexp
}

// NewClassifier creates a classifier with default patterns.
func NewClassifier() *Classifier {
	c, err := NewClassifierWithConfig(DefaultClassifierConfig())
	if err != nil {
		// The default patterns are compile-time constants.
		panic(err)
	}
	return c
}

// NewClassifierWithConfig creates a classifier with custom patterns.
// It returns an error if either pattern does not compile, or if the speaker
// pattern lacks the label and qualifier capture groups.
func NewClassifierWithConfig(config ClassifierConfig) (*Classifier, error) {
	speaker, err := regexp.Compile(config.SpeakerPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling speaker pattern: %w", err)
	}
	if speaker.NumSubexp() < 2 {
		return nil, fmt.Errorf("speaker pattern must capture a label (group 1) and a qualifier (group 2), got %d groups", speaker.NumSubexp())
	}
	president, err := regexp.Compile(config.PresidentPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling president pattern: %w", err)
	}
	return &Classifier{speaker: speaker, president: president}, nil
}

// Classify returns the tagged classification for a single line.
// President markers take precedence: "The President:" must never be read as
// a speaker boundary by a permissive speaker pattern.
func (c *Classifier) Classify(line string) Classification {
	if c.president.MatchString(line) {
		return Classification{Kind: President}
	}

	if m := c.speaker.FindStringSubmatch(line); m != nil {
		return Classification{
			Kind:      Speaker,
			Speaker:   m[1],
			Qualifier: m[2],
		}
	}

	return Classification{Kind: Content}
}
