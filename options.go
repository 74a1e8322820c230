package verbatim

import (
	"github.com/tsawler/verbatim/layout"
	"github.com/tsawler/verbatim/profile"
	"github.com/tsawler/verbatim/segment"
)

// ExtractOptions holds configuration for speech extraction.
type ExtractOptions struct {
	// Column reflow calibration
	leftColWidth      int
	overflowThreshold int
	maxOverflowMoves  int
	normalizeText     bool

	// Boilerplate stripping
	anchorPattern      string
	footerFingerprint  string
	runningHeaderLines int

	// Boundary classification
	speakerPattern   string
	presidentPattern string
}

// defaultOptions returns the default extraction options, assembled from the
// per-package defaults.
func defaultOptions() ExtractOptions {
	reflow := layout.DefaultReflowConfig()
	strip := layout.DefaultStripConfig()
	classify := segment.DefaultClassifierConfig()

	return ExtractOptions{
		leftColWidth:       reflow.LeftColWidth,
		overflowThreshold:  reflow.OverflowThreshold,
		maxOverflowMoves:   reflow.MaxOverflowMoves,
		normalizeText:      reflow.NormalizeText,
		anchorPattern:      strip.AnchorPattern,
		footerFingerprint:  strip.FooterFingerprint,
		runningHeaderLines: strip.RunningHeaderLines,
		speakerPattern:     classify.SpeakerPattern,
		presidentPattern:   classify.PresidentPattern,
	}
}

// clone creates a copy of ExtractOptions. All fields are scalars, so a
// value copy is a deep copy.
func (o ExtractOptions) clone() ExtractOptions {
	return o
}

// applyProfile overlays the non-zero fields of a corpus profile.
func (o ExtractOptions) applyProfile(p profile.Profile) ExtractOptions {
	out := o.clone()
	if p.LeftColWidth > 0 {
		out.leftColWidth = p.LeftColWidth
	}
	if p.OverflowThreshold > 0 {
		out.overflowThreshold = p.OverflowThreshold
	}
	if p.AnchorPattern != "" {
		out.anchorPattern = p.AnchorPattern
	}
	if p.FooterFingerprint != "" {
		out.footerFingerprint = p.FooterFingerprint
	}
	if p.SpeakerPattern != "" {
		out.speakerPattern = p.SpeakerPattern
	}
	if p.PresidentPattern != "" {
		out.presidentPattern = p.PresidentPattern
	}
	return out
}

// reflowConfig builds the layout.ReflowConfig for these options.
func (o ExtractOptions) reflowConfig() layout.ReflowConfig {
	config := layout.DefaultReflowConfig()
	config.LeftColWidth = o.leftColWidth
	config.OverflowThreshold = o.overflowThreshold
	config.MaxOverflowMoves = o.maxOverflowMoves
	config.NormalizeText = o.normalizeText
	return config
}

// stripConfig builds the layout.StripConfig for these options.
func (o ExtractOptions) stripConfig() layout.StripConfig {
	config := layout.DefaultStripConfig()
	config.AnchorPattern = o.anchorPattern
	config.FooterFingerprint = o.footerFingerprint
	config.RunningHeaderLines = o.runningHeaderLines
	return config
}

// classifierConfig builds the segment.ClassifierConfig for these options.
func (o ExtractOptions) classifierConfig() segment.ClassifierConfig {
	return segment.ClassifierConfig{
		SpeakerPattern:   o.speakerPattern,
		PresidentPattern: o.presidentPattern,
	}
}
