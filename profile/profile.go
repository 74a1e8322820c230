// Package profile provides corpus calibration profiles.
//
// The column-split and boundary-detection heuristics are tuned to one
// document family; corpora with different typography carry their own
// calibration as a small YAML file:
//
//	left_col_width: 10
//	overflow_threshold: 72
//	anchor_pattern: '^Presidente:'
//	footer_fingerprint: 'La presente acta contiene'
//
// Fields left unset keep their defaults, so a profile only states what
// differs from the reference corpus.
package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile holds corpus-calibrated settings for the extraction pipeline.
type Profile struct {
	// LeftColWidth is the character offset bound for the left column.
	LeftColWidth int `yaml:"left_col_width"`

	// OverflowThreshold is the exclusive length bound for the column-1
	// candidate.
	OverflowThreshold int `yaml:"overflow_threshold"`

	// AnchorPattern locates the first-page header anchor.
	AnchorPattern string `yaml:"anchor_pattern"`

	// FooterFingerprint identifies the first-page footer boilerplate.
	FooterFingerprint string `yaml:"footer_fingerprint"`

	// SpeakerPattern matches speaker boundary rows.
	SpeakerPattern string `yaml:"speaker_pattern"`

	// PresidentPattern matches presiding-officer announcement rows.
	PresidentPattern string `yaml:"president_pattern"`
}

// Default returns the profile for the reference corpus.
func Default() Profile {
	return Profile{
		LeftColWidth:      8,
		OverflowThreshold: 65,
	}
}

// Parse reads a profile from YAML, overlaying the defaults.
func Parse(data []byte) (Profile, error) {
	p := Default()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing profile: %w", err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Load reads a profile from a YAML file, overlaying the defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading profile %s: %w", path, err)
	}
	return Parse(data)
}

func (p Profile) validate() error {
	if p.LeftColWidth <= 0 {
		return fmt.Errorf("left_col_width must be positive, got %d", p.LeftColWidth)
	}
	if p.OverflowThreshold <= 0 {
		return fmt.Errorf("overflow_threshold must be positive, got %d", p.OverflowThreshold)
	}
	return nil
}
