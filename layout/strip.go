package layout

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tsawler/verbatim/model"
)

// ErrHeaderNotFound is returned when the first page never matches the header
// anchor pattern. Without the anchor the content start cannot be located
// safely, so processing of the document is aborted.
var ErrHeaderNotFound = errors.New("first-page header anchor not found")

// StripConfig holds configuration for boilerplate stripping.
type StripConfig struct {
	// AnchorPattern is the regular expression locating the first-page
	// header anchor (the presiding-officer introduction). All lines up to
	// and including the first match are dropped.
	// Default: `^President:`
	AnchorPattern string

	// FooterFingerprint is a fixed substring identifying the first line of
	// the first-page footer boilerplate. Everything from that line to the
	// end of the first page is dropped. When absent, footer stripping is
	// skipped; some documents legitimately lack a footer.
	// Default: "This record contains the text of speeches"
	FooterFingerprint string

	// RunningHeaderLines is the number of lines dropped from the top of
	// every page after the first.
	// Default: 1
	RunningHeaderLines int
}

// DefaultStripConfig returns sensible default configuration.
func DefaultStripConfig() StripConfig {
	return StripConfig{
		AnchorPattern:      `^President:`,
		FooterFingerprint:  "This record contains the text of speeches",
		RunningHeaderLines: 1,
	}
}

// Stripper removes first-page header/footer boilerplate and per-page
// running headers from a document.
type Stripper struct {
	config StripConfig
	anchor *regexp.Regexp
}

// NewStripper creates a stripper with default configuration.
func NewStripper() *Stripper {
	s, err := NewStripperWithConfig(DefaultStripConfig())
	if err != nil {
		// The default pattern is a compile-time constant.
		panic(err)
	}
	return s
}

// NewStripperWithConfig creates a stripper with custom configuration.
// It returns an error if the anchor pattern does not compile.
func NewStripperWithConfig(config StripConfig) (*Stripper, error) {
	anchor, err := regexp.Compile(config.AnchorPattern)
	if err != nil {
		return nil, fmt.Errorf("compiling anchor pattern: %w", err)
	}
	return &Stripper{config: config, anchor: anchor}, nil
}

// StripResult contains the outcome of boilerplate stripping.
type StripResult struct {
	// Document is the stripped document. The input document is never
	// mutated.
	Document *model.Document

	// FooterFound reports whether the first-page footer fingerprint was
	// located. False is non-fatal; callers surface it as a warning.
	FooterFound bool
}

// Strip removes boilerplate from the document and returns a new document
// with the surviving lines. Page order and line order within pages are
// preserved.
//
// It fails with ErrHeaderNotFound when the first page never matches the
// anchor pattern.
func (s *Stripper) Strip(doc *model.Document) (*StripResult, error) {
	if doc == nil || doc.PageCount() == 0 {
		return nil, ErrHeaderNotFound
	}

	out := model.NewDocument()
	out.Name = doc.Name

	first, err := s.stripFirstPage(doc.Pages[0])
	if err != nil {
		return nil, err
	}
	out.AddPage(model.NewPage(first.lines))

	// Every page boundary is followed by exactly one running-header line
	// (or as configured). Page boundaries are structural, so nothing else
	// needs to be filtered out here.
	for _, page := range doc.Pages[1:] {
		lines := page.Lines
		if len(lines) >= s.config.RunningHeaderLines {
			lines = lines[s.config.RunningHeaderLines:]
		} else {
			lines = nil
		}
		out.AddPage(model.NewPage(lines))
	}

	return &StripResult{Document: out, FooterFound: first.footerFound}, nil
}

type firstPage struct {
	lines       []string
	footerFound bool
}

// stripFirstPage drops the header block up to and including the anchor
// line, then drops the footer block from the fingerprint line to the end of
// the page.
func (s *Stripper) stripFirstPage(page *model.Page) (firstPage, error) {
	anchorIdx := -1
	for i, line := range page.Lines {
		if s.anchor.MatchString(line) {
			anchorIdx = i
			break
		}
	}
	if anchorIdx < 0 {
		return firstPage{}, ErrHeaderNotFound
	}

	lines := page.Lines[anchorIdx+1:]

	footerFound := false
	if s.config.FooterFingerprint != "" {
		for i, line := range lines {
			if strings.Contains(line, s.config.FooterFingerprint) {
				lines = lines[:i]
				footerFound = true
				break
			}
		}
	}

	return firstPage{lines: lines, footerFound: footerFound}, nil
}
