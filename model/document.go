package model

// Document represents a complete transcript document as an ordered sequence
// of pages. Pages are delimited by the source reader; they are never inferred
// from line content after ingestion.
type Document struct {
	// Name identifies the source (usually a file path). Used in warnings
	// and batch reports.
	Name string

	Pages []*Page
}

// Page is an ordered sequence of raw text lines as delivered by the upstream
// extraction engine. Lines are immutable once read.
type Page struct {
	// Number is the 1-indexed page number, assigned by AddPage.
	Number int

	// Lines holds the page's raw text lines in original order.
	Lines []string
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// NewPage creates a page from raw lines. The slice is used as-is; callers
// must not mutate it afterwards.
func NewPage(lines []string) *Page {
	return &Page{Lines: lines}
}

// AddPage appends a page to the document and assigns its number.
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range.
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// LineCount returns the total number of raw lines across all pages.
func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Lines)
	}
	return n
}

// ReflowedLine is a single line of final, reading-order text produced by
// column reflow. Derived, read-only artifact of one pass.
type ReflowedLine struct {
	// Text is the cleaned line content.
	Text string

	// Page is the 1-indexed page the line originated from.
	Page int

	// Position is the line's global index in the reflowed document,
	// monotonically increasing across pages.
	Position int
}
