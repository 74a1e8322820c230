package source

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/verbatim/model"
)

// FromHTML reads a document from a paged HTML export. Page containers are
// elements whose class attribute contains "page" (or <section> elements);
// when no containers are present, the whole body is a single page. Within a
// page, block-level elements and <br> tags delimit lines, and <pre> content
// keeps its literal line structure, including the indentation and wide
// space runs that column reflow depends on.
func FromHTML(r io.Reader, name string) (*model.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML input: %w", err)
	}

	doc := model.NewDocument()
	doc.Name = name

	body := findElement(root, "body")
	if body == nil {
		body = root
	}

	containers := findPageContainers(body)
	if len(containers) == 0 {
		containers = []*html.Node{body}
	}

	for _, container := range containers {
		doc.AddPage(model.NewPage(extractLines(container)))
	}

	return doc, nil
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// findPageContainers collects page container elements in document order.
// Nested containers are not descended into.
func findPageContainers(n *html.Node) []*html.Node {
	var containers []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && isPageContainer(n) {
			containers = append(containers, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return containers
}

func isPageContainer(n *html.Node) bool {
	if n.Data == "section" {
		return true
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" {
			for _, cls := range strings.Fields(attr.Val) {
				if cls == "page" {
					return true
				}
			}
		}
		if attr.Key == "data-page" {
			return true
		}
	}
	return false
}

// shouldSkipElement reports whether an element's content is non-text.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

// lineCollector accumulates text into lines as the DOM is walked.
type lineCollector struct {
	lines []string
	cur   strings.Builder
}

func (lc *lineCollector) flush() {
	line := strings.TrimRight(lc.cur.String(), " \r")
	lc.cur.Reset()
	if line != "" {
		lc.lines = append(lc.lines, line)
	}
}

func (lc *lineCollector) add(s string) {
	lc.cur.WriteString(s)
}

// extractLines walks a page container and produces its raw lines.
func extractLines(n *html.Node) []string {
	lc := &lineCollector{}
	walkLines(n, lc, false)
	lc.flush()
	return lc.lines
}

func walkLines(n *html.Node, lc *lineCollector, inPre bool) {
	switch n.Type {
	case html.TextNode:
		if inPre {
			// Literal line structure: every newline is a line break
			// and spacing is preserved for column reflow.
			parts := strings.Split(n.Data, "\n")
			for i, part := range parts {
				if i > 0 {
					lc.flush()
				}
				lc.add(strings.TrimSuffix(part, "\r"))
			}
		} else {
			lc.add(collapseWhitespace(n.Data))
		}
		return

	case html.ElementNode:
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			lc.flush()
			return
		}
		if n.Data == "pre" {
			inPre = true
		}
		if isBlockElement(n.Data) {
			lc.flush()
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walkLines(c, lc, inPre)
		}
		if isBlockElement(n.Data) {
			lc.flush()
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkLines(c, lc, inPre)
	}
}

func isBlockElement(tagName string) bool {
	switch tagName {
	case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "pre", "blockquote", "article", "section":
		return true
	}
	return false
}

// collapseWhitespace replaces newlines and tabs from markup formatting with
// single spaces outside <pre> content.
func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\t", " ")
	return s
}
