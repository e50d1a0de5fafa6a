package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// pageFooterPattern matches a page-footer line of the shape
// "<company> | <year> Form 10-K | <page>", per SPEC_FULL.md §4.1. Grounded
// on htmldoc/navigation.go's convention of a package-level compiled regexp.
var pageFooterPattern = regexp.MustCompile(`^\s*.+?\s*\|\s*(\d{4})\s+Form\s+10-K\s*\|\s*(\d+)\s*$`)

// itemPattern matches a TOC link's leading "Item <num>[<letter>]" label.
var itemPattern = regexp.MustCompile(`(?i)^(Item|ITEM)\s+(\d+[A-Z]?)`)

// boldStyleFontWeight matches an inline style asserting a bold font weight.
var boldStyleFontWeight = regexp.MustCompile(`(?i)font-weight\s*:\s*(700|bold)`)

// findTables returns every <table> descendant of element, including element
// itself if it is a table.
func findTables(element *html.Node) []*html.Node {
	return findAll(element, "table")
}

// findImages returns every <img> descendant of element.
func findImages(element *html.Node) []*html.Node {
	return findAll(element, "img")
}

// extractTable returns the element's single descendant <table>, or nil if
// there is none. More than one table is a hard error the caller recovers
// from by recursing into children (see ErrMultipleMatches in extract.go).
func extractTable(element *html.Node) *html.Node {
	tables := findTables(element)
	if len(tables) == 1 {
		return tables[0]
	}
	return nil
}

// extractImage returns the element's single descendant <img>, or nil.
func extractImage(element *html.Node) *html.Node {
	images := findImages(element)
	if len(images) == 1 {
		return images[0]
	}
	return nil
}

// extractPageFooter checks whether element's collapsed text matches the
// page-footer pattern and, if so, returns the captured page number.
func extractPageFooter(element *html.Node) (int, bool) {
	text := textContent(element)
	m := pageFooterPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	page := 0
	for _, c := range m[2] {
		page = page*10 + int(c-'0')
	}
	return page, true
}

// isNonContent reports whether element has no visible text and contains
// no table, image, or page-footer match.
func isNonContent(element *html.Node) bool {
	text := textContent(element)
	if text != "" {
		return false
	}
	if extractTable(element) != nil {
		return false
	}
	if extractImage(element) != nil {
		return false
	}
	if _, ok := extractPageFooter(element); ok {
		return false
	}
	return true
}

// extractText returns element's collapsed text if it qualifies as a plain
// text node: no table, no image, no page footer, and non-empty text.
func extractText(element *html.Node) (string, bool) {
	if extractTable(element) != nil {
		return "", false
	}
	if extractImage(element) != nil {
		return "", false
	}
	if _, ok := extractPageFooter(element); ok {
		return "", false
	}
	text := textContent(element)
	if text == "" {
		return "", false
	}
	return text, true
}

// nonContentReason determines why element classified as non-content,
// matching the priority order of the Python original: hr presence, then
// empty text, then decorative.
func nonContentReason(element *html.Node) NonContentReason {
	if len(findAll(element, "hr")) > 0 {
		return ReasonContainsHR
	}
	if textContent(element) == "" {
		return ReasonEmptyText
	}
	return ReasonDecorative
}

// Classify applies the five classification predicates to element and
// returns the single matching NodeType. If zero or more than one predicate
// holds, or element contains more than one <table> or more than one <img>,
// it returns ErrMultipleMatches — the Node Extractor recurses into
// children in that case (SPEC_FULL.md §4.1, §4.3).
func Classify(element *html.Node) (NodeType, error) {
	if len(findTables(element)) > 1 || len(findImages(element)) > 1 {
		return "", ErrMultipleMatches
	}

	isTable := extractTable(element) != nil
	isImage := extractImage(element) != nil
	_, isFooter := extractPageFooter(element)
	isNC := isNonContent(element)
	_, isTxt := extractText(element)

	matches := 0
	if isTable {
		matches++
	}
	if isImage {
		matches++
	}
	if isFooter {
		matches++
	}
	if isNC {
		matches++
	}
	if isTxt {
		matches++
	}

	if matches != 1 {
		return "", ErrMultipleMatches
	}

	switch {
	case isTable:
		return NodeTable, nil
	case isImage:
		return NodeImage, nil
	case isFooter:
		return NodePageFooter, nil
	case isNC:
		return NodeNonContent, nil
	default:
		return NodeText, nil
	}
}

// isHeaderRow reports whether row looks like a table header: it contains a
// <th>, a bold marker element (<b>/<strong>), or a <span> with an inline
// bold font-weight style. SPEC_FULL.md §4.5 Step A.
func isHeaderRow(row *html.Node) bool {
	if len(findAll(row, "th")) > 0 {
		return true
	}
	if len(findAll(row, "b", "strong")) > 0 {
		return true
	}
	for _, span := range findAll(row, "span") {
		if style, ok := attr(span, "style"); ok && boldStyleFontWeight.MatchString(strings.ToLower(style)) {
			return true
		}
	}
	return false
}
