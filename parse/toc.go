package parse

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/sec10k/chunker/filing"
)

// tocTextPattern matches a case-insensitive "Table of Contents" label.
var tocTextPattern = regexp.MustCompile(`(?i)table\s+of\s+contents`)

// tocItemLinkPattern matches an anchor whose text is an Item label, used
// when scoring candidate TOC tables in tier 3.
var tocItemLinkPattern = regexp.MustCompile(`(?i)^Item\s+\d+[A-Z]?`)

// blockAncestorTags are the tag names findTOCTable tier 1 climbs to before
// searching forward for the next table.
var blockAncestorTags = map[string]bool{
	"div": true, "span": true, "p": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ItemTOCElement is the resolved record for one TOC entry: the static
// ItemInfo plus the anchor and DOM boundaries of that item's content.
// StartEl/EndEl borrow *html.Node from the parsed document.
type ItemTOCElement struct {
	filing.ItemInfo
	Anchor   string
	LinkText string
	StartEl  *html.Node
	EndEl    *html.Node
}

// findTOCTable locates the Table of Contents table using the three-tier
// search described in SPEC_FULL.md §4.2.
func findTOCTable(doc *html.Node) *html.Node {
	// Tier 1: text match, then the next <table> after the nearest block
	// ancestor of the matching text node.
	if t := findTOCTableByText(doc); t != nil {
		return t
	}

	// Tier 2: span/div/p elements whose own collapsed text is the TOC
	// pattern, then the next table after that element.
	for _, tag := range []string{"span", "div", "p"} {
		for _, el := range findAll(doc, tag) {
			text := textContent(el)
			if text != "" && tocTextPattern.FindString(text) == text {
				if t := findNextTable(el); t != nil {
					return t
				}
			}
		}
	}

	// Tier 3: the table with the most Item-label anchors (>= 5).
	var best *html.Node
	bestCount := 0
	for _, table := range findAll(doc, "table") {
		count := 0
		for _, a := range findAll(table, "a") {
			if tocItemLinkPattern.MatchString(textContent(a)) {
				count++
			}
		}
		if count >= 5 && count > bestCount {
			bestCount = count
			best = table
		}
	}
	return best
}

// findTOCTableByText walks the document for a text node matching the TOC
// pattern, climbs to its nearest block-level ancestor, then returns the
// next <table> encountered in document order after that ancestor.
func findTOCTableByText(doc *html.Node) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.TextNode && tocTextPattern.MatchString(n.Data) {
			ancestor := n.Parent
			for ancestor != nil && !blockAncestorTags[ancestor.Data] {
				ancestor = ancestor.Parent
			}
			if ancestor != nil {
				if t := findNextTable(ancestor); t != nil {
					found = t
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return found
}

// findNextTable returns the first <table> that appears after n in document
// order (a document-order "find_next" as used by the Python original's
// BeautifulSoup find_next("table")).
func findNextTable(n *html.Node) *html.Node {
	order := documentOrder(n)
	for _, t := range findAll(docRoot(n), "table") {
		if documentOrder(t) > order {
			return t
		}
	}
	return nil
}

// docRoot walks up to the root of the tree containing n.
func docRoot(n *html.Node) *html.Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// documentOrder returns a pre-order traversal index for n relative to its
// tree root. Used only to compare relative positions ("is t after n?").
func documentOrder(n *html.Node) int {
	root := docRoot(n)
	idx := -1
	count := 0
	var walk func(*html.Node) bool
	walk = func(cur *html.Node) bool {
		if cur == n {
			idx = count
			return true
		}
		count++
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return idx
}

// resolveAnchor returns the first element matching id=anchor, falling back
// to <a name=anchor>.
func resolveAnchor(doc *html.Node, anchor string) *html.Node {
	if el := findByID(doc, anchor); el != nil {
		return el
	}
	return findAnchorByName(doc, anchor)
}

// getTOCItems resolves the TOC table, extracts (ItemName, anchor) pairs in
// document order, resolves each anchor's start element, and computes each
// item's end element as the previous sibling of the next item's start
// (SPEC_FULL.md §4.2).
func getTOCItems(doc *html.Node) ([]ItemTOCElement, error) {
	tocTable := findTOCTable(doc)
	if tocTable == nil {
		return nil, ErrTocNotFound
	}

	var items []ItemTOCElement
	for _, link := range findAll(tocTable, "a") {
		linkText := textContent(link)
		m := itemPattern.FindStringSubmatch(linkText)
		if m == nil {
			continue
		}
		itemKey := filing.ItemName("Item " + strings.ToUpper(m[2]))
		info, ok := filing.Items[itemKey]
		if !ok {
			continue
		}

		href, _ := attr(link, "href")
		anchor := strings.TrimPrefix(href, "#")

		var startEl *html.Node
		if anchor != "" {
			startEl = resolveAnchor(doc, anchor)
		}

		items = append(items, ItemTOCElement{
			ItemInfo: info,
			Anchor:   anchor,
			LinkText: linkText,
			StartEl:  startEl,
		})
	}

	resolveEndElements(doc, items)
	return items, nil
}

// resolveEndElements fills in EndEl for each item in place, per the second
// pass described in SPEC_FULL.md §4.2.
func resolveEndElements(doc *html.Node, items []ItemTOCElement) {
	for i := range items {
		if items[i].StartEl == nil {
			continue
		}

		var end *html.Node
		if i+1 < len(items) {
			next := items[i+1]
			if next.StartEl != nil {
				end = prevSiblingElement(next.StartEl)
				if end == nil {
					end = next.StartEl.Parent
				}
			} else {
				for j := i + 2; j < len(items); j++ {
					if items[j].StartEl != nil {
						end = prevSiblingElement(items[j].StartEl)
						if end == nil {
							end = items[j].StartEl.Parent
						}
						break
					}
				}
			}
		}

		if end == nil {
			end = lastSignificantElement(doc)
		}

		items[i].EndEl = end
	}
}

// lastSignificantElement returns the last div, table, or p element in the
// document, falling back to the body, per the last item's end-of-document
// resolution (SPEC_FULL.md §4.2, T5).
func lastSignificantElement(doc *html.Node) *html.Node {
	all := findAll(doc, "div", "table", "p")
	if len(all) > 0 {
		return all[len(all)-1]
	}
	if body := findElementByTag(doc, "body"); body != nil {
		return body
	}
	return doc
}

func findElementByTag(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if r := findElementByTag(c, tag); r != nil {
			return r
		}
	}
	return nil
}
