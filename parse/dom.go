package parse

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// findAll collects every descendant element (including n itself) whose tag
// name matches one of tagNames, in document order. Mirrors the traversal
// shape of htmldoc's findElement, generalized to collect rather than
// short-circuit on the first match.
func findAll(n *html.Node, tagNames ...string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.ElementNode {
			for _, t := range tagNames {
				if cur.Data == t {
					out = append(out, cur)
					break
				}
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// textContent collapses all descendant text nodes into a single
// whitespace-normalized string, joining block boundaries with a space —
// equivalent to BeautifulSoup's element.get_text(separator=" ", strip=True)
// as used throughout the Python original.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
			b.WriteString(" ")
			return
		}
		if cur.Type == html.ElementNode && shouldSkipContent(cur.Data) {
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return collapseWhitespace(b.String())
}

func shouldSkipContent(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template":
		return true
	}
	return false
}

// collapseWhitespace normalizes s to NFC (canonical composition only;
// compatibility variants are left as they are), replaces runs of whitespace
// (including NBSP) with a single space, and trims the result.
func collapseWhitespace(s string) string {
	s = norm.NFC.String(s)
	s = strings.ReplaceAll(s, "\u00a0", " ")
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}

// attr returns the value of the named attribute and whether it was present.
func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// directChildElements returns n's immediate element children in document order.
func directChildElements(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// nextSiblingElement returns the next sibling that is an element node, or
// nil if there is none.
func nextSiblingElement(n *html.Node) *html.Node {
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// prevSiblingElement returns the previous sibling that is an element node,
// or nil if there is none.
func prevSiblingElement(n *html.Node) *html.Node {
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// findByID searches the tree rooted at n for an element with id == id.
func findByID(n *html.Node, id string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if found != nil {
			return
		}
		if cur.Type == html.ElementNode {
			if v, ok := attr(cur, "id"); ok && v == id {
				found = cur
				return
			}
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return found
}

// findAnchorByName searches the tree rooted at n for an <a name=name> element.
func findAnchorByName(n *html.Node, name string) *html.Node {
	for _, a := range findAll(n, "a") {
		if v, ok := attr(a, "name"); ok && v == name {
			return a
		}
	}
	return nil
}
