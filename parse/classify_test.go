package parse

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func mustParseFragment(t *testing.T, fragment string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader("<html><body>" + fragment + "</body></html>"))
	if err != nil {
		t.Fatalf("parsing fragment: %v", err)
	}
	bodies := findAll(doc, "body")
	if len(bodies) == 0 {
		t.Fatalf("no body found in parsed fragment")
	}
	return bodies[0]
}

func firstChild(t *testing.T, body *html.Node) *html.Node {
	t.Helper()
	children := directChildElements(body)
	if len(children) == 0 {
		t.Fatalf("body has no element children")
	}
	return children[0]
}

func TestClassifyText(t *testing.T) {
	body := mustParseFragment(t, `<div>Some ordinary paragraph text.</div>`)
	nodeType, err := Classify(firstChild(t, body))
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if nodeType != NodeText {
		t.Errorf("got %v, want %v", nodeType, NodeText)
	}
}

func TestClassifyTable(t *testing.T) {
	body := mustParseFragment(t, `<div><table><tr><td>A</td><td>B</td></tr></table></div>`)
	nodeType, err := Classify(firstChild(t, body))
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if nodeType != NodeTable {
		t.Errorf("got %v, want %v", nodeType, NodeTable)
	}
}

func TestClassifyImage(t *testing.T) {
	body := mustParseFragment(t, `<div><img src="chart.png" alt="Revenue chart"></div>`)
	nodeType, err := Classify(firstChild(t, body))
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if nodeType != NodeImage {
		t.Errorf("got %v, want %v", nodeType, NodeImage)
	}
}

func TestClassifyPageFooter(t *testing.T) {
	body := mustParseFragment(t, `<div>Acme Corp | 2023 Form 10-K | 42</div>`)
	nodeType, err := Classify(firstChild(t, body))
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if nodeType != NodePageFooter {
		t.Errorf("got %v, want %v", nodeType, NodePageFooter)
	}
}

func TestClassifyNonContent(t *testing.T) {
	body := mustParseFragment(t, `<div>   </div>`)
	nodeType, err := Classify(firstChild(t, body))
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	if nodeType != NodeNonContent {
		t.Errorf("got %v, want %v", nodeType, NodeNonContent)
	}
}

func TestClassifyMultipleMatchesRecurses(t *testing.T) {
	body := mustParseFragment(t, `<div><p>Intro text</p><table><tr><td>X</td></tr></table><table><tr><td>Y</td></tr></table></div>`)
	_, err := Classify(firstChild(t, body))
	if err != ErrMultipleMatches {
		t.Errorf("got %v, want ErrMultipleMatches", err)
	}
}

func TestIsHeaderRow(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"th cells", `<table><tr><th>Year</th><th>Revenue</th></tr></table>`, true},
		{"bold marker", `<table><tr><td><b>Year</b></td></tr></table>`, true},
		{"styled bold span", `<table><tr><td><span style="font-weight: 700;">Year</span></td></tr></table>`, true},
		{"plain data row", `<table><tr><td>2023</td><td>100</td></tr></table>`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := mustParseFragment(t, tt.html)
			table := extractTable(firstChild(t, body))
			if table == nil {
				t.Fatalf("no table found")
			}
			rows := findAll(table, "tr")
			if len(rows) == 0 {
				t.Fatalf("no rows found")
			}
			if got := isHeaderRow(rows[0]); got != tt.want {
				t.Errorf("isHeaderRow() = %v, want %v", got, tt.want)
			}
		})
	}
}
