package parse

import (
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/sec10k/chunker/filing"
)

const sampleFilingHTML = `
<html><body>
<div id="toc">
<p>Table of Contents</p>
<table>
<tr><td><a href="#item1">Item 1. Business</a></td></tr>
<tr><td><a href="#item1a">Item 1A. Risk Factors</a></td></tr>
<tr><td><a href="#item7">Item 7. Management's Discussion and Analysis</a></td></tr>
</table>
</div>
<div id="item1"><p>Business overview text.</p></div>
<div id="item1a"><p>Risk factors text.</p></div>
<div id="item7"><p>MD&A text.</p></div>
</body></html>
`

func mustParseDoc(t *testing.T, source string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		t.Fatalf("parsing document: %v", err)
	}
	return doc
}

func TestFindTOCTableTextTier(t *testing.T) {
	doc := mustParseDoc(t, sampleFilingHTML)
	table := findTOCTable(doc)
	if table == nil {
		t.Fatal("expected to find a TOC table")
	}
	links := findAll(table, "a")
	if len(links) != 3 {
		t.Fatalf("got %d links in TOC table, want 3", len(links))
	}
}

func TestGetTOCItems(t *testing.T) {
	doc := mustParseDoc(t, sampleFilingHTML)
	items, err := getTOCItems(doc)
	if err != nil {
		t.Fatalf("getTOCItems returned error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}

	wantItems := []filing.ItemName{filing.Item1, filing.Item1A, filing.Item7}
	for i, want := range wantItems {
		if items[i].Item != want {
			t.Errorf("items[%d].Item = %v, want %v", i, items[i].Item, want)
		}
		if items[i].StartEl == nil {
			t.Errorf("items[%d].StartEl is nil", i)
		}
	}

	for i := 0; i < len(items)-1; i++ {
		if items[i].EndEl == nil {
			t.Errorf("items[%d].EndEl is nil", i)
		}
	}
}

func TestGetTOCItemsNoTableReturnsError(t *testing.T) {
	doc := mustParseDoc(t, `<html><body><p>No TOC here.</p></body></html>`)
	_, err := getTOCItems(doc)
	if err != ErrTocNotFound {
		t.Errorf("got %v, want ErrTocNotFound", err)
	}
}
