package parse

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sec10k/chunker/filing"
)

const integrationFilingHTML = `
<html><body>
<div id="toc">
<p>Table of Contents</p>
<table>
<tr><td><a href="#item1">Item 1. Business</a></td></tr>
<tr><td><a href="#item1a">Item 1A. Risk Factors</a></td></tr>
</table>
</div>
<a id="item1"></a>
<p>We design, manufacture, and sell widgets worldwide.</p>
<table><tr><th>Year</th><th>Revenue</th></tr><tr><td>2023</td><td>100</td></tr></table>
<p>spacer1</p>
<a id="item1a"></a>
<p>Our business is subject to a variety of risks.</p>
<p>spacer2</p>
<div>Acme Corp | 2023 Form 10-K | 1</div>
</body></html>
`

func TestParseFilingEndToEnd(t *testing.T) {
	meta := filing.Meta{Company: "Acme Corp", Ticker: "ACME", Form: filing.TenK, Year: 2023}

	doc, err := ParseFiling(context.Background(), []byte(integrationFilingHTML), meta, zap.NewNop())
	if err != nil {
		t.Fatalf("ParseFiling returned error: %v", err)
	}

	if len(doc.Nodes) == 0 {
		t.Fatal("expected at least one node")
	}

	for _, n := range doc.Nodes {
		if n.NodeType == NodePageFooter || n.NodeType == NodeNonContent {
			t.Errorf("page_footer/non_content nodes should be filtered out, got %v", n.NodeType)
		}
		if n.Metadata.Company != "Acme Corp" {
			t.Errorf("got Company %q, want %q", n.Metadata.Company, "Acme Corp")
		}
	}

	for i, n := range doc.Nodes {
		if n.Metadata.StructuralOrder == nil || *n.Metadata.StructuralOrder != i {
			t.Errorf("node %d has StructuralOrder %v, want %d", i, n.Metadata.StructuralOrder, i)
		}
	}

	view, ok := doc.GetItem(filing.Item1)
	if !ok {
		t.Fatal("expected Item 1 to be present")
	}
	hasTable := false
	for _, n := range view.Nodes {
		if n.NodeType == NodeTable {
			hasTable = true
		}
	}
	if !hasTable {
		t.Error("expected Item 1 to contain a table node")
	}

	stats := Statistics(doc)
	if stats.TotalNodes != len(doc.Nodes) {
		t.Errorf("got TotalNodes %d, want %d", stats.TotalNodes, len(doc.Nodes))
	}
}

func TestParseFilingMissingTOC(t *testing.T) {
	_, err := ParseFiling(context.Background(), []byte(`<html><body><p>No TOC.</p></body></html>`), filing.Meta{}, zap.NewNop())
	if err != ErrTocNotFound {
		t.Errorf("got %v, want ErrTocNotFound", err)
	}
}
