package parse

import (
	"testing"

	"go.uber.org/zap"

	"github.com/sec10k/chunker/filing"
)

func TestExtractNodesWalksSiblingsAndClassifies(t *testing.T) {
	body := mustParseFragment(t, `
		<div id="start"><p>First paragraph.</p></div>
		<div><p>Second paragraph.</p></div>
		<div id="end"><p>Not included.</p></div>
	`)

	children := directChildElements(body)
	item := ItemTOCElement{
		ItemInfo: filing.Items[filing.Item1],
		StartEl:  children[0],
		EndEl:    children[2],
	}

	nodes := extractNodes(item, zap.NewNop())
	if len(nodes) != 2 {
		t.Fatalf("got %d nodes, want 2", len(nodes))
	}
	for _, n := range nodes {
		if n.NodeType != NodeText {
			t.Errorf("got NodeType %v, want %v", n.NodeType, NodeText)
		}
		if n.Metadata.ParentItem != filing.Item1 {
			t.Errorf("got ParentItem %v, want %v", n.Metadata.ParentItem, filing.Item1)
		}
		if n.Metadata.StructuralNodeID == "" {
			t.Error("expected a non-empty StructuralNodeID")
		}
	}
}

func TestElementToStructuralNodesRecursesOnMultipleMatches(t *testing.T) {
	body := mustParseFragment(t, `<div><p>Intro text</p><table><tr><td>X</td></tr></table><table><tr><td>Y</td></tr></table></div>`)
	item := ItemTOCElement{ItemInfo: filing.Items[filing.Item1]}

	nodes := elementToStructuralNodes(firstChild(t, body), item, zap.NewNop())
	if len(nodes) != 3 {
		t.Fatalf("got %d nodes, want 3", len(nodes))
	}
	if nodes[0].NodeType != NodeText {
		t.Errorf("got first NodeType %v, want %v", nodes[0].NodeType, NodeText)
	}
	if nodes[1].NodeType != NodeTable {
		t.Errorf("got second NodeType %v, want %v", nodes[1].NodeType, NodeTable)
	}
}

func TestNewImageNodeCombinesAltAndSrc(t *testing.T) {
	body := mustParseFragment(t, `<div><img src="chart.png" alt="Revenue chart"></div>`)
	img := newImageNode(firstChild(t, body))
	if img.ImgSrc != "chart.png" {
		t.Errorf("got ImgSrc %q, want %q", img.ImgSrc, "chart.png")
	}
	if img.ImgAlt != "Revenue chart" {
		t.Errorf("got ImgAlt %q, want %q", img.ImgAlt, "Revenue chart")
	}
	if img.Text == "" {
		t.Error("expected non-empty Text")
	}
}
