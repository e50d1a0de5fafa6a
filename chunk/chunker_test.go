package chunk

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/sec10k/chunker/filing"
	"github.com/sec10k/chunker/parse"
)

func makeDoc(wordsPerNode int, count int) *parse.SemanticDocument {
	words := make([]string, wordsPerNode)
	for i := range words {
		words[i] = "word"
	}
	text := ""
	for i, w := range words {
		if i > 0 {
			text += " "
		}
		text += w
	}

	var nodes []parse.StructuralNode
	for i := 0; i < count; i++ {
		nodes = append(nodes, parse.StructuralNode{
			NodeType: parse.NodeText,
			TextNode: &parse.TextNode{Text: text},
			Metadata: parse.Metadata{
				ParentItem:       filing.Item1,
				StructuralNodeID: string(rune('a' + i)),
			},
		})
	}
	return &parse.SemanticDocument{Nodes: nodes}
}

func TestChunkDocumentPacksUnderBudget(t *testing.T) {
	doc := makeDoc(10, 20) // 20 nodes of 10 words each = 200 words total

	cfg := ItemChunkingConfig{MaxChunkWords: 50, OverlapWords: 5, MinChunkWords: 5}
	cfgs := map[filing.ItemName]ItemChunkingConfig{filing.Item1: cfg}

	chunks, err := ChunkDocument(context.Background(), doc, cfgs, zap.NewNop())
	if err != nil {
		t.Fatalf("ChunkDocument returned error: %v", err)
	}
	if len(chunks) == 0 {
		t.Fatal("expected at least one chunk")
	}

	for i, c := range chunks {
		if c.Metadata.Order != i {
			t.Errorf("chunk %d has Order %d, want %d", i, c.Metadata.Order, i)
		}
		if core := len(c.Metadata.StructuralNodeIDs) * 10; core > cfg.MaxChunkWords {
			t.Errorf("chunk %d holds %d words of its own nodes, over the budget of %d", i, core, cfg.MaxChunkWords)
		}
	}
}

func TestChunkDocumentForceAddsOversizedNode(t *testing.T) {
	doc := makeDoc(100, 1) // one node far larger than the budget

	cfg := ItemChunkingConfig{MaxChunkWords: 10, OverlapWords: 2, MinChunkWords: 2}
	cfgs := map[filing.ItemName]ItemChunkingConfig{filing.Item1: cfg}

	chunks, err := ChunkDocument(context.Background(), doc, cfgs, zap.NewNop())
	if err != nil {
		t.Fatalf("ChunkDocument returned error: %v", err)
	}
	if len(chunks) != 1 {
		t.Fatalf("got %d chunks, want 1", len(chunks))
	}
	if chunks[0].Metadata.WordCount != 100 {
		t.Errorf("got WordCount %d, want 100", chunks[0].Metadata.WordCount)
	}
}

func TestStatisticsComputesPerItemTotals(t *testing.T) {
	doc := makeDoc(10, 5)
	cfg := ItemChunkingConfig{MaxChunkWords: 20, OverlapWords: 2, MinChunkWords: 2}
	cfgs := map[filing.ItemName]ItemChunkingConfig{filing.Item1: cfg}

	chunks, err := ChunkDocument(context.Background(), doc, cfgs, zap.NewNop())
	if err != nil {
		t.Fatalf("ChunkDocument returned error: %v", err)
	}

	stats := Statistics(chunks)
	if stats.TotalChunks != len(chunks) {
		t.Errorf("got TotalChunks %d, want %d", stats.TotalChunks, len(chunks))
	}
	if len(stats.Items) != 1 {
		t.Fatalf("got %d item stats, want 1", len(stats.Items))
	}
	if stats.Items[0].Item != filing.Item1 {
		t.Errorf("got Item %v, want %v", stats.Items[0].Item, filing.Item1)
	}
}
