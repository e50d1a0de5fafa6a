package chunk

import (
	"context"

	"go.uber.org/zap"

	"github.com/sec10k/chunker/filing"
	"github.com/sec10k/chunker/parse"
)

// ChunkDocument packs doc's nodes into Chunks, one item at a time, using
// cfgs to look up each item's budget (falling back to
// DefaultItemChunkingConfig for any item absent from cfgs). Global chunk
// Order is assigned across the whole document in item order.
// SPEC_FULL.md §4.6, ported from the Python original's TenKChunker.get_chunks.
func ChunkDocument(ctx context.Context, doc *parse.SemanticDocument, cfgs map[filing.ItemName]ItemChunkingConfig, logger *zap.Logger) ([]Chunk, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var all []Chunk
	order := 0

	for _, view := range doc.Items() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		cfg, ok := cfgs[view.Item]
		if !ok {
			cfg = DefaultItemChunkingConfig
		}

		accumulators := packNodes(view.Nodes, cfg, logger)
		if cfg.OverlapWords > 0 {
			wireOverlaps(accumulators)
		}

		for itemOrder, acc := range accumulators {
			all = append(all, acc.ToChunk(view.ItemInfo, order, itemOrder, cfg.OverlapWords))
			order++
		}
	}

	return all, nil
}

// packNodes greedily packs nodes into Accumulators bounded by cfg.MaxChunkWords.
// A node too large to fit in an empty accumulator is force-added anyway and
// logged, matching the Python original's _split_node_to_multiple_accumulators,
// which warns rather than actually splitting oversized nodes.
func packNodes(nodes []parse.StructuralNode, cfg ItemChunkingConfig, logger *zap.Logger) []*Accumulator {
	var accumulators []*Accumulator
	current := NewAccumulator(cfg.MaxChunkWords)

	for _, node := range nodes {
		if !current.CanAdd(node) {
			accumulators = append(accumulators, current)
			current = NewAccumulator(cfg.MaxChunkWords)
		}
		current.AddNode(node)

		if nodeSize(node) > cfg.MaxChunkWords {
			logger.Warn("node exceeds max chunk size on its own, force-adding",
				zap.String("structural_node_id", node.Metadata.StructuralNodeID),
				zap.Int("node_words", nodeSize(node)),
				zap.Int("max_chunk_words", cfg.MaxChunkWords),
			)
		}
	}

	if !current.IsEmpty() {
		accumulators = append(accumulators, current)
	}

	return accumulators
}

// wireOverlaps sets each accumulator's before/after overlap pointers to its
// immediate neighbors in the slice. Only called when the item's
// OverlapWords > 0 — with no overlap configured, chunks carry neither
// stitched-in neighbor text nor neighbor table/image references.
func wireOverlaps(accumulators []*Accumulator) {
	for i, acc := range accumulators {
		if i > 0 {
			acc.SetBeforeOverlap(accumulators[i-1])
		}
		if i+1 < len(accumulators) {
			acc.SetAfterOverlap(accumulators[i+1])
		}
	}
}

// Statistics computes ChunkStatistics over chunks, grouped by item.
func Statistics(chunks []Chunk) ChunkStatistics {
	type acc struct {
		count int
		total int
		min   int
		max   int
	}
	byItem := map[filing.ItemName]*acc{}
	var order []filing.ItemName

	for _, c := range chunks {
		a, ok := byItem[c.Metadata.Item]
		if !ok {
			a = &acc{min: c.Metadata.WordCount, max: c.Metadata.WordCount}
			byItem[c.Metadata.Item] = a
			order = append(order, c.Metadata.Item)
		}
		a.count++
		a.total += c.Metadata.WordCount
		if c.Metadata.WordCount < a.min {
			a.min = c.Metadata.WordCount
		}
		if c.Metadata.WordCount > a.max {
			a.max = c.Metadata.WordCount
		}
	}

	stats := ChunkStatistics{TotalChunks: len(chunks)}
	for _, item := range order {
		a := byItem[item]
		avg := 0.0
		if a.count > 0 {
			avg = float64(a.total) / float64(a.count)
		}
		stats.Items = append(stats.Items, ItemStatistics{
			Item:           item,
			ChunkCount:     a.count,
			TotalWordCount: a.total,
			AvgWordCount:   avg,
			MinWordCount:   a.min,
			MaxWordCount:   a.max,
		})
	}
	return stats
}
