// Package parse turns a 10-K filing's raw HTML into a flat, ordered stream
// of typed StructuralNodes grouped by SEC item, following the Table of
// Contents as the ground truth for item boundaries. See SPEC_FULL.md §4.
package parse

import (
	"bytes"
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/sec10k/chunker/filing"
)

// ParseFiling parses htmlSource into a SemanticDocument: it resolves the
// Table of Contents, walks each item's element range into classified
// StructuralNodes, and enriches them with filing identity and page numbers.
// It returns ErrTocNotFound if no Table of Contents table can be located.
func ParseFiling(ctx context.Context, htmlSource []byte, meta filing.Meta, logger *zap.Logger) (*SemanticDocument, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := html.Parse(bytes.NewReader(htmlSource))
	if err != nil {
		return nil, fmt.Errorf("parse: parsing html: %w", err)
	}

	items, err := getTOCItems(doc)
	if err != nil {
		return nil, err
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	raw := extractAllNodes(items, logger)
	enriched := enrichMetadata(raw, meta)

	return &SemanticDocument{Meta: meta, Nodes: enriched}, nil
}

// ItemParsingStatistics summarizes one item's contribution to a parsed
// filing, used for logging and QA reporting. SPEC_FULL.md §12.
type ItemParsingStatistics struct {
	Item           filing.ItemName
	NodeCount      int
	TextNodeCount  int
	TableNodeCount int
	ImageNodeCount int
	PageRange      [2]int
}

// ParsingStatistics summarizes an entire parsed filing.
type ParsingStatistics struct {
	TotalNodes int
	Items      []ItemParsingStatistics
}

// Statistics computes ParsingStatistics for doc.
func Statistics(doc *SemanticDocument) ParsingStatistics {
	stats := ParsingStatistics{TotalNodes: len(doc.Nodes)}

	for _, view := range doc.Items() {
		item := ItemParsingStatistics{
			Item:      view.Item,
			NodeCount: len(view.Nodes),
			PageRange: view.PageRange(),
		}
		for _, n := range view.Nodes {
			switch n.NodeType {
			case NodeText:
				item.TextNodeCount++
			case NodeTable:
				item.TableNodeCount++
			case NodeImage:
				item.ImageNodeCount++
			}
		}
		stats.Items = append(stats.Items, item)
	}

	return stats
}
