package parse

import "github.com/sec10k/chunker/filing"

// enrichMetadata stamps filing-level identity onto every node, back-fills
// each node's PageNumber from the next page-footer node at or after its
// position, drops page_footer and non_content nodes, and renumbers the
// survivors' StructuralOrder gap-free starting at 0. SPEC_FULL.md §4.4,
// ported from the Python original's _update_nodes_base_metadata and
// _update_nodes_metadata_page_number.
func enrichMetadata(nodes []StructuralNode, meta filing.Meta) []StructuralNode {
	withPages := backfillPageNumbers(nodes)

	var kept []StructuralNode
	for _, n := range withPages {
		if n.NodeType == NodePageFooter || n.NodeType == NodeNonContent {
			continue
		}
		n.Metadata.Meta = meta
		kept = append(kept, n)
	}

	for i := range kept {
		order := i
		kept[i].Metadata.StructuralOrder = &order
	}

	return kept
}

// backfillPageNumbers assigns each node the page number of the next
// page_footer node at or after it in the slice. Nodes after the final
// page_footer keep a nil PageNumber.
func backfillPageNumbers(nodes []StructuralNode) []StructuralNode {
	out := make([]StructuralNode, len(nodes))
	copy(out, nodes)

	var nextPage *int
	for i := len(out) - 1; i >= 0; i-- {
		if out[i].NodeType == NodePageFooter && out[i].PageFooterNode != nil {
			p := out[i].PageFooterNode.PageNumber
			nextPage = &p
		}
		if nextPage != nil {
			p := *nextPage
			out[i].Metadata.PageNumber = &p
		}
	}
	return out
}
