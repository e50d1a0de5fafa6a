package parse

import (
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// extractNodes walks the sibling chain from item.StartEl to item.EndEl
// (exclusive) and returns the StructuralNodes found along the way, each
// stamped with the item's ParentItem/ItemAnchor. SPEC_FULL.md §4.3, ported
// from the Python original's _get_structured_nodes/_element_to_structural_nodes.
func extractNodes(item ItemTOCElement, logger *zap.Logger) []StructuralNode {
	if item.StartEl == nil {
		return nil
	}

	var nodes []StructuralNode
	for el := item.StartEl; el != nil && el != item.EndEl; el = nextSiblingElement(el) {
		nodes = append(nodes, elementToStructuralNodes(el, item, logger)...)
	}
	return nodes
}

// elementToStructuralNodes classifies element and either returns the single
// node it resolves to, or — on ErrMultipleMatches — recurses into element's
// direct children and concatenates their results. An element with no
// children left to recurse into is dropped with a warning.
func elementToStructuralNodes(element *html.Node, item ItemTOCElement, logger *zap.Logger) []StructuralNode {
	node, err := elementToStructuralNode(element, item)
	if err == nil {
		return []StructuralNode{node}
	}

	children := directChildElements(element)
	if len(children) == 0 {
		if logger != nil {
			logger.Warn("dropping element with unknown classification and no children",
				zap.String("item", string(item.Item)),
				zap.String("tag", element.Data),
			)
		}
		return nil
	}

	var out []StructuralNode
	for _, child := range children {
		out = append(out, elementToStructuralNodes(child, item, logger)...)
	}
	return out
}

// elementToStructuralNode classifies element and builds the single
// StructuralNode it resolves to. It returns ErrMultipleMatches unchanged so
// the caller can decide whether to recurse.
func elementToStructuralNode(element *html.Node, item ItemTOCElement) (StructuralNode, error) {
	nodeType, err := Classify(element)
	if err != nil {
		return StructuralNode{}, err
	}
	return newStructuralNode(nodeType, element, item), nil
}

// newStructuralNode constructs the typed StructuralNode for nodeType,
// dispatching to the matching payload constructor (the Go analogue of the
// Python original's _create_single_node type-to-constructor table).
func newStructuralNode(nodeType NodeType, element *html.Node, item ItemTOCElement) StructuralNode {
	node := StructuralNode{
		NodeType: nodeType,
		Element:  element,
		Metadata: Metadata{
			ParentItem:       item.Item,
			ItemAnchor:       item.Anchor,
			StructuralNodeID: newNodeID(nodeType),
		},
	}

	switch nodeType {
	case NodeText:
		text, _ := extractText(element)
		node.TextNode = &TextNode{Text: text}
	case NodeTable:
		tableNode := buildTableNode(element)
		tableNode.finalize(node.Metadata.StructuralNodeID)
		node.TableNode = tableNode
	case NodeImage:
		node.ImageNode = newImageNode(element)
	case NodePageFooter:
		page, _ := extractPageFooter(element)
		node.PageFooterNode = &PageFooterNode{PageNumber: page}
	case NodeNonContent:
		node.NonContentNode = &NonContentNode{Reason: nonContentReason(element)}
	}

	return node
}

// newImageNode builds the ImageNode payload: src/alt metadata only, per the
// explicit no-OCR, no-raster-decoding non-goal — Text/MinText are a short
// descriptive line, never pixel content.
func newImageNode(element *html.Node) *ImageNode {
	img := extractImage(element)
	src, alt := "", ""
	if img != nil {
		src, _ = attr(img, "src")
		alt, _ = attr(img, "alt")
	}

	var parts []string
	if alt != "" {
		parts = append(parts, alt)
	}
	if src != "" {
		parts = append(parts, src)
	}

	text := "[Image content]"
	if len(parts) > 0 {
		text = "[" + strings.Join(parts, " ") + "]"
	}

	return &ImageNode{
		ImgSrc:  src,
		ImgAlt:  alt,
		Text:    text,
		MinText: text,
	}
}

// newNodeID generates the "<nodeType>_<12-hex>" identifier stamped onto
// every StructuralNode at construction, later reused by the Table
// Reconstructor as its TableMetadata.TableID. Mirrors the Python original's
// f"{type}_{uuid.uuid4().hex[:12]}" (parser/types.py:68,110,570).
func newNodeID(nodeType NodeType) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return string(nodeType) + "_" + hex[:12]
}

// extractAllNodes runs extractNodes over every resolved TOC item in
// document order, producing the full unfiltered node stream described in
// SPEC_FULL.md §4.3 before metadata enrichment and page-footer/non-content
// filtering are applied.
func extractAllNodes(items []ItemTOCElement, logger *zap.Logger) []StructuralNode {
	var all []StructuralNode
	for _, item := range items {
		all = append(all, extractNodes(item, logger)...)
	}
	return all
}
