package parse

import (
	"golang.org/x/net/html"

	"github.com/sec10k/chunker/filing"
)

// NodeType is the classification discriminator for a StructuralNode. Exactly
// one NodeType applies to any emitted node — see Classify and SPEC_FULL.md §4.1.
type NodeType string

const (
	NodeText       NodeType = "text"
	NodeTable      NodeType = "table"
	NodeImage      NodeType = "image"
	NodePageFooter NodeType = "page_footer"
	NodeNonContent NodeType = "non_content"
)

// Metadata is the payload common to every StructuralNode regardless of type.
// Filing-level fields are stamped once per parse session by the Metadata
// Enricher (see metadata.go); item/page/order fields accrue as the node
// moves through the pipeline.
type Metadata struct {
	ParentItem      filing.ItemName
	ItemAnchor      string
	PageNumber      *int
	StructuralOrder *int
	StructuralNodeID string

	filing.Meta
}

// StructuralNode is a tagged-variant record: NodeType selects which of the
// payload fields below is populated. Call sites branch on NodeType rather
// than relying on interface dispatch, per SPEC_FULL.md §9 (Design Notes:
// tagged variants over inheritance).
//
// Element borrows the originating *html.Node; it is never retained past the
// parsing session (DOM borrowing, not owning).
type StructuralNode struct {
	NodeType NodeType
	Metadata Metadata
	Element  *html.Node

	TextNode       *TextNode
	TableNode      *TableNode
	ImageNode      *ImageNode
	PageFooterNode *PageFooterNode
	NonContentNode *NonContentNode
}

// TextNode is the payload for NodeText: whitespace-collapsed visible text.
type TextNode struct {
	Text string
}

// ImageNode is the payload for NodeImage.
type ImageNode struct {
	ImgSrc  string
	ImgAlt  string
	Text    string
	MinText string
}

// PageFooterNode is the payload for NodePageFooter.
type PageFooterNode struct {
	PageNumber int
}

// NonContentReason explains why an element was classified as non-content.
type NonContentReason string

const (
	ReasonContainsHR  NonContentReason = "contains_hr"
	ReasonEmptyText   NonContentReason = "empty_text"
	ReasonDecorative  NonContentReason = "decorative"
)

// NonContentNode is the payload for NodeNonContent.
type NonContentNode struct {
	Reason NonContentReason
}

// Text returns the node's verbose text representation, dispatching on
// NodeType. Page-footer and non-content nodes have no text contribution.
func (n *StructuralNode) Text() string {
	switch n.NodeType {
	case NodeText:
		if n.TextNode == nil {
			return ""
		}
		return n.TextNode.Text
	case NodeTable:
		if n.TableNode == nil {
			return ""
		}
		return n.TableNode.Text
	case NodeImage:
		if n.ImageNode == nil {
			return ""
		}
		return n.ImageNode.Text
	default:
		return ""
	}
}

// MinText returns the node's compact text representation, used for
// table/image-atomic overlap (SPEC_FULL.md §4.6). For text nodes this is
// identical to Text.
func (n *StructuralNode) MinText() string {
	switch n.NodeType {
	case NodeText:
		return n.Text()
	case NodeTable:
		if n.TableNode == nil {
			return ""
		}
		return n.TableNode.MinText
	case NodeImage:
		if n.ImageNode == nil {
			return ""
		}
		return n.ImageNode.MinText
	default:
		return ""
	}
}

// IsAtomicOverlap reports whether overlap into/out of this node must use
// MinText in full rather than a word-budgeted slice of Text.
func (n *StructuralNode) IsAtomicOverlap() bool {
	return n.NodeType == NodeTable || n.NodeType == NodeImage
}
