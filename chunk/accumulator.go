package chunk

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/sec10k/chunker/filing"
	"github.com/sec10k/chunker/parse"
)

// Accumulator greedily collects StructuralNodes under a word budget and,
// once full, renders them into a Chunk with stitched-in neighbor overlap.
// SPEC_FULL.md §4.6, ported from the Python original's ChunkAccumulator.
type Accumulator struct {
	budget int
	nodes  []parse.StructuralNode

	beforeOverlap *Accumulator
	afterOverlap  *Accumulator
}

// NewAccumulator returns an empty Accumulator with the given word budget.
func NewAccumulator(budget int) *Accumulator {
	return &Accumulator{budget: budget}
}

// SetBeforeOverlap wires acc as the accumulator whose tail text prefixes
// this accumulator's rendered content.
func (a *Accumulator) SetBeforeOverlap(acc *Accumulator) { a.beforeOverlap = acc }

// SetAfterOverlap wires acc as the accumulator whose head text follows this
// accumulator's rendered content.
func (a *Accumulator) SetAfterOverlap(acc *Accumulator) { a.afterOverlap = acc }

// nodeSize returns the word cost of adding node: the word count of its
// Text, which is what collectContent renders into the chunk body.
func nodeSize(n parse.StructuralNode) int {
	return len(words(n.Text()))
}

// CanAdd reports whether node fits within the remaining budget. An empty
// accumulator always accepts its first node, even if oversized, so callers
// can force-add and let the oversized-node path handle it.
func (a *Accumulator) CanAdd(node parse.StructuralNode) bool {
	if len(a.nodes) == 0 {
		return true
	}
	return a.wordCount()+nodeSize(node) <= a.budget
}

// AddNode appends node to the accumulator unconditionally.
func (a *Accumulator) AddNode(node parse.StructuralNode) {
	a.nodes = append(a.nodes, node)
}

// IsEmpty reports whether the accumulator holds no nodes.
func (a *Accumulator) IsEmpty() bool { return len(a.nodes) == 0 }

func (a *Accumulator) wordCount() int {
	total := 0
	for _, n := range a.nodes {
		total += nodeSize(n)
	}
	return total
}

// GetStart returns the leading wordCount words of the accumulator's
// rendered content, used to build the "after" overlap seen by the previous
// accumulator. A table or image node contributes its MinText in full.
func (a *Accumulator) GetStart(wordCount int) string {
	var parts []string
	remaining := wordCount
	for _, n := range a.nodes {
		if remaining <= 0 {
			break
		}
		if n.IsAtomicOverlap() {
			parts = append(parts, n.MinText())
			remaining -= len(words(n.MinText()))
			continue
		}
		w := words(n.Text())
		if len(w) <= remaining {
			parts = append(parts, n.Text())
			remaining -= len(w)
		} else {
			parts = append(parts, strings.Join(w[:remaining], " "))
			remaining = 0
		}
	}
	return strings.Join(parts, "\n\n")
}

// GetEnd returns the trailing wordCount words of the accumulator's
// rendered content, used to build the "before" overlap seen by the next
// accumulator. A table or image node contributes its MinText in full.
func (a *Accumulator) GetEnd(wordCount int) string {
	var parts []string
	remaining := wordCount
	for i := len(a.nodes) - 1; i >= 0 && remaining > 0; i-- {
		n := a.nodes[i]
		if n.IsAtomicOverlap() {
			parts = append([]string{n.MinText()}, parts...)
			remaining -= len(words(n.MinText()))
			continue
		}
		w := words(n.Text())
		if len(w) <= remaining {
			parts = append([]string{n.Text()}, parts...)
			remaining -= len(w)
		} else {
			parts = append([]string{strings.Join(w[len(w)-remaining:], " ")}, parts...)
			remaining = 0
		}
	}
	return strings.Join(parts, "\n\n")
}

// collectContent joins the before-overlap tail, this accumulator's own node
// text, and the after-overlap head into the chunk's full body.
func (a *Accumulator) collectContent(overlapWords int) string {
	var sections []string
	if a.beforeOverlap != nil {
		if before := a.beforeOverlap.GetEnd(overlapWords); before != "" {
			sections = append(sections, before)
		}
	}
	for _, n := range a.nodes {
		if t := n.Text(); t != "" {
			sections = append(sections, t)
		}
	}
	if a.afterOverlap != nil {
		if after := a.afterOverlap.GetStart(overlapWords); after != "" {
			sections = append(sections, after)
		}
	}
	return strings.Join(sections, "\n\n")
}

// collectReferences gathers table and image structural-node IDs referenced
// by this accumulator's own nodes plus both overlap accumulators, preserving
// first-seen order and de-duplicating.
func (a *Accumulator) collectReferences() (tableRefs, imageRefs []string) {
	seenTable := map[string]bool{}
	seenImage := map[string]bool{}

	collect := func(acc *Accumulator) {
		if acc == nil {
			return
		}
		for _, n := range acc.nodes {
			id := n.Metadata.StructuralNodeID
			switch n.NodeType {
			case parse.NodeTable:
				if !seenTable[id] {
					seenTable[id] = true
					tableRefs = append(tableRefs, id)
				}
			case parse.NodeImage:
				if !seenImage[id] {
					seenImage[id] = true
					imageRefs = append(imageRefs, id)
				}
			}
		}
	}

	collect(a.beforeOverlap)
	collect(a)
	collect(a.afterOverlap)
	return tableRefs, imageRefs
}

// collectPageInfo returns the sorted, de-duplicated page numbers spanned by
// this accumulator's own nodes, and their [min, max] range. The range is
// nil when the accumulator spans no pages, matching the Python original's
// page_range = None (chunk_accumulator.py:162).
func (a *Accumulator) collectPageInfo() ([]int, *[2]int) {
	seen := map[int]bool{}
	var pages []int
	for _, n := range a.nodes {
		if n.Metadata.PageNumber == nil {
			continue
		}
		p := *n.Metadata.PageNumber
		if !seen[p] {
			seen[p] = true
			pages = append(pages, p)
		}
	}
	for i := 1; i < len(pages); i++ {
		for j := i; j > 0 && pages[j-1] > pages[j]; j-- {
			pages[j-1], pages[j] = pages[j], pages[j-1]
		}
	}
	if len(pages) == 0 {
		return pages, nil
	}
	return pages, &[2]int{pages[0], pages[len(pages)-1]}
}

// collectStructuralNodeIDs returns the StructuralNodeID of every node in
// this accumulator, in order.
func (a *Accumulator) collectStructuralNodeIDs() []string {
	ids := make([]string, 0, len(a.nodes))
	for _, n := range a.nodes {
		ids = append(ids, n.Metadata.StructuralNodeID)
	}
	return ids
}

// newChunkID builds the "<ItemName>_<itemOrder>_<8-hex>" chunk identifier,
// encoding the item and the chunk's per-item position alongside a random
// suffix, per SPEC_FULL.md §3.
func newChunkID(item filing.ItemName, itemOrder int) string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return fmt.Sprintf("%s_%d_%s", item, itemOrder, hex[:8])
}

// ToChunk renders the accumulator into a Chunk, stamping item identity and
// ordering fields supplied by the caller.
func (a *Accumulator) ToChunk(info filing.ItemInfo, order, itemOrder, overlapWords int) Chunk {
	content := a.collectContent(overlapWords)
	tableRefs, imageRefs := a.collectReferences()
	pages, pageRange := a.collectPageInfo()

	md := newMetadata()
	md.ChunkID = newChunkID(info.Item, itemOrder)
	md.Item = info.Item
	md.ItemTitle = info.DisplayName
	md.ItemDescription = info.Description
	md.ChunkType = Regular
	md.Order = order
	md.ItemOrder = itemOrder
	md.StructuralNodeIDs = a.collectStructuralNodeIDs()
	md.TableRefs = tableRefs
	md.ImageRefs = imageRefs
	md.PageNumbers = pages
	md.PageRange = pageRange
	md.WordCount = len(words(content))
	md.CharCount = len(content)

	return Chunk{Metadata: md, Text: content}
}
