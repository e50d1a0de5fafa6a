// Package chunk packs a parsed filing's StructuralNodes into word-budgeted,
// overlap-stitched Chunks, one item at a time. See SPEC_FULL.md §4.6.
package chunk

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/sec10k/chunker/filing"
)

// ChunkType discriminates how a chunk was produced. Only Regular exists
// today; the field is carried to mirror the Python original's forward
// compatibility for header/summary chunk types that were never shipped.
type ChunkType string

const (
	Regular ChunkType = "regular"
)

// Metadata is the descriptive envelope carried alongside a Chunk's text.
type Metadata struct {
	ChunkID           string           `json:"chunk_id"`
	Item              filing.ItemName  `json:"item"`
	ItemTitle         string           `json:"item_title"`
	ItemDescription   string           `json:"item_description"`
	ChunkType         ChunkType        `json:"chunk_type"`
	Order             int              `json:"order"`
	ItemOrder         int              `json:"item_order"`
	StructuralNodeIDs []string         `json:"structural_node_ids"`
	TableRefs         []string         `json:"table_refs"`
	ImageRefs         []string         `json:"image_refs"`
	PageNumbers       []int            `json:"page_numbers"`
	PageRange         *[2]int          `json:"page_range"`
	WordCount         int              `json:"word_count"`
	CharCount         int              `json:"char_count"`
}

// newMetadata returns a zero-value Metadata with its slice fields
// initialized to empty (never nil), matching the Python original's
// __init__ override ensuring structural_node_ids defaults to [].
func newMetadata() Metadata {
	return Metadata{
		StructuralNodeIDs: []string{},
		TableRefs:         []string{},
		ImageRefs:         []string{},
		PageNumbers:       []int{},
	}
}

// Chunk is one retrieval unit: Metadata plus the accumulated text body.
type Chunk struct {
	Metadata Metadata
	Text     string
}

// ToJSON serializes the chunk's metadata to JSON.
func (c *Chunk) ToJSON() ([]byte, error) {
	return json.Marshal(c.Metadata)
}

// GetPageRangeString formats the chunk's page range as "start-end", a single
// page number when start == end, or "" when the chunk spans no pages.
func (c *Chunk) GetPageRangeString() string {
	r := c.Metadata.PageRange
	if r == nil {
		return ""
	}
	if r[0] == r[1] {
		return strconv.Itoa(r[0])
	}
	return strconv.Itoa(r[0]) + "-" + strconv.Itoa(r[1])
}

// ItemChunkingConfig controls the accumulation budget for one item's
// chunks. SPEC_FULL.md §4.6.
type ItemChunkingConfig struct {
	OverlapWords    int
	MaxChunkWords   int
	MinChunkWords   int
}

// DefaultItemChunkingConfig is the fallback budget applied to every item
// unless overridden, matching the Python original's DEFAULT_ITEM_CHUNKING_CONFIG.
var DefaultItemChunkingConfig = ItemChunkingConfig{
	OverlapWords:  50,
	MaxChunkWords: 500,
	MinChunkWords: 100,
}

// ItemsChunkingConfigs maps every filing.ItemName to its chunking config.
// Every item uses DefaultItemChunkingConfig today, mirroring the Python
// original's ITEMS_CHUNKING_CONFIGS dict, which assigns the same default
// config to all items but leaves the door open for per-item tuning.
var ItemsChunkingConfigs map[filing.ItemName]ItemChunkingConfig

func init() {
	ItemsChunkingConfigs = make(map[filing.ItemName]ItemChunkingConfig, len(filing.Items))
	for name := range filing.Items {
		ItemsChunkingConfigs[name] = DefaultItemChunkingConfig
	}
}

// ItemStatistics summarizes one item's chunking outcome.
type ItemStatistics struct {
	Item           filing.ItemName
	ChunkCount     int
	TotalWordCount int
	AvgWordCount   float64
	MinWordCount   int
	MaxWordCount   int
}

// ChunkStatistics summarizes an entire document's chunking outcome.
type ChunkStatistics struct {
	TotalChunks int
	Items       []ItemStatistics
}

// words splits text on whitespace, matching the Python original's
// str.split() word-counting convention used throughout the accumulator.
func words(text string) []string {
	return strings.Fields(text)
}
