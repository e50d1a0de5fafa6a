// Package sink writes finished chunks to their destination — a JSON-lines
// file today, a vector store or queue in a future iteration.
package sink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sec10k/chunker/chunk"
)

// ChunkSink accepts a batch of chunks produced from one filing.
type ChunkSink interface {
	Write(chunks []chunk.Chunk) error
}

// jsonLine is the on-disk record: metadata fields flattened alongside the
// chunk's rendered text, one JSON object per line.
type jsonLine struct {
	chunk.Metadata
	Text string `json:"text"`
}

// FileSink writes chunks as JSON-lines to a file, one record per chunk.
type FileSink struct {
	path string
}

// NewFileSink returns a FileSink that writes to path, truncating any
// existing content.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write implements ChunkSink.
func (s *FileSink) Write(chunks []chunk.Chunk) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("sink: creating %s: %w", s.path, err)
	}
	defer f.Close()

	return writeJSONLines(f, chunks)
}

func writeJSONLines(w io.Writer, chunks []chunk.Chunk) error {
	enc := json.NewEncoder(w)
	for _, c := range chunks {
		line := jsonLine{Metadata: c.Metadata, Text: c.Text}
		if err := enc.Encode(line); err != nil {
			return fmt.Errorf("sink: encoding chunk %s: %w", c.Metadata.ChunkID, err)
		}
	}
	return nil
}
