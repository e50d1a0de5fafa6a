// Package fetch supplies filing HTML bytes and identity metadata to the
// parser, decoupling ParseFiling's input from any particular source —
// local disk today, EDGAR or another remote store later.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sec10k/chunker/filing"
)

// FilingFetcher retrieves a filing's raw HTML and its identity metadata
// given an opaque reference (a file path, a ticker/year pair, a URL — the
// implementation decides).
type FilingFetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, filing.Meta, error)
}

// LocalFetcher reads a filing's HTML from disk. It expects a sidecar JSON
// file alongside the HTML — "<name>.html" pairs with "<name>.meta.json" —
// holding the filing.Meta fields; a missing sidecar yields a Meta with only
// Form defaulted to filing.TenK.
type LocalFetcher struct{}

// Fetch implements FilingFetcher.
func (LocalFetcher) Fetch(ctx context.Context, ref string) ([]byte, filing.Meta, error) {
	select {
	case <-ctx.Done():
		return nil, filing.Meta{}, ctx.Err()
	default:
	}

	f, err := os.Open(ref)
	if err != nil {
		return nil, filing.Meta{}, fmt.Errorf("fetch: opening %s: %w", ref, err)
	}
	defer f.Close()

	htmlSource, err := io.ReadAll(f)
	if err != nil {
		return nil, filing.Meta{}, fmt.Errorf("fetch: reading %s: %w", ref, err)
	}

	meta, err := readSidecarMeta(ref)
	if err != nil {
		return nil, filing.Meta{}, err
	}

	return htmlSource, meta, nil
}

func readSidecarMeta(ref string) (filing.Meta, error) {
	meta := filing.Meta{Form: filing.TenK}

	sidecar := sidecarPath(ref)
	f, err := os.Open(sidecar)
	if os.IsNotExist(err) {
		return meta, nil
	}
	if err != nil {
		return filing.Meta{}, fmt.Errorf("fetch: opening %s: %w", sidecar, err)
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&meta); err != nil {
		return filing.Meta{}, fmt.Errorf("fetch: decoding %s: %w", sidecar, err)
	}
	return meta, nil
}

func sidecarPath(ref string) string {
	trimmed := strings.TrimSuffix(ref, ".html")
	trimmed = strings.TrimSuffix(trimmed, ".htm")
	return trimmed + ".meta.json"
}
