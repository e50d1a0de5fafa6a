// Command tenkchunker parses a 10-K filing's HTML into structural nodes and
// packs them into retrieval chunks, writing the result as JSON-lines.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/sec10k/chunker/chunk"
	"github.com/sec10k/chunker/config"
	"github.com/sec10k/chunker/fetch"
	"github.com/sec10k/chunker/filing"
	"github.com/sec10k/chunker/logging"
	"github.com/sec10k/chunker/parse"
	"github.com/sec10k/chunker/sink"
)

func main() {
	var (
		input      = flag.String("input", "", "path to the filing's HTML file")
		output     = flag.String("output", "", "path to write chunks as JSON-lines (overrides config)")
		configPath = flag.String("config", "", "path to an optional config file (env, json, yaml, toml)")
		dev        = flag.Bool("dev", false, "use human-readable development logging")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "tenkchunker: -input is required")
		os.Exit(2)
	}

	if err := run(*input, *output, *configPath, *dev); err != nil {
		fmt.Fprintf(os.Stderr, "tenkchunker: %v\n", err)
		os.Exit(1)
	}
}

func run(input, output, configPath string, dev bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.OutputPath = output
	}

	logger, err := logging.New(cfg.LogLevel, dev || cfg.Development)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	fetcher := fetch.LocalFetcher{}
	htmlSource, meta, err := fetcher.Fetch(ctx, input)
	if err != nil {
		return err
	}

	doc, err := parse.ParseFiling(ctx, htmlSource, meta, logger)
	if err != nil {
		return fmt.Errorf("parsing filing: %w", err)
	}

	parseStats := parse.Statistics(doc)
	logger.Info("parsed filing",
		zap.Int("total_nodes", parseStats.TotalNodes),
		zap.Int("item_count", len(parseStats.Items)),
	)

	itemCfg := cfg.ItemChunkingConfig()
	cfgs := make(map[filing.ItemName]chunk.ItemChunkingConfig, len(chunk.ItemsChunkingConfigs))
	for name := range chunk.ItemsChunkingConfigs {
		cfgs[name] = itemCfg
	}

	chunks, err := chunk.ChunkDocument(ctx, doc, cfgs, logger)
	if err != nil {
		return fmt.Errorf("chunking filing: %w", err)
	}

	chunkStats := chunk.Statistics(chunks)
	logger.Info("chunked filing",
		zap.Int("total_chunks", chunkStats.TotalChunks),
		zap.String("output_path", cfg.OutputPath),
	)

	out := sink.NewFileSink(cfg.OutputPath)
	if err := out.Write(chunks); err != nil {
		return fmt.Errorf("writing chunks: %w", err)
	}

	return nil
}
