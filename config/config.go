// Package config loads runtime configuration for the tenkchunker pipeline,
// layering environment variables and an optional config file on top of
// built-in defaults via viper.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/sec10k/chunker/chunk"
)

// Config holds the tunables exposed to operators.
type Config struct {
	LogLevel         string
	Development      bool
	MaxChunkWords    int
	OverlapWords     int
	MinChunkWords    int
	OutputPath       string
}

// Load reads configuration from (in ascending priority) built-in defaults,
// an optional file at configPath, and TENKCHUNKER_-prefixed environment
// variables.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TENKCHUNKER")
	v.AutomaticEnv()

	v.SetDefault("log_level", "info")
	v.SetDefault("development", false)
	v.SetDefault("max_chunk_words", chunk.DefaultItemChunkingConfig.MaxChunkWords)
	v.SetDefault("overlap_words", chunk.DefaultItemChunkingConfig.OverlapWords)
	v.SetDefault("min_chunk_words", chunk.DefaultItemChunkingConfig.MinChunkWords)
	v.SetDefault("output_path", "chunks.jsonl")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	return Config{
		LogLevel:      v.GetString("log_level"),
		Development:   v.GetBool("development"),
		MaxChunkWords: v.GetInt("max_chunk_words"),
		OverlapWords:  v.GetInt("overlap_words"),
		MinChunkWords: v.GetInt("min_chunk_words"),
		OutputPath:    v.GetString("output_path"),
	}, nil
}

// ItemChunkingConfig builds the chunk.ItemChunkingConfig this Config
// describes, for use as the uniform fallback passed to chunk.ChunkDocument.
func (c Config) ItemChunkingConfig() chunk.ItemChunkingConfig {
	return chunk.ItemChunkingConfig{
		MaxChunkWords: c.MaxChunkWords,
		OverlapWords:  c.OverlapWords,
		MinChunkWords: c.MinChunkWords,
	}
}
