package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type SourceKind string

const (
	SourceDefault SourceKind = "default"
	SourceFile    SourceKind = "file"
)

// Source records where an effective config value came from.
type Source struct {
	Kind   SourceKind
	File   string
	Line   int
	Column int
}

// LoadResult is an effective config plus per-key source attribution.
type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML path -> file source (file-set keys only)
	Path    string            // config file path, even if it did not exist
}

// DefaultConfigPath returns the standard config location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "sage", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing file
// yields the defaults.
func Load() (*Config, error) {
	res, err := LoadWithSources()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSources loads config and returns file-level sources for introspection.
func LoadWithSources() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath loads the file at path over the defaults. Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	sources := map[string]Source{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("%s: failed to read: %w", path, err)
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(data, &doc); err == nil {
			sources = collectSources(&doc, path)
		}
	}

	if err := cfg.Validate(); err != nil {
		if len(sources) > 0 {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return nil, err
	}

	return &LoadResult{Config: cfg, Sources: sources, Path: path}, nil
}

// collectSources walks the document and records the file position of every
// key the file actually set. Only the two nesting levels the config schema
// uses are considered.
func collectSources(doc *yaml.Node, file string) map[string]Source {
	sources := map[string]Source{}
	if doc == nil || len(doc.Content) == 0 {
		return sources
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return sources
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]

		if val.Kind == yaml.MappingNode {
			for j := 0; j+1 < len(val.Content); j += 2 {
				subKey := val.Content[j]
				subVal := val.Content[j+1]
				sources[key.Value+"."+subKey.Value] = Source{
					Kind: SourceFile, File: file, Line: subVal.Line, Column: subVal.Column,
				}
			}
			continue
		}

		sources[key.Value] = Source{Kind: SourceFile, File: file, Line: val.Line, Column: val.Column}
	}
	return sources
}
