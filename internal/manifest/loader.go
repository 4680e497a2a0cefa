package manifest

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Format identifies the on-disk encoding of a manifest export.
type Format string

const (
	FormatJSON  Format = "json"  // a single JSON array
	FormatJSONL Format = "jsonl" // one JSON object per line
	FormatYAML  Format = "yaml"  // a YAML sequence
)

var ErrUnsupportedFormat = errors.New("unsupported manifest format")

// DetectFormat infers the format from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Decode reads all records from r in the given format.
// JSONL lines that fail to decode are skipped with a warning, matching how
// partially corrupted exports are tolerated elsewhere in the pipeline.
func Decode(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatJSON:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read manifests: %w", err)
		}
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 {
			return []Record{}, nil
		}
		// Some exporters label line-delimited output as .json
		if trimmed[0] != '[' {
			return Decode(bytes.NewReader(trimmed), FormatJSONL)
		}
		var records []Record
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, fmt.Errorf("failed to decode manifest array: %w", err)
		}
		return records, nil

	case FormatJSONL:
		records := make([]Record, 0)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		line := 0
		for scanner.Scan() {
			line++
			raw := bytes.TrimSpace(scanner.Bytes())
			if len(raw) == 0 {
				continue
			}
			var rec Record
			if err := json.Unmarshal(raw, &rec); err != nil {
				log.Warn().Err(err).Int("line", line).Msg("Skipping invalid JSON line in manifest export")
				continue
			}
			records = append(records, rec)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("error reading manifests: %w", err)
		}
		return records, nil

	case FormatYAML:
		var records []Record
		if err := yaml.NewDecoder(r).Decode(&records); err != nil {
			if errors.Is(err, io.EOF) {
				return []Record{}, nil
			}
			return nil, fmt.Errorf("failed to decode manifest yaml: %w", err)
		}
		return records, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// LoadFile reads a manifest export, choosing the decoder from the file extension.
func LoadFile(path string) ([]Record, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifests: %w", err)
	}
	defer file.Close()

	records, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().Str("path", path).Str("format", string(format)).Int("count", len(records)).Msg("Loaded manifests")
	return records, nil
}

// LoadFiles reads several exports concurrently and concatenates them in argument order.
func LoadFiles(ctx context.Context, paths []string) ([]Record, error) {
	parts := make([][]Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			records, err := LoadFile(path)
			if err != nil {
				return err
			}
			parts[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	all := make([]Record, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}
	return all, nil
}
