// Package input decodes documents into plain Go values for inspection.
package input

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for unknown format names and extensions.
var ErrUnsupportedFormat = errors.New("unsupported format")

// Format names an input document format.
type Format string

const (
	JSON  Format = "json"
	JSONL Format = "jsonl"
	YAML  Format = "yaml"
	TOML  Format = "toml"
	XML   Format = "xml"
	CSV   Format = "csv"
	TSV   Format = "tsv"
)

var formats = []Format{JSON, JSONL, YAML, TOML, XML, CSV, TSV}

var extensions = map[string]Format{
	".json":   JSON,
	".jsonl":  JSONL,
	".ndjson": JSONL,
	".yaml":   YAML,
	".yml":    YAML,
	".toml":   TOML,
	".xml":    XML,
	".csv":    CSV,
	".tsv":    TSV,
}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	if f, ok := extensions[strings.ToLower(filepath.Ext(path))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
}

// Decode reads every document in r. Formats holding a single document
// return one value.
func Decode(r io.Reader, f Format) ([]any, error) {
	switch f {
	case JSON:
		return decodeJSON(r)
	case JSONL:
		return decodeJSONL(r)
	case YAML:
		return decodeYAML(r)
	case TOML:
		return decodeTOML(r)
	case XML:
		return decodeXML(r)
	case CSV:
		return decodeCSV(r, ',')
	case TSV:
		return decodeCSV(r, '\t')
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
