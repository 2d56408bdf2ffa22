// Package output renders command results as plain text, YAML or JSON.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format selects how results are rendered.
type Format int

const (
	FormatText Format = iota
	FormatYAML
	FormatJSON
)

var ErrUnknownFormat = errors.New("unknown output format")

var formatNames = map[string]Format{
	"text": FormatText,
	"yaml": FormatYAML,
	"json": FormatJSON,
}

// ParseFormat maps a --format value to a Format. Names are case-insensitive.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FormatText, fmt.Errorf("%w: %q (want text, yaml or json)", ErrUnknownFormat, name)
	}
	return f, nil
}

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// Printer writes results to w in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
}

func New(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

func (p *Printer) Format() Format {
	return p.format
}

// structured writes v as YAML or JSON. It reports false in text mode so the
// caller renders its own layout.
func (p *Printer) structured(v any) (bool, error) {
	switch p.format {
	case FormatYAML:
		payload, err := yaml.Marshal(v)
		if err != nil {
			return true, fmt.Errorf("encode YAML: %w", err)
		}
		_, err = p.w.Write(payload)
		return true, err
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return true, fmt.Errorf("encode JSON: %w", err)
		}
		return true, nil
	default:
		return false, nil
	}
}
