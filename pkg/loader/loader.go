package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formrules/pkg/message"
	"github.com/dmitrymomot/formrules/pkg/rules"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

type document struct {
	Rules []entry `json:"rules" yaml:"rules"`
}

type entry struct {
	Name         string `json:"name" yaml:"name"`
	Type         string `json:"type" yaml:"type"`
	StateMap     string `json:"stateMap" yaml:"stateMap"`
	CompareWith  any    `json:"compareWith" yaml:"compareWith"`
	DefaultValue any    `json:"defaultValue" yaml:"defaultValue"`
	Message      string `json:"message" yaml:"message"`
}

func (e entry) descriptor() rules.Descriptor {
	d := rules.Descriptor{
		Name:         e.Name,
		Type:         e.Type,
		StateMap:     e.StateMap,
		CompareWith:  e.CompareWith,
		DefaultValue: e.DefaultValue,
	}
	if e.Message != "" {
		d.Message = message.Template(e.Message)
	}
	return d
}

// Parse decodes a descriptor document.
func Parse(data []byte, format Format) ([]rules.Descriptor, error) {
	var doc document
	if err := decode(data, format, &doc, true); err != nil {
		return nil, err
	}

	out := make([]rules.Descriptor, 0, len(doc.Rules))
	for _, e := range doc.Rules {
		out = append(out, e.descriptor())
	}
	return out, nil
}

// Load reads and decodes a descriptor document.
func Load(r io.Reader, format Format) ([]rules.Descriptor, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read descriptors: %w", err)
	}
	return Parse(data, format)
}

// LoadFile reads a descriptor document, choosing the format from the extension.
func LoadFile(path string) ([]rules.Descriptor, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptors: %w", err)
	}
	descriptors, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return descriptors, nil
}

// ParseState decodes a state snapshot. Objects become map[string]any.
func ParseState(data []byte, format Format) (any, error) {
	var state any
	if err := decode(data, format, &state, false); err != nil {
		return nil, err
	}
	return state, nil
}

// LoadStateFile reads a state snapshot, choosing the format from the extension.
func LoadStateFile(path string) (any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read state: %w", err)
	}
	state, err := ParseState(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return state, nil
}

func decode(data []byte, format Format, v any, strict bool) error {
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		if strict {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(v); err != nil {
			return errors.Join(ErrDecode, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(strict)
		if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
			return errors.Join(ErrDecode, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return nil
}
