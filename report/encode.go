package report

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ricci/errors"
)

// Format selects a record encoding.
type Format int

const (
	// FormatJSON is indented JSON.
	FormatJSON Format = iota
	// FormatYAML is YAML with two-space indentation.
	FormatYAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps a name or file extension ("json", ".yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, errors.Wrapf(errors.ErrInvalidConfig, "report: unknown format %q", name)
	}
}

// Encode writes rec to w.
func Encode(w io.Writer, rec Record, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(rec), "report: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return errors.Wrap(err, "report: encode yaml")
		}
		return errors.Wrap(enc.Close(), "report: encode yaml")
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "report: unknown format %d", int(f))
	}
}

// Decode reads one record from r.
func Decode(r io.Reader, f Format) (*Record, error) {
	var rec Record
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&rec); err != nil {
			return nil, errors.Wrap(err, "report: decode json")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&rec); err != nil {
			return nil, errors.Wrap(err, "report: decode yaml")
		}
	default:
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "report: unknown format %d", int(f))
	}
	return &rec, nil
}
