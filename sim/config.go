package sim

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StoreConfig describes the checkout area: how many lines of each kind to
// build and the capacity every line shares. Lines are constructed in the
// order regular, express, self-serve.
type StoreConfig struct {
	RegularCount   int `json:"regular_count" yaml:"regular_count"`       // number of regular cashier lines (>= 0)
	ExpressCount   int `json:"express_count" yaml:"express_count"`       // number of express lines (>= 0)
	SelfServeCount int `json:"self_serve_count" yaml:"self_serve_count"` // number of self-serve lines (>= 0)
	LineCapacity   int `json:"line_capacity" yaml:"line_capacity"`       // max customers per line (>= 1)
}

// NumLines returns the total number of lines the config describes.
func (c StoreConfig) NumLines() int {
	return c.RegularCount + c.ExpressCount + c.SelfServeCount
}

// Validate checks the config invariants: non-negative counts, at least one
// line, positive capacity.
func (c StoreConfig) Validate() error {
	if c.RegularCount < 0 || c.ExpressCount < 0 || c.SelfServeCount < 0 {
		return fmt.Errorf("line counts must be non-negative, got regular=%d express=%d self_serve=%d",
			c.RegularCount, c.ExpressCount, c.SelfServeCount)
	}
	if c.NumLines() == 0 {
		return fmt.Errorf("store must have at least one checkout line")
	}
	if c.LineCapacity < 1 {
		return fmt.Errorf("line_capacity must be positive, got %d", c.LineCapacity)
	}
	return nil
}

// ParseStoreConfig decodes a store configuration from data. format is
// "json" or one of "yaml"/"yml". Unknown keys are errors in both formats:
// a typoed field must fail, not silently fall back to a zero value.
func ParseStoreConfig(data []byte, format string) (StoreConfig, error) {
	var cfg StoreConfig
	switch format {
	case "json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return StoreConfig{}, fmt.Errorf("parsing store config: %w", err)
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return StoreConfig{}, fmt.Errorf("parsing store config: %w", err)
		}
	default:
		return StoreConfig{}, fmt.Errorf("unsupported store config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return StoreConfig{}, err
	}
	return cfg, nil
}

// LoadStoreConfig reads and parses the store configuration at path. The
// format is picked from the file extension; anything that is not .yaml/.yml
// is treated as JSON, the reference configuration format.
func LoadStoreConfig(path string) (StoreConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StoreConfig{}, fmt.Errorf("reading store config: %w", err)
	}
	format := "json"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml":
		format = "yaml"
	case ".yml":
		format = "yml"
	}
	return ParseStoreConfig(data, format)
}
