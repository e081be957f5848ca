// Package production provides the adapters around the selection core: catalog file
// loading, graph visualization, transition publishing and Prometheus metrics.
package production

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/comalice/skuselect/internal/primitives"
)

// ErrUnsupportedFormat is returned for catalog files that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

// Format names a catalog encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Catalog is the on-disk shape of a catalog snapshot.
type Catalog struct {
	Dimensions   []primitives.Dimension   `json:"dimensions" yaml:"dimensions"`
	Items        []primitives.CatalogItem `json:"items" yaml:"items"`
	Preselection map[string]string        `json:"preselection,omitempty" yaml:"preselection,omitempty"`
}

// Validate checks the catalog is well typed: named, unique dimensions without empty values
// and items with unique, non-empty ids. Items missing a dimension value are accepted.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Dimensions))
	for i, d := range c.Dimensions {
		if d.Name == "" {
			return errors.Newf("dimension %d has no name", i)
		}
		if seen[d.Name] {
			return errors.Newf("duplicate dimension %q", d.Name)
		}
		seen[d.Name] = true
		for _, v := range d.Values {
			if v == primitives.Unset {
				return errors.Newf("dimension %q has an empty value", d.Name)
			}
		}
	}
	ids := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.ID == "" {
			return errors.Newf("item %d has no id", i)
		}
		if ids[item.ID] {
			return errors.Newf("duplicate item id %q", item.ID)
		}
		ids[item.ID] = true
	}
	return nil
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
}

// LoadCatalog reads and validates a catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	c, err := DecodeCatalog(bytes.NewReader(data), format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return c, nil
}

// DecodeCatalog decodes and validates a catalog.
func DecodeCatalog(r io.Reader, format Format) (*Catalog, error) {
	var c Catalog
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(err, "json decode")
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&c); err != nil {
			return nil, errors.Wrap(err, "yaml decode")
		}
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", string(format))
	}
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "catalog validation")
	}
	return &c, nil
}
