package primitives

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// fingerprintInput is the canonical JSON shape hashed by Fingerprint. encoding/json sorts
// map keys, so the encoding is stable for equal inputs.
type fingerprintInput struct {
	Items        []CatalogItem     `json:"items"`
	Dimensions   []Dimension       `json:"dimensions"`
	Preselection map[string]string `json:"preselection,omitempty"`
	Preselected  bool              `json:"preselected"`
}

// Fingerprint computes a deterministic content hash of the inputs a graph is built from.
// Item and dimension order are significant: the builder's first-wins rules depend on them.
// An empty preselection differs from none, as it still pins the initial state.
func Fingerprint(items []CatalogItem, dims []Dimension, preselection map[string]string) (string, error) {
	data, err := json.Marshal(fingerprintInput{
		Items:        items,
		Dimensions:   dims,
		Preselection: preselection,
		Preselected:  preselection != nil,
	})
	if err != nil {
		return "", errors.Wrap(err, "fingerprint marshal")
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:16]), nil
}
