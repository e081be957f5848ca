package production

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlCatalog = `
dimensions:
  - name: Color
    values: [Red]
  - name: Size
    values: [M, L]
items:
  - id: A
    variations: {Color: Red, Size: M}
    offer: {price: 10, availableQuantity: 5}
    images:
      - url: https://img.example/a.jpg
        label: front
  - id: B
    variations: {Color: Red, Size: L}
    offer: {price: 12, availableQuantity: 0}
preselection:
  Size: M
`

const jsonCatalog = `{
  "dimensions": [{"name": "Color", "values": ["Red"]}, {"name": "Size", "values": ["M", "L"]}],
  "items": [
    {"id": "A", "variations": {"Color": "Red", "Size": "M"}, "offer": {"price": 10, "availableQuantity": 5}},
    {"id": "B", "variations": {"Color": "Red", "Size": "L"}, "offer": {"price": 12, "availableQuantity": 0}}
  ]
}`

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yaml")
	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlCatalog), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonCatalog), 0o644))

	fromYAML, err := LoadCatalog(yamlPath)
	require.NoError(t, err)
	fromJSON, err := LoadCatalog(jsonPath)
	require.NoError(t, err)

	for _, c := range []*Catalog{fromYAML, fromJSON} {
		require.Len(t, c.Dimensions, 2)
		assert.Equal(t, "Size", c.Dimensions[1].Name)
		assert.Equal(t, []string{"M", "L"}, c.Dimensions[1].Values)
		require.Len(t, c.Items, 2)
		assert.Equal(t, "L", c.Items[1].Variations["Size"])
		assert.Equal(t, 12.0, c.Items[1].Offer.Price)
		assert.False(t, c.Items[1].Available())
		assert.True(t, c.Items[0].Available())
	}
	assert.Equal(t, map[string]string{"Size": "M"}, fromYAML.Preselection)
	require.Len(t, fromYAML.Items[0].Images, 1)
	assert.Equal(t, "front", fromYAML.Items[0].Images[0].Label)
	assert.Nil(t, fromJSON.Preselection)
}

func TestLoadCatalog_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadCatalog(filepath.Join(dir, "catalog.toml"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadCatalog(bad)
	assert.Error(t, err)
}

func TestDecodeCatalog_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"unnamed dimension", `{"dimensions":[{"values":["a"]}]}`, "has no name"},
		{"duplicate dimension", `{"dimensions":[{"name":"Size"},{"name":"Size"}]}`, "duplicate dimension"},
		{"empty value", `{"dimensions":[{"name":"Size","values":[""]}]}`, "empty value"},
		{"missing id", `{"items":[{"variations":{}}]}`, "has no id"},
		{"duplicate id", `{"items":[{"id":"a"},{"id":"a"}]}`, "duplicate item id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog(strings.NewReader(tt.doc), FormatJSON)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := DecodeCatalog(strings.NewReader("{}"), Format("xml"))
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))

	// A missing dimension value is not an error.
	c, err := DecodeCatalog(strings.NewReader(`{"dimensions":[{"name":"Size","values":["M"]}],"items":[{"id":"a","variations":{}}]}`), FormatJSON)
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}
