package primitives

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint(t *testing.T) {
	dims := []Dimension{NewDimension("Color", "Red"), NewDimension("Size", "M", "L")}
	items := []CatalogItem{
		{ID: "A", Variations: map[string]string{"Color": "Red", "Size": "M"}, Offer: Offer{Price: 10, AvailableQuantity: 5}},
	}

	a, err := Fingerprint(items, dims, nil)
	require.NoError(t, err)
	b, err := Fingerprint(items, dims, nil)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 32)

	c, err := Fingerprint(items, dims, map[string]string{"Size": "M"})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	empty, err := Fingerprint(items, dims, map[string]string{})
	require.NoError(t, err)
	assert.NotEqual(t, a, empty)

	changed := []CatalogItem{items[0]}
	changed[0].Offer.AvailableQuantity = 0
	d, err := Fingerprint(changed, dims, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}

func TestFingerprint_UnencodablePrice(t *testing.T) {
	items := []CatalogItem{{ID: "A", Offer: Offer{Price: math.NaN()}}}
	_, err := Fingerprint(items, nil, nil)
	assert.Error(t, err)
}
