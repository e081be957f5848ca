package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColor(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Color", true},
		{" colour ", true},
		{"Cor", true},
		{"Size", false},
		{"Colorway", false},
	}
	for _, tt := range tests {
		if got := IsColor(tt.name); got != tt.want {
			t.Errorf("IsColor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPartition(t *testing.T) {
	dims := []Dimension{
		NewDimension("Size", "M", "L"),
		NewDimension("Color", "Red"),
		NewDimension("Fit", "Slim"),
		NewDimension("Pattern", "Dots"),
	}

	visual, standard := Partition(dims, nil)
	assert.Equal(t, []string{"Color"}, Names(visual))
	assert.Equal(t, []string{"Size", "Fit", "Pattern"}, Names(standard))

	visual, standard = Partition(dims, NameSet("pattern", "COLOR"))
	assert.Equal(t, []string{"Color", "Pattern"}, Names(visual))
	assert.Equal(t, []string{"Size", "Fit"}, Names(standard))
}

func TestDimension_Has(t *testing.T) {
	d := NewDimension("Size", "M", "L")
	assert.True(t, d.Has("L"))
	assert.False(t, d.Has("XL"))
}

func TestCatalogItem(t *testing.T) {
	item := CatalogItem{ID: "1", Variations: map[string]string{"Size": "M"}, Offer: Offer{Price: 10, AvailableQuantity: 1}}
	assert.True(t, item.Available())
	assert.Equal(t, "M", item.Value("Size"))
	assert.Equal(t, Unset, item.Value("Color"))

	empty := CatalogItem{ID: "2"}
	assert.False(t, empty.Available())
	assert.Equal(t, Unset, empty.Value("Size"))
}
