package primitives

// Image is a picture attached to a catalog item.
type Image struct {
	URL   string `json:"url" yaml:"url"`
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
}

// Offer is the commercial offer of a catalog item.
type Offer struct {
	Price             float64 `json:"price" yaml:"price"`
	AvailableQuantity int     `json:"availableQuantity" yaml:"availableQuantity"`
}

// CatalogItem is one purchasable item: its id, one value per declared dimension,
// its offer and its images.
type CatalogItem struct {
	ID         string            `json:"id" yaml:"id"`
	Variations map[string]string `json:"variations" yaml:"variations"`
	Offer      Offer             `json:"offer" yaml:"offer"`
	Images     []Image           `json:"images,omitempty" yaml:"images,omitempty"`
}

// Available reports whether the item can be bought.
func (c CatalogItem) Available() bool {
	return c.Offer.AvailableQuantity > 0
}

// Value returns the item's value for a dimension. Items missing a value for a declared
// dimension are not rejected; the dimension is read as Unset.
func (c CatalogItem) Value(dimension string) string {
	if c.Variations == nil {
		return Unset
	}
	return c.Variations[dimension]
}
