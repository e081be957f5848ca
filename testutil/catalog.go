// Package testutil provides catalog fixtures shared by tests and benchmarks.
package testutil

import (
	"fmt"

	"github.com/comalice/skuselect/internal/primitives"
)

// Item is shorthand for a catalog item with one image named after its id.
func Item(id string, variations map[string]string, price float64, qty int) primitives.CatalogItem {
	return primitives.CatalogItem{
		ID:         id,
		Variations: variations,
		Offer:      primitives.Offer{Price: price, AvailableQuantity: qty},
		Images:     []primitives.Image{{URL: "https://img.example/" + id + ".jpg", Label: id}},
	}
}

// ScenarioCatalog is the two-item red shirt catalog: A is Red/M, available at 10;
// B is Red/L, out of stock at 12.
func ScenarioCatalog() ([]primitives.CatalogItem, []primitives.Dimension) {
	dims := []primitives.Dimension{
		primitives.NewDimension("Color", "Red"),
		primitives.NewDimension("Size", "M", "L"),
	}
	items := []primitives.CatalogItem{
		Item("A", map[string]string{"Color": "Red", "Size": "M"}, 10, 5),
		Item("B", map[string]string{"Color": "Red", "Size": "L"}, 12, 0),
	}
	return items, dims
}

// ApparelCatalog has two colors and three sizes with mixed stock and prices.
//
//	r-s Red/S  20 in stock
//	r-m Red/M  25 out of stock
//	r-l Red/L  22 in stock
//	b-s Blue/S 20 out of stock
//	b-m Blue/M 18 in stock
func ApparelCatalog() ([]primitives.CatalogItem, []primitives.Dimension) {
	dims := []primitives.Dimension{
		primitives.NewDimension("Color", "Red", "Blue"),
		primitives.NewDimension("Size", "S", "M", "L"),
	}
	items := []primitives.CatalogItem{
		Item("r-s", map[string]string{"Color": "Red", "Size": "S"}, 20, 3),
		Item("r-m", map[string]string{"Color": "Red", "Size": "M"}, 25, 0),
		Item("r-l", map[string]string{"Color": "Red", "Size": "L"}, 22, 1),
		Item("b-s", map[string]string{"Color": "Blue", "Size": "S"}, 20, 0),
		Item("b-m", map[string]string{"Color": "Blue", "Size": "M"}, 18, 2),
	}
	return items, dims
}

// GenCatalog generates the full cross product of colors x sizes x fits. Every third item
// is out of stock and prices cycle through five values.
func GenCatalog(colors, sizes, fits int) ([]primitives.CatalogItem, []primitives.Dimension) {
	dims := []primitives.Dimension{
		genDimension("Color", "c", colors),
		genDimension("Size", "s", sizes),
		genDimension("Fit", "f", fits),
	}
	var items []primitives.CatalogItem
	n := 0
	for _, c := range dims[0].Values {
		for _, s := range dims[1].Values {
			for _, f := range dims[2].Values {
				qty := 1
				if n%3 == 2 {
					qty = 0
				}
				items = append(items, Item(
					fmt.Sprintf("sku-%d", n),
					map[string]string{"Color": c, "Size": s, "Fit": f},
					float64(10+n%5),
					qty,
				))
				n++
			}
		}
	}
	return items, dims
}

func genDimension(name, prefix string, n int) primitives.Dimension {
	if n < 1 {
		n = 1
	}
	values := make([]string, n)
	for i := range values {
		values[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return primitives.NewDimension(name, values...)
}
