// Command skuselect builds SKU selection graphs from catalog files and walks them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
