package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashSelection_OrderIndependent(t *testing.T) {
	a := Selection{}
	a["Color"] = "Red"
	a["Size"] = "M"
	a["Fit"] = Unset

	b := Selection{}
	b["Fit"] = Unset
	b["Size"] = "M"
	b["Color"] = "Red"

	assert.Equal(t, HashSelection(a), HashSelection(b))
	assert.Equal(t, a.Key(), b.Key())
}

func TestHashSelection_Distinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b Selection
	}{
		{"value", Selection{"Size": "M"}, Selection{"Size": "L"}},
		{"unset vs set", Selection{"Size": Unset}, Selection{"Size": "M"}},
		{"dimension name", Selection{"Size": "M"}, Selection{"Fit": "M"}},
		{"field boundary", Selection{"ab": "c"}, Selection{"a": "bc"}},
		{"extra dimension", Selection{"Size": "M"}, Selection{"Size": "M", "Color": "Red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, HashSelection(tt.a), HashSelection(tt.b))
		})
	}
}

func TestHashSelection_Format(t *testing.T) {
	k := HashSelection(Selection{"Color": "Red"})
	require.Len(t, string(k), 16)
	for _, r := range string(k) {
		assert.Contains(t, "0123456789abcdef", string(r))
	}
}

func TestHashAction(t *testing.T) {
	sel := Action{Dimension: "Size", Value: "M"}
	assert.Equal(t, sel.Key(), Action{Dimension: "Size", Value: "M"}.Key())
	assert.NotEqual(t, sel.Key(), Deselect("Size").Key())
	assert.NotEqual(t, sel.Key(), Action{Dimension: "Fit", Value: "M"}.Key())

	// An action never shares a key with the selection holding the same pair.
	assert.NotEqual(t, HashAction(sel), HashSelection(Selection{"Size": "M"}))
}
