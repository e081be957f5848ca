package primitives

import "strings"

// Dimension is a named axis of product variation with its ordered legal values.
type Dimension struct {
	Name   string   `json:"name" yaml:"name"`
	Values []string `json:"values" yaml:"values"`
}

// NewDimension creates a Dimension.
func NewDimension(name string, values ...string) Dimension {
	return Dimension{Name: name, Values: values}
}

// Has reports whether value is one of the dimension's legal values.
func (d Dimension) Has(value string) bool {
	for _, v := range d.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Classifier reports whether a dimension is visual. Visual dimensions are always pinned to
// the owning item's value; every other dimension is standard and may be unset.
type Classifier func(name string) bool

// DefaultVisualNames are the dimension names treated as color-like by IsColor.
var DefaultVisualNames = []string{"color", "colour", "cor"}

// IsColor is the default classifier: a dimension is visual when its name is one of
// DefaultVisualNames, ignoring case and surrounding whitespace.
func IsColor(name string) bool {
	return NameSet(DefaultVisualNames...)(name)
}

// NameSet returns a case-insensitive classifier matching any of the given names.
func NameSet(names ...string) Classifier {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[normalizeName(n)] = struct{}{}
	}
	return func(name string) bool {
		_, ok := set[normalizeName(name)]
		return ok
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Partition splits dims into visual and standard sets, preserving declared order in both.
// A nil classifier falls back to IsColor.
func Partition(dims []Dimension, isVisual Classifier) (visual, standard []Dimension) {
	if isVisual == nil {
		isVisual = IsColor
	}
	for _, d := range dims {
		if isVisual(d.Name) {
			visual = append(visual, d)
		} else {
			standard = append(standard, d)
		}
	}
	return visual, standard
}

// Names returns the dimension names in order.
func Names(dims []Dimension) []string {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	return names
}
