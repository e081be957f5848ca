package primitives

import "sort"

// Unset marks a dimension that has no chosen value. The empty string is reserved for it
// and is never a legal dimension value.
const Unset = ""

// Selection maps every declared dimension name to a value or Unset.
type Selection map[string]string

// Get returns the selected value for dimension, or Unset.
func (s Selection) Get(dimension string) string {
	return s[dimension]
}

// IsSet reports whether dimension holds a value.
func (s Selection) IsSet(dimension string) bool {
	return s[dimension] != Unset
}

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both selections assign the same value to every dimension.
// A missing dimension compares equal to an Unset one.
func (s Selection) Equal(other Selection) bool {
	_, n := s.Diff(other)
	return n == 0
}

// Diff compares the selections dimension by dimension and returns the number of differing
// dimensions. When exactly one differs, dimension names it; otherwise dimension is empty.
func (s Selection) Diff(other Selection) (dimension string, n int) {
	for k, v := range s {
		if other[k] != v {
			n++
			dimension = k
		}
	}
	for k, v := range other {
		if _, seen := s[k]; !seen && v != Unset {
			n++
			dimension = k
		}
	}
	if n != 1 {
		dimension = ""
	}
	return dimension, n
}

// With returns a copy with dimension set to value.
func (s Selection) With(dimension, value string) Selection {
	out := s.Clone()
	out[dimension] = value
	return out
}

// Dimensions returns the selection's dimension names in sorted order.
func (s Selection) Dimensions() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Key returns the canonical hash of the selection.
func (s Selection) Key() Key {
	return HashSelection(s)
}

// Project spreads a partial dimension/value mapping over all declared dimensions.
// Dimensions the preselection does not mention, or mentions with Unset, become Unset.
func Project(preselection map[string]string, dims []Dimension) Selection {
	out := make(Selection, len(dims))
	for _, d := range dims {
		out[d.Name] = preselection[d.Name]
	}
	return out
}

// Action is a single dimension change labelling one graph edge. Value is Unset for
// a deselection.
type Action struct {
	Dimension string `json:"dimension" yaml:"dimension"`
	Value     string `json:"value" yaml:"value"`
}

// Deselect returns the action that clears dimension.
func Deselect(dimension string) Action {
	return Action{Dimension: dimension, Value: Unset}
}

// IsDeselect reports whether the action clears its dimension.
func (a Action) IsDeselect() bool {
	return a.Value == Unset
}

// Key returns the canonical hash of the action.
func (a Action) Key() Key {
	return HashAction(a)
}

// String renders the action as "Dimension=Value", or "Dimension=" for a deselection.
func (a Action) String() string {
	return a.Dimension + "=" + a.Value
}
