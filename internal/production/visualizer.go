package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/primitives"
)

// DefaultVisualizer renders a built graph as Graphviz DOT, JSON or YAML.
type DefaultVisualizer struct{}

// GraphSnapshot is the serializable view of a graph. States keep build order.
type GraphSnapshot struct {
	ID                 string                               `json:"id" yaml:"id"`
	Initial            primitives.Key                       `json:"initial" yaml:"initial"`
	Preselected        bool                                 `json:"preselected" yaml:"preselected"`
	Dimensions         []primitives.Dimension               `json:"dimensions" yaml:"dimensions"`
	VisualDimensions   []string                             `json:"visualDimensions" yaml:"visualDimensions"`
	StandardDimensions []string                             `json:"standardDimensions" yaml:"standardDimensions"`
	States             []*core.GraphState                   `json:"states" yaml:"states"`
	Actions            map[primitives.Key]primitives.Action `json:"actions" yaml:"actions"`
}

// Snapshot captures g for serialization.
func Snapshot(g *core.Graph) GraphSnapshot {
	snap := GraphSnapshot{
		ID:                 g.ID(),
		Initial:            g.Initial(),
		Preselected:        g.Preselected(),
		Dimensions:         g.Dimensions(),
		VisualDimensions:   g.VisualDimensions(),
		StandardDimensions: g.StandardDimensions(),
		Actions:            make(map[primitives.Key]primitives.Action),
	}
	for _, k := range g.Keys() {
		s, _ := g.State(k)
		snap.States = append(snap.States, s)
	}
	for _, k := range g.ActionKeys() {
		a, _ := g.Action(k)
		snap.Actions[k] = a
	}
	return snap
}

// ExportJSON serializes the graph to indented JSON.
func (v *DefaultVisualizer) ExportJSON(g *core.Graph) ([]byte, error) {
	return json.MarshalIndent(Snapshot(g), "", "  ")
}

// ExportYAML serializes the graph to YAML.
func (v *DefaultVisualizer) ExportYAML(g *core.Graph) ([]byte, error) {
	return yaml.Marshal(Snapshot(g))
}

// ExportDOT generates Graphviz DOT source for the graph, named after its id. States sharing visual-dimension
// values are grouped into one cluster; current is highlighted and unavailable states
// are drawn dashed.
func (v *DefaultVisualizer) ExportDOT(g *core.Graph, current primitives.Key) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", g.ID())
	buf.WriteString(`  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	visual := g.VisualDimensions()
	clusters, labels := groupByVisual(g, visual)
	for n, label := range labels {
		keys := clusters[label]
		if label == "" {
			for _, k := range keys {
				renderState(&buf, g, k, current, "  ")
			}
			continue
		}
		buf.WriteString(fmt.Sprintf("  subgraph cluster_%d {\n", n))
		buf.WriteString(fmt.Sprintf("    label=%q;\n", label))
		for _, k := range keys {
			renderState(&buf, g, k, current, "    ")
		}
		buf.WriteString("  }\n")
	}

	for _, e := range collectEdges(g) {
		buf.WriteString(fmt.Sprintf("  %q -> %q [label=%q];\n", e.From, e.To, e.Label))
	}

	buf.WriteString("}\n")
	return buf.String()
}

// Edge represents one rendered transition.
type Edge struct {
	From  string
	To    string
	Label string
}

// collectEdges returns every edge ordered by source build order, then label.
func collectEdges(g *core.Graph) []Edge {
	var edges []Edge
	for _, k := range g.Keys() {
		s, _ := g.State(k)
		var local []Edge
		for actionKey, to := range s.Edges {
			a, _ := g.Action(actionKey)
			local = append(local, Edge{From: string(k), To: string(to), Label: actionLabel(a)})
		}
		sort.Slice(local, func(i, j int) bool { return local[i].Label < local[j].Label })
		edges = append(edges, local...)
	}
	return edges
}

func actionLabel(a primitives.Action) string {
	if a.IsDeselect() {
		return "clear " + a.Dimension
	}
	return a.String()
}

// groupByVisual buckets state keys by their visual-dimension values, in first-seen order.
func groupByVisual(g *core.Graph, visual []string) (map[string][]primitives.Key, []string) {
	clusters := make(map[string][]primitives.Key)
	var order []string
	for _, k := range g.Keys() {
		s, _ := g.State(k)
		parts := make([]string, 0, len(visual))
		for _, d := range visual {
			parts = append(parts, d+"="+s.Selection.Get(d))
		}
		label := strings.Join(parts, ", ")
		if _, ok := clusters[label]; !ok {
			order = append(order, label)
		}
		clusters[label] = append(clusters[label], k)
	}
	return clusters, order
}

func renderState(buf *bytes.Buffer, g *core.Graph, key, current primitives.Key, indent string) {
	s, _ := g.State(key)
	var lines []string
	for _, d := range g.StandardDimensions() {
		value := s.Selection.Get(d)
		if value == primitives.Unset {
			value = "*"
		}
		lines = append(lines, d+"="+value)
	}
	if s.HasItem() {
		lines = append(lines, "item "+s.ItemID)
	}
	if s.Price != nil {
		price := fmt.Sprintf("%.2f", s.Price.Value)
		if s.Price.NotUnique {
			price = "from " + price
		}
		lines = append(lines, price)
	}

	var attrs []string
	switch {
	case key == current:
		attrs = append(attrs, "style=filled", "fillcolor=lightgreen")
	case !s.Available:
		attrs = append(attrs, `style="rounded,dashed"`, "fontcolor=gray")
	}
	if key == g.Initial() {
		attrs = append(attrs, "peripheries=2")
	}
	style := ""
	if len(attrs) > 0 {
		style = " " + strings.Join(attrs, " ")
	}
	buf.WriteString(fmt.Sprintf("%s%q [label=%q%s];\n", indent, string(key), strings.Join(lines, "\n"), style))
}
