package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/internal/production"
)

func newGraphCmd(a *app) *cobra.Command {
	var (
		format    string
		preselect []string
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Build the selection graph of a catalog and print it",
		Long: `Build the selection graph of a catalog and print it as Graphviz DOT, JSON or YAML.

In DOT output the initial state has a double border and, when a preselection is
given, is filled as the current state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pre, err := parsePreselection(preselect)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(pre)
			if err != nil {
				return err
			}

			v := &production.DefaultVisualizer{}
			out := cmd.OutOrStdout()
			switch format {
			case "dot":
				var current primitives.Key
				if g.Preselected() {
					current = g.Initial()
				}
				_, err = out.Write([]byte(v.ExportDOT(g, current)))
			case "json":
				var data []byte
				if data, err = v.ExportJSON(g); err == nil {
					_, err = out.Write(append(data, '\n'))
				}
			case "yaml":
				var data []byte
				if data, err = v.ExportYAML(g); err == nil {
					_, err = out.Write(data)
				}
			default:
				return errors.Newf("unknown format %q, want dot, json or yaml", format)
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, json or yaml")
	cmd.Flags().StringSliceVar(&preselect, "preselect", nil, "preselected Dim=Val, repeatable")
	return cmd
}
