package main

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/selector"
)

func newOptionsCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "options [Dim=Val ...]",
		Short: "Show the options a picker offers after the given selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := parseActions(args)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(nil)
			if err != nil {
				return err
			}
			interp := core.NewInterpreter(g,
				core.WithLogger(a.log.Named("interpreter")),
				core.WithRecorder(a.metrics))
			if err := interp.Start(); err != nil {
				return err
			}
			defer interp.Stop()
			for _, action := range actions {
				interp.Select(action.Dimension, action.Value)
			}
			state, err := interp.CurrentState()
			if err != nil {
				return err
			}
			vars := selector.Variations(g, state)

			out := cmd.OutOrStdout()
			switch format {
			case "text":
				printState(out, g, state)
				for _, v := range vars {
					kind := ""
					if v.Visual {
						kind = " (visual)"
					}
					fmt.Fprintf(out, "%s%s\n", v.Name, kind)
					for _, o := range v.Options {
						mark := " "
						if o.Selected {
							mark = "x"
						}
						avail := "available"
						if !o.Available {
							avail = "unavailable"
						}
						fmt.Fprintf(out, "  [%s] %-12s %s\n", mark, o.Label, avail)
					}
				}
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(vars)
			case "yaml":
				return yaml.NewEncoder(out).Encode(vars)
			default:
				return errors.Newf("unknown format %q, want text, json or yaml", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	return cmd
}
