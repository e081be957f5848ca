package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/extensibility"
	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/internal/production"
)

func newWalkCmd(a *app) *cobra.Command {
	var (
		preselect      []string
		trace          bool
		logTransitions bool
		showMetrics    bool
	)
	cmd := &cobra.Command{
		Use:   "walk [Dim=Val ...]",
		Short: "Start at the initial state and apply each selection in turn",
		Long: `Start at the initial state and apply each selection in turn, printing every
state the selection moves through. Selecting the value that is already selected
clears the dimension; Dim= clears it explicitly. Selections with no edge from the
current state are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			actions, err := parseActions(args)
			if err != nil {
				return err
			}
			pre, err := parsePreselection(preselect)
			if err != nil {
				return err
			}
			g, err := a.loadGraph(pre)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			records := make(chan core.TransitionRecord, len(actions)+1)
			opts := []core.Option{
				core.WithLogger(a.log.Named("interpreter")),
				core.WithRecorder(a.metrics),
				core.WithSelectionCallback(func(itemID string) {
					fmt.Fprintf(out, "  -> selected item %s\n", itemID)
				}),
			}
			if trace {
				opts = append(opts, core.WithPublisher(production.NewChannelPublisher(records)))
			}
			interp := core.NewInterpreter(g, opts...)
			interp.OnTransition(func(s *core.GraphState) { printState(out, g, s) })
			if logTransitions {
				interp.OnTransition(extensibility.NewLoggingListener(a.log.Named("walk")))
			}

			if err := interp.Start(); err != nil {
				return err
			}
			for _, action := range actions {
				if !interp.Select(action.Dimension, action.Value) {
					fmt.Fprintf(out, "ignored %s: no edge from %s\n", action, interp.CurrentKey())
				}
			}
			if err := interp.Stop(); err != nil {
				return err
			}

			if trace {
				fmt.Fprintln(out, "trace:")
				for r := range records {
					from := string(r.From)
					if from == "" {
						from = "start"
					}
					fmt.Fprintf(out, "  %s -> %s", from, r.To)
					if r.ActionKey != "" {
						fmt.Fprintf(out, " on %s", r.Action)
					}
					fmt.Fprintln(out)
				}
			}
			if showMetrics {
				fmt.Fprintln(out, "metrics:")
				return a.printMetrics(out)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&preselect, "preselect", nil, "preselected Dim=Val, repeatable")
	cmd.Flags().BoolVar(&trace, "trace", false, "print the transition records after the walk")
	cmd.Flags().BoolVar(&logTransitions, "log-transitions", false, "log every state at info level")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "print build and transition metrics after the walk")
	return cmd
}

func printState(w io.Writer, g *core.Graph, s *core.GraphState) {
	fmt.Fprintf(w, "%s  %s", s.Key, formatSelection(g, s.Selection))
	if s.HasItem() {
		fmt.Fprintf(w, "  item=%s", s.ItemID)
	}
	if s.Available {
		fmt.Fprint(w, "  available")
	} else {
		fmt.Fprint(w, "  unavailable")
	}
	if s.Price != nil {
		if s.Price.NotUnique {
			fmt.Fprintf(w, "  from %.2f", s.Price.Value)
		} else {
			fmt.Fprintf(w, "  %.2f", s.Price.Value)
		}
	}
	fmt.Fprintln(w)
}

func formatSelection(g *core.Graph, sel primitives.Selection) string {
	parts := make([]string, 0, len(g.Dimensions()))
	for _, d := range g.Dimensions() {
		value := sel.Get(d.Name)
		if value == primitives.Unset {
			value = "*"
		}
		parts = append(parts, d.Name+"="+value)
	}
	return strings.Join(parts, " ")
}
