package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/cache"
	"github.com/comalice/skuselect/internal/config"
	"github.com/comalice/skuselect/internal/core"
	"github.com/comalice/skuselect/internal/logger"
	"github.com/comalice/skuselect/internal/primitives"
	"github.com/comalice/skuselect/internal/production"
)

// app carries what every subcommand needs once the root pre-run has loaded configuration.
type app struct {
	v        *viper.Viper
	cfg      *config.Config
	log      *zap.Logger
	graphs   *cache.GraphCache
	registry *prometheus.Registry
	metrics  *production.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "skuselect",
		Short: "Build and walk SKU selection graphs",
		Long: `skuselect precomputes every reachable combination of variation values in a
product catalog and lets you walk the resulting graph one selection at a time.

Examples:
  skuselect graph --catalog shirts.yaml --format dot | dot -Tsvg > shirts.svg
  skuselect walk --catalog shirts.yaml Size=M Color=Blue
  skuselect options --catalog shirts.yaml Size=M`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgFile)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.String("catalog", "", "catalog file (yaml or json)")
	flags.StringSlice("visual", nil, "visual dimension names, matched case-insensitively (default color,colour,cor)")
	flags.String("log-level", "", "log level: debug, info, warn, error (default info)")
	flags.Bool("log-json", false, "log as JSON")
	bindFlags(a.v, flags, map[string]string{
		"catalog":           "catalog",
		"visual_dimensions": "visual",
		"log.level":         "log-level",
		"log.json":          "log-json",
	})

	root.AddCommand(
		newGraphCmd(a),
		newWalkCmd(a),
		newOptionsCmd(a),
		newVersionCmd(),
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		// Lookup cannot fail for flags registered above.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func (a *app) init(cfgFile string) error {
	cfg, err := config.Load(a.v, cfgFile)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Log)
	if err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	graphs, err := cache.New(cfg.Cache.Size, log.Named("cache"))
	if err != nil {
		return err
	}
	registry := prometheus.NewRegistry()
	metrics, err := production.NewMetrics(registry)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = log
	a.graphs = graphs
	a.registry = registry
	a.metrics = metrics
	log.Debug("configuration loaded",
		zap.String("catalog", cfg.Catalog),
		zap.Strings("visual_dimensions", cfg.VisualDimensions),
		zap.Int("cache_size", cfg.Cache.Size))
	return nil
}

// loadGraph reads the configured catalog and returns its graph. preselect overrides the
// catalog's own preselection value by value.
func (a *app) loadGraph(preselect map[string]string) (*core.Graph, error) {
	if a.cfg.Catalog == "" {
		return nil, errors.WithHint(errors.New("no catalog"), "pass --catalog or set catalog in the config file")
	}
	cat, err := production.LoadCatalog(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}

	pre := cat.Preselection
	if len(preselect) > 0 {
		pre = make(map[string]string, len(cat.Preselection)+len(preselect))
		for k, v := range cat.Preselection {
			pre[k] = v
		}
		for k, v := range preselect {
			pre[k] = v
		}
	}

	opts := append(a.cfg.BuildOptions(),
		core.WithBuildLogger(a.log.Named("build")),
		core.WithBuildRecorder(a.metrics),
	)
	return a.graphs.Get(cache.Request{
		Items:        cat.Items,
		Dimensions:   cat.Dimensions,
		Preselection: pre,
		Scope:        a.cfg.Graph.ID + "|" + strings.Join(a.cfg.VisualDimensions, ","),
	}, opts...)
}

// parseActions turns Dim=Val arguments into actions. Dim= clears Dim.
func parseActions(args []string) ([]primitives.Action, error) {
	actions := make([]primitives.Action, 0, len(args))
	for _, arg := range args {
		dim, value, ok := strings.Cut(arg, "=")
		if !ok || dim == "" {
			return nil, errors.Newf("invalid selection %q, want Dimension=Value", arg)
		}
		actions = append(actions, primitives.Action{Dimension: dim, Value: value})
	}
	return actions, nil
}

func parsePreselection(args []string) (map[string]string, error) {
	actions, err := parseActions(args)
	if err != nil {
		return nil, err
	}
	if len(actions) == 0 {
		return nil, nil
	}
	pre := make(map[string]string, len(actions))
	for _, a := range actions {
		pre[a.Dimension] = a.Value
	}
	return pre, nil
}

// printMetrics writes one line per collected sample, sorted by metric name.
func (a *app) printMetrics(w io.Writer) error {
	families, err := a.registry.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	sort.Slice(families, func(i, j int) bool { return families[i].GetName() < families[j].GetName() })
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
			}
			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				value = float64(m.GetHistogram().GetSampleCount())
			}
			fmt.Fprintf(w, "  %s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), value)
		}
	}
	return nil
}
