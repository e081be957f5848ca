// Options for configuring Build and Interpreter instances.
package core

import (
	"go.uber.org/zap"

	"github.com/comalice/skuselect/internal/primitives"
)

// BuildOption configures Build via the functional options pattern.
type BuildOption func(*buildConfig)

type buildConfig struct {
	id              string
	classifier      primitives.Classifier
	preselection    map[string]string
	hasPreselection bool
	logger          *zap.Logger
	recorder        Recorder
}

func newBuildConfig(opts []BuildOption) buildConfig {
	cfg := buildConfig{
		id:         DefaultGraphID,
		classifier: primitives.IsColor,
		logger:     zap.NewNop(),
		recorder:   nopRecorder{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithGraphID sets the graph id.
func WithGraphID(id string) BuildOption {
	return func(c *buildConfig) {
		if id != "" {
			c.id = id
		}
	}
}

// WithClassifier replaces the visual/standard dimension classifier.
func WithClassifier(isVisual primitives.Classifier) BuildOption {
	return func(c *buildConfig) {
		if isVisual != nil {
			c.classifier = isVisual
		}
	}
}

// WithPreselection sets the initial state from a partial dimension/value mapping,
// e.g. one parsed from a deep link. Unmentioned dimensions start unset.
func WithPreselection(preselection map[string]string) BuildOption {
	return func(c *buildConfig) {
		if preselection == nil {
			return
		}
		c.preselection = preselection
		c.hasPreselection = true
	}
}

// WithPreselectedItem sets the initial state from an externally chosen item's values.
func WithPreselectedItem(item primitives.CatalogItem) BuildOption {
	return func(c *buildConfig) {
		c.preselection = item.Variations
		if c.preselection == nil {
			c.preselection = map[string]string{}
		}
		c.hasPreselection = true
	}
}

// PreselectionOf reports the preselection opts would apply, if any. Later options win,
// as in Build.
func PreselectionOf(opts ...BuildOption) (map[string]string, bool) {
	cfg := newBuildConfig(opts)
	return cfg.preselection, cfg.hasPreselection
}

// WithBuildLogger sets the logger used during Build.
func WithBuildLogger(l *zap.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBuildRecorder sets the Recorder notified when Build completes.
func WithBuildRecorder(r Recorder) BuildOption {
	return func(c *buildConfig) {
		if r != nil {
			c.recorder = r
		}
	}
}

// Option configures an Interpreter via the functional options pattern.
type Option func(*Interpreter)

// WithLogger sets the interpreter logger.
func WithLogger(l *zap.Logger) Option {
	return func(i *Interpreter) {
		if l != nil {
			i.logger = l
		}
	}
}

// WithPublisher forwards every notified transition to p after listeners ran.
func WithPublisher(p Publisher) Option {
	return func(i *Interpreter) {
		i.publisher = p
	}
}

// WithRecorder sets the Recorder notified on every Send.
func WithRecorder(r Recorder) Option {
	return func(i *Interpreter) {
		if r != nil {
			i.recorder = r
		}
	}
}

// WithSelectionCallback registers fn to receive the bound item id after each notified
// transition. It only fires for graphs built with a preselection, where the caller already
// committed to a concrete item and wants to follow the shopper's choice.
func WithSelectionCallback(fn func(itemID string)) Option {
	return func(i *Interpreter) {
		i.onSelected = fn
	}
}
