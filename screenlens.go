// Package screenlens infers semantic structure from classified UI
// screenshots: layout organization, component relationships, and recognized
// design patterns.
//
// The inputs are components and text elements produced by an external
// classifier; screenlens never touches pixels. Basic usage:
//
//	engine := screenlens.New()
//	result, err := engine.Analyze(screenlens.Input{
//	    Components: components,
//	    Texts:      texts,
//	    Image:      screenshot,
//	})
//	if err != nil {
//	    // handle partial failure; result still carries the stages
//	    // that completed
//	}
//	fmt.Println(result.Layout.Type, result.Patterns.Overall)
//
// With options:
//
//	cfg, err := screenlens.LoadConfig("screenlens.yaml")
//	engine := screenlens.New(
//	    screenlens.WithConfig(cfg),
//	    screenlens.WithLogger(logger),
//	)
//
// For finer control, the layout, relations, and patterns packages are also
// available on their own.
package screenlens

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/screenlens/layout"
	"github.com/tsawler/screenlens/model"
	"github.com/tsawler/screenlens/patterns"
	"github.com/tsawler/screenlens/relations"
)

// Input is one screenshot's worth of classifier output.
type Input struct {
	// Components are the classified UI components.
	Components []model.Component

	// Texts are the recognized text elements.
	Texts []model.TextElement

	// Image is the screenshot's dimensions.
	Image model.ImageDimensions

	// ColorCount and EdgeDensity come from external pixel-level
	// analysis and feed the complexity score; both may be zero.
	ColorCount  int
	EdgeDensity float64
}

// Result carries the reports of every analysis stage. A stage that failed
// leaves its report nil; the others are still populated.
type Result struct {
	Layout        *layout.Report
	Relationships *relations.Report
	Patterns      *patterns.Report
}

// StageError marks which analysis stage failed.
type StageError struct {
	Stage string
	Err   error
}

// Error returns a string representation of the error.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error {
	return e.Err
}

// Engine runs the full analysis pipeline. It is safe for concurrent use:
// all stages are pure functions of their input.
type Engine struct {
	config Config
	logger *logrus.Logger

	layout    *layout.Analyzer
	relations *relations.Mapper
	patterns  *patterns.Matcher
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the default configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// WithLogger attaches a logger for debug output. Without one the engine
// stays silent.
func WithLogger(logger *logrus.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = logrus.New()
		e.logger.SetOutput(io.Discard)
	}

	e.layout = layout.NewAnalyzerWithConfig(e.config.Layout)
	e.relations = relations.NewMapperWithConfig(e.config.Relations)
	e.patterns = patterns.NewMatcherWithConfig(e.config.Patterns)

	return e
}

// Analyze runs layout analysis, relationship mapping, and pattern matching
// on one screenshot. A failing stage is reported as a StageError and leaves
// its report nil; the remaining stages still run, so the result is usable
// even when err is non-nil.
func (e *Engine) Analyze(in Input) (*Result, error) {
	e.logger.WithFields(logrus.Fields{
		"components": len(in.Components),
		"texts":      len(in.Texts),
	}).Debug("analysis started")

	result := &Result{}
	var errs []error

	if err := e.runStage("layout", func() {
		result.Layout = e.layout.Analyze(in.Components, in.Image)
	}); err != nil {
		errs = append(errs, err)
	}

	if err := e.runStage("relationships", func() {
		result.Relationships = e.relations.Map(in.Components, in.Texts)
	}); err != nil {
		errs = append(errs, err)
	}

	if err := e.runStage("patterns", func() {
		result.Patterns = e.patterns.Match(patterns.Input{
			Components:  in.Components,
			Texts:       in.Texts,
			Layout:      result.Layout,
			Image:       in.Image,
			ColorCount:  in.ColorCount,
			EdgeDensity: in.EdgeDensity,
		})
	}); err != nil {
		errs = append(errs, err)
	}

	return result, errors.Join(errs...)
}

// AnalyzeLayout runs only the layout stage.
func (e *Engine) AnalyzeLayout(components []model.Component, dims model.ImageDimensions) *layout.Report {
	return e.layout.Analyze(components, dims)
}

// AnalyzeRelationships runs only the relationship stage.
func (e *Engine) AnalyzeRelationships(components []model.Component, texts []model.TextElement) *relations.Report {
	return e.relations.Map(components, texts)
}

// MatchPatterns runs the pattern stage, with a fresh layout analysis behind
// it since several detectors consult layout structure.
func (e *Engine) MatchPatterns(in Input) *patterns.Report {
	return e.patterns.Match(patterns.Input{
		Components:  in.Components,
		Texts:       in.Texts,
		Layout:      e.layout.Analyze(in.Components, in.Image),
		Image:       in.Image,
		ColorCount:  in.ColorCount,
		EdgeDensity: in.EdgeDensity,
	})
}

// runStage executes one pipeline stage, converting a panic into a
// StageError so one misbehaving stage cannot take down the others.
func (e *Engine) runStage(stage string, fn func()) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = &StageError{Stage: stage, Err: fmt.Errorf("%v", r)}
			e.logger.WithField("stage", stage).WithError(err).Error("stage failed")
		}
	}()

	fn()
	e.logger.WithFields(logrus.Fields{
		"stage":    stage,
		"duration": time.Since(start),
	}).Debug("stage complete")
	return nil
}
