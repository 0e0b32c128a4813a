package refilter

import (
	"regexp"
	"regexp/syntax"

	"github.com/coregx/refilter/literal"
	"github.com/coregx/refilter/prefilter"
)

// Builder accumulates patterns for an Extractor.
//
// Patterns are identified by registration order, starting at 0. A Builder is
// single-use: Build consumes it. A Builder is not safe for concurrent use.
type Builder struct {
	config   Config
	analyzer *literal.Analyzer
	index    *prefilter.Builder
	patterns []*Pattern
	consumed bool
}

// NewBuilder creates a Builder with DefaultConfig.
func NewBuilder() *Builder {
	return NewBuilderWithConfig(DefaultConfig())
}

// NewBuilderWithConfig creates a Builder with a custom configuration.
// A zero Analyzer configuration is replaced by literal.DefaultConfig.
func NewBuilderWithConfig(config Config) *Builder {
	if config.Analyzer == (literal.AnalyzerConfig{}) {
		config.Analyzer = literal.DefaultConfig()
	}
	if config.Analyzer.MinAtomLen < config.MinAtomLen {
		config.Analyzer.MinAtomLen = config.MinAtomLen
	}
	return &Builder{
		config:   config,
		analyzer: literal.NewAnalyzer(config.Analyzer),
		index: prefilter.NewBuilder(prefilter.Config{
			MinAtomLen: config.MinAtomLen,
			Strategy:   config.Scanner,
		}),
	}
}

// Push registers a pattern with default Options.
func (b *Builder) Push(pattern string) error {
	return b.PushOpt(pattern, Options{})
}

// PushOpt registers a pattern parsed with opts.
//
// An invalid pattern yields a *SyntaxError and leaves the Builder unchanged.
func (b *Builder) PushOpt(pattern string, opts Options) error {
	if b.consumed {
		return ErrBuilderConsumed
	}
	index := len(b.patterns)

	tree, err := syntax.Parse(pattern, opts.flags())
	if err != nil {
		return &SyntaxError{Index: index, Pattern: pattern, Err: err}
	}
	re, err := regexp.Compile(opts.prefix() + pattern)
	if err != nil {
		return &SyntaxError{Index: index, Pattern: pattern, Err: err}
	}

	formula := b.index.Push(b.analyzer.Analyze(tree.Simplify()))
	b.patterns = append(b.patterns, &Pattern{
		index:   index,
		pattern: pattern,
		opts:    opts,
		re:      re,
		formula: formula,
	})
	return nil
}

// PushAll registers patterns in order with default Options. It stops at the
// first invalid pattern; the patterns before it stay registered.
func (b *Builder) PushAll(patterns ...string) error {
	for _, p := range patterns {
		if err := b.Push(p); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of registered patterns.
func (b *Builder) Len() int {
	return len(b.patterns)
}

// Build compiles the literal index and returns the Extractor. The Builder is
// consumed even when Build fails.
func (b *Builder) Build() (*Extractor, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	ix, err := b.index.Build()
	if err != nil {
		return nil, &BuildError{Err: err}
	}

	x := &Extractor{
		patterns: b.patterns,
		index:    ix,
	}
	x.statePool = newSearchStatePool(ix.NumAtoms(), ix.NumPatterns())
	b.index = nil
	return x, nil
}
