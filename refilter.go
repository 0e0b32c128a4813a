// Package refilter selects which regular expressions of a large corpus match a
// haystack without running every pattern against it.
//
// Each registered pattern is analyzed into a literal requirement: a formula
// over substrings that any matching haystack must contain. The literals of the
// whole corpus are compiled into one multi-literal automaton. Matching is two
// phases:
//   - Prefilter: scan the haystack once for literals, then keep the patterns
//     whose requirement holds (plus patterns with no requirement at all)
//   - Confirm: run the real regex of each surviving candidate
//
// The prefilter is sound: a pattern whose regex matches the haystack is always
// a candidate. Results are therefore exactly the patterns whose regex matches.
//
// Basic usage:
//
//	b := refilter.NewBuilder()
//	if err := b.PushAll(`Firefox/(\d+)`, `Chrome/(\d+)`, `(?:Edge|Edg)/(\d+)`); err != nil {
//	    log.Fatal(err)
//	}
//	x, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for i, re := range x.Matching(userAgent) {
//	    fmt.Println(i, re.FindStringSubmatch(userAgent))
//	}
//
// Patterns use the Go regexp syntax (regexp/syntax with Perl flags) and are
// confirmed with package regexp, which parses them with the same grammar and
// flags as the analyzer. An Extractor is immutable after
// Build and safe for concurrent use.
package refilter

import (
	"regexp/syntax"
	"strings"

	"github.com/coregx/refilter/literal"
	"github.com/coregx/refilter/prefilter"
)

// Config configures corpus construction.
//
// Example:
//
//	config := refilter.DefaultConfig()
//	config.MinAtomLen = 4
//	config.Scanner = prefilter.ScanDictionary
//	b := refilter.NewBuilderWithConfig(config)
type Config struct {
	// MinAtomLen is the minimum length in bytes of an indexed literal.
	// Shorter literals are dropped from requirements; a requirement left with
	// nothing to check makes its pattern a candidate for every haystack.
	// Values below 1 are treated as 1. Default: 3.
	MinAtomLen int

	// Analyzer bounds requirement analysis of each pattern. Its MinAtomLen is
	// raised to MinAtomLen.
	Analyzer literal.AnalyzerConfig

	// Scanner selects the literal automaton. Default: prefilter.ScanLeftmost.
	Scanner prefilter.ScanStrategy
}

// DefaultConfig returns the default corpus configuration.
func DefaultConfig() Config {
	return Config{
		MinAtomLen: prefilter.DefaultConfig().MinAtomLen,
		Analyzer:   literal.DefaultConfig(),
		Scanner:    prefilter.ScanLeftmost,
	}
}

// Options are per-pattern parse options. They are equivalent to the inline
// flags i, s, m and U and apply to the whole pattern.
type Options struct {
	// CaseInsensitive matches letters regardless of case (?i).
	CaseInsensitive bool

	// DotMatchesNewLine lets . match \n (?s).
	DotMatchesNewLine bool

	// MultiLine makes ^ and $ match at line boundaries (?m).
	MultiLine bool

	// Ungreedy swaps the meaning of x* and x*? (?U).
	Ungreedy bool
}

// flags returns the parse flags used for requirement analysis.
func (o Options) flags() syntax.Flags {
	flags := syntax.Perl
	if o.CaseInsensitive {
		flags |= syntax.FoldCase
	}
	if o.DotMatchesNewLine {
		flags |= syntax.DotNL
	}
	if o.MultiLine {
		flags &^= syntax.OneLine
	}
	if o.Ungreedy {
		flags |= syntax.NonGreedy
	}
	return flags
}

// prefix returns the inline flag group that gives a Perl-syntax compiler the
// same semantics as flags.
func (o Options) prefix() string {
	var b strings.Builder
	if o.CaseInsensitive {
		b.WriteByte('i')
	}
	if o.DotMatchesNewLine {
		b.WriteByte('s')
	}
	if o.MultiLine {
		b.WriteByte('m')
	}
	if o.Ungreedy {
		b.WriteByte('U')
	}
	if b.Len() == 0 {
		return ""
	}
	return "(?" + b.String() + ")"
}
