package refilter

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/coregx/refilter/literal"
	"github.com/coregx/refilter/prefilter"
)

// Pattern is a registered pattern. It is immutable.
type Pattern struct {
	index   int
	pattern string
	opts    Options
	re      *regexp.Regexp
	formula literal.Formula
}

// Index returns the registration index of the pattern.
func (p *Pattern) Index() int {
	return p.index
}

// String returns the pattern text as registered.
func (p *Pattern) String() string {
	return p.pattern
}

// Options returns the parse options the pattern was registered with.
func (p *Pattern) Options() Options {
	return p.opts
}

// Regex returns the compiled regex used to confirm candidates. Its source
// carries the inline flags of Options.
func (p *Pattern) Regex() *regexp.Regexp {
	return p.re
}

// Formula returns the literal requirement indexed for the pattern, after
// short literals were pruned.
func (p *Pattern) Formula() literal.Formula {
	return p.formula
}

// Info is a snapshot of corpus statistics.
type Info struct {
	// Patterns is the number of registered patterns.
	Patterns int
	// Atoms is the number of distinct indexed literals.
	Atoms int
	// Unfiltered is the number of patterns with no literal requirement, which
	// are confirmed against every haystack.
	Unfiltered int
	// Impossible is the number of patterns whose requirement can never hold.
	// They are counted in Unfiltered too: their regex still has the final say.
	Impossible int
	// Scanner is the literal automaton in use.
	Scanner prefilter.ScanStrategy
}

func (i Info) String() string {
	return fmt.Sprintf("patterns=%d atoms=%d unfiltered=%d impossible=%d scanner=%s",
		i.Patterns, i.Atoms, i.Unfiltered, i.Impossible, i.Scanner)
}

// Extractor matches haystacks against a compiled corpus.
//
// An Extractor is immutable and safe for concurrent use; per-call state comes
// from an internal pool.
type Extractor struct {
	patterns  []*Pattern
	index     *prefilter.Index
	statePool *searchStatePool
}

// Len returns the number of patterns.
func (x *Extractor) Len() int {
	return len(x.patterns)
}

// Pattern returns the pattern registered at index i.
// Panics if i is out of range.
func (x *Extractor) Pattern(i int) *Pattern {
	return x.patterns[i]
}

// Patterns returns all patterns in registration order.
func (x *Extractor) Patterns() []*Pattern {
	return append([]*Pattern(nil), x.patterns...)
}

// Info returns corpus statistics.
func (x *Extractor) Info() Info {
	return Info{
		Patterns:   len(x.patterns),
		Atoms:      x.index.NumAtoms(),
		Unfiltered: x.index.NumUnfiltered(),
		Impossible: x.index.NumImpossible(),
		Scanner:    x.index.Strategy(),
	}
}

// IsMatch reports whether any pattern matches haystack. It stops at the first
// confirmed match.
func (x *Extractor) IsMatch(haystack string) bool {
	for range x.Matching(haystack) {
		return true
	}
	return false
}

// Matching returns the patterns matching haystack as (index, regex) pairs in
// ascending index order.
//
// The sequence is lazy: candidates are confirmed one at a time as the caller
// pulls, and breaking out of the loop skips the remaining ones. Every range
// over the sequence runs the full search again.
//
// Example:
//
//	for i, re := range x.Matching(ua) {
//	    fmt.Println(x.Pattern(i), re.FindStringSubmatch(ua))
//	}
func (x *Extractor) Matching(haystack string) iter.Seq2[int, *regexp.Regexp] {
	return func(yield func(int, *regexp.Regexp) bool) {
		state := x.statePool.get()
		defer x.statePool.put(state)

		x.filter(haystack, state)
		for c, ok := state.candidates.NextSet(0); ok; c, ok = state.candidates.NextSet(c + 1) {
			p := int(c)
			if !x.index.Eval(p, state.hits) {
				continue
			}
			re := x.patterns[p].re
			if !re.MatchString(haystack) {
				continue
			}
			if !yield(p, re) {
				return
			}
		}
	}
}

// Candidates returns, in ascending order, the patterns that survive the
// prefilter for haystack: those whose literal requirement holds. Every
// pattern that matches haystack is among them; the converse need not hold.
func (x *Extractor) Candidates(haystack string) []int {
	state := x.statePool.get()
	defer x.statePool.put(state)

	x.filter(haystack, state)
	var out []int
	for c, ok := state.candidates.NextSet(0); ok; c, ok = state.candidates.NextSet(c + 1) {
		if x.index.Eval(int(c), state.hits) {
			out = append(out, int(c))
		}
	}
	return out
}

// filter scans the folded haystack for atoms and collects the patterns
// that reference a present atom or are unfiltered.
func (x *Extractor) filter(haystack string, state *searchState) {
	state.folded = prefilter.AppendFold(state.folded[:0], haystack)
	x.index.Scan(state.folded, state.hits)
	x.index.Candidates(state.hits, state.candidates)
}
