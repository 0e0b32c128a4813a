// Package prefilter builds the corpus-wide literal index used to narrow a set
// of patterns down to candidates before running any regex engine.
//
// Every pattern contributes a literal.Formula. The index collects the distinct
// literals (atoms) of all formulas, assigns them dense identifiers in
// first-seen order, compiles one multi-literal automaton over all atoms and
// records, per atom, which patterns mention it (the reverse index).
//
// Searching is two steps:
//   - Scan runs the automaton once over a folded haystack and records the atoms
//     present in a sparse set
//   - Candidates walks the reverse index from the present atoms and returns,
//     in ascending order, the patterns whose formula may hold
//
// Example usage:
//
//	b := prefilter.NewBuilder(prefilter.DefaultConfig())
//	b.Push(literal.Atom("foo"))
//	b.Push(literal.Atom("bar").And(literal.Atom("baz"), 0))
//	ix, err := b.Build()
//	if err != nil {
//	    return err
//	}
//
//	hits := sparse.NewSparseSet(uint32(ix.NumAtoms()))
//	ix.Scan(prefilter.AppendFold(nil, "bar baz"), hits)
//	cands := bitset.New(uint(ix.NumPatterns()))
//	ix.Candidates(hits, cands)
//	// pattern 1 is a candidate, pattern 0 is not
//
// An Index is immutable after Build and safe for concurrent use; all per-search
// state lives in the caller-supplied sets.
package prefilter

import (
	"fmt"

	"github.com/coregx/refilter/internal/sparse"
)

// ScanStrategy selects the multi-literal automaton used to find atoms.
type ScanStrategy int

const (
	// ScanLeftmost uses github.com/coregx/ahocorasick with its overlapping
	// search, so atoms nested in or straddling other atoms are reported.
	ScanLeftmost ScanStrategy = iota

	// ScanDictionary uses github.com/cloudflare/ahocorasick, whose matcher
	// reports every dictionary entry found in the haystack. Matchers carry
	// per-search state and are pooled.
	ScanDictionary
)

// String returns a human-readable name for the strategy.
func (s ScanStrategy) String() string {
	switch s {
	case ScanLeftmost:
		return "Leftmost"
	case ScanDictionary:
		return "Dictionary"
	default:
		return fmt.Sprintf("ScanStrategy(%d)", int(s))
	}
}

// Config configures index construction.
type Config struct {
	// MinAtomLen is the minimum atom length in bytes. Shorter literals are
	// dropped from formulas at Push time; short atoms hit most haystacks and
	// only inflate the candidate set. Values below 1 are treated as 1.
	// Default: 3.
	MinAtomLen int

	// Strategy selects the atom automaton. Default: ScanLeftmost.
	Strategy ScanStrategy
}

// DefaultConfig returns the default index configuration.
func DefaultConfig() Config {
	return Config{
		MinAtomLen: 3,
		Strategy:   ScanLeftmost,
	}
}

// scanner records the atoms occurring in a folded haystack.
//
// Implementations must be safe for concurrent use.
type scanner interface {
	scan(haystack []byte, hits *sparse.SparseSet)
}

// noopScanner serves corpora without atoms.
type noopScanner struct{}

func (noopScanner) scan([]byte, *sparse.SparseSet) {}

func newScanner(strategy ScanStrategy, atoms []string) (scanner, error) {
	if len(atoms) == 0 {
		return noopScanner{}, nil
	}
	switch strategy {
	case ScanLeftmost:
		return newLeftmostScanner(atoms)
	case ScanDictionary:
		return newDictionaryScanner(atoms), nil
	default:
		return nil, fmt.Errorf("prefilter: unknown scan strategy %v", strategy)
	}
}
