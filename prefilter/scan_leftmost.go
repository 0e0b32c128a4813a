package prefilter

import (
	"fmt"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/refilter/internal/conv"
	"github.com/coregx/refilter/internal/sparse"
)

// leftmostScanner finds atoms with the coregx Aho-Corasick automaton.
//
// Find and FindAll stop at leftmost-first matches, which hide atoms that start
// inside or straddle an earlier one ("dows" inside "windows"). The scan uses
// the overlapping search instead, which reports every atom ending at every
// position.
type leftmostScanner struct {
	automaton *ahocorasick.Automaton
}

func newLeftmostScanner(atoms []string) (*leftmostScanner, error) {
	builder := ahocorasick.NewBuilder()
	builder.AddStrings(atoms)

	automaton, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("prefilter: building atom automaton over %d atoms: %w", len(atoms), err)
	}
	return &leftmostScanner{automaton: automaton}, nil
}

func (s *leftmostScanner) scan(haystack []byte, hits *sparse.SparseSet) {
	for _, m := range s.automaton.FindAllOverlapping(haystack) {
		hits.Insert(conv.IntToUint32(m.PatternID))
	}
}
