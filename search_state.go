package refilter

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
	"github.com/coregx/refilter/internal/conv"
	"github.com/coregx/refilter/internal/sparse"
)

// maxPooledFold caps the folded-haystack buffer kept in a pooled state, so one
// huge haystack does not pin its copy for the lifetime of the Extractor.
const maxPooledFold = 64 << 10

// searchState holds per-call scratch for the prefilter phase.
//
// Thread safety: each call takes its own searchState from the pool; a
// searchState is never shared between goroutines.
type searchState struct {
	// hits is the set of atom ids present in the haystack.
	hits *sparse.SparseSet

	// candidates is the set of pattern ids to evaluate, iterated in ascending
	// order.
	candidates *bitset.BitSet

	// folded is the lower-cased haystack.
	folded []byte
}

func newSearchState(numAtoms, numPatterns int) *searchState {
	return &searchState{
		hits:       sparse.NewSparseSet(conv.IntToUint32(numAtoms)),
		candidates: bitset.New(uint(numPatterns)),
	}
}

// reset prepares the state for reuse.
func (s *searchState) reset() {
	s.hits.Clear()
	s.candidates.ClearAll()
	if cap(s.folded) > maxPooledFold {
		s.folded = nil
	} else {
		s.folded = s.folded[:0]
	}
}

// searchStatePool manages searchState instances for concurrent searches on
// one Extractor.
type searchStatePool struct {
	pool sync.Pool
}

func newSearchStatePool(numAtoms, numPatterns int) *searchStatePool {
	p := &searchStatePool{}
	p.pool.New = func() any {
		return newSearchState(numAtoms, numPatterns)
	}
	return p
}

func (p *searchStatePool) get() *searchState {
	return p.pool.Get().(*searchState)
}

func (p *searchStatePool) put(s *searchState) {
	s.reset()
	p.pool.Put(s)
}
