package prefilter

import (
	"sync"

	"github.com/cloudflare/ahocorasick"
	"github.com/coregx/refilter/internal/conv"
	"github.com/coregx/refilter/internal/sparse"
)

// dictionaryScanner finds atoms with a dictionary matcher that reports every
// atom occurring in the haystack in a single pass.
//
// A Matcher marks visited nodes while matching, so one is taken from the pool
// per search.
type dictionaryScanner struct {
	pool sync.Pool
}

func newDictionaryScanner(atoms []string) *dictionaryScanner {
	dict := append([]string(nil), atoms...)
	s := &dictionaryScanner{}
	s.pool.New = func() any {
		return ahocorasick.NewStringMatcher(dict)
	}
	// Compile one matcher eagerly so construction cost is paid at build time.
	s.pool.Put(s.pool.New())
	return s
}

func (s *dictionaryScanner) scan(haystack []byte, hits *sparse.SparseSet) {
	m := s.pool.Get().(*ahocorasick.Matcher)
	defer s.pool.Put(m)

	for _, id := range m.Match(haystack) {
		hits.Insert(conv.IntToUint32(id))
	}
}
