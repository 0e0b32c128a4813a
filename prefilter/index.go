package prefilter

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/coregx/refilter/internal/conv"
	"github.com/coregx/refilter/internal/sparse"
	"github.com/coregx/refilter/literal"
)

type entryKind uint8

const (
	entryUnconstrained entryKind = iota
	entryNever
	entryDNF
)

// entry is a pattern formula over atom ids.
type entry struct {
	kind    entryKind
	clauses [][]uint32
}

// Builder accumulates pattern formulas for an Index.
//
// Patterns are identified by push order, starting at 0. A Builder is not safe
// for concurrent use.
type Builder struct {
	config   Config
	formulas []literal.Formula
}

// NewBuilder creates an empty Builder.
func NewBuilder(config Config) *Builder {
	if config.MinAtomLen < 1 {
		config.MinAtomLen = 1
	}
	return &Builder{config: config}
}

// Push registers the formula of the next pattern and returns the formula the
// index will use, with literals shorter than MinAtomLen pruned.
func (b *Builder) Push(f literal.Formula) literal.Formula {
	f = f.Prune(b.config.MinAtomLen)
	b.formulas = append(b.formulas, f)
	return f
}

// Len returns the number of registered patterns.
func (b *Builder) Len() int {
	return len(b.formulas)
}

// Build assigns atom identifiers, builds the reverse index and compiles the
// atom automaton.
//
// Building from no patterns is not an error; the index then has no
// candidates for any haystack.
func (b *Builder) Build() (*Index, error) {
	if !conv.FitsUint32(len(b.formulas)) {
		return nil, fmt.Errorf("prefilter: %d patterns exceed the index limit", len(b.formulas))
	}

	ix := &Index{
		strategy: b.config.Strategy,
		atomIDs:  make(map[string]uint32),
		entries:  make([]entry, len(b.formulas)),
	}

	for p, f := range b.formulas {
		switch {
		case f.IsUnconstrained():
			ix.entries[p] = entry{kind: entryUnconstrained}
			ix.unfiltered = append(ix.unfiltered, conv.IntToUint32(p))
		case f.IsNever():
			// Left to the confirmation matcher, which owns the final answer.
			ix.entries[p] = entry{kind: entryNever}
			ix.unfiltered = append(ix.unfiltered, conv.IntToUint32(p))
			ix.impossible++
		default:
			clauses := f.Clauses()
			ids := make([][]uint32, len(clauses))
			for i, c := range clauses {
				ids[i] = make([]uint32, len(c))
				for j, lit := range c {
					ids[i][j] = ix.intern(lit)
				}
			}
			ix.entries[p] = entry{kind: entryDNF, clauses: ids}
		}
	}

	// Patterns are visited in ascending order, so each list is sorted.
	ix.reverse = make([][]uint32, len(ix.atoms))
	last := make([]int, len(ix.atoms))
	for p, e := range ix.entries {
		for _, c := range e.clauses {
			for _, a := range c {
				if last[a] == p+1 {
					continue
				}
				last[a] = p + 1
				ix.reverse[a] = append(ix.reverse[a], conv.IntToUint32(p))
			}
		}
	}

	sc, err := newScanner(b.config.Strategy, ix.atoms)
	if err != nil {
		return nil, err
	}
	ix.scanner = sc
	return ix, nil
}

// Index is the compiled literal index of a pattern corpus.
type Index struct {
	strategy   ScanStrategy
	atoms      []string
	atomIDs    map[string]uint32
	entries    []entry
	reverse    [][]uint32 // atom id -> pattern ids, ascending
	unfiltered []uint32   // Unconstrained and Never pattern ids, ascending
	impossible int
	scanner    scanner
}

func (ix *Index) intern(lit string) uint32 {
	if id, ok := ix.atomIDs[lit]; ok {
		return id
	}
	if !conv.FitsUint32(len(ix.atoms)) {
		panic("prefilter: atom registry overflow")
	}
	id := conv.IntToUint32(len(ix.atoms))
	ix.atoms = append(ix.atoms, lit)
	ix.atomIDs[lit] = id
	return id
}

// Strategy returns the scan strategy the automaton was built with.
func (ix *Index) Strategy() ScanStrategy {
	return ix.strategy
}

// NumAtoms returns the number of distinct atoms.
func (ix *Index) NumAtoms() int {
	return len(ix.atoms)
}

// NumPatterns returns the number of indexed patterns.
func (ix *Index) NumPatterns() int {
	return len(ix.entries)
}

// NumUnfiltered returns the number of patterns that are candidates for every
// haystack. Impossible patterns are included.
func (ix *Index) NumUnfiltered() int {
	return len(ix.unfiltered)
}

// NumImpossible returns the number of patterns whose formula is Never. They
// are still candidates so that the confirmation matcher decides them.
func (ix *Index) NumImpossible() int {
	return ix.impossible
}

// Atom returns the literal of atom id.
func (ix *Index) Atom(id uint32) string {
	return ix.atoms[id]
}

// AtomID returns the identifier of a (folded) literal.
func (ix *Index) AtomID(lit string) (uint32, bool) {
	id, ok := ix.atomIDs[lit]
	return id, ok
}

// Atoms returns all atoms in identifier order.
func (ix *Index) Atoms() []string {
	return append([]string(nil), ix.atoms...)
}

// PatternAtoms returns the atom ids referenced by pattern p, per clause.
// Unconstrained and impossible patterns have none.
func (ix *Index) PatternAtoms(p int) [][]uint32 {
	clauses := ix.entries[p].clauses
	out := make([][]uint32, len(clauses))
	for i, c := range clauses {
		out[i] = append([]uint32(nil), c...)
	}
	return out
}

// Scan records in hits every atom occurring in haystack. The haystack must be
// folded with AppendFold; hits must have capacity NumAtoms.
func (ix *Index) Scan(haystack []byte, hits *sparse.SparseSet) {
	if len(haystack) == 0 {
		return
	}
	ix.scanner.scan(haystack, hits)
}

// Candidates sets in cands every unfiltered pattern and every pattern that
// references at least one atom in hits. Patterns referencing no present atom are never
// set. cands must have length NumPatterns and is not cleared first.
func (ix *Index) Candidates(hits *sparse.SparseSet, cands *bitset.BitSet) {
	for _, p := range ix.unfiltered {
		cands.Set(uint(p))
	}
	for _, a := range hits.Values() {
		for _, p := range ix.reverse[a] {
			cands.Set(uint(p))
		}
	}
}

// Eval reports whether the formula of pattern p holds given the atoms in hits:
// some clause has all of its atoms present. It is true for every unfiltered
// pattern.
func (ix *Index) Eval(p int, hits *sparse.SparseSet) bool {
	e := &ix.entries[p]
	if e.kind != entryDNF {
		return true
	}
	for _, c := range e.clauses {
		ok := true
		for _, a := range c {
			if !hits.Contains(a) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

// String dumps the atoms and the reverse index for debugging.
func (ix *Index) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#Atoms: %d (%s)\n", len(ix.atoms), ix.strategy)
	for id, atom := range ix.atoms {
		fmt.Fprintf(&b, "\tatom %d %q -> patterns %v\n", id, atom, ix.reverse[id])
	}
	fmt.Fprintf(&b, "#Unfiltered: %v\n", ix.unfiltered)
	fmt.Fprintf(&b, "#Impossible: %d\n", ix.impossible)
	return b.String()
}
