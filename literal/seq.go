// Package literal derives literal requirements from regex syntax trees.
//
// The package answers one question about a pattern: which literal substrings
// must appear in any string the pattern can match? The answer is a Formula,
// a disjunction of conjunctions of literals (disjunctive normal form), built
// by structural recursion over regexp/syntax trees.
//
// Key concepts:
//   - A Seq is a small finite set of strings a subtree matches exactly
//     (e.g., /ab[cd]/ matches exactly ["abc", "abd"])
//   - A Formula is a necessary condition on the haystack expressed over
//     literals; Unconstrained means no condition could be derived
//   - An Analyzer turns a parsed pattern into a Formula
//
// All literals are lower-cased. Callers must lower-case haystacks the same
// way (strings.ToLower) before testing literal presence.
package literal

import (
	"sort"
	"strings"
)

// Seq is an immutable set of literal strings that a regex subtree matches
// exactly. Literals are kept sorted by length, then lexically, and are unique.
//
// An empty Seq describes a subtree that matches nothing. A Seq containing the
// empty string describes a subtree that can match without consuming input
// (anchors, empty groups).
//
// Example:
//
//	seq := literal.NewSeq("foo", "bar", "foo")
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []string
}

// NewSeq creates a sequence from the given literals, removing duplicates.
func NewSeq(lits ...string) *Seq {
	out := make([]string, len(lits))
	copy(out, lits)
	sortLiterals(out)
	return &Seq{literals: dedupSorted(out)}
}

// Len returns the number of literals in the sequence.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at the specified index.
// Panics if index is out of bounds.
func (s *Seq) Get(i int) string {
	return s.literals[i]
}

// IsEmpty returns true if the sequence has no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// Literals returns a copy of the literals in canonical order.
func (s *Seq) Literals() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.literals))
	copy(out, s.literals)
	return out
}

// ContainsEmpty reports whether the empty string is a member.
// Because of the length-first ordering it can only be the first literal.
func (s *Seq) ContainsEmpty() bool {
	return !s.IsEmpty() && s.literals[0] == ""
}

// Union returns the set union of s and other.
//
// Example:
//
//	a := literal.NewSeq("foo")
//	b := literal.NewSeq("bar", "foo")
//	fmt.Println(a.Union(b).Literals()) // Output: [bar foo]
func (s *Seq) Union(other *Seq) *Seq {
	out := make([]string, 0, s.Len()+other.Len())
	if s != nil {
		out = append(out, s.literals...)
	}
	if other != nil {
		out = append(out, other.literals...)
	}
	sortLiterals(out)
	return &Seq{literals: dedupSorted(out)}
}

// Cross returns the concatenation product of s and other: every literal of s
// followed by every literal of other. Crossing with an empty sequence yields
// an empty sequence, crossing with [""] is the identity.
//
// Example:
//
//	a := literal.NewSeq("ab")
//	b := literal.NewSeq("c", "d")
//	fmt.Println(a.Cross(b).Literals()) // Output: [abc abd]
func (s *Seq) Cross(other *Seq) *Seq {
	if s.IsEmpty() || other.IsEmpty() {
		return &Seq{}
	}
	out := make([]string, 0, len(s.literals)*len(other.literals))
	for _, a := range s.literals {
		for _, b := range other.literals {
			out = append(out, a+b)
		}
	}
	sortLiterals(out)
	return &Seq{literals: dedupSorted(out)}
}

// Minimize returns a copy of the sequence without literals that contain
// another non-empty literal of the sequence.
//
// When the sequence is used as a disjunction of required substrings, a haystack
// containing "foobar" also contains "foo", so "foobar" adds nothing.
//
// Example:
//
//	seq := literal.NewSeq("foo", "foobar", "xfoo", "baz")
//	fmt.Println(seq.Minimize().Literals()) // Output: [baz foo]
func (s *Seq) Minimize() *Seq {
	if s.IsEmpty() {
		return &Seq{}
	}
	kept := make([]string, 0, len(s.literals))
	for _, lit := range s.literals {
		redundant := false
		// Shorter literals come first, so only kept ones can be contained in lit.
		for _, k := range kept {
			if k != "" && strings.Contains(lit, k) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, lit)
		}
	}
	return &Seq{literals: kept}
}

// String returns the literals as a quoted, comma separated list.
func (s *Seq) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, lit := range s.Literals() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(lit))
	}
	b.WriteByte(']')
	return b.String()
}

// sortLiterals orders literals by length first, then lexically.
func sortLiterals(lits []string) {
	sort.Slice(lits, func(i, j int) bool {
		if len(lits[i]) != len(lits[j]) {
			return len(lits[i]) < len(lits[j])
		}
		return lits[i] < lits[j]
	})
}

// dedupSorted removes adjacent duplicates in place.
func dedupSorted(lits []string) []string {
	if len(lits) < 2 {
		return lits
	}
	out := lits[:1]
	for _, lit := range lits[1:] {
		if lit != out[len(out)-1] {
			out = append(out, lit)
		}
	}
	return out
}
