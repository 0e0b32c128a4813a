package literal

import (
	"slices"
	"sort"
	"strconv"
	"strings"
)

type formulaKind uint8

const (
	kindUnconstrained formulaKind = iota
	kindNever
	kindDNF
)

// Formula is a necessary condition on a haystack, expressed as a disjunction
// of clauses where each clause is a conjunction of literals.
//
// Two formulas are distinguished from the clause form:
//   - Unconstrained: no literal requirement could be derived, every haystack
//     satisfies it. This is the zero value.
//   - Never: no haystack satisfies it (the pattern cannot match anything).
//
// Formulas are immutable values: operations never modify their receiver or
// arguments, and Clauses returns a copy.
//
// Example:
//
//	f := literal.Atom("foo").Or(literal.Atom("bar"), 0).And(literal.Atom("baz"), 0)
//	fmt.Println(f) // Output: "bar" & "baz" | "baz" & "foo"
type Formula struct {
	kind    formulaKind
	clauses [][]string
}

// Unconstrained returns the formula satisfied by every haystack.
func Unconstrained() Formula {
	return Formula{kind: kindUnconstrained}
}

// Never returns the formula satisfied by no haystack.
func Never() Formula {
	return Formula{kind: kindNever}
}

// Atom returns the single-literal formula requiring lit.
// The empty literal is present in every haystack, so Atom("") is Unconstrained.
func Atom(lit string) Formula {
	if lit == "" {
		return Unconstrained()
	}
	return Formula{kind: kindDNF, clauses: [][]string{{lit}}}
}

// AllOf returns the formula requiring every literal in lits.
func AllOf(lits ...string) Formula {
	return canonical([][]string{append([]string(nil), lits...)})
}

// AnyOf returns the formula requiring at least one literal of seq.
// An empty seq yields Never, a seq containing "" yields Unconstrained.
func AnyOf(seq *Seq) Formula {
	if seq.IsEmpty() {
		return Never()
	}
	if seq.ContainsEmpty() {
		return Unconstrained()
	}
	minimized := seq.Minimize()
	clauses := make([][]string, minimized.Len())
	for i := range clauses {
		clauses[i] = []string{minimized.Get(i)}
	}
	// Seq order is by length; formulas are compared in clause order.
	return canonical(clauses)
}

// IsUnconstrained reports whether f is satisfied by every haystack.
func (f Formula) IsUnconstrained() bool {
	return f.kind == kindUnconstrained
}

// IsNever reports whether f is satisfied by no haystack.
func (f Formula) IsNever() bool {
	return f.kind == kindNever
}

// Len returns the number of clauses. Unconstrained and Never have none.
func (f Formula) Len() int {
	return len(f.clauses)
}

// Clauses returns a deep copy of the clauses in canonical order.
func (f Formula) Clauses() [][]string {
	if f.kind != kindDNF {
		return nil
	}
	out := make([][]string, len(f.clauses))
	for i, c := range f.clauses {
		out[i] = append([]string(nil), c...)
	}
	return out
}

// Atoms returns every distinct literal referenced by f in clause order.
func (f Formula) Atoms() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, c := range f.clauses {
		for _, lit := range c {
			if _, ok := seen[lit]; ok {
				continue
			}
			seen[lit] = struct{}{}
			out = append(out, lit)
		}
	}
	return out
}

// And returns the conjunction of f and g, modelling concatenation: both parts
// of the haystack must satisfy their requirement.
//
// Unconstrained is the identity and Never is absorbing. The clause product is
// limited by maxClauses (0 disables the limit); when it would be exceeded the
// operand with fewer clauses is returned alone, which is a weaker but still
// necessary condition.
func (f Formula) And(g Formula, maxClauses int) Formula {
	switch {
	case f.kind == kindNever || g.kind == kindNever:
		return Never()
	case f.kind == kindUnconstrained:
		return g
	case g.kind == kindUnconstrained:
		return f
	}
	if maxClauses > 0 && len(f.clauses)*len(g.clauses) > maxClauses {
		if len(g.clauses) < len(f.clauses) {
			return g
		}
		return f
	}
	product := make([][]string, 0, len(f.clauses)*len(g.clauses))
	for _, a := range f.clauses {
		for _, b := range g.clauses {
			c := make([]string, 0, len(a)+len(b))
			c = append(c, a...)
			c = append(c, b...)
			product = append(product, c)
		}
	}
	return canonical(product)
}

// Or returns the disjunction of f and g, modelling alternation: either
// branch's requirement suffices.
//
// Unconstrained is absorbing and Never is the identity. When the union holds
// more than maxClauses clauses (0 disables the limit) the result degrades to
// Unconstrained.
func (f Formula) Or(g Formula, maxClauses int) Formula {
	switch {
	case f.kind == kindUnconstrained || g.kind == kindUnconstrained:
		return Unconstrained()
	case f.kind == kindNever:
		return g
	case g.kind == kindNever:
		return f
	}
	union := make([][]string, 0, len(f.clauses)+len(g.clauses))
	for _, c := range f.clauses {
		union = append(union, append([]string(nil), c...))
	}
	for _, c := range g.clauses {
		union = append(union, append([]string(nil), c...))
	}
	out := canonical(union)
	if maxClauses > 0 && len(out.clauses) > maxClauses {
		return Unconstrained()
	}
	return out
}

// Prune drops literals shorter than minLen bytes from every clause.
// A clause left empty is always satisfied, making f Unconstrained.
func (f Formula) Prune(minLen int) Formula {
	if f.kind != kindDNF {
		return f
	}
	pruned := make([][]string, len(f.clauses))
	for i, c := range f.clauses {
		for _, lit := range c {
			if len(lit) >= minLen {
				pruned[i] = append(pruned[i], lit)
			}
		}
	}
	return canonical(pruned)
}

// Eval evaluates f with each literal replaced by present(literal).
func (f Formula) Eval(present func(string) bool) bool {
	switch f.kind {
	case kindUnconstrained:
		return true
	case kindNever:
		return false
	}
	for _, c := range f.clauses {
		ok := true
		for _, lit := range c {
			if !present(lit) {
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

// Equal reports structural equality.
func (f Formula) Equal(g Formula) bool {
	if f.kind != g.kind || len(f.clauses) != len(g.clauses) {
		return false
	}
	for i := range f.clauses {
		if len(f.clauses[i]) != len(g.clauses[i]) {
			return false
		}
		for j := range f.clauses[i] {
			if f.clauses[i][j] != g.clauses[i][j] {
				return false
			}
		}
	}
	return true
}

// String renders f as `"a" & "b" | "c"`. Unconstrained renders as "*" and
// Never as "!".
func (f Formula) String() string {
	switch f.kind {
	case kindUnconstrained:
		return "*"
	case kindNever:
		return "!"
	}
	var b strings.Builder
	for i, c := range f.clauses {
		if i > 0 {
			b.WriteString(" | ")
		}
		for j, lit := range c {
			if j > 0 {
				b.WriteString(" & ")
			}
			b.WriteString(quote(lit))
		}
	}
	return b.String()
}

// canonical builds a formula from raw clauses.
//
// Within a clause, duplicates and literals contained in a longer literal of the
// same clause are dropped. Across clauses, a clause that implies another clause
// (every literal of the other is a substring of one of its literals) is dropped,
// since the weaker clause is satisfied whenever it is.
func canonical(raw [][]string) Formula {
	if len(raw) == 0 {
		return Never()
	}
	clauses := make([][]string, 0, len(raw))
	for _, c := range raw {
		c = reduceClause(c)
		if len(c) == 0 {
			return Unconstrained()
		}
		clauses = append(clauses, c)
	}
	sort.Slice(clauses, func(i, j int) bool {
		return clauseLess(clauses[i], clauses[j])
	})
	clauses = slices.CompactFunc(clauses, func(a, b []string) bool {
		return slices.Equal(a, b)
	})

	// Implication between distinct reduced clauses is a strict order, so some
	// clause implied by a dropped one is always kept.
	kept := make([][]string, 0, len(clauses))
	for i, c := range clauses {
		redundant := false
		for j, k := range clauses {
			if i != j && implies(c, k) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, c)
		}
	}
	return Formula{kind: kindDNF, clauses: kept}
}

// reduceClause sorts a conjunction lexically, removing duplicates and literals
// implied by a longer literal of the clause.
func reduceClause(c []string) []string {
	sortLiterals(c)
	c = dedupSorted(c)
	out := make([]string, 0, len(c))
	for i, lit := range c {
		if lit == "" {
			continue
		}
		implied := false
		for _, longer := range c[i+1:] {
			if len(longer) > len(lit) && strings.Contains(longer, lit) {
				implied = true
				break
			}
		}
		if !implied {
			out = append(out, lit)
		}
	}
	sort.Strings(out)
	return out
}

// implies reports whether clause a being satisfied guarantees clause b is.
func implies(a, b []string) bool {
	for _, need := range b {
		found := false
		for _, have := range a {
			if strings.Contains(have, need) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func clauseLess(a, b []string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func quote(s string) string {
	return strconv.Quote(s)
}
