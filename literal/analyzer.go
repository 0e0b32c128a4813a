package literal

import (
	"regexp/syntax"
	"strings"
	"unicode"
)

// AnalyzerConfig configures requirement analysis limits.
//
// The limits bound the work and the formula size for complex patterns. Every
// limit degrades soundly: exceeding one yields a weaker requirement, never a
// wrong one.
//
// Example:
//
//	config := literal.DefaultConfig()
//	config.MaxClassSize = 26 // expand [a-z]
//	analyzer := literal.NewAnalyzer(config)
type AnalyzerConfig struct {
	// MaxClassSize limits the size of character classes to expand.
	// Classes like [abc] become the literals ["a", "b", "c"]; larger classes
	// such as \w impose no requirement. Default: 10.
	MaxClassSize int

	// MaxExactSet limits the cross product when fusing adjacent exact subtrees,
	// so /[ab][cd]x/ yields ["acx", "adx", "bcx", "bdx"]. Default: 16.
	MaxExactSet int

	// MaxLiterals limits the union of exact alternation branches before it is
	// turned into a plain disjunction. Default: 64.
	MaxLiterals int

	// MaxClauses limits the number of clauses in any formula. Default: 64.
	MaxClauses int

	// MaxDepth limits syntax tree recursion; deeper subtrees are
	// Unconstrained. Default: 100.
	MaxDepth int

	// MinAtomLen is the shortest literal worth requiring, in bytes. An exact
	// set holding a shorter literal imposes no requirement once it can no
	// longer be fused with its neighbours, so /Chrome\/\d+/ yields "chrome/"
	// rather than ANDing in ten one-digit literals. Default: 1.
	MinAtomLen int
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() AnalyzerConfig {
	return AnalyzerConfig{
		MaxClassSize: 10,
		MaxExactSet:  16,
		MaxLiterals:  64,
		MaxClauses:   64,
		MaxDepth:     100,
		MinAtomLen:   1,
	}
}

// Analyzer derives requirement formulas from parsed patterns.
//
// An Analyzer holds only its configuration and is safe for concurrent use.
//
// Algorithm overview:
//  1. Caller parses the pattern (regexp/syntax.Parse)
//  2. Analyze walks the tree bottom-up; each subtree yields either an exact
//     literal set or a formula
//  3. Concatenation fuses exact sets and ANDs formulas, alternation unions
//     exact sets and ORs formulas
//  4. The root result is converted to a Formula
//
// Example:
//
//	re, _ := syntax.Parse(`(foo|bar)\w+baz`, syntax.Perl)
//	f := literal.NewAnalyzer(literal.DefaultConfig()).Analyze(re)
//	fmt.Println(f) // Output: "bar" & "baz" | "baz" & "foo"
type Analyzer struct {
	config AnalyzerConfig
}

// NewAnalyzer creates a new Analyzer with the given configuration.
func NewAnalyzer(config AnalyzerConfig) *Analyzer {
	return &Analyzer{config: config}
}

// info is the intermediate result for a subtree. When exact is non-nil the
// subtree matches exactly those (lower-cased) strings; otherwise match is a
// necessary condition for it.
type info struct {
	exact *Seq
	match Formula
}

func exactInfo(s *Seq) info {
	return info{exact: s}
}

func matchInfo(f Formula) info {
	return info{match: f}
}

// Analyze returns the requirement formula for re.
//
// Handles these syntax.Op types:
//   - OpLiteral: exact literal (split around unsafe runes when case folding)
//   - OpCharClass: exact single-rune literals if small, else Unconstrained
//   - OpConcat: cross product of adjacent exact parts, AND of the rest
//   - OpAlternate: union of exact branches, OR of the rest
//   - OpPlus, OpRepeat{min>=1}: requirement of one occurrence
//   - OpQuest, OpRepeat{0,1}: exact child plus the empty string
//   - OpStar, OpRepeat{min=0}: Unconstrained
//   - OpCapture: requirement of the content
//   - anchors, word boundaries, OpEmptyMatch: the empty string
//   - OpAnyChar, OpAnyCharNotNL: Unconstrained
//   - OpNoMatch: Never
func (a *Analyzer) Analyze(re *syntax.Regexp) Formula {
	return a.take(a.analyze(re, 0))
}

func (a *Analyzer) analyze(re *syntax.Regexp, depth int) info {
	if depth > a.config.MaxDepth {
		return matchInfo(Unconstrained())
	}

	switch re.Op {
	case syntax.OpNoMatch:
		return exactInfo(NewSeq())

	case syntax.OpEmptyMatch,
		syntax.OpBeginLine, syntax.OpEndLine,
		syntax.OpBeginText, syntax.OpEndText,
		syntax.OpWordBoundary, syntax.OpNoWordBoundary:
		// Zero-width: matches the empty string, passes through in concatenation.
		return exactInfo(NewSeq(""))

	case syntax.OpLiteral:
		return a.literal(re)

	case syntax.OpCharClass:
		return a.charClass(re)

	case syntax.OpAnyChar, syntax.OpAnyCharNotNL:
		return matchInfo(Unconstrained())

	case syntax.OpCapture:
		if len(re.Sub) == 0 {
			return exactInfo(NewSeq(""))
		}
		return a.analyze(re.Sub[0], depth+1)

	case syntax.OpStar:
		return matchInfo(Unconstrained())

	case syntax.OpQuest:
		return a.optional(re.Sub[0], depth)

	case syntax.OpPlus:
		return matchInfo(a.take(a.analyze(re.Sub[0], depth+1)))

	case syntax.OpRepeat:
		if re.Min == 0 && re.Max == 1 {
			return a.optional(re.Sub[0], depth)
		}
		if re.Min == 0 {
			return matchInfo(Unconstrained())
		}
		return matchInfo(a.take(a.analyze(re.Sub[0], depth+1)))

	case syntax.OpConcat:
		return a.concat(re.Sub, depth)

	case syntax.OpAlternate:
		return a.alternate(re.Sub, depth)

	default:
		return matchInfo(Unconstrained())
	}
}

// take converts an intermediate result to a formula.
func (a *Analyzer) take(in info) Formula {
	if in.exact == nil {
		return in.match
	}
	return a.anyOf(in.exact)
}

func (a *Analyzer) anyOf(seq *Seq) Formula {
	if a.hasShort(seq) {
		return Unconstrained()
	}
	f := AnyOf(seq)
	if a.config.MaxClauses > 0 && f.Len() > a.config.MaxClauses {
		return Unconstrained()
	}
	return f
}

// hasShort reports whether seq holds a non-empty literal shorter than
// MinAtomLen.
func (a *Analyzer) hasShort(seq *Seq) bool {
	for i := 0; i < seq.Len(); i++ {
		if lit := seq.Get(i); lit != "" && len(lit) < a.config.MinAtomLen {
			return true
		}
	}
	return false
}

// literal lower-cases a literal run. Case-insensitive runs are split at runes
// whose case-fold orbit does not lower-case to a single rune: such a rune can
// match haystack text that lower-cases differently, so it cannot appear in an atom.
func (a *Analyzer) literal(re *syntax.Regexp) info {
	if re.Flags&syntax.FoldCase == 0 {
		return exactInfo(NewSeq(strings.ToLower(string(re.Rune))))
	}

	var pieces []string
	var cur []rune
	split := false
	for _, r := range re.Rune {
		if !lowersUniformly(r) {
			split = true
			if len(cur) > 0 {
				pieces = append(pieces, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, unicode.ToLower(r))
	}
	if len(cur) > 0 {
		pieces = append(pieces, string(cur))
	}
	if !split {
		return exactInfo(NewSeq(strings.Join(pieces, "")))
	}
	return matchInfo(AllOf(pieces...))
}

// lowersUniformly reports whether every rune that r case-folds to has the
// same lower-case form as r.
func lowersUniformly(r rune) bool {
	lower := unicode.ToLower(r)
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if unicode.ToLower(f) != lower {
			return false
		}
	}
	return true
}

// charClass expands a small class to its lower-cased members.
//
// re.Rune holds pairs [lo1, hi1, lo2, hi2, ...]. Classes larger than
// MaxClassSize impose no requirement.
func (a *Analyzer) charClass(re *syntax.Regexp) info {
	count := 0
	for i := 0; i+1 < len(re.Rune); i += 2 {
		count += int(re.Rune[i+1]-re.Rune[i]) + 1
		if count > a.config.MaxClassSize {
			return matchInfo(Unconstrained())
		}
	}

	lits := make([]string, 0, count)
	for i := 0; i+1 < len(re.Rune); i += 2 {
		for r := re.Rune[i]; r <= re.Rune[i+1]; r++ {
			lits = append(lits, string(unicode.ToLower(r)))
		}
	}
	return exactInfo(NewSeq(lits...))
}

// optional handles x? and x{0,1}. An exact child stays exact with the empty
// string added, so /Edge?/ yields ["edg", "edge"]; anything else imposes no
// requirement.
func (a *Analyzer) optional(sub *syntax.Regexp, depth int) info {
	in := a.analyze(sub, depth+1)
	if in.exact == nil || in.exact.Len()+1 > a.config.MaxLiterals {
		return matchInfo(Unconstrained())
	}
	return exactInfo(in.exact.Union(NewSeq("")))
}

// concat ANDs the requirements of the parts. Runs of adjacent exact parts are
// fused by cross product while it stays within MaxExactSet, so literal runs
// separated only by zero-width nodes or small classes form longer atoms.
func (a *Analyzer) concat(subs []*syntax.Regexp, depth int) info {
	result := Unconstrained()
	var pending *Seq
	fused := true

	for _, sub := range subs {
		in := a.analyze(sub, depth+1)
		if in.exact != nil {
			switch {
			case pending == nil:
				pending = in.exact
			case pending.Len()*in.exact.Len() <= a.config.MaxExactSet:
				pending = pending.Cross(in.exact)
			default:
				result = result.And(a.anyOf(pending), a.config.MaxClauses)
				pending = in.exact
				fused = false
			}
			continue
		}

		fused = false
		if pending != nil {
			result = result.And(a.anyOf(pending), a.config.MaxClauses)
			pending = nil
		}
		result = result.And(in.match, a.config.MaxClauses)
	}

	if pending == nil {
		if fused {
			// Empty concatenation matches the empty string.
			return exactInfo(NewSeq(""))
		}
		return matchInfo(result)
	}
	if fused {
		return exactInfo(pending)
	}
	return matchInfo(result.And(a.anyOf(pending), a.config.MaxClauses))
}

// alternate ORs the requirements of the branches. If every branch is exact
// the union stays exact so an enclosing concatenation can keep fusing.
func (a *Analyzer) alternate(subs []*syntax.Regexp, depth int) info {
	infos := make([]info, len(subs))
	allExact := true
	for i, sub := range subs {
		infos[i] = a.analyze(sub, depth+1)
		if infos[i].exact == nil {
			allExact = false
		}
	}

	if allExact {
		union := NewSeq()
		for _, in := range infos {
			union = union.Union(in.exact)
		}
		if union.Len() <= a.config.MaxLiterals {
			return exactInfo(union)
		}
		return matchInfo(a.anyOf(union))
	}

	f := Never()
	for _, in := range infos {
		f = f.Or(a.take(in), a.config.MaxClauses)
		if f.IsUnconstrained() {
			break
		}
	}
	return matchInfo(f)
}
