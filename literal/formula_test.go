package literal

import (
	"slices"
	"strings"
	"testing"
)

func TestFormulaZeroValueIsUnconstrained(t *testing.T) {
	var f Formula
	if !f.IsUnconstrained() {
		t.Error("zero Formula should be Unconstrained")
	}
	if !f.Eval(func(string) bool { return false }) {
		t.Error("zero Formula should hold with no literals present")
	}
	if f.String() != "*" {
		t.Errorf("String() = %q, want *", f.String())
	}
}

func TestFormulaAtom(t *testing.T) {
	if got := Atom("foo").String(); got != `"foo"` {
		t.Errorf(`Atom("foo") = %s`, got)
	}
	if !Atom("").IsUnconstrained() {
		t.Error(`Atom("") should be Unconstrained`)
	}
}

func TestFormulaAnyOf(t *testing.T) {
	tests := []struct {
		name string
		seq  *Seq
		want string
	}{
		{"empty set", NewSeq(), "!"},
		{"contains empty", NewSeq("", "abc"), "*"},
		{"minimized", NewSeq("foo", "bar", "foobar"), `"bar" | "foo"`},
		{"clause order", NewSeq("ad", "abcd"), `"abcd" | "ad"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnyOf(tt.seq).String(); got != tt.want {
				t.Errorf("AnyOf(%v) = %s, want %s", tt.seq, got, tt.want)
			}
		})
	}
}

// TestFormulaAnyOfCanonical checks that AnyOf and Or build the same value for
// the same disjunction, whatever order the literals arrive in.
func TestFormulaAnyOfCanonical(t *testing.T) {
	tests := []struct {
		seq *Seq
		or  Formula
	}{
		{NewSeq("ad", "abcd"), Atom("abcd").Or(Atom("ad"), 0)},
		{NewSeq("edge/", "edg/"), Atom("edge/").Or(Atom("edg/"), 0)},
		{NewSeq("zz", "a", "mmm"), Atom("mmm").Or(Atom("zz"), 0).Or(Atom("a"), 0)},
		{NewSeq("x"), Atom("x")},
	}
	for _, tt := range tests {
		if got := AnyOf(tt.seq); !got.Equal(tt.or) {
			t.Errorf("AnyOf(%v) = %s, want %s", tt.seq, got, tt.or)
		}
	}
}

func TestFormulaAnd(t *testing.T) {
	foo, bar, baz := Atom("foo"), Atom("bar"), Atom("baz")
	tests := []struct {
		name string
		got  Formula
		want string
	}{
		{"two atoms", foo.And(bar, 0), `"bar" & "foo"`},
		{"unconstrained identity", Unconstrained().And(foo, 0), `"foo"`},
		{"unconstrained identity right", foo.And(Unconstrained(), 0), `"foo"`},
		{"never absorbs", foo.And(Never(), 0), "!"},
		{"never beats unconstrained", Unconstrained().And(Never(), 0), "!"},
		{"distributes", foo.Or(bar, 0).And(baz, 0), `"bar" & "baz" | "baz" & "foo"`},
		{"substring implied", AllOf("abc").And(Atom("b"), 0), `"abc"`},
		{"idempotent", foo.And(foo, 0), `"foo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormulaOr(t *testing.T) {
	foo, bar := Atom("foo"), Atom("bar")
	tests := []struct {
		name string
		got  Formula
		want string
	}{
		{"two atoms", foo.Or(bar, 0), `"bar" | "foo"`},
		{"unconstrained absorbs", foo.Or(Unconstrained(), 0), "*"},
		{"unconstrained absorbs left", Unconstrained().Or(foo, 0), "*"},
		{"never identity", Never().Or(foo, 0), `"foo"`},
		{"never identity right", foo.Or(Never(), 0), `"foo"`},
		{"stronger clause dropped", foo.Or(Atom("foobar"), 0), `"foo"`},
		{"superset clause dropped", foo.Or(AllOf("foo", "bar"), 0), `"foo"`},
		{"duplicates merged", foo.Or(foo, 0), `"foo"`},
		{"implying clause sorted first", Atom("abc").Or(Atom("b"), 0), `"b"`},
		{"conjunction implies single", AllOf("xyz", "abcdef").Or(AllOf("cd"), 0), `"cd"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got.String(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormulaClauseLimits(t *testing.T) {
	ab := Atom("a").Or(Atom("b"), 0)
	cde := Atom("c").Or(Atom("d"), 0).Or(Atom("e"), 0)

	// OR beyond the limit gives up on the requirement entirely.
	if !ab.Or(cde, 4).IsUnconstrained() {
		t.Error("Or over the clause limit should be Unconstrained")
	}
	if n := ab.Or(cde, 5).Len(); n != 5 {
		t.Errorf("Or within the limit has %d clauses, want 5", n)
	}

	// AND beyond the limit keeps the smaller operand alone.
	if !ab.And(cde, 4).Equal(ab) || !cde.And(ab, 4).Equal(ab) {
		t.Error("And over the clause limit should keep the smaller operand")
	}
	if n := ab.And(cde, 6).Len(); n != 6 {
		t.Errorf("And within the limit has %d clauses, want 6", n)
	}
}

func TestFormulaPrune(t *testing.T) {
	tests := []struct {
		name string
		got  Formula
		want string
	}{
		{"short conjunct dropped", AllOf("ab", "xyz").Prune(3), `"xyz"`},
		{"short disjunct widens", Atom("ab").Or(Atom("xyz"), 0).Prune(3), "*"},
		{"never kept", Never().Prune(3), "!"},
		{"nothing short", Atom("ab").Or(Atom("xyz"), 0).Prune(1), `"ab" | "xyz"`},
	}
	for _, tt := range tests {
		if got := tt.got.String(); got != tt.want {
			t.Errorf("%s: got %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestFormulaEval(t *testing.T) {
	f := AllOf("foo", "bar").Or(Atom("quux"), 0)
	tests := []struct {
		f        Formula
		haystack string
		want     bool
	}{
		{f, "foo and bar", true},
		{f, "quux", true},
		{f, "foo only", false},
		{Never(), "anything", false},
	}
	for _, tt := range tests {
		got := tt.f.Eval(func(lit string) bool { return strings.Contains(tt.haystack, lit) })
		if got != tt.want {
			t.Errorf("%s on %q = %v, want %v", tt.f, tt.haystack, got, tt.want)
		}
	}
}

func TestFormulaValueSemantics(t *testing.T) {
	f := Atom("a").Or(Atom("b"), 0)
	clauses := f.Clauses()
	clauses[0][0] = "z"
	if f.String() != `"a" | "b"` {
		t.Errorf("mutating Clauses() changed the formula to %s", f)
	}

	g := f.And(Atom("c"), 0)
	if f.String() != `"a" | "b"` {
		t.Errorf("And changed its receiver to %s", f)
	}
	if g.String() != `"a" & "c" | "b" & "c"` {
		t.Errorf("And() = %s", g)
	}
}

func TestFormulaAtoms(t *testing.T) {
	f := AllOf("foo", "bar").Or(AllOf("bar", "baz"), 0)
	got := f.Atoms()
	slices.Sort(got)
	if want := []string{"bar", "baz", "foo"}; !slices.Equal(got, want) {
		t.Errorf("Atoms() = %q, want %q", got, want)
	}
	if len(Unconstrained().Atoms()) != 0 {
		t.Error("Unconstrained has no atoms")
	}
}

func TestFormulaEqual(t *testing.T) {
	tests := []struct {
		a, b Formula
		want bool
	}{
		{Atom("a").Or(Atom("b"), 0), Atom("b").Or(Atom("a"), 0), true},
		{Atom("a"), Atom("b"), false},
		{Never(), Unconstrained(), false},
		{Never(), Never(), true},
	}
	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("(%s).Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
