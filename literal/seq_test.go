package literal

import (
	"slices"
	"testing"
)

func TestNewSeqDedupAndOrder(t *testing.T) {
	seq := NewSeq("foo", "a", "bar", "foo", "")

	want := []string{"", "a", "bar", "foo"}
	if got := seq.Literals(); !slices.Equal(got, want) {
		t.Errorf("Literals() = %q, want %q", got, want)
	}
	if !seq.ContainsEmpty() {
		t.Error("ContainsEmpty() = false, want true")
	}
	if seq.Len() != 4 {
		t.Errorf("Len() = %d, want 4", seq.Len())
	}
}

func TestSeqEmpty(t *testing.T) {
	var nilSeq *Seq
	if !nilSeq.IsEmpty() || nilSeq.Len() != 0 || nilSeq.Literals() != nil {
		t.Error("nil Seq should be empty with no literals")
	}
	if !NewSeq().IsEmpty() {
		t.Error("NewSeq() should be empty")
	}
	if NewSeq().ContainsEmpty() {
		t.Error("NewSeq() should not contain the empty string")
	}
}

func TestSeqUnion(t *testing.T) {
	a := NewSeq("foo", "x")
	b := NewSeq("bar", "foo")

	if got, want := a.Union(b).Literals(), []string{"x", "bar", "foo"}; !slices.Equal(got, want) {
		t.Errorf("Union() = %q, want %q", got, want)
	}
	// operands are untouched
	if got, want := a.Literals(), []string{"x", "foo"}; !slices.Equal(got, want) {
		t.Errorf("operand changed to %q, want %q", got, want)
	}
}

func TestSeqCross(t *testing.T) {
	tests := []struct {
		name string
		a, b *Seq
		want []string
	}{
		{"simple", NewSeq("ab"), NewSeq("c", "d"), []string{"abc", "abd"}},
		{"identity", NewSeq("ab"), NewSeq(""), []string{"ab"}},
		{"left identity", NewSeq(""), NewSeq("x", "y"), []string{"x", "y"}},
		{"empty absorbs", NewSeq("ab"), NewSeq(), nil},
		{"collapsing duplicates", NewSeq("a", "ab"), NewSeq("b", ""), []string{"a", "ab", "abb"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cross(tt.b)
			if tt.want == nil {
				if !got.IsEmpty() {
					t.Errorf("Cross() = %v, want empty", got)
				}
				return
			}
			if !slices.Equal(got.Literals(), tt.want) {
				t.Errorf("Cross() = %q, want %q", got.Literals(), tt.want)
			}
		})
	}
}

func TestSeqMinimize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"contained", []string{"foo", "foobar", "xfoo", "baz"}, []string{"baz", "foo"}},
		{"no redundancy", []string{"hello", "world"}, []string{"hello", "world"}},
		{"empty string ignored", []string{"", "abc"}, []string{"", "abc"}},
		{"shortest substrings kept", []string{"abc123", "abc", "defxyz", "ghi789", "abc1234", "xyz"}, []string{"abc", "xyz", "ghi789"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewSeq(tt.in...).Minimize().Literals(); !slices.Equal(got, tt.want) {
				t.Errorf("Minimize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeqString(t *testing.T) {
	tests := []struct {
		seq  *Seq
		want string
	}{
		{NewSeq("bc", "a"), `["a", "bc"]`},
		{NewSeq(), `[]`},
	}
	for _, tt := range tests {
		if got := tt.seq.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
