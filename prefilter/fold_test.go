package prefilter

import (
	"strings"
	"testing"
)

func TestAppendFoldMatchesToLower(t *testing.T) {
	inputs := []string{
		"", "abc", "Mozilla/5.0 (Windows NT 10.0; Win64; x64)", "ΛΜΝΟΠ", "İstanbul",
		"Kelvin", "ſtar", "mixed ÄÖÜ ascii", "bad \xff\xfe utf8", "\xc3",
	}
	for _, in := range inputs {
		if got, want := string(AppendFold(nil, in)), strings.ToLower(in); got != want {
			t.Errorf("AppendFold(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestAppendFoldReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	out := AppendFold(buf, "HELLO")
	if string(out) != "hello" {
		t.Errorf("AppendFold(HELLO) = %q, want hello", out)
	}
	if &out[0] != &buf[:1][0] {
		t.Error("AppendFold did not reuse the buffer")
	}

	out = AppendFold(out[:0], "World")
	if string(out) != "world" {
		t.Errorf("AppendFold(World) = %q, want world", out)
	}
}
