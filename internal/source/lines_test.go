package source

import (
	"testing"
)

func TestLinesLineCol(t *testing.T) {
	l := NewLines("a {\n  b: c;\n}")
	cases := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{3, LineCol{1, 4}}, // the newline itself
		{4, LineCol{2, 1}},
		{6, LineCol{2, 3}},
		{12, LineCol{3, 1}},
		{99, LineCol{3, 2}},
	}
	for _, tc := range cases {
		if got := l.LineCol(tc.off); got != tc.want {
			t.Errorf("LineCol(%d) = %+v, want %+v", tc.off, got, tc.want)
		}
	}
}

func TestLinesCountsRunesNotBytes(t *testing.T) {
	l := NewLines("é\nü: x")
	if got := l.Len(); got != 6 {
		t.Fatalf("Len = %d, want 6", got)
	}
	if got := l.LineCol(2); got != (LineCol{2, 1}) {
		t.Fatalf("LineCol(2) = %+v, want 2:1", got)
	}
	if got := l.LineCol(3); got != (LineCol{2, 2}) {
		t.Fatalf("LineCol(3) = %+v, want 2:2", got)
	}
}

func TestLinesLine(t *testing.T) {
	l := NewLines("one\r\ntwo\n\nfour")
	want := []string{"", "one", "two", "", "four", ""}
	for n, w := range want {
		if got := l.Line(uint32(n)); got != w {
			t.Errorf("Line(%d) = %q, want %q", n, got, w)
		}
	}
	if l.Count() != 4 {
		t.Errorf("Count = %d, want 4", l.Count())
	}
}

func TestRuneOffset(t *testing.T) {
	if got := RuneOffset("aé b", 4); got != 3 {
		t.Fatalf("RuneOffset = %d, want 3", got)
	}
	if got := RuneOffset("ab", 10); got != 2 {
		t.Fatalf("RuneOffset past end = %d, want 2", got)
	}
}
