package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestLevelFilter(t *testing.T) {
	cases := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tc := range cases {
		if got := tc.level.ShouldEmit(tc.scope); got != tc.want {
			t.Errorf("%s/%s = %v, want %v", tc.level, tc.scope, got, tc.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "ERROR", "Phase", "detail", "debug"} {
		l, err := ParseLevel(s)
		if err != nil || !strings.EqualFold(l.String(), s) {
			t.Errorf("ParseLevel(%q) = %v, %v", s, l, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStreamTracerText(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)
	root := Begin(tr, ScopeDriver, "fmt", 0)
	Begin(tr, ScopeFile, "parse", root.ID()).WithExtra("nodes", "3").End("ok")
	Begin(tr, ScopeNode, "skipped", root.ID()).End("")
	root.End("")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[2], "< parse (ok) {nodes=3}") {
		t.Errorf("end line = %q", lines[2])
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Point(tr, ScopePass, "expand", "3 files", 0)
	if !strings.Contains(buf.String(), `"name":"expand"`) || !strings.Contains(buf.String(), `"detail":"3 files"`) {
		t.Fatalf("ndjson = %s", buf.String())
	}
}

func TestRingKeepsNewest(t *testing.T) {
	r := NewRingTracer(2, LevelDebug)
	for _, name := range []string{"a", "b", "c"} {
		Point(r, ScopeNode, name, "", 0)
	}
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Name != "b" || snap[1].Name != "c" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestDisabledSpanIsInert(t *testing.T) {
	s := Begin(Nop, ScopeDriver, "x", 0)
	if s.WithExtra("k", "v").End("") != 0 || s.ID() != 0 {
		t.Fatal("nop span recorded something")
	}
}

func TestContext(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatal("empty context should give Nop")
	}
	r := NewRingTracer(4, LevelPhase)
	ctx := WithSpan(WithTracer(context.Background(), r), 7)
	if FromContext(ctx) != r || ParentSpan(ctx) != 7 {
		t.Fatal("context round trip failed")
	}
}

func TestNewBothHasRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	m, ok := tr.(*MultiTracer)
	if !ok || m.Ring() == nil {
		t.Fatalf("tracer = %T", tr)
	}
	Point(tr, ScopeDriver, "x", "", 0)
	if len(m.Ring().Snapshot()) != 1 || buf.Len() == 0 {
		t.Fatal("event not delivered to both tracers")
	}
}
