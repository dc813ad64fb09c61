package driver

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"csskit/internal/diag"
	"csskit/internal/format"
	"csskit/internal/observ"
	"csskit/internal/source"
	"csskit/internal/token"
	"csskit/internal/trace"
)

func writeInputs(t *testing.T, files map[string]string) (string, []string) {
	t.Helper()
	dir := t.TempDir()
	var paths []string
	for name, content := range files {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, p)
	}
	return dir, paths
}

func TestTokenize(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{"a.css": "a { content: 'x\n}"})
	res, err := Tokenize(context.Background(), paths[0], Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Tokens) == 0 || res.Tokens[0].Kind != token.Word {
		t.Fatalf("tokens = %v", res.Tokens)
	}
	if !res.Bag.HasWarnings() || res.Bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("bag = %+v", res.Bag.Items())
	}
}

func TestParseFilesKeepsOrderAndReportsFailures(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.css")
	bad := filepath.Join(dir, "bad.css")
	missing := filepath.Join(dir, "missing.css")
	if err := os.WriteFile(good, []byte("a { b: c }"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("a { b: c"), 0o600); err != nil {
		t.Fatal(err)
	}

	var mu sync.Mutex
	events := map[Status]int{}
	opts := Options{Jobs: 2, Observer: func(ev Event) {
		mu.Lock()
		events[ev.Status]++
		mu.Unlock()
	}}
	fs, results, err := ParseFiles(context.Background(), []string{good, bad, missing}, opts)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 || fs.Len() != 3 {
		t.Fatalf("results = %d, files = %d", len(results), fs.Len())
	}
	if results[0].Root == nil || results[0].Bag.HasErrors() {
		t.Errorf("good.css failed: %+v", results[0].Bag.Items())
	}
	if results[1].Root != nil || !errors.Is(results[1].Err, diag.ErrUnclosedBlock) {
		t.Errorf("bad.css err = %v", results[1].Err)
	}
	if items := results[1].Bag.Items(); len(items) != 1 || items[0].Code != diag.SynUnclosedBlock {
		t.Errorf("bad.css bag = %+v", items)
	}
	if items := results[2].Bag.Items(); len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Errorf("missing.css bag = %+v", items)
	}
	if events[StatusWorking] != 3 || events[StatusDone] != 1 || events[StatusFailed] != 2 {
		t.Errorf("events = %v", events)
	}
}

func TestFormatPathsKeepsFormattedInput(t *testing.T) {
	src := "a {\n  color: red\n}\n\n@media x {\n    b {\n      c: d\n    }\n}\n"
	_, paths := writeInputs(t, map[string]string{"a.css": src})
	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{Check: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed || results[0].Bag.Len() != 0 {
		t.Fatalf("unchanged input reported: %+v", results[0].Bag.Items())
	}
}

func TestFormatPathsInlineDeclarations(t *testing.T) {
	src := "a{color:red}\n\n@media x {\n    b { c: d }\n}\n"
	_, paths := writeInputs(t, map[string]string{"a.css": src})

	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{Stdout: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "a{\n  color:red}\n\n@media x {\n    b {\n      c: d }\n}\n"
	if got := string(results[0].Formatted); got != want {
		t.Fatalf("formatted = %q, want %q", got, want)
	}

	verbatim := FormatOptions{Options: Options{Format: format.Options{Verbatim: true}}, Check: true}
	_, results, err = FormatPaths(context.Background(), paths, verbatim)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Changed || results[0].Bag.Len() != 0 {
		t.Fatalf("verbatim output differs: %+v", results[0].Bag.Items())
	}
}

func TestFormatPathsReindentCheck(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{"a.css": "a{b:c}"})
	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{Check: true, Reindent: true})
	if err != nil {
		t.Fatal(err)
	}
	r := results[0]
	if !r.Changed || r.Bag.Len() != 1 || r.Bag.Items()[0].Code != diag.ChkNotFormatted {
		t.Fatalf("result = %+v", r)
	}
	if got, _ := os.ReadFile(paths[0]); string(got) != "a{b:c}" {
		t.Fatalf("check mode wrote the file: %q", got)
	}
}

func TestFormatPathsWritesAndKeepsBOM(t *testing.T) {
	content := append(append([]byte(nil), source.BOM...), "a{b:c}"...)
	_, paths := writeInputs(t, map[string]string{"a.css": string(content)})
	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{Reindent: true})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Err != nil || !results[0].Changed {
		t.Fatalf("result = %+v", results[0])
	}
	got, err := os.ReadFile(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	want := append(append([]byte(nil), source.BOM...), "a{\n  b:c\n}"...)
	if !bytes.Equal(got, want) {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestFormatPathsStdout(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{"a.css": "a{b:c}"})
	_, results, err := FormatPaths(context.Background(), paths, FormatOptions{Stdout: true, Reindent: true})
	if err != nil {
		t.Fatal(err)
	}
	if string(results[0].Formatted) != "a{\n  b:c\n}" {
		t.Fatalf("formatted = %q", results[0].Formatted)
	}
	if got, _ := os.ReadFile(paths[0]); string(got) != "a{b:c}" {
		t.Fatalf("stdout mode wrote the file: %q", got)
	}
}

func TestFormatPathsNoInputs(t *testing.T) {
	if _, _, err := FormatPaths(context.Background(), nil, FormatOptions{}); !errors.Is(err, ErrNoInputs) {
		t.Fatalf("err = %v", err)
	}
}

func TestCheckPathsUsesCache(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{
		"ok.css":  "a { b: c !important; }\n",
		"bad.css": "a { b }",
	})
	cache, err := NewDiskCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	opts := CheckOptions{Options: Options{Cache: cache}, CacheSalt: "max_depth=256"}

	for round := range 2 {
		_, results, err := CheckPaths(context.Background(), paths, opts)
		if err != nil {
			t.Fatal(err)
		}
		for _, r := range results {
			if r.Cached != (round == 1) {
				t.Errorf("round %d %s: cached = %v", round, r.Path, r.Cached)
			}
			wantOK := filepath.Base(r.Path) == "ok.css"
			if r.OK != wantOK {
				t.Errorf("round %d %s: ok = %v", round, r.Path, r.OK)
			}
			if !wantOK && (r.Bag.Len() != 1 || r.Bag.Items()[0].Code != diag.SynUnknownWord) {
				t.Errorf("round %d %s: bag = %+v", round, r.Path, r.Bag.Items())
			}
		}
	}

	opts.CacheSalt = "max_depth=8"
	_, results, err := CheckPaths(context.Background(), paths, opts)
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Cached {
		t.Fatal("different salt hit the cache")
	}
}

func TestCheckPathsCancelled(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{"a.css": "a{}"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := CheckPaths(ctx, paths, CheckOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	key := CacheKey([]byte("a{}"), "")
	if err := cache.Put(key, &CheckPayload{OK: true, Nodes: 2}); err != nil {
		t.Fatal(err)
	}
	var got CheckPayload
	if hit, err := cache.Get(key, &got); err != nil || !hit || got.Nodes != 2 {
		t.Fatalf("get = %v %v %+v", hit, err, got)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatal(err)
	}
	if hit, _ := cache.Get(key, &got); hit {
		t.Fatal("entry survived DropAll")
	}
}

func TestFileSpansNestUnderPassSpans(t *testing.T) {
	_, paths := writeInputs(t, map[string]string{"a.css": "a{}", "b.css": "b{}"})
	ring := trace.NewRingTracer(64, trace.LevelDebug)
	ctx := trace.WithTracer(context.Background(), ring)
	timer := observ.NewTimer()

	if _, _, err := ParseFiles(ctx, paths, Options{Timer: timer}); err != nil {
		t.Fatal(err)
	}

	passes := map[uint64]string{}
	var files int
	for _, ev := range ring.Snapshot() {
		if ev.Kind != trace.KindSpanBegin {
			continue
		}
		switch ev.Scope {
		case trace.ScopePass:
			passes[ev.SpanID] = ev.Name
		case trace.ScopeFile:
			files++
			if passes[ev.ParentID] != "parse" {
				t.Errorf("file span %q has parent %d, want the parse pass", ev.Name, ev.ParentID)
			}
		}
	}
	if files != 2 {
		t.Fatalf("got %d file spans, want 2", files)
	}
	r := timer.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "load" || r.Phases[1].Name != "parse" {
		t.Fatalf("phases = %+v", r.Phases)
	}
}
