package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"csskit/internal/diag"
	"csskit/internal/source"
)

type palette struct {
	err, warn, info, path, caret, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		info:  color.New(color.FgCyan),
		path:  color.New(color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
		dim:   color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.path, p.caret, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty writes bag as
//
//	path:line:col: ERROR SYN2001: message
//	  3 | a { b: c
//	    |   ^
//
// Items are written in bag order; call bag.Sort first for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := writeOne(w, pal, d.Severity, d.Code.ID(), d.Message, d.Primary, fs, opts); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			if err := writeOne(w, pal, diag.SevInfo, "note", n.Msg, n.Span, fs, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeOne(w io.Writer, pal palette, sev diag.Severity, code, msg string, sp source.Span, fs *source.FileSet, opts PrettyOpts) error {
	f := fs.Get(sp.File)
	start, end := fs.Resolve(sp)
	loc := fmt.Sprintf("%s:%d:%d", formatPath(f, fs, opts.PathMode), start.Line, start.Col)
	head := fmt.Sprintf("%s: %s %s: %s\n",
		pal.path.Sprint(loc),
		pal.severity(sev).Sprint(strings.ToUpper(sev.String())),
		code, msg)
	if _, err := io.WriteString(w, head); err != nil {
		return err
	}
	if !opts.Snippet || len(f.Content) == 0 {
		return nil
	}
	line := f.GetLine(start.Line)
	gutter := fmt.Sprintf("%d", start.Line)
	blank := strings.Repeat(" ", len(gutter))
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = max(1, runewidth.StringWidth(runeSlice(line, start.Col-1, end.Col-1)))
	}
	marker := pad(runeSlice(line, 0, start.Col-1)) + pal.caret.Sprint("^"+strings.Repeat("~", width-1))
	_, err := fmt.Fprintf(w, "%s %s %s\n%s %s %s\n",
		pal.dim.Sprint(gutter), pal.dim.Sprint("|"), line,
		blank, pal.dim.Sprint("|"), marker)
	return err
}

// pad returns whitespace as wide as prefix on a terminal, keeping tabs.
func pad(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func runeSlice(s string, from, to uint32) string {
	rs := []rune(s)
	n := uint32(len(rs))
	from, to = min(from, n), min(to, n)
	if from >= to {
		return ""
	}
	return string(rs[from:to])
}

func formatPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	if mode == PathModeRelative {
		return f.FormatPath(mode.String(), fs.BaseDir())
	}
	return f.FormatPath(mode.String(), "")
}
