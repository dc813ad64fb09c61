package diag

import (
	"errors"
	"testing"

	"csskit/internal/source"
)

func TestSyntaxErrorMessageAndUnwrap(t *testing.T) {
	lines := source.NewLines("a {\n  color red;\n}")
	err := NewSyntaxError(SynUnknownWord, lines, 6, "x.css", "Unknown word")

	if got := err.Error(); got != "x.css:2:3: Unknown word" {
		t.Fatalf("Error() = %q", got)
	}
	if err.Snippet != "  color red;" {
		t.Fatalf("Snippet = %q", err.Snippet)
	}
	if !errors.Is(err, ErrUnknownWord) {
		t.Fatal("errors.Is(err, ErrUnknownWord) = false")
	}
	if errors.Is(err, ErrUnclosedBlock) {
		t.Fatal("unexpected match with ErrUnclosedBlock")
	}

	var se *SyntaxError
	wrapped := error(err)
	if !errors.As(wrapped, &se) || se.Pos.Offset != 6 {
		t.Fatalf("errors.As failed or wrong offset: %+v", se)
	}
}

func TestSyntaxErrorWithoutFile(t *testing.T) {
	err := NewSyntaxError(SynUnexpectedClose, source.NewLines("}"), 0, "", "Unexpected }")
	if got := err.Error(); got != "1:1: Unexpected }" {
		t.Fatalf("Error() = %q", got)
	}
	d := err.Diagnostic(3)
	if d.Severity != SevError || d.Primary.File != 3 || d.Primary.Start != 0 || d.Primary.End != 1 {
		t.Fatalf("Diagnostic = %+v", d)
	}
}
