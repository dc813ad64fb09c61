// Package diag defines the diagnostic model shared by the tokenizer, the
// parser and the driver.
//
// Diagnostic is the central record: a Severity, a numeric Code with a stable
// string ID (see codes.go), a short Message, a primary source.Span and
// optional Notes. Producers emit through a Reporter so they never depend on
// storage; BagReporter collects into a Bag, which supports limits, sorting and
// deduplication.
//
// SyntaxError is the single error value returned by the parser. It carries
// the resolved position and source snippet and unwraps to one of the
// sentinel errors, so callers can use errors.Is.
//
// Package diag does no formatting or IO; rendering lives in internal/diagfmt.
package diag
