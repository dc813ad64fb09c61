// Package fuzztests holds Go fuzz harnesses for the tokenizer and the
// parser. They look for panics, hangs and inputs that do not survive the
// parse and stringify round trip.
package fuzztests
