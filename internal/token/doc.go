// Package token defines the lexical token kinds of CSS source text.
// Invariants:
//   - Token.Text is the exact source text of the token; concatenating the
//     Text of every token reproduces the input.
//   - Start is the character offset of the first rune, End the offset of the
//     last rune (inclusive). One-character tokens have Start == End.
//   - Tokens are values and are never mutated after the tokenizer returns.
package token
