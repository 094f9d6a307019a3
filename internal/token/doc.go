// Package token defines lexical token kinds and trivia for the invocation
// grammar.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Bodies are opaque: inside a body only delimiters, string/char literals
//     and comments matter, so every otherwise-unclassified character lexes as
//     a generic Punct token instead of an error.
//   - Keywords (impl, for, where, const) are recognized case-sensitively;
//     everything else alphabetic is an identifier.
package token
