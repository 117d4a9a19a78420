// Package token defines the lexical vocabulary of the lossless Lua parser.
// Invariants:
//   - A Token owns its text; nothing points back into the source buffer.
//   - Token.String() reproduces the exact source slice the token came from.
//   - Whitespace, comments and the shebang line are trivia and only appear
//     in TokenReference.Leading / TokenReference.Trailing.
//   - Symbol covers every keyword and punctuation of every supported dialect;
//     whether a symbol is usable is decided by its dialect gate.
package token
