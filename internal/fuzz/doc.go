// Package fuzztests houses Go fuzz harnesses for the lexer and parser.
// They guard against panics, hangs and lost source text on arbitrary input.
package fuzztests
