// Package parser builds lossless syntax trees from Lua source.
//
// Parsing never stops on malformed input. Every grammar routine tolerates a
// missing delimiter by inserting a synthetic token or leaving a nil hole,
// records an Error and carries on; the top-level loop skips whatever no
// statement can start with until the end of the input is reached.
package parser
