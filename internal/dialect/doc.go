// Package dialect describes the Lua language versions the parser understands
// and collects evidence about which version a file is written in.
//
// A Version is a bitfield of features. Lua 5.1 is the empty set; each later
// Lua release includes the bits of the releases before it, while Luau forks
// from 5.1 and carries only its own bit. Evidence collection never changes
// how a file is parsed.
package dialect
