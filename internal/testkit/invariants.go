// Package testkit holds tree invariant checks shared by package tests and
// fuzz harnesses.
package testkit

import (
	"fmt"
	"unicode/utf8"

	"lunar/internal/ast"
	"lunar/internal/parser"
	"lunar/internal/token"
)

// IsSynthetic reports whether ref was inserted during recovery or built
// programmatically rather than read from the source.
func IsSynthetic(ref *token.Reference) bool {
	return ref.Token.Start.IsZero() && ref.Token.End.IsZero()
}

// eachSourceToken calls fn for every non-synthetic token of tree and its
// trivia, in document order.
func eachSourceToken(tree *ast.Ast, fn func(t token.Token, what string) error) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	tokens := ast.Flatten(tree)
	for ref := tokens.Next(); ref != nil; ref = tokens.Next() {
		if IsSynthetic(ref) {
			continue
		}
		for _, t := range ref.Leading {
			if err := fn(t, "leading trivia"); err != nil {
				return err
			}
		}
		if err := fn(ref.Token, "token"); err != nil {
			return err
		}
		for _, t := range ref.Trailing {
			if err := fn(t, "trailing trivia"); err != nil {
				return err
			}
		}
	}
	return nil
}

// CheckTokenOrder verifies that every source token of tree lies within
// src and that tokens appear in document order without overlap.
func CheckTokenOrder(src string, tree *ast.Ast) error {
	var last uint32
	return eachSourceToken(tree, func(t token.Token, what string) error {
		start, end := t.Start.Bytes, t.End.Bytes
		if end < start {
			return fmt.Errorf("%s %s ends before it starts", what, t.Start)
		}
		if int(end) > len(src) {
			return fmt.Errorf("%s %s ends past the input (%d > %d)", what, t.Start, end, len(src))
		}
		if start < last {
			return fmt.Errorf("%s at %s precedes byte %d", what, t.Start, last)
		}
		last = end
		return nil
	})
}

// CheckTokenText verifies that every source token prints exactly the
// bytes it spans. Only clean parses of valid UTF-8 are held to this.
func CheckTokenText(src string, tree *ast.Ast) error {
	if !utf8.ValidString(src) {
		return nil
	}
	return eachSourceToken(tree, func(t token.Token, what string) error {
		if int(t.End.Bytes) > len(src) || t.End.Bytes < t.Start.Bytes {
			return fmt.Errorf("%s at %s has an invalid range", what, t.Start)
		}
		if text := src[t.Start.Bytes:t.End.Bytes]; text != t.String() {
			return fmt.Errorf("%s at %s prints %q, source has %q", what, t.Start, t.String(), text)
		}
		return nil
	})
}

// CheckRoundTrip verifies that printing tree reproduces src exactly.
func CheckRoundTrip(src string, tree *ast.Ast) error {
	if got := ast.Print(tree); got != src {
		return fmt.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
	}
	return nil
}

// CheckIdempotent reparses the printed tree and compares the shapes.
func CheckIdempotent(tree *ast.Ast, opts parser.Options) error {
	printed := ast.Print(tree)
	again, errs := parser.ParseFallible(printed, opts)
	if len(errs) > 0 {
		return fmt.Errorf("reparse of printed tree failed: %w", parser.ErrorList(errs))
	}
	if ast.Print(again) != printed {
		return fmt.Errorf("second print differs from the first")
	}
	if !ast.Similar(tree, again) {
		return fmt.Errorf("reparsed tree has a different shape")
	}
	return nil
}

// CheckAll parses src and runs every invariant. A recovered tree is only
// required to exist: merging fragments after an early `return` leaves its
// tokens out of document order.
func CheckAll(src string, opts parser.Options) error {
	tree, errs := parser.ParseFallible(src, opts)
	if tree == nil {
		return fmt.Errorf("no tree for %d bytes of input", len(src))
	}
	if len(errs) > 0 {
		return nil
	}
	if err := CheckTokenOrder(src, tree); err != nil {
		return err
	}
	if err := CheckTokenText(src, tree); err != nil {
		return err
	}
	if err := CheckRoundTrip(src, tree); err != nil {
		return err
	}
	return CheckIdempotent(tree, opts)
}
