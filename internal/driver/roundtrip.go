package driver

import (
	"fmt"

	"fortio.org/safecast"

	"lunar/internal/ast"
	"lunar/internal/diag"
	"lunar/internal/source"
)

// FirstDifference returns the first byte offset where a and b differ, or
// -1 when they are equal.
func FirstDifference(a, b string) int {
	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// checkRoundTrip prints tree and compares it to the file content.
func checkRoundTrip(bag *diag.Bag, file *source.File, tree *ast.Ast) bool {
	printed := ast.Print(tree)
	off := FirstDifference(string(file.Content), printed)
	if off < 0 {
		return true
	}
	start, err := safecast.Conv[uint32](off)
	if err != nil {
		start = 0
	}
	end := start
	if off < len(file.Content) {
		end++
	}
	sp := source.Span{File: file.ID, Start: start, End: end}
	msg := fmt.Sprintf("printed tree differs from source at byte %d (%d bytes printed, %d in source)",
		off, len(printed), len(file.Content))
	bag.Add(diag.NewError(diag.DiaRoundTripChanged, sp, msg))
	return false
}
