package driver

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"lunar/internal/diag"
	"lunar/internal/dialect"
	"lunar/internal/source"
)

// DialectNames renders the dialects accepting every flag in requires.
func DialectNames(requires dialect.Version) string {
	var names []string
	for _, v := range dialect.Named {
		if v.Enables(requires) {
			names = append(names, v.String())
		}
	}
	return strings.Join(names, ", ")
}

func hintSpan(file source.FileID, h dialect.Hint) source.Span {
	sp := source.SpanOf(file, h.Pos, h.Pos)
	if end, err := safecast.Conv[uint32](int(sp.Start) + 1); err == nil {
		sp.End = end
	}
	return sp
}

// reportDetection records the first use of every dialect-specific
// construct and, when no single dialect fits, one conflict diagnostic.
func reportDetection(bag *diag.Bag, file source.FileID, hints []dialect.Hint, cls dialect.Classification) {
	seen := make(map[string]struct{}, len(hints))
	for _, h := range hints {
		if _, ok := seen[h.Reason]; ok {
			continue
		}
		seen[h.Reason] = struct{}{}
		msg := fmt.Sprintf("uses %s (%s)", h.Reason, DialectNames(h.Requires))
		bag.Report(diag.New(diag.SevInfo, diag.DiaFeatureUsed, hintSpan(file, h), msg))
	}
	if len(cls.Conflicts) == 0 {
		return
	}
	first := cls.Conflicts[0]
	b := diag.Build(bag, diag.SevWarning, diag.DiaConflict, hintSpan(file, first),
		"no single dialect accepts every construct in this file")
	for _, h := range cls.Conflicts {
		b.Note(hintSpan(file, h), h.Reason+" needs "+DialectNames(h.Requires))
	}
	b.Emit()
}
