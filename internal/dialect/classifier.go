package dialect

// Classification is the result of matching evidence against the named dialects.
type Classification struct {
	// Minimal is the smallest named dialect accepting every hint, or All
	// when no single dialect does.
	Minimal Version
	// Candidates lists every named dialect accepting every hint.
	Candidates []Version
	// Conflicts holds hints rejected by the dialect that accepts the most hints.
	Conflicts       []Hint
	ObservedSignals int
}

// Classifier picks the dialects consistent with collected evidence.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	hints := e.Hints()
	out := Classification{ObservedSignals: len(hints)}

	bestMissed := -1
	var bestRejected []Hint
	for _, v := range Named {
		var rejected []Hint
		for _, h := range hints {
			if !v.Enables(h.Requires) {
				rejected = append(rejected, h)
			}
		}
		if len(rejected) == 0 {
			out.Candidates = append(out.Candidates, v)
		}
		if bestMissed < 0 || len(rejected) < bestMissed {
			bestMissed, bestRejected = len(rejected), rejected
		}
	}

	if len(out.Candidates) > 0 {
		out.Minimal = out.Candidates[0]
		return out
	}
	out.Minimal = All
	out.Conflicts = bestRejected
	return out
}
