package driver

import (
	"encoding/json"
	"fmt"
	"strings"

	"lunar/internal/diag"
	"lunar/internal/observ"
	"lunar/internal/source"
)

type timingsPayload struct {
	Kind    string               `json:"kind"`
	Files   int                  `json:"files"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// timingsDiagnostic summarises a run as an info diagnostic. The message
// lists the phases; the single note carries the report as JSON for
// machine consumers.
func timingsDiagnostic(kind string, files int, r observ.Report) diag.Diagnostic {
	parts := make([]string, len(r.Phases))
	for i, p := range r.Phases {
		parts[i] = fmt.Sprintf("%s %.2f", p.Name, p.DurationMS)
	}
	msg := fmt.Sprintf("%s: %d files in %.2f ms", kind, files, r.TotalMS)
	if len(parts) > 0 {
		msg += " (" + strings.Join(parts, ", ") + ")"
	}
	d := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg)
	data, err := json.Marshal(timingsPayload{Kind: kind, Files: files, TotalMS: r.TotalMS, Phases: r.Phases})
	if err != nil {
		return d
	}
	return d.WithNote(source.Span{}, string(data))
}
