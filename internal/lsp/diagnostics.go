package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"lunar/internal/diag"
)

const diagnosticSource = "lunar"

func protocolSeverity(sev diag.Severity) protocol.DiagnosticSeverity {
	switch sev {
	case diag.SevError:
		return protocol.DiagnosticSeverityError
	case diag.SevWarning:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityInformation
	}
}

// protocolDiagnostics converts the bag of snap. Notes become related
// information in the same document.
func protocolDiagnostics(snap *snapshot) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0)
	if snap == nil || snap.bag == nil {
		return out
	}
	src := diagnosticSource
	for _, d := range snap.bag.Items() {
		sev := protocolSeverity(d.Severity)
		code := protocol.IntegerOrString{Value: d.Code.ID()}
		pd := protocol.Diagnostic{
			Range:    rangeForSpan(snap.file, d.Primary),
			Severity: &sev,
			Code:     &code,
			Source:   &src,
			Message:  d.Message,
		}
		for _, n := range d.Notes {
			pd.RelatedInformation = append(pd.RelatedInformation, protocol.DiagnosticRelatedInformation{
				Location: protocol.Location{URI: snap.uri, Range: rangeForSpan(snap.file, n.Span)},
				Message:  n.Msg,
			})
		}
		out = append(out, pd)
	}
	return out
}

func publishParams(snap *snapshot) protocol.PublishDiagnosticsParams {
	return protocol.PublishDiagnosticsParams{
		URI:         snap.uri,
		Diagnostics: protocolDiagnostics(snap),
	}
}
