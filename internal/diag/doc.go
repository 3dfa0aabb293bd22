// Package diag defines the diagnostic model shared by the decoder, the
// binder and the early-error checks.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages ("previous declaration here").
//   - Fixes – optional plain text edits.
//
// # Producers
//
// Phases never own storage. They receive a Reporter and emit through
// ReportBuilder:
//
//	diag.ReportError(r, diag.SemaRedeclaration, span, msg).
//		WithNote(prev, "previous declaration here").
//		Emit()
//
// Bag is the usual sink. It enforces a limit, and Sort/Dedup give a
// deterministic order for output. Rendering lives in internal/diagfmt.
package diag
