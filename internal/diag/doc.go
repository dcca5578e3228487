// Package diag defines the diagnostic model shared by the verifier, the
// grammar loaders and the CLI.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced
//     while checking the reserved identifier table against a grammar.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in cmd/idtab.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the Pos (file and line) the finding points at. Findings about
//     the built-in table carry an empty file.
//   - Notes – optional secondary positions/messages, e.g. where the grammar
//     declared the conflicting code.
package diag
