// Package formats defines types shared by the input format readers.
package formats

// Skip records one recoverable per-item skip emitted while reading an
// input. Skips are diagnostics: they are logged, reported, and never
// abort a run.
type Skip struct {
	// Scope identifies the skipped item ("book 3", "genesis 2").
	Scope string `json:"scope"`

	// Reason is a short human-readable explanation.
	Reason string `json:"reason"`
}
