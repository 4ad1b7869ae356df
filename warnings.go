package docsift

import "strings"

// Warning describes a non-fatal issue encountered during analysis:
// processing succeeded but the results may be less precise.
type Warning struct {
	// Code identifies the warning class, e.g. "resource-skip".
	Code string

	// Message is a human-readable description.
	Message string
}

func (w Warning) String() string {
	return w.Code + ": " + w.Message
}

// FormatWarnings renders warnings as a single semicolon-separated line
// suitable for logging.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
