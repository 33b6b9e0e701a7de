package extraction

import (
	"fmt"
	"strings"
)

// ValidationError reports a structurally invalid JSON resume submitted
// through the structured ingestion path. It is the only extraction error
// that surfaces to the caller; everything else degrades to empty fields.
type ValidationError struct {
	Problems []string
	Cause    error
}

func (e *ValidationError) Error() string {
	if len(e.Problems) > 0 {
		return fmt.Sprintf("invalid resume JSON: %s", strings.Join(e.Problems, "; "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid resume JSON: %v", e.Cause)
	}
	return "invalid resume JSON"
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
