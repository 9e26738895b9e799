package builder

import "fmt"

// validateMin ensures got ≥ min, else wraps ErrTooFewNodes with method context.
// Complexity: O(1).
func validateMin(method, param string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewNodes)
	}

	return nil
}
