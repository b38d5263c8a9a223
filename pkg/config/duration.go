package config

import (
	"fmt"
	"time"
)

// ValidateDurationRange validates that a duration is within [min, max].
// Timeouts loaded from the environment go through this before they are
// handed to a client.
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%v) cannot be greater than max (%v)", min, max)
	}

	if d < min {
		return fmt.Errorf("duration %v is below minimum %v", d, min)
	}

	if d > max {
		return fmt.Errorf("duration %v exceeds maximum %v", d, max)
	}

	return nil
}
