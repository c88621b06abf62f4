package core

import (
	"errors"
	"fmt"
)

// ErrConfiguration marks faults in the scene, camera or render settings.
// They are reported before any pixel is computed.
var ErrConfiguration = errors.New("invalid configuration")

// DegenerateVectorError is returned when a vector with no usable direction is normalized
type DegenerateVectorError struct {
	Vector Vec3
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("degenerate vector (%g, %g, %g) cannot be normalized", e.Vector.X, e.Vector.Y, e.Vector.Z)
}

// ConfigError describes a configuration fault for a named field
type ConfigError struct {
	Field  string
	Reason string
	Err    error // Underlying cause, may be nil
}

// NewConfigError creates a configuration fault
func NewConfigError(field, reason string, cause error) *ConfigError {
	return &ConfigError{Field: field, Reason: reason, Err: cause}
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is makes every ConfigError match ErrConfiguration
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
