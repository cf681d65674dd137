package geometry

import (
	"fmt"
	"strings"
)

// Axis identifies a coordinate axis of the domain.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "unknown"
	}
}

// ExtentViolation records one axis whose extents failed validation.
type ExtentViolation struct {
	Axis Axis
	Min  float64
	Max  float64
}

func (v ExtentViolation) String() string {
	return fmt.Sprintf("%s_min (%g) must be less than %s_max (%g)", v.Axis, v.Min, v.Axis, v.Max)
}

// InvalidExtentsError reports domain extents that violate the ordering
// invariant min < max. Every violating axis is listed, so a caller can
// correct all inputs in one pass.
type InvalidExtentsError struct {
	Violations []ExtentViolation
}

func (e *InvalidExtentsError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "invalid domain extents: " + strings.Join(msgs, "; ")
}
