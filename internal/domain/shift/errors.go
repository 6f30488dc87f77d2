package shift

import (
	"errors"
	"fmt"
	"strings"
)

// Shift domain errors
var (
	ErrShiftNotFound      = errors.New("shift not found")
	ErrShiftNameTaken     = errors.New("a shift with this name already exists")
	ErrShiftInUse         = errors.New("shift is referenced by assignments and cannot be deleted")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
	ErrUserShiftNotFound  = errors.New("user shift not found")

	// ErrShiftOverlap marks a per-employee materialization conflict: the new
	// user shift would collide with an existing active one.
	ErrShiftOverlap = errors.New("shift overlaps an existing active shift for this employee")

	// ErrRotationSkipped is returned when an assignment cannot rotate
	// because its company has one shift or fewer. Logged, never fatal.
	ErrRotationSkipped = errors.New("rotation skipped: company needs at least two shifts")

	// ErrNoShiftsMaterialized is returned when materialization produced no
	// user shifts at all.
	ErrNoShiftsMaterialized = errors.New("no user shifts could be materialized for the assignment")
)

// PartialMaterializationError reports employees skipped during a
// materialization that still produced at least one user shift. It is a
// report, not a failure.
type PartialMaterializationError struct {
	Skipped []SkippedEmployee
}

type SkippedEmployee struct {
	EmployeeID string
	Reason     error
}

func (e *PartialMaterializationError) Error() string {
	parts := make([]string, 0, len(e.Skipped))
	for _, s := range e.Skipped {
		parts = append(parts, fmt.Sprintf("%s: %v", s.EmployeeID, s.Reason))
	}
	return fmt.Sprintf("materialization skipped %d employee(s): %s", len(e.Skipped), strings.Join(parts, "; "))
}
