package shift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
)

// RunDueRotations implements shift.ShiftService. It sweeps every
// auto-rotating assignment covering today, advances the ones whose last
// rotation is at least rotation_days old, and re-materializes their user
// shifts. One assignment failing does not stop the sweep.
func (s *ShiftServiceImpl) RunDueRotations(ctx context.Context, today time.Time) (shift.RotationReport, error) {
	today = shift.DateOnly(today)

	assignments, err := s.assignments.ListAutoRotating(ctx, today)
	if err != nil {
		return shift.RotationReport{}, fmt.Errorf("failed to list rotation candidates: %w", err)
	}

	report := shift.RotationReport{Checked: len(assignments)}

	for i := range assignments {
		a := assignments[i]
		if !a.RotationDue(today) {
			continue
		}

		if err := s.rotateAssignment(ctx, a, today); err != nil {
			if errors.Is(err, shift.ErrRotationSkipped) {
				report.Skipped++
				slog.Warn("Shift rotation skipped", "assignment_id", a.ID, "company_id", a.CompanyID)
				continue
			}
			report.Failures = append(report.Failures, fmt.Sprintf("%s: %v", a.ID, err))
			slog.Error("Shift rotation failed", "assignment_id", a.ID, "error", err)
			continue
		}

		report.Rotated++
	}

	slog.Info("Shift rotation sweep finished",
		"checked", report.Checked,
		"rotated", report.Rotated,
		"skipped", report.Skipped,
		"failures", len(report.Failures),
	)

	return report, nil
}

// rotateAssignment advances one assignment to the next shift in the
// company's creation order, circularly, and rebuilds its user shifts
// starting today. Everything happens in one transaction.
func (s *ShiftServiceImpl) rotateAssignment(ctx context.Context, a shift.Assignment, today time.Time) error {
	shifts, err := s.ShiftRepository.ListByCompany(ctx, a.CompanyID)
	if err != nil {
		return err
	}
	if len(shifts) <= 1 {
		return shift.ErrRotationSkipped
	}

	next := nextShift(shifts, a.ShiftID)

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		a.ShiftID = next.ID
		a.LastRotationDate = &today
		if err := s.assignments.Update(txCtx, a); err != nil {
			return err
		}

		if err := s.userShifts.DeactivateByAssignment(txCtx, a.ID, today, a.CompanyID); err != nil {
			return err
		}

		if err := s.materializeAssignment(txCtx, a, today); err != nil {
			// A partial report is not a rotation failure; the rotation
			// itself landed for everyone who could take it.
			if _, partial := err.(*shift.PartialMaterializationError); partial {
				logPartialMaterialization(err)
				return nil
			}
			return err
		}
		return nil
	})
}

// nextShift returns the shift after current in creation order, wrapping at
// the end. A current shift no longer in the list restarts at the first.
func nextShift(shifts []shift.Shift, currentID string) shift.Shift {
	for i := range shifts {
		if shifts[i].ID == currentID {
			return shifts[(i+1)%len(shifts)]
		}
	}
	return shifts[0]
}
