package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/worklens/workforce-backend-go/internal/domain/shift"
)

type ShiftJobs struct {
	shiftSvc shift.ShiftService
}

func NewShiftJobs(shiftSvc shift.ShiftService) *ShiftJobs {
	return &ShiftJobs{shiftSvc: shiftSvc}
}

func (j *ShiftJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	scheduler.AddJob("rotate_shift_assignments", interval, j.RotateShiftAssignments)
}

// RotateShiftAssignments runs the rotation driver once per day. The job
// ticks hourly so a restart does not miss the window.
func (j *ShiftJobs) RotateShiftAssignments(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting shift rotation job")

	report, err := j.shiftSvc.RunDueRotations(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("shift rotation sweep failed: %w", err)
	}

	slog.Info("Cron: Shift rotation finished",
		"checked", report.Checked,
		"rotated", report.Rotated,
		"skipped", report.Skipped,
		"failures", len(report.Failures),
	)
	return nil
}
