// Command rotate runs one shift rotation sweep and exits. Meant for
// operators and external schedulers; the API server runs the same sweep
// daily on its own.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/worklens/workforce-backend-go/internal/config"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
	shiftService "github.com/worklens/workforce-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	shiftSvc := shiftService.NewShiftService(
		db,
		postgresql.NewShiftRepository(db),
		postgresql.NewAssignmentRepository(db),
		postgresql.NewUserShiftRepository(db),
		postgresql.NewEmployeeRepository(db),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	report, err := shiftSvc.RunDueRotations(ctx, time.Now().UTC())
	if err != nil {
		fmt.Println("Rotation sweep failed:", err)
		os.Exit(1)
	}

	fmt.Printf("checked=%d rotated=%d skipped=%d failures=%d\n",
		report.Checked, report.Rotated, report.Skipped, len(report.Failures))
	for _, f := range report.Failures {
		fmt.Println("failure:", f)
	}
	if len(report.Failures) > 0 {
		os.Exit(1)
	}
}
