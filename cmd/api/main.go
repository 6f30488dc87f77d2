package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/worklens/workforce-backend-go/internal/config"
	appHTTP "github.com/worklens/workforce-backend-go/internal/handler/http"
	"github.com/worklens/workforce-backend-go/internal/pkg/cron"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/pkg/faceid"
	"github.com/worklens/workforce-backend-go/internal/pkg/jwt"
	"github.com/worklens/workforce-backend-go/internal/pkg/oauth"
	"github.com/worklens/workforce-backend-go/internal/pkg/storage"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/worklens/workforce-backend-go/internal/service/attendance"
	authService "github.com/worklens/workforce-backend-go/internal/service/auth"
	companyService "github.com/worklens/workforce-backend-go/internal/service/company"
	employeeService "github.com/worklens/workforce-backend-go/internal/service/employee"
	faceService "github.com/worklens/workforce-backend-go/internal/service/face"
	locationService "github.com/worklens/workforce-backend-go/internal/service/location"
	shiftService "github.com/worklens/workforce-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	orgRepo := postgresql.NewOrgRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	faceProfileRepo := postgresql.NewFaceProfileRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	userShiftRepo := postgresql.NewUserShiftRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	logRepo := postgresql.NewLogRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	encoder := faceid.NewClient(cfg.FaceID)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, companyRepo, employeeRepo, jwtSvc, googleSvc)
	companySvc := companyService.NewCompanyService(companyRepo, teamRepo, orgRepo, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, orgRepo, userShiftRepo)
	faceSvc := faceService.NewFaceService(faceProfileRepo, encoder, fileStorage, cfg.Attendance)
	locationSvc := locationService.NewLocationService(locationRepo, employeeRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, assignmentRepo, userShiftRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		recordRepo,
		logRepo,
		userShiftRepo,
		faceProfileRepo,
		locationRepo,
		companyRepo,
		encoder,
		fileStorage,
		cfg.Attendance,
	)

	scheduler := cron.NewScheduler()
	cron.NewShiftJobs(shiftSvc).RegisterJobs(scheduler, cfg.Rotation.CheckInterval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(jwtSvc, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtSvc, authSvc, cfg.App.FrontendURL),
		Company:    appHTTP.NewCompanyHandler(companySvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Face:       appHTTP.NewFaceHandler(faceSvc),
		Location:   appHTTP.NewLocationHandler(locationSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
	}, cfg.App.AllowedOrigins)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
