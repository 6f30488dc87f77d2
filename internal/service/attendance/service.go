package attendance

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worklens/workforce-backend-go/internal/config"
	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/domain/location"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/pkg/database"
	"github.com/worklens/workforce-backend-go/internal/pkg/faceid"
	"github.com/worklens/workforce-backend-go/internal/pkg/keyedmutex"
	"github.com/worklens/workforce-backend-go/internal/pkg/storage"
	"github.com/worklens/workforce-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.RecordRepository
	attendance.LogRepository
	userShifts shift.UserShiftRepository
	faces      face.FaceProfileRepository
	locations  location.LocationRepository
	companies  company.CompanyRepository
	encoder    face.Encoder
	files      storage.FileStorage

	// sessions serializes the open-session check and the following write per
	// employee, so concurrent marks cannot create two open records.
	sessions *keyedmutex.KeyedMutex
	cfg      config.AttendanceConfig
}

func NewAttendanceService(
	db *database.DB,
	records attendance.RecordRepository,
	logs attendance.LogRepository,
	userShifts shift.UserShiftRepository,
	faces face.FaceProfileRepository,
	locations location.LocationRepository,
	companies company.CompanyRepository,
	encoder face.Encoder,
	files storage.FileStorage,
	cfg config.AttendanceConfig,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:               db,
		RecordRepository: records,
		LogRepository:    logs,
		userShifts:       userShifts,
		faces:            faces,
		locations:        locations,
		companies:        companies,
		encoder:          encoder,
		files:            files,
		sessions:         keyedmutex.New(),
		cfg:              cfg,
	}
}

func claimsFromContext(ctx context.Context) (employeeID string, companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", "", fmt.Errorf("company_id claim is missing or invalid")
	}

	employeeID, ok = claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", fmt.Errorf("employee_id claim is missing or invalid")
	}

	return employeeID, companyID, nil
}

// Mark implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkRequest) (attendance.MarkResult, error) {
	if req.Latitude == nil || req.Longitude == nil {
		return attendance.MarkResult{}, attendance.ErrMissingLocation
	}
	if err := req.Validate(); err != nil {
		return attendance.MarkResult{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	comp, err := a.companies.GetByID(ctx, companyID)
	if err != nil {
		return attendance.MarkResult{}, fmt.Errorf("failed to get company: %w", err)
	}
	loc, err := time.LoadLocation(comp.Timezone)
	if err != nil {
		loc = time.UTC
	}
	nowLocal := time.Now().UTC().In(loc)
	dateLocal := shift.DateOnly(nowLocal)

	profile, err := a.faces.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	// Face verification
	imageBytes, contentType, err := decodeFaceImage(req.ImageBase64)
	if err != nil {
		return attendance.MarkResult{}, face.ErrEncodingFailed
	}
	captured, err := a.encoder.Encode(ctx, imageBytes, contentType)
	if err != nil {
		return attendance.MarkResult{}, mapEncoderError(err)
	}
	distance := a.encoder.Distance(profile.Encoding, captured)
	confidence := 1 - distance
	faceVerified := distance <= a.cfg.FaceMatchTolerance && confidence >= a.cfg.FaceMinConfidence

	// Location verification
	outcome, err := a.verifyMarkLocation(ctx, req, profile, employeeID, companyID)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	a.sessions.Lock(employeeID)
	defer a.sessions.Unlock(employeeID)

	open, err := a.RecordRepository.GetOpenSession(ctx, employeeID, dateLocal, companyID)
	hasOpen := err == nil
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.MarkResult{}, err
	}

	if hasOpen && !req.ForceNewSession {
		return a.checkOut(ctx, open, req, nowLocal, outcome, faceVerified, confidence, "Checked out")
	}

	if hasOpen && req.ForceNewSession {
		if _, err := a.checkOut(ctx, open, req, nowLocal, outcome, faceVerified, confidence,
			"Auto-closed by forced new session"); err != nil {
			return attendance.MarkResult{}, err
		}
	}

	return a.checkIn(ctx, req, employeeID, companyID, nowLocal, dateLocal, outcome, faceVerified, confidence, imageBytes, contentType)
}

// verifyMarkLocation builds the fence candidates for the request and runs
// the advisory verification. Missing fence configuration is the one case
// that blocks: there is nothing to verify against.
func (a *AttendanceServiceImpl) verifyMarkLocation(ctx context.Context, req attendance.MarkRequest, profile face.FaceProfile, employeeID, companyID string) (locationOutcome, error) {
	allowed, err := a.locations.ListByEmployee(ctx, employeeID, companyID, true)
	if err != nil {
		return locationOutcome{}, fmt.Errorf("failed to list allowed locations: %w", err)
	}

	fallbacks := make([]geofence, 0, len(allowed))
	for _, l := range allowed {
		fallbacks = append(fallbacks, geofence{
			Name:         l.Name,
			Latitude:     l.Latitude,
			Longitude:    l.Longitude,
			RadiusMeters: l.RadiusMeters,
		})
	}

	var primary *geofence
	if req.LocationID != "" && req.LocationID != attendance.LocationDefault {
		l, err := a.locations.GetByID(ctx, req.LocationID, companyID)
		if err != nil && !errors.Is(err, location.ErrLocationNotFound) {
			return locationOutcome{}, err
		}
		if err == nil && l.EmployeeID == employeeID && l.IsActive {
			primary = &geofence{
				Name:         l.Name,
				Latitude:     l.Latitude,
				Longitude:    l.Longitude,
				RadiusMeters: l.RadiusMeters,
			}
		}
		// A stale, foreign or retired location id is not fatal; the mark
		// falls back to the employee's remaining fences.
	}

	if primary == nil {
		if profile.HasDefaultGeofence() {
			primary = &geofence{
				Name:         "default",
				Latitude:     *profile.DefaultLatitude,
				Longitude:    *profile.DefaultLongitude,
				RadiusMeters: profile.DefaultRadiusMeters,
			}
		} else if len(fallbacks) == 0 {
			return locationOutcome{}, location.ErrGeofenceNotConfigured
		}
	}

	return verifyLocation(*req.Latitude, *req.Longitude, primary, fallbacks), nil
}

func (a *AttendanceServiceImpl) checkOut(ctx context.Context, open attendance.Record, req attendance.MarkRequest, nowLocal time.Time, outcome locationOutcome, faceVerified bool, confidence float64, message string) (attendance.MarkResult, error) {
	checkOut := nowLocal
	duration := int(checkOut.Sub(open.CheckIn).Minutes())

	open.CheckOut = &checkOut
	open.CheckOutLatitude = req.Latitude
	open.CheckOutLongitude = req.Longitude
	open.WorkDurationMinutes = &duration
	open.LocationVerified = outcome.Verified
	open.FaceVerified = faceVerified
	open.BlinkDetected = req.BlinkDetected
	open.VerifiedLocationName = outcome.Name
	if req.DeviceInfo != nil {
		open.DeviceInfo = req.DeviceInfo
	}

	err := postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		if err := a.RecordRepository.Update(txCtx, open); err != nil {
			return err
		}
		_, err := a.LogRepository.Create(txCtx, attendance.Log{
			EmployeeID:       open.EmployeeID,
			CompanyID:        open.CompanyID,
			RecordID:         &open.ID,
			Timestamp:        nowLocal,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			FaceVerified:     faceVerified,
			LocationVerified: outcome.Verified,
			BlinkDetected:    req.BlinkDetected,
			DeviceInfo:       req.DeviceInfo,
			Message:          message,
		})
		return err
	})
	if err != nil {
		return attendance.MarkResult{}, err
	}

	slog.Info("Attendance checked out",
		"employee_id", open.EmployeeID,
		"record_id", open.ID,
		"work_minutes", duration,
		"location_verified", outcome.Verified,
		"face_verified", faceVerified,
	)

	return attendance.MarkResult{
		Outcome:              attendance.OutcomeCheckedOut,
		Record:               open,
		Message:              buildMarkMessage(attendance.OutcomeCheckedOut, open.Status, nil, a.cfg.GracePeriodMinutes),
		LocationVerified:     outcome.Verified,
		VerifiedLocationName: outcome.Name,
		DistanceMeters:       outcome.MinDistance,
		FaceVerified:         faceVerified,
		FaceConfidence:       confidence,
		Status:               open.Status,
		ShiftID:              open.ShiftID,
	}, nil
}

func (a *AttendanceServiceImpl) checkIn(ctx context.Context, req attendance.MarkRequest, employeeID, companyID string, nowLocal, dateLocal time.Time, outcome locationOutcome, faceVerified bool, confidence float64, imageBytes []byte, contentType string) (attendance.MarkResult, error) {
	userShifts, err := a.userShifts.ListActiveByEmployee(ctx, employeeID, dateLocal, companyID)
	if err != nil {
		return attendance.MarkResult{}, err
	}

	res := resolveShift(userShifts, nowLocal)

	worked := false
	if res.Relation == relationPast {
		worked, err = a.RecordRepository.HasWorkedShift(ctx, employeeID, res.UserShift.ShiftID, dateLocal, companyID)
		if err != nil {
			return attendance.MarkResult{}, err
		}
	}

	minute := nowLocal.Hour()*60 + nowLocal.Minute()
	status, minutesLate := classify(res, minute, a.cfg.GracePeriodMinutes, worked)

	grace := a.cfg.GracePeriodMinutes
	var shiftID *string
	var shiftName *string
	if res.UserShift != nil {
		shiftID = &res.UserShift.ShiftID
		shiftName = &res.UserShift.Shift.Name
		if res.UserShift.Shift.GraceMinutes != nil {
			grace = *res.UserShift.Shift.GraceMinutes
		}
	}

	imagePath, err := a.storeFaceImage(ctx, employeeID, imageBytes, contentType)
	if err != nil {
		slog.Error("Failed to store mark face image", "employee_id", employeeID, "error", err)
		imagePath = nil
	}

	record := attendance.Record{
		EmployeeID:           employeeID,
		CompanyID:            companyID,
		Date:                 dateLocal,
		CheckIn:              nowLocal,
		CheckInLatitude:      *req.Latitude,
		CheckInLongitude:     *req.Longitude,
		ShiftID:              shiftID,
		Status:               status,
		MinutesLate:          minutesLate,
		LocationVerified:     outcome.Verified,
		FaceVerified:         faceVerified,
		BlinkDetected:        req.BlinkDetected,
		VerifiedLocationName: outcome.Name,
		FaceImagePath:        imagePath,
		DeviceInfo:           req.DeviceInfo,
	}

	message := buildMarkMessage(attendance.OutcomeCheckedIn, status, minutesLate, grace)

	err = postgresql.WithTransaction(ctx, a.db, func(txCtx context.Context) error {
		record, err = a.RecordRepository.Create(txCtx, record)
		if err != nil {
			return err
		}
		_, err = a.LogRepository.Create(txCtx, attendance.Log{
			EmployeeID:       employeeID,
			CompanyID:        companyID,
			RecordID:         &record.ID,
			Timestamp:        nowLocal,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			FaceVerified:     faceVerified,
			LocationVerified: outcome.Verified,
			BlinkDetected:    req.BlinkDetected,
			DeviceInfo:       req.DeviceInfo,
			Message:          message,
		})
		return err
	})
	if err != nil {
		return attendance.MarkResult{}, err
	}

	slog.Info("Attendance checked in",
		"employee_id", employeeID,
		"record_id", record.ID,
		"status", status,
		"shift_id", shiftID,
		"location_verified", outcome.Verified,
		"face_verified", faceVerified,
	)

	return attendance.MarkResult{
		Outcome:              attendance.OutcomeCheckedIn,
		Record:               record,
		Message:              message,
		LocationVerified:     outcome.Verified,
		VerifiedLocationName: outcome.Name,
		DistanceMeters:       outcome.MinDistance,
		FaceVerified:         faceVerified,
		FaceConfidence:       confidence,
		Status:               status,
		MinutesLate:          minutesLate,
		ShiftID:              shiftID,
		ShiftName:            shiftName,
	}, nil
}

func (a *AttendanceServiceImpl) storeFaceImage(ctx context.Context, employeeID string, imageBytes []byte, contentType string) (*string, error) {
	ext := ".jpg"
	switch contentType {
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	}
	path := fmt.Sprintf("faces/marks/%s/%s%s", employeeID, uuid.NewString(), ext)

	stored, err := a.files.Upload(ctx, bytes.NewReader(imageBytes), path, contentType)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// decodeFaceImage accepts raw base64 or a data URL and verifies the payload
// decodes as a supported image.
func decodeFaceImage(payload string) ([]byte, string, error) {
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image: %w", err)
	}
	return storage.SniffImage(bytes.NewReader(raw))
}

func mapEncoderError(err error) error {
	switch {
	case errors.Is(err, faceid.ErrNoFace):
		return face.ErrNoFaceDetected
	case errors.Is(err, faceid.ErrUnavailable):
		return face.ErrEncoderUnavailable
	default:
		return fmt.Errorf("%w: %v", face.ErrEncodingFailed, err)
	}
}

// GetLast implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetLast(ctx context.Context) (attendance.Record, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return attendance.Record{}, err
	}
	return a.RecordRepository.GetLast(ctx, employeeID, companyID)
}

// GetMyHistory implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyHistory(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Record, int64, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.EmployeeID = employeeID
	filter.Normalize()
	return a.RecordRepository.List(ctx, filter, companyID)
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Record, int64, error) {
	_, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, 0, err
	}
	filter.Normalize()
	return a.RecordRepository.List(ctx, filter, companyID)
}

// GetMyLogs implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMyLogs(ctx context.Context, limit int) ([]attendance.Log, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return a.LogRepository.ListByEmployee(ctx, employeeID, companyID, limit)
}
