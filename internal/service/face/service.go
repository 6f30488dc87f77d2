package face

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/worklens/workforce-backend-go/internal/config"
	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/pkg/faceid"
	"github.com/worklens/workforce-backend-go/internal/pkg/storage"
)

type FaceServiceImpl struct {
	profiles face.FaceProfileRepository
	encoder  face.Encoder
	files    storage.FileStorage
	cfg      config.AttendanceConfig
}

func NewFaceService(
	profiles face.FaceProfileRepository,
	encoder face.Encoder,
	files storage.FileStorage,
	cfg config.AttendanceConfig,
) face.FaceService {
	return &FaceServiceImpl{
		profiles: profiles,
		encoder:  encoder,
		files:    files,
		cfg:      cfg,
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

// Register implements face.FaceService. Re-registration replaces the stored
// encoding, image and geofence.
func (s *FaceServiceImpl) Register(ctx context.Context, req face.RegisterRequest) (face.FaceProfile, error) {
	if err := req.Validate(); err != nil {
		return face.FaceProfile{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return face.FaceProfile{}, err
	}

	imageBytes, contentType, err := decodeImage(req.ImageBase64)
	if err != nil {
		return face.FaceProfile{}, face.ErrEncodingFailed
	}

	encoding, err := s.encoder.Encode(ctx, imageBytes, contentType)
	if err != nil {
		return face.FaceProfile{}, mapEncoderError(err)
	}

	path := fmt.Sprintf("faces/profiles/%s/%s%s", employeeID, uuid.NewString(), extFor(contentType))
	stored, err := s.files.Upload(ctx, bytes.NewReader(imageBytes), path, contentType)
	if err != nil {
		return face.FaceProfile{}, fmt.Errorf("failed to store face image: %w", err)
	}

	radius := face.DefaultGeofenceRadiusMeters
	if req.RadiusMeters != nil {
		radius = *req.RadiusMeters
	}

	profile, err := s.profiles.Upsert(ctx, face.FaceProfile{
		EmployeeID:          employeeID,
		CompanyID:           companyID,
		Encoding:            encoding,
		ImagePath:           stored,
		DefaultLatitude:     req.Latitude,
		DefaultLongitude:    req.Longitude,
		DefaultRadiusMeters: radius,
	})
	if err != nil {
		return face.FaceProfile{}, err
	}

	slog.Info("Face profile registered", "employee_id", employeeID, "has_geofence", profile.HasDefaultGeofence())

	return profile, nil
}

// Compare implements face.FaceService. A match needs both the distance under
// tolerance and the derived confidence over the floor.
func (s *FaceServiceImpl) Compare(ctx context.Context, req face.CompareRequest) (face.CompareResult, error) {
	if err := req.Validate(); err != nil {
		return face.CompareResult{}, err
	}

	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return face.CompareResult{}, err
	}

	profile, err := s.profiles.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return face.CompareResult{}, err
	}

	imageBytes, contentType, err := decodeImage(req.ImageBase64)
	if err != nil {
		return face.CompareResult{}, face.ErrEncodingFailed
	}

	captured, err := s.encoder.Encode(ctx, imageBytes, contentType)
	if err != nil {
		return face.CompareResult{}, mapEncoderError(err)
	}

	distance := s.encoder.Distance(profile.Encoding, captured)
	confidence := 1 - distance

	return face.CompareResult{
		Match:      distance <= s.cfg.FaceMatchTolerance && confidence >= s.cfg.FaceMinConfidence,
		Distance:   distance,
		Confidence: confidence,
	}, nil
}

// Status implements face.FaceService.
func (s *FaceServiceImpl) Status(ctx context.Context) (face.StatusResponse, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return face.StatusResponse{}, err
	}

	profile, err := s.profiles.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		if errors.Is(err, face.ErrNoBiometricProfile) {
			return face.StatusResponse{Registered: false}, nil
		}
		return face.StatusResponse{}, err
	}

	resp := face.StatusResponse{
		Registered:         true,
		HasDefaultGeofence: profile.HasDefaultGeofence(),
	}
	if resp.HasDefaultGeofence {
		resp.DefaultLatitude = profile.DefaultLatitude
		resp.DefaultLongitude = profile.DefaultLongitude
		resp.DefaultRadiusMeters = &profile.DefaultRadiusMeters
	}

	return resp, nil
}

// GetImage implements face.FaceService.
func (s *FaceServiceImpl) GetImage(ctx context.Context) (io.ReadCloser, error) {
	employeeID, companyID, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.GetByEmployee(ctx, employeeID, companyID)
	if err != nil {
		return nil, err
	}

	return s.files.Download(ctx, profile.ImagePath)
}

func decodeImage(payload string) ([]byte, string, error) {
	if idx := strings.Index(payload, ","); idx != -1 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image: %w", err)
	}
	return storage.SniffImage(bytes.NewReader(raw))
}

func extFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
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
