package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/worklens/workforce-backend-go/internal/domain/face"
	"github.com/worklens/workforce-backend-go/internal/handler/http/response"
)

type FaceHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Compare(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	GetImage(w http.ResponseWriter, r *http.Request)
}

type FaceHandlerImpl struct {
	faceService face.FaceService
}

func NewFaceHandler(faceService face.FaceService) FaceHandler {
	return &FaceHandlerImpl{faceService: faceService}
}

// Register implements FaceHandler.
func (h *FaceHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var req face.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.faceService.Register(r.Context(), req)
	if err != nil {
		slog.Error("Face register service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Face profile registered successfully", map[string]any{
		"employee_id":          profile.EmployeeID,
		"has_default_geofence": profile.HasDefaultGeofence(),
	})
}

// Compare implements FaceHandler.
func (h *FaceHandlerImpl) Compare(w http.ResponseWriter, r *http.Request) {
	var req face.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.faceService.Compare(r.Context(), req)
	if err != nil {
		slog.Error("Face compare service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// Status implements FaceHandler.
func (h *FaceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.faceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetImage implements FaceHandler.
func (h *FaceHandlerImpl) GetImage(w http.ResponseWriter, r *http.Request) {
	reader, err := h.faceService.GetImage(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Face image stream error", "error", err)
	}
}
