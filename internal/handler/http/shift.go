package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/shift"
	"github.com/worklens/workforce-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)
	ListShiftUsers(w http.ResponseWriter, r *http.Request)

	CreateAssignment(w http.ResponseWriter, r *http.Request)
	GetAssignment(w http.ResponseWriter, r *http.Request)
	ListAssignments(w http.ResponseWriter, r *http.Request)
	UpdateAssignment(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)

	ListMyShifts(w http.ResponseWriter, r *http.Request)
	GetCurrentShift(w http.ResponseWriter, r *http.Request)
	RunRotations(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// CreateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateShift(r.Context(), req)
	if err != nil {
		slog.Error("CreateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created successfully", result)
}

// GetShift implements ShiftHandler.
func (h *ShiftHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetShift(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateShift implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.UpdateShift(r.Context(), chi.URLParam(r, "shiftID"), req)
	if err != nil {
		slog.Error("UpdateShift service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated successfully", result)
}

// DeleteShift implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteShift(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}

// ListShiftUsers implements ShiftHandler.
func (h *ShiftHandlerImpl) ListShiftUsers(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListShiftUsers(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateAssignment implements ShiftHandler. A partial materialization still
// creates the assignment; the skipped employees ride along in the payload.
func (h *ShiftHandlerImpl) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.CreateAssignment(r.Context(), req)
	if err != nil {
		var partial *shift.PartialMaterializationError
		if errors.As(err, &partial) {
			response.Created(w, "Assignment created with skipped employees", map[string]any{
				"assignment": result,
				"skipped":    partial.Skipped,
			})
			return
		}
		slog.Error("CreateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Assignment created successfully", result)
}

// GetAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) GetAssignment(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetAssignment(r.Context(), chi.URLParam(r, "assignmentID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListAssignments implements ShiftHandler.
func (h *ShiftHandlerImpl) ListAssignments(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListAssignments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.shiftService.UpdateAssignment(r.Context(), chi.URLParam(r, "assignmentID"), req)
	if err != nil {
		var partial *shift.PartialMaterializationError
		if errors.As(err, &partial) {
			response.SuccessWithMessage(w, "Assignment updated with skipped employees", map[string]any{
				"assignment": result,
				"skipped":    partial.Skipped,
			})
			return
		}
		slog.Error("UpdateAssignment service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment updated successfully", result)
}

// DeleteAssignment implements ShiftHandler.
func (h *ShiftHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.DeleteAssignment(r.Context(), chi.URLParam(r, "assignmentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment deleted successfully", nil)
}

// ListMyShifts implements ShiftHandler.
func (h *ShiftHandlerImpl) ListMyShifts(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.ListMyShifts(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetCurrentShift implements ShiftHandler.
func (h *ShiftHandlerImpl) GetCurrentShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.shiftService.GetCurrentShift(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// RunRotations implements ShiftHandler. Manual trigger for the daily
// rotation sweep.
func (h *ShiftHandlerImpl) RunRotations(w http.ResponseWriter, r *http.Request) {
	report, err := h.shiftService.RunDueRotations(r.Context(), time.Now().UTC())
	if err != nil {
		slog.Error("RunRotations service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Rotation sweep finished", report)
}
