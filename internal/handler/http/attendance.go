package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/worklens/workforce-backend-go/internal/domain/attendance"
	"github.com/worklens/workforce-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	GetLast(w http.ResponseWriter, r *http.Request)
	GetMyHistory(w http.ResponseWriter, r *http.Request)
	GetMyLogs(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Mark decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Mark(r.Context(), req)
	if err != nil {
		slog.Error("Mark service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if result.Outcome == attendance.OutcomeCheckedIn {
		response.Created(w, result.Message, result)
		return
	}
	response.SuccessWithMessage(w, result.Message, result)
}

// GetLast implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetLast(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetLast(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

func historyFilterFromQuery(r *http.Request) attendance.HistoryFilter {
	q := r.URL.Query()

	filter := attendance.HistoryFilter{
		EmployeeID: q.Get("employee_id"),
		Status:     q.Get("status"),
	}
	filter.Page, _ = strconv.Atoi(q.Get("page"))
	filter.PerPage, _ = strconv.Atoi(q.Get("per_page"))

	if v := q.Get("date_from"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateFrom = &d
		}
	}
	if v := q.Get("date_to"); v != "" {
		if d, err := time.Parse("2006-01-02", v); err == nil {
			filter.DateTo = &d
		}
	}

	return filter
}

// GetMyHistory implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	filter := historyFilterFromQuery(r)

	records, total, err := h.attendanceService.GetMyHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
		TotalPages: int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage)),
	})
}

// GetMyLogs implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetMyLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.attendanceService.GetMyLogs(r.Context(), limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, logs)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := historyFilterFromQuery(r)

	records, total, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter.Normalize()
	response.SuccessWithMeta(w, records, &response.Meta{
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
		TotalPages: int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage)),
	})
}
