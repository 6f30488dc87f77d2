package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/worklens/workforce-backend-go/internal/domain/company"
	"github.com/worklens/workforce-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMyCompany(w http.ResponseWriter, r *http.Request)
	UpdateMyCompany(w http.ResponseWriter, r *http.Request)

	CreateTeam(w http.ResponseWriter, r *http.Request)
	ListTeams(w http.ResponseWriter, r *http.Request)
	GetTeam(w http.ResponseWriter, r *http.Request)
	UpdateTeam(w http.ResponseWriter, r *http.Request)
	DeleteTeam(w http.ResponseWriter, r *http.Request)
	AddTeamMember(w http.ResponseWriter, r *http.Request)
	RemoveTeamMember(w http.ResponseWriter, r *http.Request)
	ListTeamMembers(w http.ResponseWriter, r *http.Request)

	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreatePosition(w http.ResponseWriter, r *http.Request)
	ListPositions(w http.ResponseWriter, r *http.Request)
	UpdatePosition(w http.ResponseWriter, r *http.Request)
	DeletePosition(w http.ResponseWriter, r *http.Request)

	CreatePositionLevel(w http.ResponseWriter, r *http.Request)
	ListPositionLevels(w http.ResponseWriter, r *http.Request)
	UpdatePositionLevel(w http.ResponseWriter, r *http.Request)
	DeletePositionLevel(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{companyService: companyService}
}

// GetMyCompany implements CompanyHandler.
func (h *CompanyHandlerImpl) GetMyCompany(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetMyCompany(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateMyCompany implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateMyCompany(w http.ResponseWriter, r *http.Request) {
	var req company.UpdateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.UpdateMyCompany(r.Context(), req)
	if err != nil {
		slog.Error("UpdateMyCompany service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Company updated successfully", result)
}

// CreateTeam implements CompanyHandler.
func (h *CompanyHandlerImpl) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req company.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.CreateTeam(r.Context(), req)
	if err != nil {
		slog.Error("CreateTeam service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Team created successfully", result)
}

// ListTeams implements CompanyHandler.
func (h *CompanyHandlerImpl) ListTeams(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.ListTeams(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// GetTeam implements CompanyHandler.
func (h *CompanyHandlerImpl) GetTeam(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateTeam implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	var req company.CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.UpdateTeam(r.Context(), chi.URLParam(r, "teamID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Team updated successfully", result)
}

// DeleteTeam implements CompanyHandler.
func (h *CompanyHandlerImpl) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.DeleteTeam(r.Context(), chi.URLParam(r, "teamID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Team deleted successfully", nil)
}

// AddTeamMember implements CompanyHandler.
func (h *CompanyHandlerImpl) AddTeamMember(w http.ResponseWriter, r *http.Request) {
	var req company.AddTeamMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.AddTeamMember(r.Context(), chi.URLParam(r, "teamID"), req)
	if err != nil {
		slog.Error("AddTeamMember service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Team member added successfully", result)
}

// RemoveTeamMember implements CompanyHandler.
func (h *CompanyHandlerImpl) RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	err := h.companyService.RemoveTeamMember(r.Context(), chi.URLParam(r, "teamID"), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Team member removed successfully", nil)
}

// ListTeamMembers implements CompanyHandler.
func (h *CompanyHandlerImpl) ListTeamMembers(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.ListTeamMembers(r.Context(), chi.URLParam(r, "teamID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateDepartment implements CompanyHandler.
func (h *CompanyHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req company.CreateNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.CreateDepartment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Department created successfully", result)
}

// ListDepartments implements CompanyHandler.
func (h *CompanyHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdateDepartment implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req company.CreateNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.UpdateDepartment(r.Context(), chi.URLParam(r, "departmentID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department updated successfully", result)
}

// DeleteDepartment implements CompanyHandler.
func (h *CompanyHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.DeleteDepartment(r.Context(), chi.URLParam(r, "departmentID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// CreatePosition implements CompanyHandler.
func (h *CompanyHandlerImpl) CreatePosition(w http.ResponseWriter, r *http.Request) {
	var req company.CreateNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.CreatePosition(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Position created successfully", result)
}

// ListPositions implements CompanyHandler.
func (h *CompanyHandlerImpl) ListPositions(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.ListPositions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdatePosition implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	var req company.CreateNamedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.UpdatePosition(r.Context(), chi.URLParam(r, "positionID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position updated successfully", result)
}

// DeletePosition implements CompanyHandler.
func (h *CompanyHandlerImpl) DeletePosition(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.DeletePosition(r.Context(), chi.URLParam(r, "positionID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position deleted successfully", nil)
}

// CreatePositionLevel implements CompanyHandler.
func (h *CompanyHandlerImpl) CreatePositionLevel(w http.ResponseWriter, r *http.Request) {
	var req company.CreatePositionLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.CreatePositionLevel(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Position level created successfully", result)
}

// ListPositionLevels implements CompanyHandler.
func (h *CompanyHandlerImpl) ListPositionLevels(w http.ResponseWriter, r *http.Request) {
	result, err := h.companyService.ListPositionLevels(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// UpdatePositionLevel implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdatePositionLevel(w http.ResponseWriter, r *http.Request) {
	var req company.CreatePositionLevelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.companyService.UpdatePositionLevel(r.Context(), chi.URLParam(r, "levelID"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position level updated successfully", result)
}

// DeletePositionLevel implements CompanyHandler.
func (h *CompanyHandlerImpl) DeletePositionLevel(w http.ResponseWriter, r *http.Request) {
	if err := h.companyService.DeletePositionLevel(r.Context(), chi.URLParam(r, "levelID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Position level deleted successfully", nil)
}
