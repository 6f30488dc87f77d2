package employee

import (
	"github.com/shopspring/decimal"
	"github.com/worklens/workforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	Password         string  `json:"password"`
	Phone            *string `json:"phone"`
	DepartmentID     *string `json:"department_id"`
	PositionID       *string `json:"position_id"`
	PositionLevelID  *string `json:"position_level_id"`
	Role             string  `json:"role"`
	HireDate         string  `json:"hire_date"`
	BaseSalary       string  `json:"base_salary"`
	EmploymentStatus string  `json:"employment_status"`
}

var validStatuses = []string{
	string(StatusFullTime), string(StatusPartTime),
	string(StatusContract), string(StatusInternship),
}

var validRoles = []string{"admin", "manager", "employee"}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsInSlice(r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if r.HireDate != "" {
		if _, ok := validator.IsValidDate(r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.BaseSalary != "" {
		if _, err := decimal.NewFromString(r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if r.EmploymentStatus != "" && !validator.IsInSlice(r.EmploymentStatus, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: full_time, part_time, contract, internship",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	DepartmentID     *string `json:"department_id"`
	PositionID       *string `json:"position_id"`
	PositionLevelID  *string `json:"position_level_id"`
	Role             *string `json:"role"`
	BaseSalary       *string `json:"base_salary"`
	EmploymentStatus *string `json:"employment_status"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, validRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, manager, employee",
		})
	}

	if r.BaseSalary != nil {
		if _, err := decimal.NewFromString(*r.BaseSalary); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a decimal number",
			})
		}
	}

	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, validStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_status",
			Message: "employment_status must be one of: full_time, part_time, contract, internship",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListFilter struct {
	Search       string
	DepartmentID string
	PositionID   string
	IsActive     *bool
	Page         int
	PerPage      int
}

func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.PerPage < 1 || f.PerPage > 100 {
		f.PerPage = 20
	}
}
