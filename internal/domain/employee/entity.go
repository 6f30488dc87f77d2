package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type EmploymentStatus string

const (
	StatusFullTime   EmploymentStatus = "full_time"
	StatusPartTime   EmploymentStatus = "part_time"
	StatusContract   EmploymentStatus = "contract"
	StatusInternship EmploymentStatus = "internship"
)

type Employee struct {
	ID               string
	UserID           string
	CompanyID        string
	Name             string
	Email            string
	Phone            *string
	DepartmentID     *string
	PositionID       *string
	PositionLevelID  *string
	Role             string
	HireDate         *time.Time
	BaseSalary       decimal.Decimal
	EmploymentStatus EmploymentStatus
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Read-through projections, joined at query time and never stored
	// on the employee row.
	DepartmentName    *string
	PositionName      *string
	PositionLevelName *string
}
