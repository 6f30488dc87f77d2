package company

import "time"

type Company struct {
	ID        string
	Name      string
	Username  string
	Timezone  string // IANA name, e.g. "Asia/Jakarta"
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Team struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	MemberCount *int
}

type TeamMember struct {
	ID         string
	TeamID     string
	EmployeeID string
	CreatedAt  time.Time

	// DTO / Join
	EmployeeName *string
}

type Department struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Position struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PositionLevel struct {
	ID        string
	CompanyID string
	Name      string
	Rank      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
