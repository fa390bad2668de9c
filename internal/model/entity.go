package model

import "time"

const (
	CandidateStatusNew      = "New"
	CandidateStatusSelected = "Selected"
	CandidateStatusRejected = "Rejected"

	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"

	AttendanceStatusAbsent = "Absent"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"uniqueIndex;size:191" json:"email"`
	Password  string    `json:"-"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Profile       string    `json:"profile"`
	Name          string    `json:"name"`
	Email         string    `gorm:"uniqueIndex;size:191" json:"email"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	Department    string    `json:"department"`
	DateOfJoining time.Time `gorm:"type:date" json:"dateOfJoining"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type Candidate struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex;size:191" json:"email"`
	Phone      string    `json:"phone"`
	Position   string    `json:"position"`
	Status     string    `gorm:"default:New" json:"status"`
	Experience string    `json:"experience"`
	Resume     string    `json:"resume"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type Leave struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"index" json:"employeeId"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Date       time.Time `json:"date"`
	Reason     string    `json:"reason"`
	Status     string    `gorm:"default:Pending" json:"status"`
	Docs       string    `json:"docs,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Attendance is a per-employee, per-calendar-day singleton. The composite
// unique index makes the upsert in service.AttendanceService atomic: two
// concurrent writes for the same employee/day can never produce two rows.
type Attendance struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	EmployeeID uint      `gorm:"uniqueIndex:uk_employee_day" json:"employeeId"`
	WorkDate   string    `gorm:"type:date;uniqueIndex:uk_employee_day" json:"workDate"`
	Task       string    `json:"task"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (User) TableName() string       { return "users" }
func (Employee) TableName() string   { return "employees" }
func (Candidate) TableName() string  { return "candidates" }
func (Leave) TableName() string      { return "leaves" }
func (Attendance) TableName() string { return "attendances" }
