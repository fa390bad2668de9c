package model

import "time"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
}

type StatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

type AttendanceUpdate struct {
	EmployeeID uint   `json:"employeeId" binding:"required"`
	Task       string `json:"task"`
	Status     string `json:"status" binding:"required"`
}

// Page is the shared list envelope: total counts everything matching the
// filter, data holds only the requested page.
type Page struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Data  any   `json:"data"`
}

// Patch structs list the mutable fields per entity explicitly. Nil means
// "leave unchanged"; a present field fully replaces the stored value.
// Request bodies are never merged onto entities wholesale.

type EmployeePatch struct {
	Profile       *string    `json:"profile"`
	Name          *string    `json:"name"`
	Email         *string    `json:"email"`
	Phone         *string    `json:"phone"`
	Position      *string    `json:"position"`
	Department    *string    `json:"department"`
	DateOfJoining *time.Time `json:"dateOfJoining"`
}

type CandidatePatch struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Position   *string `json:"position"`
	Status     *string `json:"status"`
	Experience *string `json:"experience"`
	Resume     *string `json:"resume"`
}

type LeavePatch struct {
	EmployeeID *uint      `json:"employeeId"`
	Date       *time.Time `json:"date"`
	Reason     *string    `json:"reason"`
	Status     *string    `json:"status"`
	Docs       *string    `json:"docs"`
}

// EmployeeAttendance is one roster row: the employee plus today's attendance,
// defaulting to Absent with no task when no record exists yet.
type EmployeeAttendance struct {
	Employee
	Attendance Attendance `json:"attendance"`
}
