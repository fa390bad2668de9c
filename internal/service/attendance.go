package service

import (
	"context"
	"fmt"
	"time"

	"hr-admin/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceService struct{ db *gorm.DB }

func NewAttendanceService(db *gorm.DB) *AttendanceService { return &AttendanceService{db: db} }

// Upsert records today's task and status for an employee. The ON CONFLICT
// clause rides the (employee_id, work_date) unique index, so the whole
// operation is one atomic statement rather than a find-then-save pair.
func (s *AttendanceService) Upsert(ctx context.Context, employeeID uint, task, status string) (*model.Attendance, error) {
	today := time.Now().Format("2006-01-02")

	a := model.Attendance{
		EmployeeID: employeeID,
		WorkDate:   today,
		Task:       task,
		Status:     status,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"task", "status", "updated_at"}),
	}).Create(&a).Error
	if err != nil {
		return nil, fmt.Errorf("upsert attendance: %w", err)
	}

	// Re-read so the caller sees the surviving row (the conflict path keeps
	// the original id and created_at).
	var out model.Attendance
	err = s.db.WithContext(ctx).
		Where("employee_id = ? AND work_date = ?", employeeID, today).
		First(&out).Error
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	return &out, nil
}

// Roster returns every employee merged with today's attendance record,
// defaulting to Absent with an empty task. One batched query covers all
// employees.
func (s *AttendanceService) Roster(ctx context.Context) ([]model.EmployeeAttendance, error) {
	var employees []model.Employee
	if err := s.db.WithContext(ctx).Find(&employees).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	today := time.Now().Format("2006-01-02")
	var records []model.Attendance
	err := s.db.WithContext(ctx).
		Where("work_date = ?", today).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	byEmployee := make(map[uint]model.Attendance, len(records))
	for _, a := range records {
		byEmployee[a.EmployeeID] = a
	}

	roster := make([]model.EmployeeAttendance, 0, len(employees))
	for _, e := range employees {
		a, ok := byEmployee[e.ID]
		if !ok {
			a = model.Attendance{Status: model.AttendanceStatusAbsent, Task: ""}
		}
		roster = append(roster, model.EmployeeAttendance{Employee: e, Attendance: a})
	}
	return roster, nil
}
