package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hr-admin/internal/model"

	"gorm.io/gorm"
)

var ErrInvalidDate = errors.New("invalid date")

type LeaveService struct{ db *gorm.DB }

func NewLeaveService(db *gorm.DB) *LeaveService { return &LeaveService{db: db} }

// List filters by a single calendar day when date is non-empty ("2006-01-02"),
// expanding it to the inclusive [00:00:00, 23:59:59.999] window. The client
// sends the literal "null" when no day is picked. The employee reference is
// resolved into each row.
func (s *LeaveService) List(ctx context.Context, page, limit int, date string) (int64, []model.Leave, error) {
	page, limit = normalizePage(page, limit)

	dayFilter := func(db *gorm.DB) *gorm.DB { return db }
	if date != "" && date != "null" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
		}
		start := day
		end := day.Add(24*time.Hour - time.Millisecond)
		dayFilter = func(db *gorm.DB) *gorm.DB {
			return db.Where("date BETWEEN ? AND ?", start, end)
		}
	}

	var total int64
	err := s.db.WithContext(ctx).Model(&model.Leave{}).Scopes(dayFilter).Count(&total).Error
	if err != nil {
		return 0, nil, fmt.Errorf("count leaves: %w", err)
	}

	var leaves []model.Leave
	err = s.db.WithContext(ctx).Scopes(dayFilter).
		Preload("Employee").
		Offset((page - 1) * limit).Limit(limit).
		Find(&leaves).Error
	if err != nil {
		return 0, nil, fmt.Errorf("list leaves: %w", err)
	}
	return total, leaves, nil
}

func (s *LeaveService) Get(ctx context.Context, id uint) (*model.Leave, error) {
	var l model.Leave
	if err := s.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *LeaveService) Create(ctx context.Context, l *model.Leave) error {
	if l.Status == "" {
		l.Status = model.LeaveStatusPending
	}
	return s.db.WithContext(ctx).Create(l).Error
}

func (s *LeaveService) Update(ctx context.Context, id uint, patch model.LeavePatch) (*model.Leave, error) {
	l, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.EmployeeID != nil {
		l.EmployeeID = *patch.EmployeeID
	}
	if patch.Date != nil {
		l.Date = *patch.Date
	}
	if patch.Reason != nil {
		l.Reason = *patch.Reason
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.Docs != nil {
		l.Docs = *patch.Docs
	}

	if err := s.db.WithContext(ctx).Save(l).Error; err != nil {
		return nil, err
	}
	return l, nil
}

func (s *LeaveService) Delete(ctx context.Context, id uint) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(l).Error
}

func (s *LeaveService) UpdateStatus(ctx context.Context, id uint, status string) error {
	l, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	l.Status = status
	return s.db.WithContext(ctx).Save(l).Error
}
