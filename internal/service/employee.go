package service

import (
	"context"
	"fmt"

	"hr-admin/internal/model"

	"gorm.io/gorm"
)

const searchLimit = 5

type EmployeeService struct{ db *gorm.DB }

func NewEmployeeService(db *gorm.DB) *EmployeeService { return &EmployeeService{db: db} }

func (s *EmployeeService) List(ctx context.Context, page, limit int) (int64, []model.Employee, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Employee{}).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count employees: %w", err)
	}

	var employees []model.Employee
	err := s.db.WithContext(ctx).
		Offset((page - 1) * limit).Limit(limit).
		Find(&employees).Error
	if err != nil {
		return 0, nil, fmt.Errorf("list employees: %w", err)
	}
	return total, employees, nil
}

func (s *EmployeeService) Get(ctx context.Context, id uint) (*model.Employee, error) {
	var e model.Employee
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *EmployeeService) Create(ctx context.Context, e *model.Employee) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *EmployeeService) Update(ctx context.Context, id uint, patch model.EmployeePatch) (*model.Employee, error) {
	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Profile != nil {
		e.Profile = *patch.Profile
	}
	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Email != nil {
		e.Email = *patch.Email
	}
	if patch.Phone != nil {
		e.Phone = *patch.Phone
	}
	if patch.Position != nil {
		e.Position = *patch.Position
	}
	if patch.Department != nil {
		e.Department = *patch.Department
	}
	if patch.DateOfJoining != nil {
		e.DateOfJoining = *patch.DateOfJoining
	}

	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, err
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id uint) error {
	e, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(e).Error
}

func (s *EmployeeService) SearchByName(ctx context.Context, name string) ([]model.Employee, error) {
	var employees []model.Employee
	err := s.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name+"%").
		Limit(searchLimit).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("search employees: %w", err)
	}
	return employees, nil
}

// normalizePage applies the shared list defaults: page 1, limit 10.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}
