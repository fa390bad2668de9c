package service

import (
	"context"
	"fmt"

	"hr-admin/internal/model"

	"gorm.io/gorm"
)

type CandidateService struct{ db *gorm.DB }

func NewCandidateService(db *gorm.DB) *CandidateService { return &CandidateService{db: db} }

func (s *CandidateService) List(ctx context.Context, page, limit int) (int64, []model.Candidate, error) {
	page, limit = normalizePage(page, limit)

	var total int64
	if err := s.db.WithContext(ctx).Model(&model.Candidate{}).Count(&total).Error; err != nil {
		return 0, nil, fmt.Errorf("count candidates: %w", err)
	}

	var candidates []model.Candidate
	err := s.db.WithContext(ctx).
		Offset((page - 1) * limit).Limit(limit).
		Find(&candidates).Error
	if err != nil {
		return 0, nil, fmt.Errorf("list candidates: %w", err)
	}
	return total, candidates, nil
}

func (s *CandidateService) Get(ctx context.Context, id uint) (*model.Candidate, error) {
	var c model.Candidate
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CandidateService) Create(ctx context.Context, c *model.Candidate) error {
	if c.Status == "" {
		c.Status = model.CandidateStatusNew
	}
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *CandidateService) Update(ctx context.Context, id uint, patch model.CandidatePatch) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Position != nil {
		c.Position = *patch.Position
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.Experience != nil {
		c.Experience = *patch.Experience
	}
	if patch.Resume != nil {
		c.Resume = *patch.Resume
	}

	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CandidateService) Delete(ctx context.Context, id uint) error {
	c, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(c).Error
}

func (s *CandidateService) ChangeStatus(ctx context.Context, id uint, status string) (*model.Candidate, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Status = status
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}
