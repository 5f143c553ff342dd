package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// FarmTypeService manages the farm classification lookup table.
type FarmTypeService struct {
	repo repo.FarmTypeRepository
}

func NewFarmTypeService(r repo.FarmTypeRepository) *FarmTypeService {
	return &FarmTypeService{repo: r}
}

func (s *FarmTypeService) Create(ctx context.Context, name string) (*model.FarmType, error) {
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return s.repo.Create(ctx, &model.FarmType{Name: name})
}

func (s *FarmTypeService) List(ctx context.Context) ([]model.FarmType, error) {
	return s.repo.List(ctx)
}

func (s *FarmTypeService) GetByID(ctx context.Context, id uint) (*model.FarmType, error) {
	ft, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return ft, nil
}

func (s *FarmTypeService) Update(ctx context.Context, id uint, name *string) (*model.FarmType, error) {
	ft, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		ft.Name = *name
	}
	if err := s.repo.Update(ctx, ft); err != nil {
		return nil, err
	}
	return ft, nil
}

// Delete refuses to remove a type still referenced by farms.
func (s *FarmTypeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	n, err := s.repo.CountFarms(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrTypeInUse
	}
	return s.repo.Delete(ctx, id)
}
