package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// ProductionTypeService manages the production classification lookup table.
// Each type carries a stable kind ("carne"/"leche"/"") so the dashboard
// never has to match on the user-editable display name.
type ProductionTypeService struct {
	repo repo.ProductionTypeRepository
}

func NewProductionTypeService(r repo.ProductionTypeRepository) *ProductionTypeService {
	return &ProductionTypeService{repo: r}
}

// validKind accepts the empty kind and the two aggregated ones.
func validKind(kind string) bool {
	return kind == "" || kind == model.ProductionKindMeat || kind == model.ProductionKindDairy
}

// Create stores a production type. When kind is omitted it is derived
// from the canonical labels, keeping the legacy name-only API working.
func (s *ProductionTypeService) Create(ctx context.Context, name, kind string) (*model.ProductionType, error) {
	if name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if !validKind(kind) {
		return nil, ErrUnknownKind
	}
	if kind == "" {
		kind = model.KindForLabel(name)
	}
	return s.repo.Create(ctx, &model.ProductionType{Name: name, Kind: kind})
}

func (s *ProductionTypeService) List(ctx context.Context) ([]model.ProductionType, error) {
	return s.repo.List(ctx)
}

func (s *ProductionTypeService) GetByID(ctx context.Context, id uint) (*model.ProductionType, error) {
	pt, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return pt, nil
}

func (s *ProductionTypeService) Update(ctx context.Context, id uint, name, kind *string) (*model.ProductionType, error) {
	pt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if kind != nil {
		if !validKind(*kind) {
			return nil, ErrUnknownKind
		}
		pt.Kind = *kind
	}
	if name != nil {
		pt.Name = *name
		// Renaming never re-derives the kind; the discriminator is stable.
	}
	if err := s.repo.Update(ctx, pt); err != nil {
		return nil, err
	}
	return pt, nil
}

// Delete refuses to remove a type still referenced by farms.
func (s *ProductionTypeService) Delete(ctx context.Context, id uint) error {
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
