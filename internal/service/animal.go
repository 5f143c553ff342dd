package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"context"
	"errors"

	"gorm.io/gorm"
)

// AnimalService manages the animals attached to farms.
type AnimalService struct {
	animals repo.AnimalRepository
	farms   repo.FarmRepository
}

func NewAnimalService(animals repo.AnimalRepository, farms repo.FarmRepository) *AnimalService {
	return &AnimalService{animals: animals, farms: farms}
}

// CreateAnimalInput carries the creation fields; optional attributes stay
// NULL when nil.
type CreateAnimalInput struct {
	FarmID               uint
	AnimalType           string
	IdentificationNumber *string
	Weight               *float64
	EstimatedProduction  *float64
	SanitaryRegister     *string
	Age                  *int
	Incidents            *string
}

// UpdateAnimalInput carries partial updates; nil means "leave as is".
type UpdateAnimalInput struct {
	FarmID               *uint
	AnimalType           *string
	IdentificationNumber *string
	Weight               *float64
	EstimatedProduction  *float64
	SanitaryRegister     *string
	Age                  *int
	Incidents            *string
}

// Create validates the required fields and that the farm exists.
// A nonexistent farm reports ErrFarmNotFound (mapped to 404).
func (s *AnimalService) Create(ctx context.Context, in CreateAnimalInput) (*model.Animal, error) {
	if in.FarmID == 0 {
		return nil, &MissingFieldError{Field: "farm_id"}
	}
	if in.AnimalType == "" {
		return nil, &MissingFieldError{Field: "animal_type"}
	}
	if err := s.resolveFarm(ctx, in.FarmID); err != nil {
		return nil, err
	}

	return s.animals.Create(ctx, &model.Animal{
		FarmID:               in.FarmID,
		AnimalType:           in.AnimalType,
		IdentificationNumber: in.IdentificationNumber,
		Weight:               in.Weight,
		EstimatedProduction:  in.EstimatedProduction,
		SanitaryRegister:     in.SanitaryRegister,
		Age:                  in.Age,
		Incidents:            in.Incidents,
	})
}

func (s *AnimalService) ListByFarm(ctx context.Context, farmID uint) ([]model.Animal, error) {
	return s.animals.ListByFarm(ctx, farmID)
}

func (s *AnimalService) GetByID(ctx context.Context, id uint) (*model.Animal, error) {
	animal, err := s.animals.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return animal, nil
}

// Update overwrites only the supplied fields; omitted fields keep their
// previous value, they are never reset to NULL.
func (s *AnimalService) Update(ctx context.Context, id uint, in UpdateAnimalInput) (*model.Animal, error) {
	animal, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FarmID != nil {
		if err := s.resolveFarm(ctx, *in.FarmID); err != nil {
			return nil, err
		}
		animal.FarmID = *in.FarmID
	}
	if in.AnimalType != nil {
		animal.AnimalType = *in.AnimalType
	}
	if in.IdentificationNumber != nil {
		animal.IdentificationNumber = in.IdentificationNumber
	}
	if in.Weight != nil {
		animal.Weight = in.Weight
	}
	if in.EstimatedProduction != nil {
		animal.EstimatedProduction = in.EstimatedProduction
	}
	if in.SanitaryRegister != nil {
		animal.SanitaryRegister = in.SanitaryRegister
	}
	if in.Age != nil {
		animal.Age = in.Age
	}
	if in.Incidents != nil {
		animal.Incidents = in.Incidents
	}

	if err := s.animals.Update(ctx, animal); err != nil {
		return nil, err
	}
	return s.animals.GetByID(ctx, id)
}

func (s *AnimalService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.animals.Delete(ctx, id)
}

func (s *AnimalService) resolveFarm(ctx context.Context, id uint) error {
	if _, err := s.farms.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFarmNotFound
		}
		return err
	}
	return nil
}
