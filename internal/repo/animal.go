package repo

import (
	"FarmKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// AnimalRepository is the access contract for Animal rows, including the
// read queries the dashboard aggregation is built on.
type AnimalRepository interface {
	Create(ctx context.Context, animal *model.Animal) (*model.Animal, error)
	ListByFarm(ctx context.Context, farmID uint) ([]model.Animal, error)

	// GetByID returns the animal with its Farm preloaded.
	GetByID(ctx context.Context, id uint) (*model.Animal, error)

	Update(ctx context.Context, animal *model.Animal) error
	Delete(ctx context.Context, id uint) error

	// Count returns the unconditional number of animal rows.
	Count(ctx context.Context) (int64, error)

	// SumEstimatedProduction sums estimated_production over animals whose
	// farm is in farmIDs, NULL counting as zero. Callers must not pass an
	// empty set; the service short-circuits that case to zero.
	SumEstimatedProduction(ctx context.Context, farmIDs []uint) (float64, error)

	// ListWithIncidents returns animals whose incidents field is non-null
	// and non-empty, with their Farm preloaded.
	ListWithIncidents(ctx context.Context) ([]model.Animal, error)
}

type animalRepo struct {
	db *gorm.DB
}

// NewAnimalRepository creates the GORM-backed animal repository.
func NewAnimalRepository(db *gorm.DB) AnimalRepository {
	return &animalRepo{db: db}
}

func (r *animalRepo) Create(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	if err := r.db.WithContext(ctx).Create(animal).Error; err != nil {
		return nil, err
	}
	return animal, nil
}

func (r *animalRepo) ListByFarm(ctx context.Context, farmID uint) ([]model.Animal, error) {
	var animals []model.Animal
	if err := r.db.WithContext(ctx).Where("farm_id = ?", farmID).Find(&animals).Error; err != nil {
		return nil, err
	}
	return animals, nil
}

func (r *animalRepo) GetByID(ctx context.Context, id uint) (*model.Animal, error) {
	var animal model.Animal
	if err := r.db.WithContext(ctx).Preload("Farm").First(&animal, id).Error; err != nil {
		return nil, err
	}
	return &animal, nil
}

func (r *animalRepo) Update(ctx context.Context, animal *model.Animal) error {
	return r.db.WithContext(ctx).Omit("Farm").Save(animal).Error
}

func (r *animalRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Animal{}, id).Error
}

func (r *animalRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Animal{}).Count(&n).Error
	return n, err
}

func (r *animalRepo) SumEstimatedProduction(ctx context.Context, farmIDs []uint) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&model.Animal{}).
		Where("farm_id IN ?", farmIDs).
		Select("COALESCE(SUM(estimated_production), 0)").
		Scan(&total).Error
	return total, err
}

func (r *animalRepo) ListWithIncidents(ctx context.Context) ([]model.Animal, error) {
	var animals []model.Animal
	err := r.db.WithContext(ctx).
		Preload("Farm").
		Where("incidents IS NOT NULL AND incidents <> ''").
		Find(&animals).Error
	if err != nil {
		return nil, err
	}
	return animals, nil
}
