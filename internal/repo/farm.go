package repo

import (
	"FarmKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// FarmRepository is the access contract for Farm rows.
type FarmRepository interface {
	Create(ctx context.Context, farm *model.Farm) (*model.Farm, error)

	// List returns all farms with FarmType and ProductionType preloaded.
	List(ctx context.Context) ([]model.Farm, error)

	// GetByID returns the farm with FarmType and ProductionType preloaded.
	GetByID(ctx context.Context, id uint) (*model.Farm, error)

	Update(ctx context.Context, farm *model.Farm) error

	// DeleteWithAnimals removes the farm and every animal referencing it
	// in one transaction, animals first.
	DeleteWithAnimals(ctx context.Context, id uint) error
}

type farmRepo struct {
	db *gorm.DB
}

// NewFarmRepository creates the GORM-backed farm repository.
func NewFarmRepository(db *gorm.DB) FarmRepository {
	return &farmRepo{db: db}
}

func (r *farmRepo) Create(ctx context.Context, farm *model.Farm) (*model.Farm, error) {
	if err := r.db.WithContext(ctx).Create(farm).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, farm.ID)
}

func (r *farmRepo) List(ctx context.Context) ([]model.Farm, error) {
	var farms []model.Farm
	err := r.db.WithContext(ctx).
		Preload("FarmType").
		Preload("ProductionType").
		Find(&farms).Error
	if err != nil {
		return nil, err
	}
	return farms, nil
}

func (r *farmRepo) GetByID(ctx context.Context, id uint) (*model.Farm, error) {
	var farm model.Farm
	err := r.db.WithContext(ctx).
		Preload("FarmType").
		Preload("ProductionType").
		First(&farm, id).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *farmRepo) Update(ctx context.Context, farm *model.Farm) error {
	// Save only the farm columns; preloaded associations stay untouched.
	return r.db.WithContext(ctx).Omit("FarmType", "ProductionType").Save(farm).Error
}

func (r *farmRepo) DeleteWithAnimals(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("farm_id = ?", id).Delete(&model.Animal{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Farm{}, id).Error
	})
}
