package repo

import (
	"FarmKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// ProductionTypeRepository is the access contract for ProductionType rows.
type ProductionTypeRepository interface {
	Create(ctx context.Context, pt *model.ProductionType) (*model.ProductionType, error)
	List(ctx context.Context) ([]model.ProductionType, error)
	GetByID(ctx context.Context, id uint) (*model.ProductionType, error)
	Update(ctx context.Context, pt *model.ProductionType) error
	Delete(ctx context.Context, id uint) error
	CountFarms(ctx context.Context, id uint) (int64, error)
}

type productionTypeRepo struct {
	db *gorm.DB
}

// NewProductionTypeRepository creates the GORM-backed production type repository.
func NewProductionTypeRepository(db *gorm.DB) ProductionTypeRepository {
	return &productionTypeRepo{db: db}
}

func (r *productionTypeRepo) Create(ctx context.Context, pt *model.ProductionType) (*model.ProductionType, error) {
	if err := r.db.WithContext(ctx).Create(pt).Error; err != nil {
		return nil, err
	}
	return pt, nil
}

func (r *productionTypeRepo) List(ctx context.Context) ([]model.ProductionType, error) {
	var types []model.ProductionType
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *productionTypeRepo) GetByID(ctx context.Context, id uint) (*model.ProductionType, error) {
	var pt model.ProductionType
	if err := r.db.WithContext(ctx).First(&pt, id).Error; err != nil {
		return nil, err
	}
	return &pt, nil
}

func (r *productionTypeRepo) Update(ctx context.Context, pt *model.ProductionType) error {
	return r.db.WithContext(ctx).Save(pt).Error
}

func (r *productionTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.ProductionType{}, id).Error
}

func (r *productionTypeRepo) CountFarms(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Farm{}).Where("production_type_id = ?", id).Count(&n).Error
	return n, err
}
