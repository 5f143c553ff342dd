package repo

import (
	"FarmKeeper/internal/model"
	"context"

	"gorm.io/gorm"
)

// FarmTypeRepository is the access contract for FarmType rows.
type FarmTypeRepository interface {
	Create(ctx context.Context, ft *model.FarmType) (*model.FarmType, error)
	List(ctx context.Context) ([]model.FarmType, error)
	GetByID(ctx context.Context, id uint) (*model.FarmType, error)
	Update(ctx context.Context, ft *model.FarmType) error
	Delete(ctx context.Context, id uint) error

	// CountFarms reports how many farms reference the type. Used to
	// enforce the no-delete-while-referenced policy.
	CountFarms(ctx context.Context, id uint) (int64, error)
}

type farmTypeRepo struct {
	db *gorm.DB
}

// NewFarmTypeRepository creates the GORM-backed farm type repository.
func NewFarmTypeRepository(db *gorm.DB) FarmTypeRepository {
	return &farmTypeRepo{db: db}
}

func (r *farmTypeRepo) Create(ctx context.Context, ft *model.FarmType) (*model.FarmType, error) {
	if err := r.db.WithContext(ctx).Create(ft).Error; err != nil {
		return nil, err
	}
	return ft, nil
}

func (r *farmTypeRepo) List(ctx context.Context) ([]model.FarmType, error) {
	var types []model.FarmType
	if err := r.db.WithContext(ctx).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *farmTypeRepo) GetByID(ctx context.Context, id uint) (*model.FarmType, error) {
	var ft model.FarmType
	if err := r.db.WithContext(ctx).First(&ft, id).Error; err != nil {
		return nil, err
	}
	return &ft, nil
}

func (r *farmTypeRepo) Update(ctx context.Context, ft *model.FarmType) error {
	return r.db.WithContext(ctx).Save(ft).Error
}

func (r *farmTypeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.FarmType{}, id).Error
}

func (r *farmTypeRepo) CountFarms(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Farm{}).Where("farm_type_id = ?", id).Count(&n).Error
	return n, err
}
