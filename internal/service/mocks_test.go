package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"FarmKeeper/internal/storage"
	"context"
	"mime/multipart"

	"github.com/stretchr/testify/mock"
)

// Mocks for the repository contracts, shared by the service tests.

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockFarmRepo struct{ mock.Mock }

func (m *mockFarmRepo) Create(ctx context.Context, farm *model.Farm) (*model.Farm, error) {
	args := m.Called(ctx, farm)
	if f, ok := args.Get(0).(*model.Farm); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmRepo) List(ctx context.Context) ([]model.Farm, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Farm); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmRepo) GetByID(ctx context.Context, id uint) (*model.Farm, error) {
	args := m.Called(ctx, id)
	if f, ok := args.Get(0).(*model.Farm); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmRepo) Update(ctx context.Context, farm *model.Farm) error {
	return m.Called(ctx, farm).Error(0)
}

func (m *mockFarmRepo) DeleteWithAnimals(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.FarmRepository = (*mockFarmRepo)(nil)

type mockFarmTypeRepo struct{ mock.Mock }

func (m *mockFarmTypeRepo) Create(ctx context.Context, ft *model.FarmType) (*model.FarmType, error) {
	args := m.Called(ctx, ft)
	if v, ok := args.Get(0).(*model.FarmType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmTypeRepo) List(ctx context.Context) ([]model.FarmType, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.FarmType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmTypeRepo) GetByID(ctx context.Context, id uint) (*model.FarmType, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.FarmType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFarmTypeRepo) Update(ctx context.Context, ft *model.FarmType) error {
	return m.Called(ctx, ft).Error(0)
}

func (m *mockFarmTypeRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFarmTypeRepo) CountFarms(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.FarmTypeRepository = (*mockFarmTypeRepo)(nil)

type mockProductionTypeRepo struct{ mock.Mock }

func (m *mockProductionTypeRepo) Create(ctx context.Context, pt *model.ProductionType) (*model.ProductionType, error) {
	args := m.Called(ctx, pt)
	if v, ok := args.Get(0).(*model.ProductionType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductionTypeRepo) List(ctx context.Context) ([]model.ProductionType, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.ProductionType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductionTypeRepo) GetByID(ctx context.Context, id uint) (*model.ProductionType, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.ProductionType); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockProductionTypeRepo) Update(ctx context.Context, pt *model.ProductionType) error {
	return m.Called(ctx, pt).Error(0)
}

func (m *mockProductionTypeRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductionTypeRepo) CountFarms(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ProductionTypeRepository = (*mockProductionTypeRepo)(nil)

type mockAnimalRepo struct{ mock.Mock }

func (m *mockAnimalRepo) Create(ctx context.Context, animal *model.Animal) (*model.Animal, error) {
	args := m.Called(ctx, animal)
	if v, ok := args.Get(0).(*model.Animal); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnimalRepo) ListByFarm(ctx context.Context, farmID uint) ([]model.Animal, error) {
	args := m.Called(ctx, farmID)
	if v, ok := args.Get(0).([]model.Animal); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnimalRepo) GetByID(ctx context.Context, id uint) (*model.Animal, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Animal); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAnimalRepo) Update(ctx context.Context, animal *model.Animal) error {
	return m.Called(ctx, animal).Error(0)
}

func (m *mockAnimalRepo) Delete(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAnimalRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAnimalRepo) SumEstimatedProduction(ctx context.Context, farmIDs []uint) (float64, error) {
	args := m.Called(ctx, farmIDs)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockAnimalRepo) ListWithIncidents(ctx context.Context) ([]model.Animal, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Animal); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.AnimalRepository = (*mockAnimalRepo)(nil)

type mockImageStore struct{ mock.Mock }

func (m *mockImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	args := m.Called(file, header)
	return args.String(0), args.Error(1)
}

func (m *mockImageStore) Remove(path string) error {
	return m.Called(path).Error(0)
}

var _ storage.ImageStore = (*mockImageStore)(nil)

func strPtr(s string) *string { return &s }

func uintPtr(u uint) *uint { return &u }

func f64Ptr(f float64) *float64 { return &f }
