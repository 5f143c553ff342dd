package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"FarmKeeper/internal/storage"
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"
)

// FarmService owns the farm lifecycle, including the stored image file
// that travels with the row.
type FarmService struct {
	farms     repo.FarmRepository
	farmTypes repo.FarmTypeRepository
	prodTypes repo.ProductionTypeRepository
	images    storage.ImageStore
}

func NewFarmService(
	farms repo.FarmRepository,
	farmTypes repo.FarmTypeRepository,
	prodTypes repo.ProductionTypeRepository,
	images storage.ImageStore,
) *FarmService {
	return &FarmService{farms: farms, farmTypes: farmTypes, prodTypes: prodTypes, images: images}
}

// CreateFarmInput carries the farm creation fields. ImagePath points at
// an already stored upload; the service deletes it again if validation fails.
type CreateFarmInput struct {
	Name             string
	FarmTypeID       uint
	ProductionTypeID uint
	Provincia        *string
	Municipio        *string
	ImagePath        *string
}

// UpdateFarmInput carries partial farm updates; nil means "leave as is".
type UpdateFarmInput struct {
	Name             *string
	FarmTypeID       *uint
	ProductionTypeID *uint
	Provincia        *string
	Municipio        *string
	ImagePath        *string
}

// StoreImage validates and stores an uploaded farm image, returning its
// public path. The caller hands the path to Create or Update, which own
// the cleanup on validation failure.
func (s *FarmService) StoreImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	return s.images.Save(file, header)
}

// discardImage removes an uploaded file after a failed validation.
func (s *FarmService) discardImage(path *string) {
	if path != nil {
		_ = s.images.Remove(*path)
	}
}

// Create validates the required fields and both type references before
// persisting. On any validation failure an already uploaded image is
// removed again.
func (s *FarmService) Create(ctx context.Context, in CreateFarmInput) (*model.Farm, error) {
	if in.Name == "" {
		s.discardImage(in.ImagePath)
		return nil, &MissingFieldError{Field: "name"}
	}
	if in.FarmTypeID == 0 {
		s.discardImage(in.ImagePath)
		return nil, &MissingFieldError{Field: "farm_type_id"}
	}
	if in.ProductionTypeID == 0 {
		s.discardImage(in.ImagePath)
		return nil, &MissingFieldError{Field: "production_type_id"}
	}

	if err := s.resolveFarmType(ctx, in.FarmTypeID); err != nil {
		s.discardImage(in.ImagePath)
		return nil, err
	}
	if err := s.resolveProductionType(ctx, in.ProductionTypeID); err != nil {
		s.discardImage(in.ImagePath)
		return nil, err
	}

	return s.farms.Create(ctx, &model.Farm{
		Name:             in.Name,
		FarmTypeID:       in.FarmTypeID,
		ProductionTypeID: in.ProductionTypeID,
		Provincia:        in.Provincia,
		Municipio:        in.Municipio,
		Image:            in.ImagePath,
	})
}

func (s *FarmService) List(ctx context.Context) ([]model.Farm, error) {
	return s.farms.List(ctx)
}

func (s *FarmService) GetByID(ctx context.Context, id uint) (*model.Farm, error) {
	farm, err := s.farms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return farm, nil
}

// Update applies only the supplied fields. A replacement image deletes
// the previously stored file before the new path is persisted.
func (s *FarmService) Update(ctx context.Context, id uint, in UpdateFarmInput) (*model.Farm, error) {
	farm, err := s.GetByID(ctx, id)
	if err != nil {
		s.discardImage(in.ImagePath)
		return nil, err
	}

	if in.FarmTypeID != nil {
		if err := s.resolveFarmType(ctx, *in.FarmTypeID); err != nil {
			s.discardImage(in.ImagePath)
			return nil, err
		}
		farm.FarmTypeID = *in.FarmTypeID
	}
	if in.ProductionTypeID != nil {
		if err := s.resolveProductionType(ctx, *in.ProductionTypeID); err != nil {
			s.discardImage(in.ImagePath)
			return nil, err
		}
		farm.ProductionTypeID = *in.ProductionTypeID
	}

	if in.Name != nil {
		farm.Name = *in.Name
	}
	if in.Provincia != nil {
		farm.Provincia = in.Provincia
	}
	if in.Municipio != nil {
		farm.Municipio = in.Municipio
	}
	if in.ImagePath != nil {
		if farm.Image != nil {
			_ = s.images.Remove(*farm.Image)
		}
		farm.Image = in.ImagePath
	}

	if err := s.farms.Update(ctx, farm); err != nil {
		return nil, err
	}
	return s.farms.GetByID(ctx, id)
}

// Delete removes the stored image file, then the farm's animals and the
// farm row itself, animals first, in one transaction.
func (s *FarmService) Delete(ctx context.Context, id uint) error {
	farm, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if farm.Image != nil {
		_ = s.images.Remove(*farm.Image)
	}
	return s.farms.DeleteWithAnimals(ctx, id)
}

func (s *FarmService) resolveFarmType(ctx context.Context, id uint) error {
	if _, err := s.farmTypes.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &InvalidReferenceError{Entity: "farm type", ID: id}
		}
		return err
	}
	return nil
}

func (s *FarmService) resolveProductionType(ctx context.Context, id uint) error {
	if _, err := s.prodTypes.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &InvalidReferenceError{Entity: "production type", ID: id}
		}
		return err
	}
	return nil
}
