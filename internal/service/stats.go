package service

import (
	"FarmKeeper/internal/model"
	"FarmKeeper/internal/repo"
	"context"
)

// DashboardStats is the aggregate view over the whole operation.
type DashboardStats struct {
	TotalAnimals         int64            `json:"total_animals"`
	TotalCarneProduction float64          `json:"total_carne_production"`
	TotalLecheProduction float64          `json:"total_leche_production"`
	AnimalsWithIncidents []IncidentAnimal `json:"animals_with_incidents"`
}

// IncidentAnimal is an incident-flagged animal together with its farm name.
type IncidentAnimal struct {
	ID                   uint    `json:"id"`
	AnimalType           string  `json:"animal_type"`
	IdentificationNumber *string `json:"identification_number"`
	Incidents            string  `json:"incidents"`
	FarmName             string  `json:"farm_name"`
}

// StatsService composes the read-only dashboard aggregation.
type StatsService struct {
	animals repo.AnimalRepository
	farms   repo.FarmRepository
}

func NewStatsService(animals repo.AnimalRepository, farms repo.FarmRepository) *StatsService {
	return &StatsService{animals: animals, farms: farms}
}

// GetStats counts all animals, sums estimated production per production
// kind and collects incident-flagged animals. Farms are partitioned by
// the production type's stable kind, not its display name; a kind with
// no farms yields zero, never an error.
func (s *StatsService) GetStats(ctx context.Context) (*DashboardStats, error) {
	total, err := s.animals.Count(ctx)
	if err != nil {
		return nil, err
	}

	farms, err := s.farms.List(ctx)
	if err != nil {
		return nil, err
	}

	var meatFarms, dairyFarms []uint
	for _, f := range farms {
		if f.ProductionType == nil {
			continue
		}
		switch f.ProductionType.Kind {
		case model.ProductionKindMeat:
			meatFarms = append(meatFarms, f.ID)
		case model.ProductionKindDairy:
			dairyFarms = append(dairyFarms, f.ID)
		}
	}

	carne, err := s.sumProduction(ctx, meatFarms)
	if err != nil {
		return nil, err
	}
	leche, err := s.sumProduction(ctx, dairyFarms)
	if err != nil {
		return nil, err
	}

	flagged, err := s.animals.ListWithIncidents(ctx)
	if err != nil {
		return nil, err
	}
	incidents := make([]IncidentAnimal, 0, len(flagged))
	for _, a := range flagged {
		ia := IncidentAnimal{
			ID:                   a.ID,
			AnimalType:           a.AnimalType,
			IdentificationNumber: a.IdentificationNumber,
		}
		if a.Incidents != nil {
			ia.Incidents = *a.Incidents
		}
		if a.Farm != nil {
			ia.FarmName = a.Farm.Name
		}
		incidents = append(incidents, ia)
	}

	return &DashboardStats{
		TotalAnimals:         total,
		TotalCarneProduction: carne,
		TotalLecheProduction: leche,
		AnimalsWithIncidents: incidents,
	}, nil
}

// sumProduction short-circuits the empty farm set: an empty IN-list must
// never reach the store, where its behavior would be dialect-dependent.
func (s *StatsService) sumProduction(ctx context.Context, farmIDs []uint) (float64, error) {
	if len(farmIDs) == 0 {
		return 0, nil
	}
	return s.animals.SumEstimatedProduction(ctx, farmIDs)
}
