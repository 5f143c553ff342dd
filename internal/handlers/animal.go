package handlers

import (
	"FarmKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// AnimalHandler serves the animal CRUD routes.
type AnimalHandler struct {
	Service *service.AnimalService
	Logger  *zap.SugaredLogger
}

func NewAnimalHandler(s *service.AnimalService, logger *zap.SugaredLogger) *AnimalHandler {
	return &AnimalHandler{Service: s, Logger: logger}
}

type createAnimalRequest struct {
	FarmID               uint     `json:"farm_id"`
	AnimalType           string   `json:"animal_type"`
	IdentificationNumber *string  `json:"identification_number"`
	Weight               *float64 `json:"weight"`
	EstimatedProduction  *float64 `json:"estimated_production"`
	SanitaryRegister     *string  `json:"sanitary_register"`
	Age                  *int     `json:"age"`
	Incidents            *string  `json:"incidents"`
}

func (h *AnimalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animal, err := h.Service.Create(r.Context(), service.CreateAnimalInput{
		FarmID:               req.FarmID,
		AnimalType:           req.AnimalType,
		IdentificationNumber: req.IdentificationNumber,
		Weight:               req.Weight,
		EstimatedProduction:  req.EstimatedProduction,
		SanitaryRegister:     req.SanitaryRegister,
		Age:                  req.Age,
		Incidents:            req.Incidents,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "animal created",
		"animal":  animal,
	})
}

func (h *AnimalHandler) ListByFarm(w http.ResponseWriter, r *http.Request) {
	farmID, err := idParam(r, "farmId")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid farm id")
		return
	}

	animals, err := h.Service.ListByFarm(r.Context(), farmID)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, animals)
}

func (h *AnimalHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	animal, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, animal)
}

type updateAnimalRequest struct {
	FarmID               *uint    `json:"farm_id"`
	AnimalType           *string  `json:"animal_type"`
	IdentificationNumber *string  `json:"identification_number"`
	Weight               *float64 `json:"weight"`
	EstimatedProduction  *float64 `json:"estimated_production"`
	SanitaryRegister     *string  `json:"sanitary_register"`
	Age                  *int     `json:"age"`
	Incidents            *string  `json:"incidents"`
}

func (h *AnimalHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateAnimalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	animal, err := h.Service.Update(r.Context(), id, service.UpdateAnimalInput{
		FarmID:               req.FarmID,
		AnimalType:           req.AnimalType,
		IdentificationNumber: req.IdentificationNumber,
		Weight:               req.Weight,
		EstimatedProduction:  req.EstimatedProduction,
		SanitaryRegister:     req.SanitaryRegister,
		Age:                  req.Age,
		Incidents:            req.Incidents,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "animal updated",
		"animal":  animal,
	})
}

func (h *AnimalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "animal deleted"})
}
