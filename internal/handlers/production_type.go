package handlers

import (
	"FarmKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ProductionTypeHandler serves the production type lookup table.
type ProductionTypeHandler struct {
	Service *service.ProductionTypeService
	Logger  *zap.SugaredLogger
}

func NewProductionTypeHandler(s *service.ProductionTypeService, logger *zap.SugaredLogger) *ProductionTypeHandler {
	return &ProductionTypeHandler{Service: s, Logger: logger}
}

type productionTypeRequest struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
}

func (h *ProductionTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req productionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pt, err := h.Service.Create(r.Context(), req.Name, req.Kind)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, pt)
}

func (h *ProductionTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *ProductionTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	pt, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, pt)
}

type updateProductionTypeRequest struct {
	Name *string `json:"name"`
	Kind *string `json:"kind"`
}

func (h *ProductionTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateProductionTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pt, err := h.Service.Update(r.Context(), id, req.Name, req.Kind)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, pt)
}

func (h *ProductionTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "production type deleted"})
}
