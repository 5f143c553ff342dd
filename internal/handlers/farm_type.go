package handlers

import (
	"FarmKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// FarmTypeHandler serves the farm type lookup table.
type FarmTypeHandler struct {
	Service *service.FarmTypeService
	Logger  *zap.SugaredLogger
}

func NewFarmTypeHandler(s *service.FarmTypeService, logger *zap.SugaredLogger) *FarmTypeHandler {
	return &FarmTypeHandler{Service: s, Logger: logger}
}

type farmTypeRequest struct {
	Name string `json:"name"`
}

func (h *FarmTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req farmTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ft, err := h.Service.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ft)
}

func (h *FarmTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	types, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

func (h *FarmTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ft, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, ft)
}

type updateFarmTypeRequest struct {
	Name *string `json:"name"`
}

func (h *FarmTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateFarmTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ft, err := h.Service.Update(r.Context(), id, req.Name)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, ft)
}

func (h *FarmTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "farm type deleted"})
}
