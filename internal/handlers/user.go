package handlers

import (
	"FarmKeeper/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler serves registration, login and account management.
type UserHandler struct {
	Service *service.UserService
	Logger  *zap.SugaredLogger
}

func NewUserHandler(s *service.UserService, logger *zap.SugaredLogger) *UserHandler {
	return &UserHandler{Service: s, Logger: logger}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Register(r.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "user registered",
		"user":    user,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, user, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

type updateUserRequest struct {
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Service.Update(r.Context(), id, req.Email, req.Role)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "user updated",
		"user":    user,
	})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted"})
}
