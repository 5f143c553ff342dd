package handlers

import (
	"FarmKeeper/internal/service"
	"FarmKeeper/internal/storage"
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// FarmHandler serves the farm CRUD routes, including multipart image uploads.
type FarmHandler struct {
	Service *service.FarmService
	Logger  *zap.SugaredLogger
}

func NewFarmHandler(s *service.FarmService, logger *zap.SugaredLogger) *FarmHandler {
	return &FarmHandler{Service: s, Logger: logger}
}

// multipartValue reports a form field only when it was actually sent,
// so partial updates can tell "absent" from "empty".
func multipartValue(r *http.Request, key string) *string {
	if r.MultipartForm == nil {
		return nil
	}
	if vs, ok := r.MultipartForm.Value[key]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}

// parseFarmForm limits the body and parses the multipart form. It writes
// the error response itself and reports false when the request is already
// handled.
func (h *FarmHandler) parseFarmForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize+1<<20)

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusBadRequest, storage.ErrImageTooLarge.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return false
	}
	return true
}

// storeFarmImage stores the uploaded image if one was sent. Callers invoke
// it only after every other field parsed, so a request rejected earlier
// never leaves a stored file behind. Writes the error response itself;
// ok=false means the request is already handled.
func (h *FarmHandler) storeFarmImage(w http.ResponseWriter, r *http.Request) (imagePath *string, ok bool) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		writeError(w, http.StatusBadRequest, "invalid image upload")
		return nil, false
	}
	defer file.Close()

	path, err := h.Service.StoreImage(file, header)
	if err != nil {
		if errors.Is(err, storage.ErrImageTooLarge) || errors.Is(err, storage.ErrUnsupportedImage) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			h.Logger.Errorw("failed to store image", "error", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return nil, false
	}
	return &path, true
}

// uintField parses a numeric form field; empty or absent yields zero.
func uintField(r *http.Request, key string) (uint, error) {
	v := r.FormValue(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(n), nil
}

func (h *FarmHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.parseFarmForm(w, r) {
		return
	}

	farmTypeID, err := uintField(r, "farm_type_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid farm_type_id")
		return
	}
	productionTypeID, err := uintField(r, "production_type_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid production_type_id")
		return
	}

	imagePath, ok := h.storeFarmImage(w, r)
	if !ok {
		return
	}

	farm, err := h.Service.Create(r.Context(), service.CreateFarmInput{
		Name:             r.FormValue("name"),
		FarmTypeID:       farmTypeID,
		ProductionTypeID: productionTypeID,
		Provincia:        multipartValue(r, "provincia"),
		Municipio:        multipartValue(r, "municipio"),
		ImagePath:        imagePath,
	})
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"message": "farm created",
		"farm":    farm,
	})
}

func (h *FarmHandler) List(w http.ResponseWriter, r *http.Request) {
	farms, err := h.Service.List(r.Context())
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, farms)
}

func (h *FarmHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	farm, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}
	writeJSON(w, http.StatusOK, farm)
}

func (h *FarmHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if !h.parseFarmForm(w, r) {
		return
	}

	in := service.UpdateFarmInput{
		Name:      multipartValue(r, "name"),
		Provincia: multipartValue(r, "provincia"),
		Municipio: multipartValue(r, "municipio"),
	}

	if v := multipartValue(r, "farm_type_id"); v != nil {
		n, err := strconv.ParseUint(*v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid farm_type_id")
			return
		}
		ftID := uint(n)
		in.FarmTypeID = &ftID
	}
	if v := multipartValue(r, "production_type_id"); v != nil {
		n, err := strconv.ParseUint(*v, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid production_type_id")
			return
		}
		ptID := uint(n)
		in.ProductionTypeID = &ptID
	}

	imagePath, ok := h.storeFarmImage(w, r)
	if !ok {
		return
	}
	in.ImagePath = imagePath

	farm, err := h.Service.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "farm updated",
		"farm":    farm,
	})
}

func (h *FarmHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		writeServiceError(h.Logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "farm deleted"})
}
