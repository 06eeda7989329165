package promote_admin_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/handlers/rest/convert"
	"dispatch/internal/service/profile"
	"dispatch/pkg/logger"
)

type promoteAdminRequest struct {
	Email  string `json:"email"`
	Secret string `json:"secret"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var promoteDTO promoteAdminRequest
	err := json.NewDecoder(r.Body).Decode(&promoteDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	profileEntity, err := h.service.PromoteAdmin(r.Context(), promoteDTO.Email, promoteDTO.Secret)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrInvalidSecret):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, profile.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToProfile(profileEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
