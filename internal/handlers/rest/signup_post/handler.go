package signup_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/convert"
	"dispatch/internal/service/profile"
	"dispatch/pkg/logger"
)

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
	var signupDTO dto.SignupRequest
	err := json.NewDecoder(r.Body).Decode(&signupDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	input := profile.SignupInput{
		Email:    signupDTO.Email,
		Password: signupDTO.Password,
		FullName: signupDTO.FullName,
		Phone:    signupDTO.Phone,
		Role:     entities.RoleType(signupDTO.Role),
	}

	profileEntity, err := h.service.Signup(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, profile.ErrInvalidInput),
			errors.Is(err, profile.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profile.ErrEmailTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToProfile(profileEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
