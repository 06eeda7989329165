package rider_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/convert"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/rider"
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
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var createDTO dto.RiderCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleType := entities.VehicleType(createDTO.VehicleType)

	riderModify := entities.RiderModify{
		VehicleType:   &vehicleType,
		VehicleNumber: &createDTO.VehicleNumber,
		DriverLicense: &createDTO.DriverLicense,
		BankAccount:   createDTO.BankAccount,
	}

	riderEntity, err := h.service.RegisterRider(r.Context(), actor, riderModify)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrMissingRequiredFields),
			errors.Is(err, rider.ErrInvalidVehicleType):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, rider.ErrRiderAlreadyRegistered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToRider(riderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
