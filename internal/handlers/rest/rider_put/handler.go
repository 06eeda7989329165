package rider_put

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

	var updateDTO dto.RiderUpdate
	err := json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderModify := entities.RiderModify{
		VehicleNumber: updateDTO.VehicleNumber,
		DriverLicense: updateDTO.DriverLicense,
		BankAccount:   updateDTO.BankAccount,
		IsAvailable:   updateDTO.IsAvailable,
		CurrentLat:    updateDTO.CurrentLat,
		CurrentLng:    updateDTO.CurrentLng,
	}
	if updateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*updateDTO.VehicleType)
		riderModify.VehicleType = &vehicleType
	}

	riderEntity, err := h.service.UpdateRider(r.Context(), actor, riderModify)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidVehicleType),
			errors.Is(err, rider.ErrInvalidCoordinates),
			errors.Is(err, rider.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToRider(riderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
