package delivery_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/generated/dto"
	"dispatch/internal/handlers/rest/convert"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/delivery"
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

	var acceptDTO dto.DeliveryAcceptRequest
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntity, err := h.service.Accept(r.Context(), actor, acceptDTO.DeliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrPermissionDenied),
			errors.Is(err, delivery.ErrRiderNotApproved),
			errors.Is(err, delivery.ErrRiderUnavailable):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrAlreadyClaimed):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToDelivery(deliveryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
