package deliveries_available_get

import (
	"encoding/json"
	"errors"
	"net/http"

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

	deliveries, err := h.service.GetAvailableDeliveries(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToDeliveryList(deliveries)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
