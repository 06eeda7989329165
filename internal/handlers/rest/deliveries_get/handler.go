package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
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

	var status *entities.DeliveryStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		statusValue := entities.DeliveryStatusType(raw)
		status = &statusValue
	}

	deliveries, err := h.service.GetDeliveries(r.Context(), actor, status)
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
