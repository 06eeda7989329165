package delivery_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/delivery"
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

	deliveryID := mux.Vars(r)["id"]

	err := h.service.DeleteDelivery(r.Context(), actor, deliveryID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
