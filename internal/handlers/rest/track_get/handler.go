package track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/handlers/rest/convert"
	"dispatch/internal/service/delivery"
	"dispatch/pkg/logger"
)

// Handler — публичный трекинг без авторизации, наружу уходит
// только безопасная проекция доставки.
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
	trackingNumber := mux.Vars(r)["number"]

	track, err := h.service.TrackByNumber(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidTrackingNumber):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToTrackResponse(track)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
