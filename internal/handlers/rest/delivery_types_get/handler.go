package delivery_types_get

import (
	"encoding/json"
	"net/http"

	"dispatch/internal/handlers/rest/convert"
	"dispatch/pkg/logger"
)

// Handler — публичный каталог тарифов: клиент выбирает тип доставки
// перед бронированием, авторизация не нужна.
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
	deliveryTypes, err := h.service.GetDeliveryTypes(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := convert.ToDeliveryTypeList(deliveryTypes)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
