package notification_read_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/generated/dto"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/notification"
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

	notificationID := mux.Vars(r)["id"]

	notificationEntity, err := h.service.MarkRead(r.Context(), actor, notificationID)
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, notification.ErrNotificationNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Notification{
		ID:        notificationEntity.ID,
		UserID:    notificationEntity.UserID,
		Title:     notificationEntity.Title,
		Message:   notificationEntity.Message,
		Type:      notificationEntity.Type,
		IsRead:    notificationEntity.IsRead,
		CreatedAt: notificationEntity.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
