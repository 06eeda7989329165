package rider_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch/internal/entities"
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

// ServeHTTP отдаёт анкету исполнителя: "me" резолвится в собственную
// анкету, чужие анкеты по идентификатору видит только администратор.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	riderID := mux.Vars(r)["id"]

	var (
		riderEntity *entities.Rider
		err         error
	)
	switch {
	case riderID == "me":
		riderEntity, err = h.service.GetRiderByUser(r.Context(), actor.ProfileID)
	case actor.IsAdmin():
		riderEntity, err = h.service.GetRider(r.Context(), riderID)
	default:
		w.WriteHeader(http.StatusForbidden)
		return
	}

	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
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
