package rider_approve_post

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

	var approveDTO dto.RiderApproveRequest
	err := json.NewDecoder(r.Body).Decode(&approveDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	decision := entities.ApprovalStatusType(approveDTO.Decision)

	riderEntity, err := h.service.DecideApproval(r.Context(), actor, approveDTO.RiderID, decision)
	if err != nil {
		switch {
		case errors.Is(err, rider.ErrInvalidRiderID),
			errors.Is(err, rider.ErrInvalidDecision):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, rider.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, rider.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, rider.ErrAlreadyDecided):
			w.WriteHeader(http.StatusConflict)
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
