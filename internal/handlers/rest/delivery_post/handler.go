package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
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

	var createDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	weightClass := entities.WeightClassType(createDTO.PackageWeight)
	paymentMethod := entities.PaymentMethodType(createDTO.PaymentMethod)

	deliveryModify := entities.DeliveryModify{
		PickupAddress:  &createDTO.PickupAddress,
		PickupLat:      &createDTO.PickupLat,
		PickupLng:      &createDTO.PickupLng,
		DropoffAddress: &createDTO.DropoffAddress,
		DropoffLat:     &createDTO.DropoffLat,
		DropoffLng:     &createDTO.DropoffLng,
		PackageDetails: &createDTO.PackageDetails,
		PackageWeight:  &weightClass,
		RecipientName:  &createDTO.RecipientName,
		RecipientPhone: &createDTO.RecipientPhone,
		DeliveryTypeID: createDTO.DeliveryTypeID,
		PaymentMethod:  &paymentMethod,
		Notes:          createDTO.Notes,
	}

	deliveryEntity, err := h.service.Book(r.Context(), actor, deliveryModify)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidCoordinates),
			errors.Is(err, delivery.ErrInvalidWeightClass),
			errors.Is(err, delivery.ErrInvalidPaymentMethod):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrPermissionDenied):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := convert.ToDelivery(deliveryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
