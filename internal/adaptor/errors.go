package adaptor

import (
	"errors"
	"net/http"

	"bus-reservation/internal/data/entity"
	"bus-reservation/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps domain outcomes onto HTTP statuses. Anything
// unrecognized is a store failure and stays an opaque 500.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var amountErr *entity.AmountMismatchError

	switch {
	case errors.Is(err, entity.ErrBusNotFound),
		errors.Is(err, entity.ErrSeatNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatAlreadyBooked),
		errors.Is(err, entity.ErrDuplicatePayment):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &amountErr):
		log.Warn(operation+" failed - amount mismatch", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidCredentials),
		errors.Is(err, entity.ErrUnauthorized):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
