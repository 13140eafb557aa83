package price_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	priceRental "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/price_rental"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgInvalidInput        = "некорректные параметры расчета"
	msgInvalidDuration     = "некорректная длительность аренды"
	msgInvalidQuantity     = "некорректное количество единиц"
	msgResourceNotFound    = "ресурс не найден"
	msgResourceNotRentable = "у ресурса нет тарифной карты"
)

type Handler struct {
	useCase PriceRentalUseCase
	logger  Logger
}

func NewHandler(useCase PriceRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req PriceRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals/price - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, priceRental.ErrResourceNotFound):
			h.logger.Warn("POST /rentals/price - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, priceRental.ErrResourceNotRentable):
			h.logger.Warn("POST /rentals/price - Resource not rentable: %v", err)
			handlers.RespondBadRequest(w, msgResourceNotRentable)

		case errors.Is(err, priceRental.ErrInvalidDuration):
			h.logger.Warn("POST /rentals/price - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, priceRental.ErrInvalidQuantity):
			h.logger.Warn("POST /rentals/price - Invalid quantity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, priceRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals/price - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rentals/price - Failed to price rental: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals/price - Rental priced: items=%d, grand_total=%.2f",
		len(req.Items), result.GrandTotal)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
