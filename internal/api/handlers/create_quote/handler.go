package create_quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/middleware"
	createQuote "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/create_quote"
)

const (
	msgInvalidBody         = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные параметры заявки"
	msgWindowInPast        = "окно аренды целиком в прошлом"
	msgInvalidDuration     = "некорректная длительность аренды"
	msgInvalidQuantity     = "некорректное количество единиц"
	msgResourceNotFound    = "ресурс не найден"
	msgResourceNotRentable = "у ресурса нет тарифной карты"
	msgBlockingConflicts   = "заявка не может быть выполнена: недостаточно свободных ресурсов"
)

type Handler struct {
	useCase CreateQuoteUseCase
	logger  Logger
}

func NewHandler(useCase CreateQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /quotes - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateQuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createQuote.ErrBlockingConflicts):
			h.logger.Warn("POST /quotes - Blocking conflicts: user_id=%d", userID)
			resp := ConflictsResponse{Message: msgBlockingConflicts}
			if result != nil {
				resp.Conflicts = fromDomainConflicts(result.Conflicts)
			}
			handlers.RespondJSON(w, http.StatusConflict, resp)

		case errors.Is(err, createQuote.ErrResourceNotFound):
			h.logger.Warn("POST /quotes - Resource not found: %v", err)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createQuote.ErrResourceNotRentable):
			h.logger.Warn("POST /quotes - Resource not rentable: %v", err)
			handlers.RespondBadRequest(w, msgResourceNotRentable)

		case errors.Is(err, createQuote.ErrWindowInPast):
			h.logger.Warn("POST /quotes - Window in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgWindowInPast)

		case errors.Is(err, createQuote.ErrInvalidDuration):
			h.logger.Warn("POST /quotes - Invalid duration: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createQuote.ErrInvalidQuantity):
			h.logger.Warn("POST /quotes - Invalid quantity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, createQuote.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /quotes - Failed to create quote: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote created: public_id=%s, user_id=%d, grand_total=%.2f",
		result.Quote.PublicID, userID, result.Quote.GrandTotal)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
