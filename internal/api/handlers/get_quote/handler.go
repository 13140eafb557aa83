package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/quotes"
)

const (
	msgInvalidQuoteID = "некорректный ID расценки"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNotFound       = "расценка не найдена"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service QuoteService
	logger  Logger
}

func NewHandler(service QuoteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/quotes/{quoteId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	quoteID := vars["quoteId"]
	if quoteID == "" {
		h.logger.Warn("GET /quotes/{id} - Missing quote ID")
		handlers.RespondBadRequest(w, msgInvalidQuoteID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /quotes/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем расценку (сервис сам проверит права доступа)
	result, err := h.service.GetByPublicID(r.Context(), quoteID, userID)
	if err != nil {
		switch {
		case errors.Is(err, quotes.ErrQuoteNotFound):
			h.logger.Warn("GET /quotes/{id} - Quote not found: quote_id=%s", quoteID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, quotes.ErrAccessDenied):
			h.logger.Warn("GET /quotes/{id} - Access denied: quote_id=%s, user_id=%d", quoteID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, quotes.ErrInvalidInput):
			h.logger.Warn("GET /quotes/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuoteID)

		default:
			h.logger.Error("GET /quotes/{id} - Failed to get quote: quote_id=%s, error=%v", quoteID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /quotes/{id} - Quote retrieved: quote_id=%s, user_id=%d", quoteID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
