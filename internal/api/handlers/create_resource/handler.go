package create_resource

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidRule     = "некорректное правило доступности"
	msgInvalidRateCard = "некорректная тарифная карта"
	msgTooManyRules    = "превышен лимит правил доступности"
	msgInvalidInput    = "некорректные данные ресурса"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /resources - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidRule):
			h.logger.Warn("POST /resources - Invalid rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, resources.ErrInvalidRateCard):
			h.logger.Warn("POST /resources - Invalid rate card: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRateCard)

		case errors.Is(err, resources.ErrTooManyRules):
			h.logger.Warn("POST /resources - Too many rules: %v", err)
			handlers.RespondBadRequest(w, msgTooManyRules)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources - Failed to create resource: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created: resource_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
