package update_resource_rules

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources/models"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgInvalidBody       = "некорректное тело запроса"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgNotFound          = "ресурс не найден"
	msgInvalidRule       = "некорректное правило доступности"
	msgTooManyRules      = "превышен лимит правил доступности"
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

// Handle PUT /api/v1/resources/{resourceId}/rules
// Целиком заменяет набор правил доступности ресурса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /resources/{id}/rules - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /resources/{id}/rules - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /resources/{id}/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}
	req.UserID = userID

	result, err := h.service.ReplaceRules(r.Context(), resourceID, &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrResourceNotFound):
			h.logger.Warn("PUT /resources/{id}/rules - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, resources.ErrInvalidRule):
			h.logger.Warn("PUT /resources/{id}/rules - Invalid rule: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRule)

		case errors.Is(err, resources.ErrTooManyRules):
			h.logger.Warn("PUT /resources/{id}/rules - Too many rules: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgTooManyRules)

		default:
			h.logger.Error("PUT /resources/{id}/rules - Failed to replace rules: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /resources/{id}/rules - Rules replaced: resource_id=%d, user_id=%d, rules=%d",
		resourceID, userID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
