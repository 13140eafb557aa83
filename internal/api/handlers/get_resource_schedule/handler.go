package get_resource_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	resolveSchedule "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/resolve_schedule"
)

const (
	msgInvalidResourceID = "некорректный ID ресурса"
	msgMissingWindow     = "параметры from и to обязательны"
	msgInvalidWindow     = "некорректный формат окна, ожидается RFC3339 или YYYY-MM-DD"
	msgWindowTooLarge    = "запрошенное окно слишком велико"
	msgResourceNotFound  = "ресурс не найден"
)

type Handler struct {
	useCase ResolveScheduleUseCase
	logger  Logger
}

func NewHandler(useCase ResolveScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/schedule
// Query params: from (required), to (required)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем resourceId из URL
	resourceIDStr := vars["resourceId"]
	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/schedule - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Извлекаем окно из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /resources/{id}/schedule - Missing window params: resource_id=%d", resourceID)
		handlers.RespondBadRequest(w, msgMissingWindow)
		return
	}

	useCaseReq, err := ToUseCaseRequest(resourceID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/schedule - Invalid window format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSchedule.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/schedule - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, resolveSchedule.ErrWindowTooLarge):
			h.logger.Warn("GET /resources/{id}/schedule - Window too large: resource_id=%d", resourceID)
			handlers.RespondBadRequest(w, msgWindowTooLarge)

		case errors.Is(err, resolveSchedule.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		default:
			h.logger.Error("GET /resources/{id}/schedule - Failed to resolve schedule: resource_id=%d, error=%v", resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/schedule - Schedule resolved: resource_id=%d, intervals=%d",
		resourceID, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
