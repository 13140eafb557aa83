package list_resources

import (
	"errors"
	"net/http"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources/models"
)

const (
	msgInvalidFilter = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/resources
// Query params: kind (optional), category (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListResourcesRequest{}

	if kind := r.URL.Query().Get("kind"); kind != "" {
		req.Kind = &kind
	}
	if category := r.URL.Query().Get("category"); category != "" {
		req.Category = &category
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("GET /resources - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /resources - Failed to list resources: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources - Resources listed: count=%d", len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
