package update_resource_rules

import (
	"context"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/resources/models"
)

type ResourceService interface {
	ReplaceRules(ctx context.Context, resourceID int64, req *models.UpdateRulesRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
