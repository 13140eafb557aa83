package check_booking

import (
	"context"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	// List получает список ресурсов по фильтру
	List(ctx context.Context, filter resource.Filter) ([]*domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
