package create_quote

import (
	"context"
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/integrations/catalogservice"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	// GetByID получает ресурс с правилами и тарифной картой
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
	// List получает список ресурсов по фильтру
	List(ctx context.Context, filter resource.Filter) ([]*domain.Resource, error)
}

// QuoteRepository интерфейс репозитория сохраненных расценок
type QuoteRepository interface {
	// Create сохраняет расценку вместе со строками
	Create(ctx context.Context, quote *domain.StoredQuote) (*domain.StoredQuote, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, resourceID int64) (*catalogservice.Profile, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
