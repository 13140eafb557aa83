package quotes

import (
	"context"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// QuoteRepository интерфейс репозитория сохраненных расценок
type QuoteRepository interface {
	GetByPublicID(ctx context.Context, publicID string) (*domain.StoredQuote, error)
	GetByUserID(ctx context.Context, userID int64) ([]*domain.StoredQuote, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
