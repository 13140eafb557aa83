package get_quote

import (
	"context"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/quotes/models"
)

type QuoteService interface {
	GetByPublicID(ctx context.Context, publicID string, userID int64) (*models.QuoteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
