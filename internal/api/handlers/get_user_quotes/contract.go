package get_user_quotes

import (
	"context"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/quotes/models"
)

type QuoteService interface {
	GetUserQuotes(ctx context.Context, userID int64) (*models.QuoteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
