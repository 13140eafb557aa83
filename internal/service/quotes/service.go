package quotes

import (
	"context"
	"errors"
	"fmt"

	quoteRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/quote"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/service/quotes/models"
)

// Service сервис для чтения истории расценок
type Service struct {
	quoteRepo QuoteRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расценок
func NewService(quoteRepo QuoteRepository, logger Logger) *Service {
	return &Service{
		quoteRepo: quoteRepo,
		logger:    logger,
	}
}

// GetByPublicID получает расценку по публичному идентификатору
// Пользователь может видеть только свои расценки
func (s *Service) GetByPublicID(ctx context.Context, publicID string, userID int64) (*models.QuoteResponse, error) {
	s.logger.Info("GetByPublicID: fetching quote public_id=%s for user=%d", publicID, userID)

	if publicID == "" {
		return nil, fmt.Errorf("%w: publicID is required", ErrInvalidInput)
	}

	quote, err := s.quoteRepo.GetByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, quoteRepo.ErrQuoteNotFound) {
			s.logger.Warn("GetByPublicID: quote public_id=%s not found", publicID)
			return nil, ErrQuoteNotFound
		}
		s.logger.Error("GetByPublicID: repository error for quote public_id=%s: %v", publicID, err)
		return nil, fmt.Errorf("%w: GetByPublicID - repository error: %v", ErrInternal, err)
	}

	if quote.UserID != userID {
		s.logger.Warn("GetByPublicID: access denied for user=%d to quote public_id=%s", userID, publicID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainQuote(quote), nil
}

// GetUserQuotes получает историю расценок пользователя
func (s *Service) GetUserQuotes(ctx context.Context, userID int64) (*models.QuoteListResponse, error) {
	s.logger.Info("GetUserQuotes: fetching quotes for user=%d", userID)

	if userID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	quotes, err := s.quoteRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserQuotes: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserQuotes - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserQuotes: fetched %d quotes for user=%d", len(quotes), userID)
	return models.FromDomainQuoteList(quotes), nil
}
