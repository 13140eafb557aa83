package price_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case для расчета стоимости аренды по тарифным ступеням
type UseCase struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resourceRepo ResourceRepository, logger Logger) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Execute выполняет use case расчета стоимости аренды
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PriceRental: days=%d, items=%d", req.TotalDays, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("PriceRental: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем стоимость по каждой позиции
	quotes := make([]domain.PriceQuote, 0, len(req.Items))

	for _, item := range req.Items {
		res, err := uc.resourceRepo.GetByID(ctx, item.ResourceID)
		if err != nil {
			if errors.Is(err, resourceRepo.ErrResourceNotFound) {
				uc.logger.Warn("PriceRental: resource id=%d not found", item.ResourceID)
				return nil, fmt.Errorf("%w: id=%d", ErrResourceNotFound, item.ResourceID)
			}
			uc.logger.Error("PriceRental: failed to get resource id=%d: %v", item.ResourceID, err)
			return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
		}

		if !res.IsRentable() {
			uc.logger.Warn("PriceRental: resource id=%d has no rate card", item.ResourceID)
			return nil, fmt.Errorf("%w: id=%d", ErrResourceNotRentable, item.ResourceID)
		}

		quote, err := domain.PriceRental(*res.RateCard, res.ID, req.TotalDays, item.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidDuration):
				return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
			case errors.Is(err, domain.ErrInvalidQuantity):
				return nil, fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
			default:
				uc.logger.Error("PriceRental: pricing failed for resource id=%d: %v", item.ResourceID, err)
				return nil, fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
			}
		}

		quotes = append(quotes, *quote)
	}

	// 3. Суммируем итог
	grandTotal := domain.AggregateQuote(quotes)

	uc.logger.Info("PriceRental: priced %d items, grand_total=%.2f", len(quotes), grandTotal)

	return &Response{
		Quotes:     quotes,
		GrandTotal: grandTotal,
	}, nil
}
