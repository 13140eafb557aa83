package check_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case для проверки доступности ресурсов по категориям
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

// Execute выполняет use case проверки доступности
// Детектор ничего не резервирует: пустой список конфликтов означает
// "теоретически свободно" на момент проверки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckBooking: window=[%s, %s), categories=%d",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), len(req.RequiredCategories))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем пул ресурсов требуемых категорий
	categories := make([]string, 0, len(req.RequiredCategories))
	for _, rc := range req.RequiredCategories {
		categories = append(categories, rc.Category)
	}

	pool, err := uc.resourceRepo.List(ctx, resourceRepo.Filter{Categories: categories})
	if err != nil {
		uc.logger.Error("CheckBooking: failed to load resource pool: %v", err)
		return nil, fmt.Errorf("%w: failed to load resource pool: %v", ErrInternal, err)
	}

	// 3. Проверяем покрытие окна по каждой категории
	bookingReq := &domain.BookingRequest{
		Start:              req.Start.UTC(),
		End:                req.End.UTC(),
		RequiredCategories: req.RequiredCategories,
	}

	conflicts := domain.CheckAvailability(bookingReq, pool)

	uc.logger.Info("CheckBooking: pool=%d resources, conflicts=%d", len(pool), len(conflicts))

	return &Response{Conflicts: conflicts}, nil
}
