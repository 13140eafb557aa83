package resolve_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
)

// UseCase use case для расчета расписания доступности ресурса
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

// Execute выполняет use case расчета расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveSchedule: resource=%d, window=[%s, %s)",
		req.ResourceID, req.WindowStart.Format(domain.DateFormat), req.WindowEnd.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем ресурс с правилами доступности
	res, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("ResolveSchedule: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("ResolveSchedule: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// 3. Разворачиваем правила в интервалы доступности внутри окна
	resolved := domain.Resolve(res, req.WindowStart, req.WindowEnd)

	intervals := make([]Interval, 0, len(resolved))
	for _, r := range resolved {
		intervals = append(intervals, Interval{Start: r.Start, End: r.End})
	}

	uc.logger.Info("ResolveSchedule: resource=%d resolved into %d intervals", req.ResourceID, len(intervals))

	return &Response{
		ResourceID:  req.ResourceID,
		WindowStart: req.WindowStart,
		WindowEnd:   req.WindowEnd,
		Intervals:   intervals,
	}, nil
}
