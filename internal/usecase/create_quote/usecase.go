package create_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	catalogClient "github.com/m04kA/StudioHub-AvailabilityService/internal/integrations/catalogservice"
)

// UseCase use case для создания расценки: проверка доступности,
// расчет стоимости и сохранение результата
type UseCase struct {
	resourceRepo  ResourceRepository
	quoteRepo     QuoteRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	resourceRepo ResourceRepository,
	quoteRepo QuoteRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		resourceRepo:  resourceRepo,
		quoteRepo:     quoteRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания расценки
// Использует сериализуемую транзакцию: доступность и цены читаются
// из того же снимка, в котором сохраняется расценка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQuote: user=%d, window=[%s, %s), items=%d",
		req.UserID, req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat), len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем, что окно аренды не в прошлом
	now := uc.timeProvider.Now()
	if isWindowInPast(req.End, now) {
		uc.logger.Warn("CreateQuote: rental window [%s, %s) is in the past",
			req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))
		return nil, ErrWindowInPast
	}

	// 3. Собираем заявку и считаем длительность в целых днях
	bookingReq := &domain.BookingRequest{
		Start:              req.Start.UTC(),
		End:                req.End.UTC(),
		RequiredCategories: req.RequiredCategories,
		Items:              req.Items,
	}

	totalDays := bookingReq.RentalDays()
	if totalDays < domain.MinRentalDays || totalDays > domain.MaxRentalDays {
		uc.logger.Warn("CreateQuote: rental duration %d days out of range", totalDays)
		return nil, fmt.Errorf("%w: %d days", ErrInvalidDuration, totalDays)
	}

	// 4. Подтягиваем витринные имена ресурсов заранее, вне транзакции
	// При недоступности каталога используем технические имена
	names := uc.resolveDisplayNames(ctx, req.Items)

	var (
		stored    *domain.StoredQuote
		conflicts []domain.ConflictReport
	)

	// 5. Выполняем проверку, расчет и сохранение в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем доступность по требуемым категориям
		if len(req.RequiredCategories) > 0 {
			categories := make([]string, 0, len(req.RequiredCategories))
			for _, rc := range req.RequiredCategories {
				categories = append(categories, rc.Category)
			}

			pool, err := uc.resourceRepo.List(txCtx, resourceRepo.Filter{Categories: categories})
			if err != nil {
				uc.logger.Error("CreateQuote: failed to load resource pool: %v", err)
				return fmt.Errorf("%w: failed to load resource pool: %v", ErrInternal, err)
			}

			conflicts = domain.CheckAvailability(bookingReq, pool)
		}

		// 5.2. Расценка с блокирующими конфликтами не сохраняется
		quote := &domain.BookingQuote{Conflicts: conflicts}
		if quote.HasBlockingConflicts() {
			uc.logger.Warn("CreateQuote: user=%d request has %d blocking conflicts", req.UserID, len(conflicts))
			return ErrBlockingConflicts
		}

		// 5.3. Считаем стоимость по каждой позиции
		lines := make([]domain.StoredQuoteLine, 0, len(req.Items))
		priceQuotes := make([]domain.PriceQuote, 0, len(req.Items))

		for _, item := range req.Items {
			res, err := uc.resourceRepo.GetByID(txCtx, item.ResourceID)
			if err != nil {
				if errors.Is(err, resourceRepo.ErrResourceNotFound) {
					uc.logger.Warn("CreateQuote: resource id=%d not found", item.ResourceID)
					return fmt.Errorf("%w: id=%d", ErrResourceNotFound, item.ResourceID)
				}
				uc.logger.Error("CreateQuote: failed to get resource id=%d: %v", item.ResourceID, err)
				return fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
			}

			if !res.IsRentable() {
				uc.logger.Warn("CreateQuote: resource id=%d has no rate card", item.ResourceID)
				return fmt.Errorf("%w: id=%d", ErrResourceNotRentable, item.ResourceID)
			}

			priceQuote, err := domain.PriceRental(*res.RateCard, res.ID, totalDays, item.Quantity)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrInvalidDuration):
					return fmt.Errorf("%w: %v", ErrInvalidDuration, err)
				case errors.Is(err, domain.ErrInvalidQuantity):
					return fmt.Errorf("%w: %v", ErrInvalidQuantity, err)
				default:
					uc.logger.Error("CreateQuote: pricing failed for resource id=%d: %v", item.ResourceID, err)
					return fmt.Errorf("%w: pricing failed: %v", ErrInternal, err)
				}
			}

			priceQuotes = append(priceQuotes, *priceQuote)
			lines = append(lines, domain.StoredQuoteLine{
				ResourceID:   priceQuote.ResourceID,
				ResourceName: names[priceQuote.ResourceID],
				TierUsed:     priceQuote.TierUsed,
				UnitsUsed:    priceQuote.UnitsUsed,
				UnitRate:     priceQuote.UnitRate,
				Quantity:     priceQuote.Quantity,
				Total:        priceQuote.Total,
			})
		}

		// 5.4. Сохраняем расценку вместе со строками
		created, err := uc.quoteRepo.Create(txCtx, &domain.StoredQuote{
			PublicID:   uuid.NewString(),
			UserID:     req.UserID,
			StartAt:    bookingReq.Start,
			EndAt:      bookingReq.End,
			Lines:      lines,
			GrandTotal: domain.AggregateQuote(priceQuotes),
		})
		if err != nil {
			uc.logger.Error("CreateQuote: failed to store quote: %v", err)
			return fmt.Errorf("%w: failed to store quote: %v", ErrInternal, err)
		}

		stored = created
		return nil
	})
	if err != nil {
		// Для блокирующих конфликтов отдаём вызывающей стороне сами отчёты:
		// UI показывает их пользователю
		if errors.Is(err, ErrBlockingConflicts) {
			return &Response{Conflicts: conflicts}, err
		}
		return nil, err
	}

	uc.logger.Info("CreateQuote: created quote public_id=%s for user=%d, grand_total=%.2f",
		stored.PublicID, req.UserID, stored.GrandTotal)

	return &Response{
		Quote:     stored,
		Conflicts: conflicts,
	}, nil
}

// resolveDisplayNames подтягивает витринные имена ресурсов из каталога
// При деградации каталога возвращает пустые имена, не ошибку
func (uc *UseCase) resolveDisplayNames(ctx context.Context, items []domain.RentalItem) map[int64]string {
	names := make(map[int64]string, len(items))

	for _, item := range items {
		profile, err := uc.catalogClient.GetProfileWithGracefulDegradation(ctx, item.ResourceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceDegraded) {
				uc.logger.Warn("CreateQuote: catalog degraded, using empty name for resource id=%d", item.ResourceID)
			}
			continue
		}
		names[item.ResourceID] = profile.DisplayName
	}

	return names
}
