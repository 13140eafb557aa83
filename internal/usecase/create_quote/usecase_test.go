package create_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/StudioHub-AvailabilityService/internal/integrations/catalogservice"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubResourceRepo struct {
	resources map[int64]*domain.Resource
	pool      []*domain.Resource
}

func (s *stubResourceRepo) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	res, ok := s.resources[id]
	if !ok {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return res, nil
}

func (s *stubResourceRepo) List(_ context.Context, _ resourceRepo.Filter) ([]*domain.Resource, error) {
	return s.pool, nil
}

type stubQuoteRepo struct {
	created *domain.StoredQuote
	err     error
}

func (s *stubQuoteRepo) Create(_ context.Context, quote *domain.StoredQuote) (*domain.StoredQuote, error) {
	if s.err != nil {
		return nil, s.err
	}
	stored := *quote
	stored.ID = 1
	stored.CreatedAt = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.created = &stored
	return &stored, nil
}

type stubCatalogClient struct {
	profiles map[int64]*catalogservice.Profile
	degraded bool
}

func (s *stubCatalogClient) GetProfileWithGracefulDegradation(_ context.Context, resourceID int64) (*catalogservice.Profile, error) {
	if s.degraded {
		return nil, catalogservice.ErrServiceDegraded
	}
	profile, ok := s.profiles[resourceID]
	if !ok {
		return nil, catalogservice.ErrProfileNotFound
	}
	return profile, nil
}

// inlineTxManager исполняет функцию без настоящей транзакции
type inlineTxManager struct {
	calls int
}

func (m *inlineTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// withClock подменяет провайдер времени на фиксированный
func withClock(uc *UseCase, at time.Time) *UseCase {
	uc.timeProvider = fixedClock{now: at}
	return uc
}

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func equipment(id int64, category string, card *domain.RateCard, start, end time.Time) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		Kind:     domain.KindEquipment,
		Category: ptr.Ptr(category),
		RateCard: card,
		Rules: []domain.AvailabilityRule{
			{
				Kind:   domain.RuleOneOff,
				OneOff: &domain.OneOffRule{Start: start, End: end},
			},
		},
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	clock := utc(2026, time.February, 1, 0)
	dayStart := utc(2026, time.March, 2, 0)
	dayEnd := utc(2026, time.March, 20, 0)

	mic := equipment(1, "microphone", &domain.RateCard{PricePerDay: 100, PricePerWeek: ptr.Ptr(600.0)}, dayStart, dayEnd)

	newRepo := func() *stubResourceRepo {
		return &stubResourceRepo{
			resources: map[int64]*domain.Resource{1: mic},
			pool:      []*domain.Resource{mic},
		}
	}

	catalog := &stubCatalogClient{
		profiles: map[int64]*catalogservice.Profile{
			1: {ResourceID: 1, DisplayName: "Shure SM58"},
		},
	}

	t.Run("stores a quote with priced lines", func(t *testing.T) {
		quoteRepo := &stubQuoteRepo{}
		tx := &inlineTxManager{}
		uc := withClock(NewUseCase(newRepo(), quoteRepo, catalog, tx, nopLogger{}), clock)

		resp, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 1},
			},
			Items: []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		require.NoError(t, err)
		require.NotNil(t, resp.Quote)
		assert.Equal(t, 1, tx.calls)

		assert.NotEmpty(t, resp.Quote.PublicID)
		assert.Equal(t, int64(7), resp.Quote.UserID)
		assert.Empty(t, resp.Conflicts)

		// 10 дней аренды, недельная ступень: ceil(10/7) = 2
		require.Len(t, resp.Quote.Lines, 1)
		line := resp.Quote.Lines[0]
		assert.Equal(t, "Shure SM58", line.ResourceName)
		assert.Equal(t, domain.TierWeek, line.TierUsed)
		assert.Equal(t, 2, line.UnitsUsed)
		assert.Equal(t, 1200.0, line.Total)
		assert.Equal(t, 1200.0, resp.Quote.GrandTotal)
	})

	t.Run("blocking conflicts abort without storing", func(t *testing.T) {
		repo := newRepo()
		repo.pool = nil // пул пуст, категория недоступна
		quoteRepo := &stubQuoteRepo{}
		uc := withClock(NewUseCase(repo, quoteRepo, catalog, &inlineTxManager{}, nopLogger{}), clock)

		resp, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 1},
			},
			Items: []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		require.ErrorIs(t, err, ErrBlockingConflicts)
		assert.Nil(t, quoteRepo.created)

		// Отчёты о конфликтах возвращаются вместе с ошибкой
		require.NotNil(t, resp)
		require.Len(t, resp.Conflicts, 1)
		assert.Equal(t, "No microphone available for this time slot", resp.Conflicts[0].Message)
	})

	t.Run("catalog degradation falls back to empty names", func(t *testing.T) {
		quoteRepo := &stubQuoteRepo{}
		uc := withClock(NewUseCase(newRepo(), quoteRepo, &stubCatalogClient{degraded: true}, &inlineTxManager{}, nopLogger{}), clock)

		resp, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			Items:  []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		require.NoError(t, err)
		require.Len(t, resp.Quote.Lines, 1)
		assert.Empty(t, resp.Quote.Lines[0].ResourceName)
	})

	t.Run("resource not found", func(t *testing.T) {
		uc := withClock(NewUseCase(newRepo(), &stubQuoteRepo{}, catalog, &inlineTxManager{}, nopLogger{}), clock)

		_, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			Items:  []domain.RentalItem{{ResourceID: 99, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("resource without rate card", func(t *testing.T) {
		repo := newRepo()
		repo.resources[2] = &domain.Resource{ID: 2, Kind: domain.KindStudio}
		uc := withClock(NewUseCase(repo, &stubQuoteRepo{}, catalog, &inlineTxManager{}, nopLogger{}), clock)

		_, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			Items:  []domain.RentalItem{{ResourceID: 2, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrResourceNotRentable)
	})

	t.Run("rental window in the past is rejected", func(t *testing.T) {
		quoteRepo := &stubQuoteRepo{}
		uc := withClock(NewUseCase(newRepo(), quoteRepo, catalog, &inlineTxManager{}, nopLogger{}), utc(2026, time.April, 1, 0))

		_, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			Items:  []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrWindowInPast)
		assert.Nil(t, quoteRepo.created)
	})

	t.Run("window ending today is accepted", func(t *testing.T) {
		quoteRepo := &stubQuoteRepo{}
		uc := withClock(NewUseCase(newRepo(), quoteRepo, catalog, &inlineTxManager{}, nopLogger{}), utc(2026, time.March, 12, 23))

		_, err := uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
			Items:  []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		require.NoError(t, err)
		assert.NotNil(t, quoteRepo.created)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := withClock(NewUseCase(newRepo(), &stubQuoteRepo{}, catalog, &inlineTxManager{}, nopLogger{}), clock)

		// Не указан пользователь
		_, err := uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 12, 10),
			Items: []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		// Инвертированное окно
		_, err = uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 12, 10),
			End:    utc(2026, time.March, 2, 10),
			Items:  []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		// Нет позиций аренды
		_, err = uc.Execute(ctx, &Request{
			UserID: 7,
			Start:  utc(2026, time.March, 2, 10),
			End:    utc(2026, time.March, 12, 10),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
