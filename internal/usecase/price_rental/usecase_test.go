package price_rental

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubResourceRepo struct {
	resources map[int64]*domain.Resource
	err       error
}

func (s *stubResourceRepo) GetByID(_ context.Context, id int64) (*domain.Resource, error) {
	if s.err != nil {
		return nil, s.err
	}
	res, ok := s.resources[id]
	if !ok {
		return nil, resourceRepo.ErrResourceNotFound
	}
	return res, nil
}

func rentable(id int64, card domain.RateCard) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		Kind:     domain.KindEquipment,
		RateCard: &card,
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	repo := &stubResourceRepo{
		resources: map[int64]*domain.Resource{
			1: rentable(1, domain.RateCard{PricePerDay: 100, PricePerWeek: ptr.Ptr(600.0)}),
			2: rentable(2, domain.RateCard{PricePerDay: 50}),
			3: {ID: 3, Kind: domain.KindStudio}, // без тарифной карты
		},
	}

	t.Run("prices items and aggregates the total", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{
			TotalDays: 10,
			Items: []domain.RentalItem{
				{ResourceID: 1, Quantity: 1},
				{ResourceID: 2, Quantity: 2},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp.Quotes, 2)

		assert.Equal(t, domain.TierWeek, resp.Quotes[0].TierUsed)
		assert.Equal(t, 1200.0, resp.Quotes[0].Total)

		assert.Equal(t, domain.TierDay, resp.Quotes[1].TierUsed)
		assert.Equal(t, 1000.0, resp.Quotes[1].Total)

		assert.Equal(t, 2200.0, resp.GrandTotal)
	})

	t.Run("resource not found", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			TotalDays: 3,
			Items:     []domain.RentalItem{{ResourceID: 99, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("resource without rate card", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			TotalDays: 3,
			Items:     []domain.RentalItem{{ResourceID: 3, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrResourceNotRentable)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		uc := NewUseCase(&stubResourceRepo{err: errors.New("connection refused")}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			TotalDays: 3,
			Items:     []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("duration out of range", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			TotalDays: 0,
			Items:     []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)

		_, err = uc.Execute(ctx, &Request{
			TotalDays: domain.MaxRentalDays + 1,
			Items:     []domain.RentalItem{{ResourceID: 1, Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("quantity out of range", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			TotalDays: 3,
			Items:     []domain.RentalItem{{ResourceID: 1, Quantity: 0}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = uc.Execute(ctx, &Request{
			TotalDays: 3,
			Items:     []domain.RentalItem{{ResourceID: 1, Quantity: domain.MaxQuantity + 1}},
		})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("empty items", func(t *testing.T) {
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{TotalDays: 3})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
