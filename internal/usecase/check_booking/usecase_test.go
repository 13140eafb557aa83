package check_booking

import (
	"context"
	"errors"
	"testing"
	"time"

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
	pool       []*domain.Resource
	err        error
	lastFilter resourceRepo.Filter
}

func (s *stubResourceRepo) List(_ context.Context, filter resourceRepo.Filter) ([]*domain.Resource, error) {
	s.lastFilter = filter
	return s.pool, s.err
}

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func equipment(id int64, category string, start, end time.Time) *domain.Resource {
	return &domain.Resource{
		ID:       id,
		Kind:     domain.KindEquipment,
		Category: ptr.Ptr(category),
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

	dayStart := utc(2026, time.March, 2, 9)
	dayEnd := utc(2026, time.March, 2, 18)

	t.Run("no conflicts when pool covers the request", func(t *testing.T) {
		repo := &stubResourceRepo{
			pool: []*domain.Resource{
				equipment(1, "microphone", dayStart, dayEnd),
				equipment(2, "microphone", dayStart, dayEnd),
			},
		}

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 2, 12),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 2},
			},
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Conflicts)
		assert.False(t, resp.HasBlockingConflicts())
		assert.Equal(t, []string{"microphone"}, repo.lastFilter.Categories)
	})

	t.Run("reports shortfall per category", func(t *testing.T) {
		repo := &stubResourceRepo{
			pool: []*domain.Resource{
				equipment(1, "microphone", dayStart, dayEnd),
			},
		}

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 2, 12),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 2},
				{Category: "amplifier", Quantity: 1},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp.Conflicts, 2)
		assert.Equal(t, "Only 1 of 2 microphone available for this time slot", resp.Conflicts[0].Message)
		assert.Equal(t, "No amplifier available for this time slot", resp.Conflicts[1].Message)
		assert.True(t, resp.HasBlockingConflicts())
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		repo := &stubResourceRepo{err: errors.New("connection refused")}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 2, 12),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 1},
			},
		})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("validation failures", func(t *testing.T) {
		uc := NewUseCase(&stubResourceRepo{}, nopLogger{})

		// Инвертированное окно
		_, err := uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 12),
			End:   utc(2026, time.March, 2, 10),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "microphone", Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		// Пустой список категорий
		_, err = uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 2, 12),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)

		// Пустое имя категории
		_, err = uc.Execute(ctx, &Request{
			Start: utc(2026, time.March, 2, 10),
			End:   utc(2026, time.March, 2, 12),
			RequiredCategories: []domain.CategoryRequirement{
				{Category: "", Quantity: 1},
			},
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
