package resolve_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	resourceRepo "github.com/m04kA/StudioHub-AvailabilityService/internal/infra/storage/resource"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubResourceRepo struct {
	resource *domain.Resource
	err      error
}

func (s *stubResourceRepo) GetByID(_ context.Context, _ int64) (*domain.Resource, error) {
	return s.resource, s.err
}

func utc(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves rules into intervals", func(t *testing.T) {
		repo := &stubResourceRepo{
			resource: &domain.Resource{
				ID:   1,
				Kind: domain.KindStudio,
				Rules: []domain.AvailabilityRule{
					{
						Kind: domain.RuleOneOff,
						OneOff: &domain.OneOffRule{
							Start: utc(2026, time.March, 2, 10),
							End:   utc(2026, time.March, 2, 14),
						},
					},
				},
			},
		}

		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{
			ResourceID:  1,
			WindowStart: utc(2026, time.March, 1, 0),
			WindowEnd:   utc(2026, time.March, 8, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ResourceID)
		require.Len(t, resp.Intervals, 1)
		assert.Equal(t, utc(2026, time.March, 2, 10), resp.Intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 14), resp.Intervals[0].End)
	})

	t.Run("inverted window yields empty intervals", func(t *testing.T) {
		repo := &stubResourceRepo{resource: &domain.Resource{ID: 1, Kind: domain.KindStudio}}
		uc := NewUseCase(repo, nopLogger{})

		resp, err := uc.Execute(ctx, &Request{
			ResourceID:  1,
			WindowStart: utc(2026, time.March, 8, 0),
			WindowEnd:   utc(2026, time.March, 1, 0),
		})

		require.NoError(t, err)
		assert.Empty(t, resp.Intervals)
	})

	t.Run("resource not found", func(t *testing.T) {
		repo := &stubResourceRepo{err: resourceRepo.ErrResourceNotFound}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			ResourceID:  42,
			WindowStart: utc(2026, time.March, 1, 0),
			WindowEnd:   utc(2026, time.March, 8, 0),
		})

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("repository failure maps to internal error", func(t *testing.T) {
		repo := &stubResourceRepo{err: errors.New("connection refused")}
		uc := NewUseCase(repo, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			ResourceID:  1,
			WindowStart: utc(2026, time.March, 1, 0),
			WindowEnd:   utc(2026, time.March, 8, 0),
		})

		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("invalid resource id", func(t *testing.T) {
		uc := NewUseCase(&stubResourceRepo{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			ResourceID:  0,
			WindowStart: utc(2026, time.March, 1, 0),
			WindowEnd:   utc(2026, time.March, 8, 0),
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing window bounds", func(t *testing.T) {
		uc := NewUseCase(&stubResourceRepo{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{ResourceID: 1})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("window over the limit", func(t *testing.T) {
		uc := NewUseCase(&stubResourceRepo{}, nopLogger{})

		_, err := uc.Execute(ctx, &Request{
			ResourceID:  1,
			WindowStart: utc(2026, time.January, 1, 0),
			WindowEnd:   utc(2028, time.January, 1, 0),
		})

		assert.ErrorIs(t, err, ErrWindowTooLarge)
	})
}
