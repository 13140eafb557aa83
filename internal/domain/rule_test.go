package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaySet(t *testing.T) {
	s := NewDaySet(time.Monday, time.Friday)

	assert.True(t, s.Has(time.Monday))
	assert.True(t, s.Has(time.Friday))
	assert.False(t, s.Has(time.Sunday))
	assert.False(t, s.IsEmpty())
	assert.Equal(t, []time.Weekday{time.Monday, time.Friday}, s.List())

	assert.True(t, NewDaySet().IsEmpty())
}

func TestAvailabilityRule_Validate(t *testing.T) {
	t.Run("valid one_off", func(t *testing.T) {
		rule := oneOff(utc(2026, time.March, 2, 10, 0), utc(2026, time.March, 2, 14, 0))
		assert.NoError(t, rule.Validate())
	})

	t.Run("valid recurring", func(t *testing.T) {
		rule := recurring(NewDaySet(time.Monday), "09:00", "18:00", "Europe/Moscow")
		assert.NoError(t, rule.Validate())
	})

	t.Run("unknown kind", func(t *testing.T) {
		rule := AvailabilityRule{Kind: "weekly"}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("payload does not match kind", func(t *testing.T) {
		rule := AvailabilityRule{
			Kind:      RuleOneOff,
			Recurring: &RecurringRule{},
		}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)

		rule = AvailabilityRule{Kind: RuleRecurring}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("one_off with inverted interval", func(t *testing.T) {
		rule := oneOff(utc(2026, time.March, 2, 14, 0), utc(2026, time.March, 2, 10, 0))
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("one_off with zero bounds", func(t *testing.T) {
		rule := AvailabilityRule{Kind: RuleOneOff, OneOff: &OneOffRule{}}
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("recurring with degenerate time range", func(t *testing.T) {
		rule := recurring(NewDaySet(time.Monday), "10:00", "10:00", "UTC")
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("recurring with malformed time", func(t *testing.T) {
		rule := recurring(NewDaySet(time.Monday), "9:00", "18:00", "UTC")
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("recurring without timezone", func(t *testing.T) {
		rule := recurring(NewDaySet(time.Monday), "09:00", "18:00", "")
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})

	t.Run("recurring with unknown timezone", func(t *testing.T) {
		rule := recurring(NewDaySet(time.Monday), "09:00", "18:00", "Mars/Olympus")
		assert.ErrorIs(t, rule.Validate(), ErrInvalidRule)
	})
}

func TestBookingRequest_RentalDays(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		req := &BookingRequest{
			Start: utc(2026, time.March, 2, 0, 0),
			End:   utc(2026, time.March, 5, 0, 0),
		}
		assert.Equal(t, 3, req.RentalDays())
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		req := &BookingRequest{
			Start: utc(2026, time.March, 2, 10, 0),
			End:   utc(2026, time.March, 3, 11, 0),
		}
		assert.Equal(t, 2, req.RentalDays())
	})

	t.Run("inverted window counts zero days", func(t *testing.T) {
		req := &BookingRequest{
			Start: utc(2026, time.March, 5, 0, 0),
			End:   utc(2026, time.March, 2, 0, 0),
		}
		assert.Equal(t, 0, req.RentalDays())
	})
}
