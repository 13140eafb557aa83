package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StudioHub-AvailabilityService/pkg/ptr"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/types"
)

func utc(y int, m time.Month, d, h, min int) time.Time {
	return time.Date(y, m, d, h, min, 0, 0, time.UTC)
}

func oneOff(start, end time.Time) AvailabilityRule {
	return AvailabilityRule{
		Kind:   RuleOneOff,
		OneOff: &OneOffRule{Start: start, End: end},
	}
}

func recurring(days DaySet, startTime, endTime types.TimeString, tz string) AvailabilityRule {
	return AvailabilityRule{
		Kind: RuleRecurring,
		Recurring: &RecurringRule{
			Days:      days,
			StartTime: startTime,
			EndTime:   endTime,
			Timezone:  tz,
		},
	}
}

func TestResolve_OneOff(t *testing.T) {
	resource := &Resource{
		ID:   1,
		Kind: KindStudio,
		Rules: []AvailabilityRule{
			oneOff(utc(2026, time.March, 2, 10, 0), utc(2026, time.March, 2, 14, 0)),
		},
	}

	t.Run("inside window", func(t *testing.T) {
		intervals := Resolve(resource, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, int64(1), intervals[0].ResourceID)
		assert.Equal(t, utc(2026, time.March, 2, 10, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 14, 0), intervals[0].End)
	})

	t.Run("clipped by window edges", func(t *testing.T) {
		intervals := Resolve(resource, utc(2026, time.March, 2, 12, 0), utc(2026, time.March, 2, 13, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.March, 2, 12, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 13, 0), intervals[0].End)
	})

	t.Run("outside window", func(t *testing.T) {
		intervals := Resolve(resource, utc(2026, time.April, 1, 0, 0), utc(2026, time.April, 2, 0, 0))
		assert.Empty(t, intervals)
	})
}

func TestResolve_Recurring(t *testing.T) {
	t.Run("expands every matching weekday in the window", func(t *testing.T) {
		resource := &Resource{
			ID:   2,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Monday, time.Wednesday), "09:00", "18:00", "UTC"),
			},
		}

		// 2026-03-02 понедельник
		intervals := Resolve(resource, utc(2026, time.March, 2, 0, 0), utc(2026, time.March, 9, 0, 0))

		require.Len(t, intervals, 2)
		assert.Equal(t, utc(2026, time.March, 2, 9, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 18, 0), intervals[0].End)
		assert.Equal(t, utc(2026, time.March, 4, 9, 0), intervals[1].Start)
		assert.Equal(t, utc(2026, time.March, 4, 18, 0), intervals[1].End)
	})

	t.Run("converts rule timezone to UTC", func(t *testing.T) {
		resource := &Resource{
			ID:   3,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Monday), "10:00", "12:00", "Europe/Moscow"),
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 2, 0, 0), utc(2026, time.March, 3, 0, 0))

		// Москва UTC+3 круглый год
		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.March, 2, 7, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 9, 0), intervals[0].End)
	})

	t.Run("respects validity bounds", func(t *testing.T) {
		resource := &Resource{
			ID:   4,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				{
					Kind: RuleRecurring,
					Recurring: &RecurringRule{
						Days:       NewDaySet(time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday),
						StartTime:  "09:00",
						EndTime:    "10:00",
						Timezone:   "UTC",
						ValidFrom:  ptr.Ptr(utc(2026, time.March, 3, 0, 0)),
						ValidUntil: ptr.Ptr(utc(2026, time.March, 4, 0, 0)),
					},
				},
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))

		require.Len(t, intervals, 2)
		assert.Equal(t, utc(2026, time.March, 3, 9, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 4, 9, 0), intervals[1].Start)
	})

	t.Run("contradictory validity bounds yield empty result", func(t *testing.T) {
		resource := &Resource{
			ID:   5,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				{
					Kind: RuleRecurring,
					Recurring: &RecurringRule{
						Days:       NewDaySet(time.Monday),
						StartTime:  "09:00",
						EndTime:    "18:00",
						Timezone:   "UTC",
						ValidFrom:  ptr.Ptr(utc(2026, time.June, 1, 0, 0)),
						ValidUntil: ptr.Ptr(utc(2026, time.March, 1, 0, 0)),
					},
				},
			},
		}

		intervals := Resolve(resource, utc(2026, time.January, 1, 0, 0), utc(2026, time.December, 31, 0, 0))
		assert.Empty(t, intervals)
	})

	t.Run("spring DST gap resolves to the later offset", func(t *testing.T) {
		// 2026-03-08 в America/New_York местное 02:30 не существует:
		// time.Date трактует его по более позднему смещению -04:00,
		// что даёт инстант 06:30 UTC (01:30 EST по стене)
		resource := &Resource{
			ID:   6,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Sunday), "02:30", "05:00", "America/New_York"),
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 8, 0, 0), utc(2026, time.March, 9, 0, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.March, 8, 6, 30), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 8, 9, 0), intervals[0].End)
	})

	t.Run("fall DST repeat resolves to the earlier instant", func(t *testing.T) {
		// 2026-11-01 в America/New_York местное 01:30 встречается дважды:
		// берётся более ранний инстант 01:30 EDT = 05:30 UTC, конец 03:00
		// уже однозначен (03:00 EST = 08:00 UTC)
		resource := &Resource{
			ID:   6,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Sunday), "01:30", "03:00", "America/New_York"),
			},
		}

		intervals := Resolve(resource, utc(2026, time.November, 1, 0, 0), utc(2026, time.November, 2, 0, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.November, 1, 5, 30), intervals[0].Start)
		assert.Equal(t, utc(2026, time.November, 1, 8, 0), intervals[0].End)
	})
}

func TestResolve_Merging(t *testing.T) {
	t.Run("overlapping rules coalesce", func(t *testing.T) {
		resource := &Resource{
			ID:   7,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				oneOff(utc(2026, time.March, 2, 10, 0), utc(2026, time.March, 2, 13, 0)),
				oneOff(utc(2026, time.March, 2, 12, 0), utc(2026, time.March, 2, 16, 0)),
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.March, 2, 10, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 16, 0), intervals[0].End)
	})

	t.Run("touching rules coalesce", func(t *testing.T) {
		resource := &Resource{
			ID:   8,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				oneOff(utc(2026, time.March, 2, 14, 0), utc(2026, time.March, 2, 18, 0)),
				oneOff(utc(2026, time.March, 2, 10, 0), utc(2026, time.March, 2, 14, 0)),
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))

		require.Len(t, intervals, 1)
		assert.Equal(t, utc(2026, time.March, 2, 10, 0), intervals[0].Start)
		assert.Equal(t, utc(2026, time.March, 2, 18, 0), intervals[0].End)
	})

	t.Run("intervals across midnight stay separate", func(t *testing.T) {
		resource := &Resource{
			ID:   9,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Monday, time.Tuesday), "09:00", "23:59", "UTC"),
			},
		}

		intervals := Resolve(resource, utc(2026, time.March, 2, 0, 0), utc(2026, time.March, 4, 0, 0))

		require.Len(t, intervals, 2)
	})

	t.Run("resolved output is a fixed point", func(t *testing.T) {
		resource := &Resource{
			ID:   10,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(time.Monday, time.Wednesday), "09:00", "18:00", "Europe/Moscow"),
				oneOff(utc(2026, time.March, 2, 5, 0), utc(2026, time.March, 2, 7, 0)),
			},
		}

		windowStart := utc(2026, time.March, 1, 0, 0)
		windowEnd := utc(2026, time.March, 9, 0, 0)

		first := Resolve(resource, windowStart, windowEnd)
		require.NotEmpty(t, first)

		// Повторный резолв по уже склеенным интервалам как разовым
		// правилам даёт тот же результат
		roundTrip := &Resource{ID: 10, Kind: KindStudio}
		for _, interval := range first {
			roundTrip.Rules = append(roundTrip.Rules, oneOff(interval.Start, interval.End))
		}

		second := Resolve(roundTrip, windowStart, windowEnd)
		assert.Equal(t, first, second)
	})
}

func TestResolve_EdgeCases(t *testing.T) {
	resource := &Resource{
		ID:   11,
		Kind: KindStudio,
		Rules: []AvailabilityRule{
			oneOff(utc(2026, time.March, 2, 10, 0), utc(2026, time.March, 2, 14, 0)),
		},
	}

	t.Run("inverted window yields empty result", func(t *testing.T) {
		intervals := Resolve(resource, utc(2026, time.March, 8, 0, 0), utc(2026, time.March, 1, 0, 0))
		assert.Empty(t, intervals)
	})

	t.Run("empty window yields empty result", func(t *testing.T) {
		at := utc(2026, time.March, 2, 12, 0)
		assert.Empty(t, Resolve(resource, at, at))
	})

	t.Run("resource without rules yields empty result", func(t *testing.T) {
		bare := &Resource{ID: 12, Kind: KindStudio}
		intervals := Resolve(bare, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))
		assert.Empty(t, intervals)
	})

	t.Run("recurring rule with empty day set yields empty result", func(t *testing.T) {
		empty := &Resource{
			ID:   13,
			Kind: KindStudio,
			Rules: []AvailabilityRule{
				recurring(NewDaySet(), "09:00", "18:00", "UTC"),
			},
		}

		intervals := Resolve(empty, utc(2026, time.March, 1, 0, 0), utc(2026, time.March, 8, 0, 0))
		assert.Empty(t, intervals)
	})
}
