package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/pkg/types"
)

// RuleKind вид правила доступности
type RuleKind string

const (
	RuleOneOff    RuleKind = "one_off"
	RuleRecurring RuleKind = "recurring"
)

// DaySet множество дней недели (битовая маска, бит = time.Weekday)
type DaySet uint8

// NewDaySet создает множество из перечисленных дней недели
func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s |= 1 << uint(d)
	}
	return s
}

// Has проверяет, что день недели входит в множество
func (s DaySet) Has(d time.Weekday) bool {
	return s&(1<<uint(d)) != 0
}

// IsEmpty проверяет, что множество пусто
func (s DaySet) IsEmpty() bool {
	return s == 0
}

// List возвращает дни недели множества в порядке Sunday..Saturday
func (s DaySet) List() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// OneOffRule разовое правило доступности: конкретный интервал времени
type OneOffRule struct {
	Start    time.Time
	End      time.Time
	Timezone string // Исходный часовой пояс правила (информационный, Start/End - инстанты)
}

// RecurringRule повторяющееся правило доступности:
// еженедельно по дням недели, время в часовом поясе правила
type RecurringRule struct {
	Days      DaySet
	StartTime types.TimeString
	EndTime   types.TimeString
	Timezone  string

	// ValidFrom/ValidUntil границы действия правила (даты, включительно)
	// nil = без ограничения
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// AvailabilityRule правило доступности ресурса
// Tagged variant: ровно одно из полей OneOff/Recurring заполнено
// в соответствии с Kind
type AvailabilityRule struct {
	ID        int64
	Kind      RuleKind
	OneOff    *OneOffRule
	Recurring *RecurringRule
}

// Validate проверяет структурную корректность правила
// Вызывается на этапе приёма данных; резолвер считает правила валидными
func (r AvailabilityRule) Validate() error {
	switch r.Kind {
	case RuleOneOff:
		if r.OneOff == nil || r.Recurring != nil {
			return fmt.Errorf("%w: one_off rule payload mismatch", ErrInvalidRule)
		}
		return r.OneOff.validate()
	case RuleRecurring:
		if r.Recurring == nil || r.OneOff != nil {
			return fmt.Errorf("%w: recurring rule payload mismatch", ErrInvalidRule)
		}
		return r.Recurring.validate()
	default:
		return fmt.Errorf("%w: unknown rule kind %q", ErrInvalidRule, r.Kind)
	}
}

func (r *OneOffRule) validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return fmt.Errorf("%w: one_off rule requires start and end", ErrInvalidRule)
	}
	if !r.Start.Before(r.End) {
		return fmt.Errorf("%w: one_off rule start must be before end", ErrInvalidRule)
	}
	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			return fmt.Errorf("%w: unknown timezone %q", ErrInvalidRule, r.Timezone)
		}
	}
	return nil
}

func (r *RecurringRule) validate() error {
	if err := r.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidRule, err)
	}
	if err := r.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidRule, err)
	}

	// Правило с startTime == endTime вырождено и отклоняется
	if !r.StartTime.IsBefore(r.EndTime) {
		return fmt.Errorf("%w: recurring rule startTime must be before endTime", ErrInvalidRule)
	}

	if r.Timezone == "" {
		return fmt.Errorf("%w: recurring rule requires timezone", ErrInvalidRule)
	}
	if _, err := time.LoadLocation(r.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidRule, r.Timezone)
	}

	return nil
}
