package domain

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/pkg/timerange"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/types"
)

// ResolvedInterval конкретный интервал доступности ресурса в UTC
// Результат работы резолвера; вычисляется по запросу и нигде не хранится
type ResolvedInterval struct {
	ResourceID int64
	Start      time.Time
	End        time.Time
}

// Resolve разворачивает правила доступности ресурса в конкретные
// интервалы для окна [windowStart, windowEnd)
//
// Разовые правила обрезаются по границам окна. Повторяющиеся правила
// разворачиваются по дням в часовом поясе самого правила (не вызывающей
// стороны), конвертируются в UTC и обрезаются.
//
// Результат всегда минимальный: отсортирован по началу, пересекающиеся
// и граничащие интервалы склеены. Противоречивые правила
// (validUntil < validFrom) дают пустой результат, а не ошибку
func Resolve(resource *Resource, windowStart, windowEnd time.Time) []ResolvedInterval {
	if !windowStart.Before(windowEnd) {
		return []ResolvedInterval{}
	}

	window := timerange.NewSpan(windowStart.UTC(), windowEnd.UTC())

	spans := make([]timerange.Span, 0, len(resource.Rules))
	for _, rule := range resource.Rules {
		switch rule.Kind {
		case RuleOneOff:
			if rule.OneOff == nil {
				continue
			}
			if clipped, ok := timerange.NewSpan(rule.OneOff.Start.UTC(), rule.OneOff.End.UTC()).Clip(window); ok {
				spans = append(spans, clipped)
			}
		case RuleRecurring:
			if rule.Recurring == nil {
				continue
			}
			spans = append(spans, expandRecurring(rule.Recurring, window)...)
		}
	}

	merged := timerange.Merge(spans)

	intervals := make([]ResolvedInterval, 0, len(merged))
	for _, s := range merged {
		intervals = append(intervals, ResolvedInterval{
			ResourceID: resource.ID,
			Start:      s.Start,
			End:        s.End,
		})
	}

	return intervals
}

// expandRecurring разворачивает повторяющееся правило в интервалы,
// пересекающие окно. Дни перебираются в часовом поясе правила
func expandRecurring(rule *RecurringRule, window timerange.Span) []timerange.Span {
	loc, err := time.LoadLocation(rule.Timezone)
	if err != nil {
		// Часовой пояс валидируется при приёме правила;
		// неизвестный пояс здесь означает пустой результат, не ошибку
		return nil
	}

	if rule.Days.IsEmpty() {
		return nil
	}

	firstY, firstM, firstD := window.Start.In(loc).Date()
	lastLocal := window.End.In(loc)

	var spans []timerange.Span

	for i := 0; ; i++ {
		day := time.Date(firstY, firstM, firstD+i, 0, 0, 0, 0, loc)
		if day.After(lastLocal) {
			break
		}

		if !rule.Days.Has(day.Weekday()) {
			continue
		}

		// Границы действия сравниваются как календарные даты;
		// validFrom > validUntil не проходит ни один день
		if !rule.activeOn(day) {
			continue
		}

		y, m, d := day.Date()
		start := civilInstant(y, m, d, rule.StartTime, loc)
		end := civilInstant(y, m, d, rule.EndTime, loc)

		// Переходы на летнее/зимнее время могут дать интервал
		// нестандартной длины - принимается как есть
		if !start.Before(end) {
			continue
		}

		if clipped, ok := timerange.NewSpan(start.UTC(), end.UTC()).Clip(window); ok {
			spans = append(spans, clipped)
		}
	}

	return spans
}

// activeOn проверяет, что календарный день входит в границы действия правила
func (r *RecurringRule) activeOn(day time.Time) bool {
	dayDate := dateOrdinal(day)

	if r.ValidFrom != nil && dayDate < dateOrdinal(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && dayDate > dateOrdinal(*r.ValidUntil) {
		return false
	}
	return true
}

// civilInstant конвертирует местное время дня в инстант.
//
// Политика для переходов на летнее/зимнее время: несуществующее местное
// время (весенний пропуск) трактуется по более позднему UTC-смещению,
// так 02:30 в Нью-Йорке 2026-03-08 даёт инстант 06:30 UTC (01:30 EST по
// стене); задублированное местное время (осенний повтор) даёт более
// ранний из двух инстантов. Это соответствует нормализации time.Date
func civilInstant(year int, month time.Month, day int, t types.TimeString, loc *time.Location) time.Time {
	return time.Date(year, month, day, t.Hour(), t.Minute(), 0, 0, loc)
}

// dateOrdinal сводит дату к сравнимому целому YYYYMMDD
func dateOrdinal(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
