package timerange

import (
	"sort"
	"time"
)

// Span полуоткрытый интервал времени [Start, End)
type Span struct {
	Start time.Time
	End   time.Time
}

// NewSpan создает интервал
func NewSpan(start, end time.Time) Span {
	return Span{Start: start, End: end}
}

// IsEmpty проверяет, что интервал пуст или вырожден (Start >= End)
func (s Span) IsEmpty() bool {
	return !s.Start.Before(s.End)
}

// Duration возвращает длительность интервала
func (s Span) Duration() time.Duration {
	if s.IsEmpty() {
		return 0
	}
	return s.End.Sub(s.Start)
}

// Overlaps проверяет, что интервалы действительно пересекаются
// Граничащие интервалы (конец одного равен началу другого) не пересекаются
func (s Span) Overlaps(other Span) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Touches проверяет, что интервалы пересекаются или граничат
func (s Span) Touches(other Span) bool {
	return !s.Start.After(other.End) && !other.Start.After(s.End)
}

// Contains проверяет, что other целиком лежит внутри s
func (s Span) Contains(other Span) bool {
	return !s.Start.After(other.Start) && !s.End.Before(other.End)
}

// Clip обрезает интервал по границам window
// ok=false, если после обрезки интервал пуст
func (s Span) Clip(window Span) (Span, bool) {
	clipped := s
	if clipped.Start.Before(window.Start) {
		clipped.Start = window.Start
	}
	if clipped.End.After(window.End) {
		clipped.End = window.End
	}
	if clipped.IsEmpty() {
		return Span{}, false
	}
	return clipped, true
}

// Merge сортирует интервалы по началу и склеивает пересекающиеся
// и граничащие в минимальный упорядоченный набор без пересечений.
// Пустые интервалы отбрасываются. Операция идемпотентна:
// Merge(Merge(x)) == Merge(x)
func Merge(spans []Span) []Span {
	filtered := make([]Span, 0, len(spans))
	for _, s := range spans {
		if !s.IsEmpty() {
			filtered = append(filtered, s)
		}
	}

	if len(filtered) == 0 {
		return []Span{}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Start.Equal(filtered[j].Start) {
			return filtered[i].End.Before(filtered[j].End)
		}
		return filtered[i].Start.Before(filtered[j].Start)
	})

	merged := make([]Span, 0, len(filtered))
	current := filtered[0]

	for _, s := range filtered[1:] {
		// Склеиваем, если интервал начинается не позже конца текущего
		if !s.Start.After(current.End) {
			if s.End.After(current.End) {
				current.End = s.End
			}
			continue
		}
		merged = append(merged, current)
		current = s
	}
	merged = append(merged, current)

	return merged
}
