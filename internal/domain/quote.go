package domain

import "time"

// BookingQuote итог расчёта заявки: конфликты доступности,
// расчёт стоимости по позициям и общая сумма
type BookingQuote struct {
	Conflicts  []ConflictReport
	Quotes     []PriceQuote
	GrandTotal float64
}

// HasBlockingConflicts возвращает true, если среди конфликтов есть
// блокирующие (severity "error")
func (q *BookingQuote) HasBlockingConflicts() bool {
	for _, c := range q.Conflicts {
		if c.IsError() {
			return true
		}
	}
	return false
}

// StoredQuote сохранённый расчёт заявки (история расчётов пользователя)
type StoredQuote struct {
	ID       int64
	PublicID string // UUID для внешних ссылок
	UserID   int64

	StartAt time.Time
	EndAt   time.Time

	Lines      []StoredQuoteLine
	GrandTotal float64

	CreatedAt time.Time
}

// StoredQuoteLine позиция сохранённого расчёта
type StoredQuoteLine struct {
	ID           int64
	ResourceID   int64
	ResourceName string // Денормализованное имя из каталога (может быть пустым при деградации)
	TierUsed     RateTier
	UnitsUsed    int
	UnitRate     float64
	Quantity     int
	Total        float64
}
