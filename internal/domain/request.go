package domain

import (
	"time"
)

// Severity важность обнаруженного конфликта
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// ConflictReport сообщение о нехватке ресурсов для запрошенного окна
// Неизменяемое значение; UI рендерит его напрямую
type ConflictReport struct {
	Category string
	Severity Severity
	Message  string
}

// IsError возвращает true для конфликтов, блокирующих бронирование
func (c ConflictReport) IsError() bool {
	return c.Severity == SeverityError
}

// CategoryRequirement требование на категорию ресурсов в заявке
type CategoryRequirement struct {
	Category string
	Quantity int // Требуемое количество единиц; 0 трактуется как 1
}

// RentalItem позиция аренды: конкретный ресурс и количество единиц
type RentalItem struct {
	ResourceID int64
	Quantity   int
}

// BookingRequest заявка на бронирование: окно времени, требуемые
// категории и арендуемые позиции. Чистое значение без состояния
type BookingRequest struct {
	Start time.Time
	End   time.Time

	RequiredCategories []CategoryRequirement
	Items              []RentalItem
}

// RentalDays возвращает длительность аренды в целых днях:
// ceil((end - start) / 24h)
func (r *BookingRequest) RentalDays() int {
	if !r.Start.Before(r.End) {
		return 0
	}

	dur := r.End.Sub(r.Start)
	days := int(dur / (24 * time.Hour))
	if dur%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Window возвращает запрошенное окно как пару инстантов UTC
func (r *BookingRequest) Window() (time.Time, time.Time) {
	return r.Start.UTC(), r.End.UTC()
}
