package price_rental

import (
	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// Request модель запроса на расчет стоимости аренды
type Request struct {
	TotalDays int                 // Длительность аренды в целых днях
	Items     []domain.RentalItem // Позиции аренды
}

// Response модель ответа с расчетом стоимости
type Response struct {
	Quotes     []domain.PriceQuote // Построчный расчет по позициям
	GrandTotal float64             // Итоговая сумма по всем позициям
}
