package domain

import "fmt"

// RateTier тарифная ступень аренды
type RateTier string

const (
	TierDay   RateTier = "day"
	TierWeek  RateTier = "week"
	TierMonth RateTier = "month"
)

// RateCard тарифная карта ресурса
// Дневная ставка обязательна, недельная и месячная опциональны
// Суммы - непрозрачные числовые единицы, валюта определяется вызывающей стороной
type RateCard struct {
	PricePerDay   float64
	PricePerWeek  *float64
	PricePerMonth *float64
}

// NewRateCard создает тарифную карту с валидацией
// day == nil отклоняется как неполная карта - на этапе конструирования,
// никогда при расчёте цены
func NewRateCard(day *float64, week, month *float64) (*RateCard, error) {
	if day == nil {
		return nil, ErrIncompleteRateCard
	}

	card := &RateCard{
		PricePerDay:   *day,
		PricePerWeek:  week,
		PricePerMonth: month,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate проверяет, что все ставки неотрицательны
func (rc *RateCard) Validate() error {
	if rc.PricePerDay < 0 {
		return fmt.Errorf("%w: negative daily rate", ErrInvalidRateCard)
	}
	if rc.PricePerWeek != nil && *rc.PricePerWeek < 0 {
		return fmt.Errorf("%w: negative weekly rate", ErrInvalidRateCard)
	}
	if rc.PricePerMonth != nil && *rc.PricePerMonth < 0 {
		return fmt.Errorf("%w: negative monthly rate", ErrInvalidRateCard)
	}
	return nil
}

// PriceQuote расчёт стоимости аренды одного ресурса
type PriceQuote struct {
	ResourceID int64
	TierUsed   RateTier
	UnitsUsed  int // Количество тарифных единиц (дней/недель/месяцев), >= 1
	UnitRate   float64
	Quantity   int
	Total      float64
}

// PriceRental подбирает тарифную ступень и считает стоимость аренды
// на totalDays дней для quantity единиц ресурса
//
// Алгоритм жадный, "сначала крупная ступень", без комбинирования ступеней.
// Ступень выбирается по длительности, затем берётся её ставка, если задана:
// - totalDays >= 30: ceil(totalDays/30) месяцев по месячной ставке
// - 7 <= totalDays < 30: ceil(totalDays/7) недель по недельной ставке
// - иначе все дни по дневной ставке
//
// Если ставка выбранной ступени не задана, расчёт падает на дневную ставку
// без комбинирования: аренда на 32 дня при тарифах день+неделя целиком
// считается по дневной ставке, а не как "4 недели + 4 дня".
// Поведение зафиксировано для обратной совместимости
func PriceRental(rateCard RateCard, resourceID int64, totalDays, quantity int) (*PriceQuote, error) {
	if totalDays < MinRentalDays {
		return nil, fmt.Errorf("%w: %d days", ErrInvalidDuration, totalDays)
	}
	if quantity < MinQuantity {
		return nil, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	quote := &PriceQuote{
		ResourceID: resourceID,
		Quantity:   quantity,
	}

	switch {
	case totalDays >= DaysPerMonth && rateCard.PricePerMonth != nil:
		quote.TierUsed = TierMonth
		quote.UnitsUsed = ceilDiv(totalDays, DaysPerMonth)
		quote.UnitRate = *rateCard.PricePerMonth

	case totalDays < DaysPerMonth && totalDays >= DaysPerWeek && rateCard.PricePerWeek != nil:
		quote.TierUsed = TierWeek
		quote.UnitsUsed = ceilDiv(totalDays, DaysPerWeek)
		quote.UnitRate = *rateCard.PricePerWeek

	default:
		quote.TierUsed = TierDay
		quote.UnitsUsed = totalDays
		quote.UnitRate = rateCard.PricePerDay
	}

	quote.Total = quote.UnitRate * float64(quote.UnitsUsed) * float64(quantity)

	return quote, nil
}

// AggregateQuote суммирует стоимости позиций в общий итог
// Чистая сумма без конвертации валют
func AggregateQuote(quotes []PriceQuote) float64 {
	var grandTotal float64
	for _, q := range quotes {
		grandTotal += q.Total
	}
	return grandTotal
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
