package price_rental

import (
	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	priceRental "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/price_rental"
)

// PriceRentalRequest HTTP request model
type PriceRentalRequest struct {
	TotalDays int          `json:"totalDays"`
	Items     []RentalItem `json:"items"`
}

// RentalItem позиция аренды
type RentalItem struct {
	ResourceID int64 `json:"resourceId"`
	Quantity   int   `json:"quantity"`
}

// PriceRentalResponse HTTP response model
type PriceRentalResponse struct {
	Quotes     []PriceQuote `json:"quotes"`
	GrandTotal float64      `json:"grandTotal"`
}

// PriceQuote построчный расчет стоимости
type PriceQuote struct {
	ResourceID int64   `json:"resourceId"`
	TierUsed   string  `json:"tierUsed"`
	UnitsUsed  int     `json:"unitsUsed"`
	UnitRate   float64 `json:"unitRate"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *PriceRentalRequest) ToUseCaseRequest() *priceRental.Request {
	items := make([]domain.RentalItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.RentalItem{
			ResourceID: item.ResourceID,
			Quantity:   item.Quantity,
		})
	}

	return &priceRental.Request{
		TotalDays: r.TotalDays,
		Items:     items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *priceRental.Response) *PriceRentalResponse {
	quotes := make([]PriceQuote, len(resp.Quotes))
	for i, q := range resp.Quotes {
		quotes[i] = PriceQuote{
			ResourceID: q.ResourceID,
			TierUsed:   string(q.TierUsed),
			UnitsUsed:  q.UnitsUsed,
			UnitRate:   q.UnitRate,
			Quantity:   q.Quantity,
			Total:      q.Total,
		}
	}

	return &PriceRentalResponse{
		Quotes:     quotes,
		GrandTotal: resp.GrandTotal,
	}
}
