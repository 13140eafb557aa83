package models

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// QuoteLineResponse позиция расценки в ответе
type QuoteLineResponse struct {
	ResourceID   int64   `json:"resourceId"`
	ResourceName string  `json:"resourceName,omitempty"`
	TierUsed     string  `json:"tierUsed"`
	UnitsUsed    int     `json:"unitsUsed"`
	UnitRate     float64 `json:"unitRate"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
}

// QuoteResponse ответ с данными расценки
type QuoteResponse struct {
	ID         string              `json:"id"` // Публичный UUID
	UserID     int64               `json:"userId"`
	StartAt    time.Time           `json:"startAt"`
	EndAt      time.Time           `json:"endAt"`
	Lines      []QuoteLineResponse `json:"lines"`
	GrandTotal float64             `json:"grandTotal"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// QuoteListResponse ответ со списком расценок
type QuoteListResponse struct {
	Quotes []QuoteResponse `json:"quotes"`
}

// FromDomainQuote конвертирует domain модель в DTO
func FromDomainQuote(q *domain.StoredQuote) *QuoteResponse {
	if q == nil {
		return nil
	}

	resp := &QuoteResponse{
		ID:         q.PublicID,
		UserID:     q.UserID,
		StartAt:    q.StartAt,
		EndAt:      q.EndAt,
		Lines:      make([]QuoteLineResponse, 0, len(q.Lines)),
		GrandTotal: q.GrandTotal,
		CreatedAt:  q.CreatedAt,
	}

	for _, line := range q.Lines {
		resp.Lines = append(resp.Lines, QuoteLineResponse{
			ResourceID:   line.ResourceID,
			ResourceName: line.ResourceName,
			TierUsed:     string(line.TierUsed),
			UnitsUsed:    line.UnitsUsed,
			UnitRate:     line.UnitRate,
			Quantity:     line.Quantity,
			Total:        line.Total,
		})
	}

	return resp
}

// FromDomainQuoteList конвертирует список domain моделей в DTO
func FromDomainQuoteList(quotes []*domain.StoredQuote) *QuoteListResponse {
	resp := &QuoteListResponse{
		Quotes: make([]QuoteResponse, 0, len(quotes)),
	}
	for _, q := range quotes {
		resp.Quotes = append(resp.Quotes, *FromDomainQuote(q))
	}
	return resp
}
