package create_quote

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	createQuote "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/create_quote"
)

// CreateQuoteRequest HTTP request model
type CreateQuoteRequest struct {
	Start      time.Time             `json:"start"`
	End        time.Time             `json:"end"`
	Categories []CategoryRequirement `json:"categories,omitempty"`
	Items      []RentalItem          `json:"items"`
}

// CategoryRequirement требование на категорию ресурсов
type CategoryRequirement struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity,omitempty"`
}

// RentalItem позиция аренды
type RentalItem struct {
	ResourceID int64 `json:"resourceId"`
	Quantity   int   `json:"quantity"`
}

// CreateQuoteResponse HTTP response model
type CreateQuoteResponse struct {
	ID         string      `json:"id"` // Публичный UUID расценки
	UserID     int64       `json:"userId"`
	StartAt    time.Time   `json:"startAt"`
	EndAt      time.Time   `json:"endAt"`
	Lines      []QuoteLine `json:"lines"`
	GrandTotal float64     `json:"grandTotal"`
	Conflicts  []Conflict  `json:"conflicts,omitempty"` // Неблокирующие предупреждения
	CreatedAt  time.Time   `json:"createdAt"`
}

// QuoteLine позиция расценки
type QuoteLine struct {
	ResourceID   int64   `json:"resourceId"`
	ResourceName string  `json:"resourceName,omitempty"`
	TierUsed     string  `json:"tierUsed"`
	UnitsUsed    int     `json:"unitsUsed"`
	UnitRate     float64 `json:"unitRate"`
	Quantity     int     `json:"quantity"`
	Total        float64 `json:"total"`
}

// Conflict сообщение о нехватке ресурсов
type Conflict struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ConflictsResponse ответ с блокирующими конфликтами (409)
type ConflictsResponse struct {
	Message   string     `json:"message"`
	Conflicts []Conflict `json:"conflicts"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateQuoteRequest) ToUseCaseRequest(userID int64) *createQuote.Request {
	categories := make([]domain.CategoryRequirement, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, domain.CategoryRequirement{
			Category: c.Category,
			Quantity: c.Quantity,
		})
	}

	items := make([]domain.RentalItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, domain.RentalItem{
			ResourceID: item.ResourceID,
			Quantity:   item.Quantity,
		})
	}

	return &createQuote.Request{
		UserID:             userID,
		Start:              r.Start,
		End:                r.End,
		RequiredCategories: categories,
		Items:              items,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createQuote.Response) *CreateQuoteResponse {
	quote := resp.Quote

	lines := make([]QuoteLine, len(quote.Lines))
	for i, line := range quote.Lines {
		lines[i] = QuoteLine{
			ResourceID:   line.ResourceID,
			ResourceName: line.ResourceName,
			TierUsed:     string(line.TierUsed),
			UnitsUsed:    line.UnitsUsed,
			UnitRate:     line.UnitRate,
			Quantity:     line.Quantity,
			Total:        line.Total,
		}
	}

	return &CreateQuoteResponse{
		ID:         quote.PublicID,
		UserID:     quote.UserID,
		StartAt:    quote.StartAt,
		EndAt:      quote.EndAt,
		Lines:      lines,
		GrandTotal: quote.GrandTotal,
		Conflicts:  fromDomainConflicts(resp.Conflicts),
		CreatedAt:  quote.CreatedAt,
	}
}

func fromDomainConflicts(conflicts []domain.ConflictReport) []Conflict {
	result := make([]Conflict, len(conflicts))
	for i, c := range conflicts {
		result[i] = Conflict{
			Category: c.Category,
			Severity: string(c.Severity),
			Message:  c.Message,
		}
	}
	return result
}
