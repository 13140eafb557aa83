package check_booking

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	checkBooking "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/check_booking"
)

// CheckBookingRequest HTTP request model
type CheckBookingRequest struct {
	Start      time.Time             `json:"start"`
	End        time.Time             `json:"end"`
	Categories []CategoryRequirement `json:"categories"`
}

// CategoryRequirement требование на категорию ресурсов
type CategoryRequirement struct {
	Category string `json:"category"`
	Quantity int    `json:"quantity,omitempty"`
}

// CheckBookingResponse HTTP response model
// Пустой список конфликтов означает, что заявка теоретически выполнима
type CheckBookingResponse struct {
	Available bool       `json:"available"`
	Conflicts []Conflict `json:"conflicts"`
}

// Conflict сообщение о нехватке ресурсов
type Conflict struct {
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CheckBookingRequest) ToUseCaseRequest() *checkBooking.Request {
	categories := make([]domain.CategoryRequirement, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, domain.CategoryRequirement{
			Category: c.Category,
			Quantity: c.Quantity,
		})
	}

	return &checkBooking.Request{
		Start:              r.Start,
		End:                r.End,
		RequiredCategories: categories,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkBooking.Response) *CheckBookingResponse {
	conflicts := make([]Conflict, len(resp.Conflicts))
	for i, c := range resp.Conflicts {
		conflicts[i] = Conflict{
			Category: c.Category,
			Severity: string(c.Severity),
			Message:  c.Message,
		}
	}

	return &CheckBookingResponse{
		Available: !resp.HasBlockingConflicts(),
		Conflicts: conflicts,
	}
}
