package check_booking

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// Request модель запроса на проверку доступности
type Request struct {
	Start              time.Time                    // Начало окна (UTC)
	End                time.Time                    // Конец окна (UTC)
	RequiredCategories []domain.CategoryRequirement // Требуемые категории с количеством
}

// Response модель ответа со списком конфликтов
// Пустой список означает, что заявка теоретически выполнима
type Response struct {
	Conflicts []domain.ConflictReport
}

// HasBlockingConflicts возвращает true, если среди конфликтов есть блокирующие
func (r *Response) HasBlockingConflicts() bool {
	for _, c := range r.Conflicts {
		if c.IsError() {
			return true
		}
	}
	return false
}
