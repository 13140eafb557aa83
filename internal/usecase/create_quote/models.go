package create_quote

import (
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// Request модель запроса на создание расценки
type Request struct {
	UserID int64 // ID пользователя, от имени которого создается расценка

	Start time.Time // Начало окна аренды (UTC)
	End   time.Time // Конец окна аренды (UTC)

	RequiredCategories []domain.CategoryRequirement // Требуемые категории (опционально)
	Items              []domain.RentalItem          // Арендуемые позиции
}

// Response модель ответа с сохраненной расценкой
type Response struct {
	Quote     *domain.StoredQuote     // Сохраненная расценка
	Conflicts []domain.ConflictReport // Неблокирующие предупреждения (severity "warning")
}
