package resolve_schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.WindowStart.IsZero() || req.WindowEnd.IsZero() {
		return fmt.Errorf("%w: window start and end are required", ErrInvalidInput)
	}

	// Инвертированное окно не ошибка: резолвер вернет пустой список,
	// но окно больше лимита отклоняем сразу
	if req.WindowEnd.After(req.WindowStart) {
		window := req.WindowEnd.Sub(req.WindowStart)
		if window > time.Duration(domain.MaxScheduleWindowDays)*24*time.Hour {
			return fmt.Errorf("%w: window must not exceed %d days", ErrWindowTooLarge, domain.MaxScheduleWindowDays)
		}
	}

	return nil
}
