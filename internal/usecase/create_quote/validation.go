package create_quote

import (
	"fmt"
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one rental item is required", ErrInvalidInput)
	}

	for _, item := range req.Items {
		if item.ResourceID <= 0 {
			return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
		}
		if item.Quantity < domain.MinQuantity || item.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity must be between %d and %d", ErrInvalidQuantity, domain.MinQuantity, domain.MaxQuantity)
		}
	}

	for _, rc := range req.RequiredCategories {
		if rc.Category == "" {
			return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
		}
		if rc.Quantity < 0 || rc.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: category quantity must be between 0 and %d", ErrInvalidQuantity, domain.MaxQuantity)
		}
	}

	return nil
}

// isWindowInPast проверяет, что окно аренды закончилось раньше
// сегодняшнего дня. Сравниваются только даты: заявка на сегодня валидна
func isWindowInPast(end, now time.Time) bool {
	endOnly := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return endOnly.Before(nowOnly)
}
