package check_booking

import (
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidInput)
	}

	if len(req.RequiredCategories) == 0 {
		return fmt.Errorf("%w: at least one category requirement is required", ErrInvalidInput)
	}

	for _, rc := range req.RequiredCategories {
		if rc.Category == "" {
			return fmt.Errorf("%w: category must not be empty", ErrInvalidInput)
		}
		if len(rc.Category) > domain.MaxCategoryLen {
			return fmt.Errorf("%w: category must not exceed %d characters", ErrInvalidInput, domain.MaxCategoryLen)
		}
		if rc.Quantity < 0 || rc.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: quantity must be between 0 and %d", ErrInvalidInput, domain.MaxQuantity)
		}
	}

	return nil
}
