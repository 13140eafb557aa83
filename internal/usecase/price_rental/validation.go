package price_rental

import (
	"fmt"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TotalDays < domain.MinRentalDays {
		return fmt.Errorf("%w: totalDays must be at least %d", ErrInvalidDuration, domain.MinRentalDays)
	}

	if req.TotalDays > domain.MaxRentalDays {
		return fmt.Errorf("%w: totalDays must not exceed %d", ErrInvalidDuration, domain.MaxRentalDays)
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

	return nil
}
