package price_rental

import (
	"context"

	priceRental "github.com/m04kA/StudioHub-AvailabilityService/internal/usecase/price_rental"
)

type PriceRentalUseCase interface {
	Execute(ctx context.Context, req *priceRental.Request) (*priceRental.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
