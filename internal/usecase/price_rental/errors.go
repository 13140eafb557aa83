package price_rental

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("price_rental: resource not found")

	// ErrResourceNotRentable возвращается, когда у ресурса нет тарифной карты
	ErrResourceNotRentable = errors.New("price_rental: resource has no rate card")

	// ErrInvalidDuration возвращается при некорректной длительности аренды
	ErrInvalidDuration = errors.New("price_rental: invalid rental duration")

	// ErrInvalidQuantity возвращается при некорректном количестве единиц
	ErrInvalidQuantity = errors.New("price_rental: invalid quantity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("price_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("price_rental: internal error")
)
