package resources

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInvalidRule возвращается при структурно некорректном правиле доступности
	ErrInvalidRule = errors.New("invalid availability rule")

	// ErrInvalidRateCard возвращается при некорректной тарифной карте
	ErrInvalidRateCard = errors.New("invalid rate card")

	// ErrTooManyRules возвращается при превышении лимита правил на ресурс
	ErrTooManyRules = errors.New("too many availability rules")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
