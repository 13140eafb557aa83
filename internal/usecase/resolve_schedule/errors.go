package resolve_schedule

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс не найден
	ErrResourceNotFound = errors.New("resolve_schedule: resource not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_schedule: invalid input data")

	// ErrWindowTooLarge возвращается, когда запрошенное окно превышает лимит
	ErrWindowTooLarge = errors.New("resolve_schedule: requested window is too large")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_schedule: internal error")
)
