package create_quote

import "errors"

var (
	// ErrResourceNotFound возвращается, когда ресурс из позиции не найден
	ErrResourceNotFound = errors.New("create_quote: resource not found")

	// ErrResourceNotRentable возвращается, когда у ресурса нет тарифной карты
	ErrResourceNotRentable = errors.New("create_quote: resource has no rate card")

	// ErrBlockingConflicts возвращается, когда заявка не может быть
	// выполнена: расценка с блокирующими конфликтами не сохраняется
	ErrBlockingConflicts = errors.New("create_quote: booking request has blocking conflicts")

	// ErrWindowInPast возвращается, когда окно аренды целиком в прошлом
	ErrWindowInPast = errors.New("create_quote: rental window is in the past")

	// ErrInvalidDuration возвращается при некорректной длительности аренды
	ErrInvalidDuration = errors.New("create_quote: invalid rental duration")

	// ErrInvalidQuantity возвращается при некорректном количестве единиц
	ErrInvalidQuantity = errors.New("create_quote: invalid quantity")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_quote: internal error")
)
