package quotes

import "errors"

var (
	// ErrQuoteNotFound возвращается, когда расценка не найдена
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrAccessDenied возвращается, когда расценка принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
