package catalogservice

import "errors"

var (
	// ErrProfileNotFound возвращается, когда у ресурса нет карточки в каталоге
	ErrProfileNotFound = errors.New("resource has no catalog profile")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что CatalogService недоступен и следует использовать
	// технические имена ресурсов вместо витринных
	ErrServiceDegraded = errors.New("catalogservice unavailable: graceful degradation applied")
)
