package domain

import "errors"

var (
	// ErrInvalidRule возвращается при некорректном правиле доступности
	// Возникает только на этапе приёма данных, никогда в процессе резолва
	ErrInvalidRule = errors.New("domain: invalid availability rule")

	// ErrInvalidDuration возвращается при неположительной длительности аренды
	ErrInvalidDuration = errors.New("domain: invalid rental duration")

	// ErrInvalidQuantity возвращается при неположительном количестве единиц
	ErrInvalidQuantity = errors.New("domain: invalid quantity")

	// ErrIncompleteRateCard возвращается, когда в тарифной карте отсутствует
	// обязательная дневная ставка
	ErrIncompleteRateCard = errors.New("domain: rate card is missing daily rate")

	// ErrInvalidRateCard возвращается при отрицательных ставках в тарифной карте
	ErrInvalidRateCard = errors.New("domain: invalid rate card")
)
