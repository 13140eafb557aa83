package domain

import "time"

// ResourceKind тип бронируемого ресурса
type ResourceKind string

const (
	KindStudio    ResourceKind = "studio"
	KindEquipment ResourceKind = "equipment"
	KindService   ResourceKind = "service"
)

// IsValid проверяет, что тип ресурса известен
func (k ResourceKind) IsValid() bool {
	return k == KindStudio || k == KindEquipment || k == KindService
}

// Resource бронируемая сущность маркетплейса: студийная комната,
// единица арендного оборудования или слот услуги
type Resource struct {
	ID       int64
	Kind     ResourceKind
	Category *string // Категория оборудования/услуги (например, "microphone"), nil для студий

	// Rules правила доступности ресурса. Правила могут пересекаться:
	// ресурс доступен, если его покрывает хотя бы одно правило
	Rules []AvailabilityRule

	// RateCard тарифная карта; обязательна для equipment и service
	RateCard *RateCard

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CategoryName возвращает категорию ресурса или пустую строку
func (r *Resource) CategoryName() string {
	if r.Category == nil {
		return ""
	}
	return *r.Category
}

// IsRentable возвращает true, если ресурс тарифицируется (имеет тарифную карту)
func (r *Resource) IsRentable() bool {
	return r.RateCard != nil
}

// Validate проверяет консистентность ресурса и всех его правил
// Вызывается на этапе приёма данных (создание/обновление), не при резолве
func (r *Resource) Validate() error {
	if !r.Kind.IsValid() {
		return ErrInvalidRule
	}

	for _, rule := range r.Rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}

	if r.RateCard != nil {
		if err := r.RateCard.Validate(); err != nil {
			return err
		}
	}

	return nil
}
