package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/types"
)

var (
	// ErrInvalidKind возвращается при неизвестном типе ресурса
	ErrInvalidKind = errors.New("invalid resource kind")

	// ErrInvalidRuleKind возвращается при неизвестном виде правила
	ErrInvalidRuleKind = errors.New("invalid rule kind")

	// ErrInvalidWeekday возвращается при неизвестном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("invalid date")
)

// weekdayLabels имена дней недели в порядке time.Weekday
var weekdayLabels = [...]string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// weekdayNames соответствие имен дней недели значениям time.Weekday
var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Request модели

// RuleRequest правило доступности в запросе
// Для kind="one_off" обязательны start и end,
// для kind="recurring" - days, startTime, endTime и timezone
type RuleRequest struct {
	Kind string `json:"kind"`

	// Поля one_off правила
	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	// Поля recurring правила
	Days       []string `json:"days,omitempty"`
	StartTime  string   `json:"startTime,omitempty"`  // "10:00"
	EndTime    string   `json:"endTime,omitempty"`    // "18:00"
	ValidFrom  *string  `json:"validFrom,omitempty"`  // "2026-01-01"
	ValidUntil *string  `json:"validUntil,omitempty"` // "2026-12-31"

	Timezone string `json:"timezone,omitempty"`
}

// RateCardRequest тарифная карта в запросе
type RateCardRequest struct {
	PricePerDay   *float64 `json:"pricePerDay"`
	PricePerWeek  *float64 `json:"pricePerWeek,omitempty"`
	PricePerMonth *float64 `json:"pricePerMonth,omitempty"`
}

// CreateResourceRequest запрос на создание ресурса
type CreateResourceRequest struct {
	UserID   int64            `json:"userId"`
	Kind     string           `json:"kind"`
	Category *string          `json:"category,omitempty"`
	Rules    []RuleRequest    `json:"rules,omitempty"`
	RateCard *RateCardRequest `json:"rateCard,omitempty"`
}

// UpdateRulesRequest запрос на полную замену правил ресурса
type UpdateRulesRequest struct {
	UserID int64         `json:"userId"`
	Rules  []RuleRequest `json:"rules"`
}

// ListResourcesRequest запрос списка ресурсов с фильтрами
type ListResourcesRequest struct {
	Kind     *string `json:"kind,omitempty"`
	Category *string `json:"category,omitempty"`
}

// Response модели

// RuleResponse правило доступности в ответе
type RuleResponse struct {
	ID   int64  `json:"id"`
	Kind string `json:"kind"`

	Start *time.Time `json:"start,omitempty"`
	End   *time.Time `json:"end,omitempty"`

	Days       []string `json:"days,omitempty"`
	StartTime  string   `json:"startTime,omitempty"`
	EndTime    string   `json:"endTime,omitempty"`
	ValidFrom  *string  `json:"validFrom,omitempty"`
	ValidUntil *string  `json:"validUntil,omitempty"`

	Timezone string `json:"timezone,omitempty"`
}

// RateCardResponse тарифная карта в ответе
type RateCardResponse struct {
	PricePerDay   float64  `json:"pricePerDay"`
	PricePerWeek  *float64 `json:"pricePerWeek,omitempty"`
	PricePerMonth *float64 `json:"pricePerMonth,omitempty"`
}

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID       int64             `json:"id"`
	Kind     string            `json:"kind"`
	Category *string           `json:"category,omitempty"`
	Rules    []RuleResponse    `json:"rules"`
	RateCard *RateCardResponse `json:"rateCard,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResourceListResponse ответ со списком ресурсов
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
}

// Методы конвертации

// ToDomainKind конвертирует строку в domain.ResourceKind
func ToDomainKind(kind string) (domain.ResourceKind, error) {
	k := domain.ResourceKind(kind)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
	return k, nil
}

// ToDomainRule конвертирует RuleRequest в domain модель
func (r *RuleRequest) ToDomainRule() (domain.AvailabilityRule, error) {
	switch domain.RuleKind(r.Kind) {
	case domain.RuleOneOff:
		rule := domain.AvailabilityRule{
			Kind:   domain.RuleOneOff,
			OneOff: &domain.OneOffRule{Timezone: r.Timezone},
		}
		if r.Start != nil {
			rule.OneOff.Start = r.Start.UTC()
		}
		if r.End != nil {
			rule.OneOff.End = r.End.UTC()
		}
		return rule, nil

	case domain.RuleRecurring:
		days, err := toDaySet(r.Days)
		if err != nil {
			return domain.AvailabilityRule{}, err
		}

		recurring := &domain.RecurringRule{
			Days:      days,
			StartTime: types.TimeString(r.StartTime),
			EndTime:   types.TimeString(r.EndTime),
			Timezone:  r.Timezone,
		}

		if r.ValidFrom != nil {
			t, err := time.Parse(domain.DateFormat, *r.ValidFrom)
			if err != nil {
				return domain.AvailabilityRule{}, fmt.Errorf("%w: validFrom %q", ErrInvalidDate, *r.ValidFrom)
			}
			recurring.ValidFrom = &t
		}
		if r.ValidUntil != nil {
			t, err := time.Parse(domain.DateFormat, *r.ValidUntil)
			if err != nil {
				return domain.AvailabilityRule{}, fmt.Errorf("%w: validUntil %q", ErrInvalidDate, *r.ValidUntil)
			}
			recurring.ValidUntil = &t
		}

		return domain.AvailabilityRule{
			Kind:      domain.RuleRecurring,
			Recurring: recurring,
		}, nil

	default:
		return domain.AvailabilityRule{}, fmt.Errorf("%w: %q", ErrInvalidRuleKind, r.Kind)
	}
}

// ToDomainRules конвертирует список правил в domain модели
func ToDomainRules(rules []RuleRequest) ([]domain.AvailabilityRule, error) {
	result := make([]domain.AvailabilityRule, 0, len(rules))
	for _, r := range rules {
		rule, err := r.ToDomainRule()
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, nil
}

// ToDomainRateCard конвертирует RateCardRequest в domain модель
func (r *RateCardRequest) ToDomainRateCard() (*domain.RateCard, error) {
	return domain.NewRateCard(r.PricePerDay, r.PricePerWeek, r.PricePerMonth)
}

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(res *domain.Resource) *ResourceResponse {
	if res == nil {
		return nil
	}

	resp := &ResourceResponse{
		ID:        res.ID,
		Kind:      string(res.Kind),
		Category:  res.Category,
		Rules:     make([]RuleResponse, 0, len(res.Rules)),
		CreatedAt: res.CreatedAt,
		UpdatedAt: res.UpdatedAt,
	}

	for _, rule := range res.Rules {
		resp.Rules = append(resp.Rules, fromDomainRule(rule))
	}

	if res.RateCard != nil {
		resp.RateCard = &RateCardResponse{
			PricePerDay:   res.RateCard.PricePerDay,
			PricePerWeek:  res.RateCard.PricePerWeek,
			PricePerMonth: res.RateCard.PricePerMonth,
		}
	}

	return resp
}

// FromDomainResourceList конвертирует список domain моделей в DTO
func FromDomainResourceList(resources []*domain.Resource) *ResourceListResponse {
	resp := &ResourceListResponse{
		Resources: make([]ResourceResponse, 0, len(resources)),
	}
	for _, res := range resources {
		resp.Resources = append(resp.Resources, *FromDomainResource(res))
	}
	return resp
}

func fromDomainRule(rule domain.AvailabilityRule) RuleResponse {
	resp := RuleResponse{
		ID:   rule.ID,
		Kind: string(rule.Kind),
	}

	switch rule.Kind {
	case domain.RuleOneOff:
		if rule.OneOff != nil {
			start := rule.OneOff.Start
			end := rule.OneOff.End
			resp.Start = &start
			resp.End = &end
			resp.Timezone = rule.OneOff.Timezone
		}
	case domain.RuleRecurring:
		if rule.Recurring != nil {
			resp.Days = fromDaySet(rule.Recurring.Days)
			resp.StartTime = rule.Recurring.StartTime.String()
			resp.EndTime = rule.Recurring.EndTime.String()
			resp.Timezone = rule.Recurring.Timezone
			if rule.Recurring.ValidFrom != nil {
				s := rule.Recurring.ValidFrom.Format(domain.DateFormat)
				resp.ValidFrom = &s
			}
			if rule.Recurring.ValidUntil != nil {
				s := rule.Recurring.ValidUntil.Format(domain.DateFormat)
				resp.ValidUntil = &s
			}
		}
	}

	return resp
}

func toDaySet(names []string) (domain.DaySet, error) {
	var days []time.Weekday
	for _, name := range names {
		d, ok := weekdayNames[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, name)
		}
		days = append(days, d)
	}
	return domain.NewDaySet(days...), nil
}

func fromDaySet(s domain.DaySet) []string {
	names := make([]string, 0, 7)
	for _, d := range s.List() {
		names = append(names, weekdayLabels[d])
	}
	return names
}
