package resource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/psqlbuilder"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/types"
)

// Filter фильтр списка ресурсов
type Filter struct {
	Kind       *domain.ResourceKind // Фильтр по типу (опционально)
	Category   *string              // Фильтр по категории (опционально)
	Categories []string             // Фильтр по набору категорий (для пула детектора)
}

// Repository репозиторий каталога ресурсов: ресурсы, правила
// доступности и тарифные карты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает ресурс вместе с правилами и тарифной картой
// Предполагается вызов внутри транзакции (txmanager), чтобы ресурс
// не появился в каталоге без своих правил
func (r *Repository) Create(ctx context.Context, resource *domain.Resource) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("resources").
		Columns("kind", "category").
		Values(resource.Kind, resource.Category).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	if err := r.insertRules(ctx, executor, resource.ID, resource.Rules); err != nil {
		return nil, err
	}

	if resource.RateCard != nil {
		if err := r.upsertRateCard(ctx, executor, resource.ID, resource.RateCard); err != nil {
			return nil, err
		}
	}

	return resource, nil
}

// GetByID получает ресурс с правилами и тарифной картой
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "kind", "category", "created_at", "updated_at").
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var resource domain.Resource
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&resource.ID,
		&resource.Kind,
		&resource.Category,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan resource: %v", ErrScanRow, err)
	}

	resource.CreatedAt = createdAt.Time
	resource.UpdatedAt = updatedAt.Time

	if err := r.loadRules(ctx, executor, map[int64]*domain.Resource{resource.ID: &resource}); err != nil {
		return nil, err
	}
	if err := r.loadRateCards(ctx, executor, map[int64]*domain.Resource{resource.ID: &resource}); err != nil {
		return nil, err
	}

	return &resource, nil
}

// List получает список ресурсов с правилами и тарифными картами
// Поддерживает фильтрацию по типу, категории и набору категорий
func (r *Repository) List(ctx context.Context, filter Filter) ([]*domain.Resource, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "kind", "category", "created_at", "updated_at").
		From("resources").
		OrderBy("id ASC")

	if filter.Kind != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"kind": *filter.Kind})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if len(filter.Categories) > 0 {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": filter.Categories})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]*domain.Resource, 0)
	byID := make(map[int64]*domain.Resource)

	for rows.Next() {
		var resource domain.Resource
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&resource.ID,
			&resource.Kind,
			&resource.Category,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		resource.CreatedAt = createdAt.Time
		resource.UpdatedAt = updatedAt.Time

		resources = append(resources, &resource)
		byID[resource.ID] = &resource
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	if len(resources) == 0 {
		return resources, nil
	}

	if err := r.loadRules(ctx, executor, byID); err != nil {
		return nil, err
	}
	if err := r.loadRateCards(ctx, executor, byID); err != nil {
		return nil, err
	}

	return resources, nil
}

// ReplaceRules целиком заменяет правила доступности ресурса
// Предполагается вызов внутри транзакции, чтобы не оставить ресурс
// без правил при частичном сбое
func (r *Repository) ReplaceRules(ctx context.Context, resourceID int64, rules []domain.AvailabilityRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Проверяем существование ресурса
	query, args, err := psqlbuilder.Select("id").
		From("resources").
		Where(squirrel.Eq{"id": resourceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRules - build select query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		if err == sql.ErrNoRows {
			return ErrResourceNotFound
		}
		return fmt.Errorf("%w: ReplaceRules - check resource: %v", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"resource_id": resourceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRules - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRules - delete old rules: %v", ErrExecQuery, err)
	}

	if err := r.insertRules(ctx, executor, resourceID, rules); err != nil {
		return err
	}

	// Обновляем updated_at ресурса
	query, args, err = psqlbuilder.Update("resources").
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": resourceID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceRules - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceRules - touch resource: %v", ErrExecQuery, err)
	}

	return nil
}

// Delete удаляет ресурс вместе с правилами и тарифной картой (ON DELETE CASCADE)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrResourceNotFound
	}

	return nil
}

// insertRules вставляет правила доступности ресурса
func (r *Repository) insertRules(ctx context.Context, executor DBExecutor, resourceID int64, rules []domain.AvailabilityRule) error {
	if len(rules) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("availability_rules").
		Columns(
			"resource_id",
			"kind",
			"start_at",
			"end_at",
			"days_of_week",
			"start_time",
			"end_time",
			"timezone",
			"valid_from",
			"valid_until",
		)

	for _, rule := range rules {
		switch rule.Kind {
		case domain.RuleOneOff:
			insertBuilder = insertBuilder.Values(
				resourceID,
				rule.Kind,
				rule.OneOff.Start.UTC(),
				rule.OneOff.End.UTC(),
				nil,
				nil,
				nil,
				rule.OneOff.Timezone,
				nil,
				nil,
			)
		case domain.RuleRecurring:
			insertBuilder = insertBuilder.Values(
				resourceID,
				rule.Kind,
				nil,
				nil,
				int16(rule.Recurring.Days),
				rule.Recurring.StartTime,
				rule.Recurring.EndTime,
				rule.Recurring.Timezone,
				rule.Recurring.ValidFrom,
				rule.Recurring.ValidUntil,
			)
		default:
			return fmt.Errorf("%w: insertRules - unknown rule kind %q", ErrMalformedRule, rule.Kind)
		}
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertRules - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertRules - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// upsertRateCard создает или обновляет тарифную карту ресурса
func (r *Repository) upsertRateCard(ctx context.Context, executor DBExecutor, resourceID int64, card *domain.RateCard) error {
	query, args, err := psqlbuilder.Insert("rate_cards").
		Columns("resource_id", "price_per_day", "price_per_week", "price_per_month").
		Values(resourceID, card.PricePerDay, card.PricePerWeek, card.PricePerMonth).
		Suffix("ON CONFLICT (resource_id) DO UPDATE SET " +
			"price_per_day = EXCLUDED.price_per_day, " +
			"price_per_week = EXCLUDED.price_per_week, " +
			"price_per_month = EXCLUDED.price_per_month").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: upsertRateCard - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: upsertRateCard - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// loadRules подгружает правила доступности для набора ресурсов
func (r *Repository) loadRules(ctx context.Context, executor DBExecutor, byID map[int64]*domain.Resource) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"kind",
		"start_at",
		"end_at",
		"days_of_week",
		"start_time",
		"end_time",
		"timezone",
		"valid_from",
		"valid_until",
	).
		From("availability_rules").
		Where(squirrel.Eq{"resource_id": ids}).
		OrderBy("resource_id ASC, id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ruleID     int64
			resourceID int64
			kind       domain.RuleKind
			startAt    sql.NullTime
			endAt      sql.NullTime
			daysOfWeek sql.NullInt16
			startTime  types.TimeString
			endTime    types.TimeString
			timezone   string
			validFrom  sql.NullTime
			validUntil sql.NullTime
		)

		err := rows.Scan(
			&ruleID,
			&resourceID,
			&kind,
			&startAt,
			&endAt,
			&daysOfWeek,
			&startTime,
			&endTime,
			&timezone,
			&validFrom,
			&validUntil,
		)
		if err != nil {
			return fmt.Errorf("%w: loadRules - scan row: %v", ErrScanRow, err)
		}

		rule, err := assembleRule(ruleID, kind, startAt, endAt, daysOfWeek, startTime, endTime, timezone, validFrom, validUntil)
		if err != nil {
			return err
		}

		if resource, ok := byID[resourceID]; ok {
			resource.Rules = append(resource.Rules, rule)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadRules - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// loadRateCards подгружает тарифные карты для набора ресурсов
func (r *Repository) loadRateCards(ctx context.Context, executor DBExecutor, byID map[int64]*domain.Resource) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select("resource_id", "price_per_day", "price_per_week", "price_per_month").
		From("rate_cards").
		Where(squirrel.Eq{"resource_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadRateCards - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadRateCards - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resourceID    int64
			pricePerDay   float64
			pricePerWeek  sql.NullFloat64
			pricePerMonth sql.NullFloat64
		)

		if err := rows.Scan(&resourceID, &pricePerDay, &pricePerWeek, &pricePerMonth); err != nil {
			return fmt.Errorf("%w: loadRateCards - scan row: %v", ErrScanRow, err)
		}

		card := &domain.RateCard{PricePerDay: pricePerDay}
		if pricePerWeek.Valid {
			card.PricePerWeek = &pricePerWeek.Float64
		}
		if pricePerMonth.Valid {
			card.PricePerMonth = &pricePerMonth.Float64
		}

		if resource, ok := byID[resourceID]; ok {
			resource.RateCard = card
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadRateCards - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// assembleRule собирает tagged variant правила из колонок БД
func assembleRule(
	id int64,
	kind domain.RuleKind,
	startAt, endAt sql.NullTime,
	daysOfWeek sql.NullInt16,
	startTime, endTime types.TimeString,
	timezone string,
	validFrom, validUntil sql.NullTime,
) (domain.AvailabilityRule, error) {
	switch kind {
	case domain.RuleOneOff:
		if !startAt.Valid || !endAt.Valid {
			return domain.AvailabilityRule{}, fmt.Errorf("%w: one_off rule id=%d missing start/end", ErrMalformedRule, id)
		}
		return domain.AvailabilityRule{
			ID:   id,
			Kind: domain.RuleOneOff,
			OneOff: &domain.OneOffRule{
				Start:    startAt.Time.UTC(),
				End:      endAt.Time.UTC(),
				Timezone: timezone,
			},
		}, nil

	case domain.RuleRecurring:
		if !daysOfWeek.Valid {
			return domain.AvailabilityRule{}, fmt.Errorf("%w: recurring rule id=%d missing days_of_week", ErrMalformedRule, id)
		}
		recurring := &domain.RecurringRule{
			Days:      domain.DaySet(daysOfWeek.Int16),
			StartTime: startTime,
			EndTime:   endTime,
			Timezone:  timezone,
		}
		if validFrom.Valid {
			t := validFrom.Time
			recurring.ValidFrom = &t
		}
		if validUntil.Valid {
			t := validUntil.Time
			recurring.ValidUntil = &t
		}
		return domain.AvailabilityRule{
			ID:        id,
			Kind:      domain.RuleRecurring,
			Recurring: recurring,
		}, nil

	default:
		return domain.AvailabilityRule{}, fmt.Errorf("%w: rule id=%d unknown kind %q", ErrMalformedRule, id, kind)
	}
}
