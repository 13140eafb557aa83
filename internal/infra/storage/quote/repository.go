package quote

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/StudioHub-AvailabilityService/internal/domain"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/StudioHub-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий сохраненных расценок аренды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расценок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет расценку вместе со строками
// Предполагается вызов внутри транзакции (txmanager), чтобы расценка
// не появилась без своих строк
func (r *Repository) Create(ctx context.Context, quote *domain.StoredQuote) (*domain.StoredQuote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_quotes").
		Columns("public_id", "user_id", "start_at", "end_at", "grand_total").
		Values(quote.PublicID, quote.UserID, quote.StartAt.UTC(), quote.EndAt.UTC(), quote.GrandTotal).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&quote.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	quote.CreatedAt = createdAt.Time

	if len(quote.Lines) > 0 {
		insertBuilder := psqlbuilder.Insert("quote_lines").
			Columns("quote_id", "resource_id", "resource_name", "tier_used", "units_used", "unit_rate", "quantity", "total")

		for _, line := range quote.Lines {
			insertBuilder = insertBuilder.Values(
				quote.ID,
				line.ResourceID,
				line.ResourceName,
				line.TierUsed,
				line.UnitsUsed,
				line.UnitRate,
				line.Quantity,
				line.Total,
			)
		}

		query, args, err = insertBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build lines insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert lines: %v", ErrExecQuery, err)
		}
	}

	return quote, nil
}

// GetByPublicID получает расценку по публичному идентификатору
func (r *Repository) GetByPublicID(ctx context.Context, publicID string) (*domain.StoredQuote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "public_id", "user_id", "start_at", "end_at", "grand_total", "created_at").
		From("booking_quotes").
		Where(squirrel.Eq{"public_id": publicID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - build select query: %v", ErrBuildQuery, err)
	}

	var quote domain.StoredQuote
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&quote.ID,
		&quote.PublicID,
		&quote.UserID,
		&quote.StartAt,
		&quote.EndAt,
		&quote.GrandTotal,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPublicID - scan quote: %v", ErrScanRow, err)
	}
	quote.CreatedAt = createdAt.Time

	if err := r.loadLines(ctx, executor, map[int64]*domain.StoredQuote{quote.ID: &quote}); err != nil {
		return nil, err
	}

	return &quote, nil
}

// GetByUserID получает все расценки пользователя, новые первыми
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.StoredQuote, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "public_id", "user_id", "start_at", "end_at", "grand_total", "created_at").
		From("booking_quotes").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC, id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	quotes := make([]*domain.StoredQuote, 0)
	byID := make(map[int64]*domain.StoredQuote)

	for rows.Next() {
		var quote domain.StoredQuote
		var createdAt sql.NullTime

		err := rows.Scan(
			&quote.ID,
			&quote.PublicID,
			&quote.UserID,
			&quote.StartAt,
			&quote.EndAt,
			&quote.GrandTotal,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		quote.CreatedAt = createdAt.Time

		quotes = append(quotes, &quote)
		byID[quote.ID] = &quote
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	if len(quotes) == 0 {
		return quotes, nil
	}

	if err := r.loadLines(ctx, executor, byID); err != nil {
		return nil, err
	}

	return quotes, nil
}

// loadLines подгружает строки для набора расценок
func (r *Repository) loadLines(ctx context.Context, executor DBExecutor, byID map[int64]*domain.StoredQuote) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	query, args, err := psqlbuilder.Select(
		"id",
		"quote_id",
		"resource_id",
		"resource_name",
		"tier_used",
		"units_used",
		"unit_rate",
		"quantity",
		"total",
	).
		From("quote_lines").
		Where(squirrel.Eq{"quote_id": ids}).
		OrderBy("quote_id ASC, id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadLines - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadLines - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var line domain.StoredQuoteLine
		var quoteID int64

		err := rows.Scan(
			&line.ID,
			&quoteID,
			&line.ResourceID,
			&line.ResourceName,
			&line.TierUsed,
			&line.UnitsUsed,
			&line.UnitRate,
			&line.Quantity,
			&line.Total,
		)
		if err != nil {
			return fmt.Errorf("%w: loadLines - scan row: %v", ErrScanRow, err)
		}

		if quote, ok := byID[quoteID]; ok {
			quote.Lines = append(quote.Lines, line)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadLines - rows error: %v", ErrScanRow, err)
	}

	return nil
}
