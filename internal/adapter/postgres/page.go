package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/roommatch-backend/internal/domain"
)

// SelectPage runs a COUNT(*) over base and then the page query with the
// given columns, ordering and limit/offset. scan is called once per row.
// base must carry FROM and WHERE but no columns.
func SelectPage[T any](
	ctx context.Context,
	q Querier,
	base sq.SelectBuilder,
	columns []string,
	orderBy []string,
	page domain.Page,
	scan func(pgx.Row) (T, error),
) (domain.PageResult[T], error) {
	page = page.Normalize()

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("count rows: %w", err)
	}

	items := make([]T, 0, min(total, page.Limit))
	if total == 0 || page.Offset >= total {
		return domain.PageResult[T]{Items: items, Total: total}, nil
	}

	listSQL, listArgs, err := base.Columns(columns...).
		OrderBy(orderBy...).
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("build page query: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("query page: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return domain.PageResult[T]{}, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return domain.PageResult[T]{}, fmt.Errorf("iterate rows: %w", err)
	}

	return domain.PageResult[T]{Items: items, Total: total}, nil
}

// CollectRows drains rows through scan.
func CollectRows[T any](rows pgx.Rows, scan func(pgx.Row) (T, error)) ([]T, error) {
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return items, nil
}
