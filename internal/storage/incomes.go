package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Veraticus/the-income-must-flow/internal/common"
	"github.com/Veraticus/the-income-must-flow/internal/model"
	"github.com/Veraticus/the-income-must-flow/internal/service"
	"github.com/shopspring/decimal"
)

// AddIncome appends a record to the store and sets its local ID.
func (s *SQLiteStorage) AddIncome(ctx context.Context, record *model.IncomeRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateIncome(record); err != nil {
		return err
	}

	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	var raw sql.NullString
	if len(record.Raw) > 0 {
		raw = sql.NullString{String: string(record.Raw), Valid: true}
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO incomes (remote_id, date, income_category, description, total, raw, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, nullIfEmpty(record.RemoteID), record.Date, record.IncomeCategory,
		record.Description, record.Total.String(), raw, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert income: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get income id: %w", err)
	}
	record.ID = id
	return nil
}

// GetIncome returns a single record by local ID.
func (s *SQLiteStorage) GetIncome(ctx context.Context, id int64) (*model.IncomeRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, selectIncomes+` WHERE id = ?`, id)
	record, err := scanIncome(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("income %d: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

// ListIncomes returns records newest first, narrowed by filter.
func (s *SQLiteStorage) ListIncomes(ctx context.Context, filter service.IncomeFilter) ([]model.IncomeRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	var (
		where []string
		args  []any
	)
	if filter.Category != "" {
		where = append(where, "income_category = ?")
		args = append(args, filter.Category)
	}
	if filter.From != "" {
		where = append(where, "date >= ?")
		args = append(args, filter.From)
	}
	if filter.To != "" {
		where = append(where, "date <= ?")
		args = append(args, filter.To)
	}

	query := selectIncomes
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY date DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.IncomeRecord
	for rows.Next() {
		record, scanErr := scanIncome(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate incomes: %w", err)
	}
	return records, nil
}

// GetIncomeSummary totals every record per category, largest total first.
// Totals are summed as decimals; SQLite would round them through float.
func (s *SQLiteStorage) GetIncomeSummary(ctx context.Context) ([]service.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT income_category, total FROM incomes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query income summary: %w", err)
	}
	defer func() { _ = rows.Close() }()

	index := make(map[string]int)
	var summary []service.CategoryTotal
	for rows.Next() {
		var category, total string
		if err := rows.Scan(&category, &total); err != nil {
			return nil, fmt.Errorf("failed to scan income summary: %w", err)
		}
		amount, err := decimal.NewFromString(total)
		if err != nil {
			return nil, fmt.Errorf("%w: total %q for %s", common.ErrDatabaseCorrupted, total, category)
		}

		i, ok := index[category]
		if !ok {
			i = len(summary)
			index[category] = i
			summary = append(summary, service.CategoryTotal{Category: category})
		}
		summary[i].Total = summary[i].Total.Add(amount)
		summary[i].Count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate income summary: %w", err)
	}

	sortSummary(summary)
	return summary, nil
}

// CountIncomes returns the number of stored records.
func (s *SQLiteStorage) CountIncomes(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM incomes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count incomes: %w", err)
	}
	return count, nil
}

const selectIncomes = `SELECT id, remote_id, date, income_category, description, total, raw, created_at FROM incomes`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIncome(row rowScanner) (*model.IncomeRecord, error) {
	var (
		record    model.IncomeRecord
		remoteID  sql.NullString
		raw       sql.NullString
		total     string
		createdAt sql.NullTime
	)
	err := row.Scan(&record.ID, &remoteID, &record.Date, &record.IncomeCategory,
		&record.Description, &total, &raw, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan income: %w", err)
	}

	amount, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("%w: income %d total %q", common.ErrDatabaseCorrupted, record.ID, total)
	}
	record.Total = amount
	record.RemoteID = remoteID.String
	if raw.Valid {
		record.Raw = []byte(raw.String)
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	return &record, nil
}

func sortSummary(summary []service.CategoryTotal) {
	sort.SliceStable(summary, func(i, j int) bool {
		return summary[i].Total.GreaterThan(summary[j].Total)
	})
}

func nullIfEmpty(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
