package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const Schema = `"condo-hub"`

// maxInsertRows keeps a single INSERT well under the 65535 bind
// parameters PostgreSQL accepts.
const maxInsertRows = 1000

// DB is satisfied by *pgx.Conn and *pgxpool.Pool.
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Table is a collection stored in PostgreSQL and rewritten in full. Replace
// leaves its transaction open until Commit.
type Table struct {
	db      DB
	name    string
	columns []string
	orderBy []string
	mu      sync.Mutex
	pending pgx.Tx
}

func NewTable(db DB, key string, columns []string, orderBy ...string) *Table {
	return &Table{
		db:      db,
		name:    Schema + "." + key,
		columns: columns,
		orderBy: orderBy,
	}
}

func (t *Table) Select(ctx context.Context) ([]Record, error) {
	sql, args, err := sq.Select(t.columns...).From(t.name).OrderBy(t.orderBy...).ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := t.db.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch %v: %w", t.name, err)
	}

	defer rows.Close()

	records := []Record{}

	for rows.Next() {
		values, err := rows.Values()

		if err != nil {
			return nil, fmt.Errorf("error scanning %v row: %w", t.name, err)
		}

		rec := make(Record, len(t.columns))

		for i, column := range t.columns {
			rec[column] = values[i]
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %v rows: %w", t.name, err)
	}

	return records, nil
}

func (t *Table) Replace(ctx context.Context, records []Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending != nil {
		t.pending.Rollback(ctx)
		t.pending = nil
	}

	queries, err := t.insertQueries(records)

	if err != nil {
		return err
	}

	tx, err := t.db.Begin(ctx)

	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM "+t.name); err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("failed to clear %v: %w", t.name, err)
	}

	for _, q := range queries {
		if _, err := tx.Exec(ctx, q.sql, q.args...); err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("failed to insert into %v: %w", t.name, err)
		}
	}

	t.pending = tx

	return nil
}

func (t *Table) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.pending == nil {
		return nil
	}

	tx := t.pending
	t.pending = nil

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %v: %w", t.name, err)
	}

	return nil
}

func (t *Table) NextID(ctx context.Context) (int, error) {
	sql, args, err := sq.Select("COALESCE(MAX(id), 0) + 1").From(t.name).ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build id query: %w", err)
	}

	var id int
	err = t.db.QueryRow(ctx, sql, args...).Scan(&id)

	if errors.Is(err, pgx.ErrNoRows) {
		return 1, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to compute next id for %v: %w", t.name, err)
	}

	return id, nil
}

type query struct {
	sql  string
	args []any
}

// insertQueries splits records into INSERT statements of at most
// maxInsertRows rows each.
func (t *Table) insertQueries(records []Record) ([]query, error) {
	queries := []query{}

	for start := 0; start < len(records); start += maxInsertRows {
		end := min(start+maxInsertRows, len(records))

		insert := sq.Insert(t.name).
			Columns(t.columns...).
			PlaceholderFormat(sq.Dollar)

		for _, rec := range records[start:end] {
			values := make([]any, 0, len(t.columns))

			for _, column := range t.columns {
				values = append(values, rec[column])
			}

			insert = insert.Values(values...)
		}

		sql, args, err := insert.ToSql()

		if err != nil {
			return nil, fmt.Errorf("failed to build insert query: %w", err)
		}

		queries = append(queries, query{sql: sql, args: args})
	}

	return queries, nil
}
