// Package sqlstore implements the repository contracts over database/sql.
// Queries use $n placeholders in ascending order so the same SQL runs on
// SQLite and PostgreSQL.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"pointboard/internal/model"
	"pointboard/internal/repository"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// Mapping describes how an entity type is laid out in a table.
type Mapping[T model.Entity] struct {
	Table string
	// Columns lists the persisted columns; Columns[0] must be the id column.
	Columns []string
	// Values returns the column values of e in Columns order.
	Values func(e *T) []any
	// Scan reads one row selected with Columns.
	Scan func(r rowScanner) (T, error)
	// SetID writes a generated id into e.
	SetID func(e *T, id uuid.UUID)
}

// Table is a generic repository.Repository backed by one SQL table.
// It contains no business logic.
type Table[T model.Entity] struct {
	db *sql.DB
	m  Mapping[T]

	qSelect   string
	qSelectID string
	qInsert   string
	qUpdate   string
	qDelete   string
}

// NewTable builds the statements for m once.
func NewTable[T model.Entity](db *sql.DB, m Mapping[T]) *Table[T] {
	cols := strings.Join(m.Columns, ", ")
	id := m.Columns[0]

	ph := make([]string, len(m.Columns))
	for i := range m.Columns {
		ph[i] = fmt.Sprintf("$%d", i+1)
	}
	set := make([]string, 0, len(m.Columns)-1)
	for i, c := range m.Columns[1:] {
		set = append(set, fmt.Sprintf("%s = $%d", c, i+1))
	}

	return &Table[T]{
		db:        db,
		m:         m,
		qSelect:   fmt.Sprintf("SELECT %s FROM %s", cols, m.Table),
		qSelectID: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", cols, m.Table, id),
		qInsert:   fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", m.Table, cols, strings.Join(ph, ", ")),
		qUpdate:   fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", m.Table, strings.Join(set, ", "), id, len(m.Columns)),
		qDelete:   fmt.Sprintf("DELETE FROM %s WHERE %s = $1", m.Table, id),
	}
}

var _ repository.Repository[model.Point] = (*Table[model.Point])(nil)

// GetAll returns every row of the table.
func (t *Table[T]) GetAll(ctx context.Context) ([]T, error) {
	return t.query(ctx, t.qSelect)
}

// GetByID fetches a single row by its id.
func (t *Table[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	row := t.db.QueryRowContext(ctx, t.qSelectID, id)
	e, err := t.m.Scan(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Create inserts one row, generating the id when it is nil.
func (t *Table[T]) Create(ctx context.Context, e *T) (uuid.UUID, error) {
	id := t.ensureID(e)
	if _, err := t.db.ExecContext(ctx, t.qInsert, t.m.Values(e)...); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// CreateMany inserts all rows in a single transaction.
func (t *Table[T]) CreateMany(ctx context.Context, es []T) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, t.qInsert)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range es {
		t.ensureID(&es[i])
		if _, err := stmt.ExecContext(ctx, t.m.Values(&es[i])...); err != nil {
			return fmt.Errorf("insert %s %d: %w", t.m.Table, i, err)
		}
	}
	return tx.Commit()
}

// Update overwrites every non-id column and returns the re-read row.
func (t *Table[T]) Update(ctx context.Context, e *T) (*T, error) {
	if err := t.replace(ctx, e); err != nil {
		return nil, err
	}
	return t.GetByID(ctx, (*e).EntityID())
}

// replace runs the UPDATE statement, reporting ErrNotFound when no row matched.
func (t *Table[T]) replace(ctx context.Context, e *T) error {
	vals := t.m.Values(e)
	args := append(vals[1:len(vals):len(vals)], vals[0])
	res, err := t.db.ExecContext(ctx, t.qUpdate, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes a row by id. A missing row is not an error.
func (t *Table[T]) Delete(ctx context.Context, e *T) error {
	_, err := t.db.ExecContext(ctx, t.qDelete, (*e).EntityID())
	return err
}

func (t *Table[T]) ensureID(e *T) uuid.UUID {
	id := (*e).EntityID()
	if id == uuid.Nil {
		id = uuid.New()
		t.m.SetID(e, id)
	}
	return id
}

func (t *Table[T]) query(ctx context.Context, q string, args ...any) ([]T, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		e, err := t.m.Scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// where accumulates AND-ed conditions with sequential placeholders.
type where struct {
	clauses []string
	args    []any
}

// add appends cond, where each "?" in cond is replaced by the next placeholder
// bound to arg.
func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}
