// Package postgres implements the repository capability set over database/sql
// with the lib/pq driver. One Mapper per entity describes its table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"iter"
	"strings"

	"blog/internal/platform/repository"

	"github.com/lib/pq"
)

// Conn is the subset of *sql.DB the repository needs.
type Conn interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ConnFunc returns the current connection, or nil while the database is not started.
type ConnFunc func() Conn

type Scanner interface {
	Scan(dest ...any) error
}

// Mapper binds an entity type to a table. Scan receives the key column
// followed by Columns, in that order; Values must follow Columns order.
type Mapper[E any] interface {
	Table() string
	KeyColumn() string
	Columns() []string
	Values(e E) []any
	Scan(row Scanner) (E, error)
}

var errNotConnected = errors.New("database connection is not established")

type Repository[E repository.Entity[K], K comparable] struct {
	conn   ConnFunc
	mapper Mapper[E]
	name   string

	insertSQL string
	updateSQL string
	selectSQL string
	listSQL   string
	deleteSQL string
	existsSQL string
	countSQL  string
}

func New[E repository.Entity[K], K comparable](conn ConnFunc, mapper Mapper[E]) *Repository[E, K] {
	table := pq.QuoteIdentifier(mapper.Table())
	key := pq.QuoteIdentifier(mapper.KeyColumn())

	columns := make([]string, len(mapper.Columns()))
	placeholders := make([]string, len(columns))
	assignments := make([]string, len(columns))
	for i, c := range mapper.Columns() {
		columns[i] = pq.QuoteIdentifier(c)
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		assignments[i] = fmt.Sprintf("%s = $%d", columns[i], i+1)
	}
	selectList := strings.Join(append([]string{key}, columns...), ", ")

	return &Repository[E, K]{
		conn:   conn,
		mapper: mapper,
		name:   mapper.Table(),

		insertSQL: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			table, strings.Join(columns, ", "), strings.Join(placeholders, ", "), key),
		updateSQL: fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
			table, strings.Join(assignments, ", "), key, len(columns)+1),
		selectSQL: fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", selectList, table, key),
		listSQL:   fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", selectList, table, key),
		deleteSQL: fmt.Sprintf("DELETE FROM %s WHERE %s = $1", table, key),
		existsSQL: fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)", table, key),
		countSQL:  fmt.Sprintf("SELECT COUNT(*) FROM %s", table),
	}
}

func (r *Repository[E, K]) connection(op string) (Conn, error) {
	conn := r.conn()
	if conn == nil {
		return nil, repository.Unavailable(r.op(op), errNotConnected)
	}
	return conn, nil
}

func (r *Repository[E, K]) op(verb string) string {
	return verb + " " + r.name
}

func (r *Repository[E, K]) Save(ctx context.Context, entity E) (E, error) {
	var none E
	conn, err := r.connection("save")
	if err != nil {
		return none, err
	}

	var zero K
	if id := entity.GetID(); id != zero {
		args := append(r.mapper.Values(entity), id)
		res, err := conn.ExecContext(ctx, r.updateSQL, args...)
		if err != nil {
			return none, translate(r.op("update"), err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return none, translate(r.op("update"), err)
		}
		if affected > 0 {
			return entity, nil
		}
	}

	var id K
	if err := conn.QueryRowContext(ctx, r.insertSQL, r.mapper.Values(entity)...).Scan(&id); err != nil {
		return none, translate(r.op("insert"), err)
	}
	entity.SetID(id)

	return entity, nil
}

func (r *Repository[E, K]) FindByID(ctx context.Context, id K) (E, bool, error) {
	var none E
	conn, err := r.connection("find")
	if err != nil {
		return none, false, err
	}

	entity, err := r.mapper.Scan(conn.QueryRowContext(ctx, r.selectSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return none, false, nil
		}
		return none, false, translate(r.op("find"), err)
	}

	return entity, true, nil
}

func (r *Repository[E, K]) FindAll(ctx context.Context, page repository.Page) iter.Seq2[E, error] {
	query, args := r.listSQL, []any(nil)
	if page.IsPaged() {
		query += " LIMIT $1 OFFSET $2"
		args = []any{page.Limit(), page.Offset()}
	}

	return func(yield func(E, error) bool) {
		var none E
		conn, err := r.connection("list")
		if err != nil {
			yield(none, err)
			return
		}

		rows, err := conn.QueryContext(ctx, query, args...)
		if err != nil {
			yield(none, translate(r.op("list"), err))
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			entity, err := r.mapper.Scan(rows)
			if err != nil {
				yield(none, translate(r.op("scan"), err))
				return
			}
			if !yield(entity, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(none, translate(r.op("list"), err))
		}
	}
}

func (r *Repository[E, K]) DeleteByID(ctx context.Context, id K) error {
	conn, err := r.connection("delete")
	if err != nil {
		return err
	}

	if _, err := conn.ExecContext(ctx, r.deleteSQL, id); err != nil {
		return translate(r.op("delete"), err)
	}
	return nil
}

func (r *Repository[E, K]) ExistsByID(ctx context.Context, id K) (bool, error) {
	conn, err := r.connection("exists")
	if err != nil {
		return false, err
	}

	var exists bool
	if err := conn.QueryRowContext(ctx, r.existsSQL, id).Scan(&exists); err != nil {
		return false, translate(r.op("exists"), err)
	}
	return exists, nil
}

func (r *Repository[E, K]) Count(ctx context.Context) (int64, error) {
	conn, err := r.connection("count")
	if err != nil {
		return 0, err
	}

	var count int64
	if err := conn.QueryRowContext(ctx, r.countSQL).Scan(&count); err != nil {
		return 0, translate(r.op("count"), err)
	}
	return count, nil
}
