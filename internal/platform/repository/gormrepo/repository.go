// Package gormrepo implements the repository capability set on top of gorm.
// T is the model struct; PT is its pointer, which carries the key methods.
package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"blog/internal/platform/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Model[T any, K comparable] interface {
	*T
	repository.Entity[K]
}

// DBFunc returns the current session, or nil while the database is not started.
type DBFunc func() *gorm.DB

var errNotConnected = errors.New("database connection is not established")

type Repository[T any, PT Model[T, K], K comparable] struct {
	db DBFunc
}

func New[T any, PT Model[T, K], K comparable](db DBFunc) *Repository[T, PT, K] {
	return &Repository[T, PT, K]{db: db}
}

func (r *Repository[T, PT, K]) session(ctx context.Context, op string) (*gorm.DB, error) {
	db := r.db()
	if db == nil {
		return nil, repository.Unavailable(op, errNotConnected)
	}
	return db.WithContext(ctx), nil
}

func byKey[K comparable](id K) clause.Expression {
	return clause.Eq{Column: clause.PrimaryColumn, Value: id}
}

func (r *Repository[T, PT, K]) Save(ctx context.Context, entity PT) (PT, error) {
	db, err := r.session(ctx, "save")
	if err != nil {
		return nil, err
	}

	var zero K
	id := entity.GetID()
	if id != zero {
		res := db.Model(entity).Select("*").Updates(entity)
		if res.Error != nil {
			return nil, translate("update", res.Error)
		}
		if res.RowsAffected > 0 {
			return entity, nil
		}
		entity.SetID(zero)
	}

	if err := db.Create(entity).Error; err != nil {
		entity.SetID(id)
		return nil, translate("insert", err)
	}

	return entity, nil
}

func (r *Repository[T, PT, K]) FindByID(ctx context.Context, id K) (PT, bool, error) {
	db, err := r.session(ctx, "find")
	if err != nil {
		return nil, false, err
	}

	var entity T
	res := db.Where(byKey(id)).Limit(1).Find(&entity)
	if res.Error != nil {
		return nil, false, translate("find", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, false, nil
	}

	return &entity, true, nil
}

func (r *Repository[T, PT, K]) FindAll(ctx context.Context, page repository.Page) iter.Seq2[PT, error] {
	return func(yield func(PT, error) bool) {
		db, err := r.session(ctx, "list")
		if err != nil {
			yield(nil, err)
			return
		}

		query := db.Model(new(T)).Order(clause.OrderByColumn{Column: clause.PrimaryColumn})
		if page.IsPaged() {
			query = query.Limit(page.Limit()).Offset(page.Offset())
		}

		rows, err := query.Rows()
		if err != nil {
			yield(nil, translate("list", err))
			return
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var entity T
			if err := db.ScanRows(rows, &entity); err != nil {
				yield(nil, translate("scan", err))
				return
			}
			if !yield(&entity, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, translate("list", err))
		}
	}
}

func (r *Repository[T, PT, K]) DeleteByID(ctx context.Context, id K) error {
	db, err := r.session(ctx, "delete")
	if err != nil {
		return err
	}

	if err := db.Where(byKey(id)).Delete(new(T)).Error; err != nil {
		return translate("delete", err)
	}
	return nil
}

func (r *Repository[T, PT, K]) ExistsByID(ctx context.Context, id K) (bool, error) {
	db, err := r.session(ctx, "exists")
	if err != nil {
		return false, err
	}

	var n int64
	if err := db.Model(new(T)).Where(byKey(id)).Count(&n).Error; err != nil {
		return false, translate("exists", err)
	}
	return n > 0, nil
}

func (r *Repository[T, PT, K]) Count(ctx context.Context) (int64, error) {
	db, err := r.session(ctx, "count")
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.Model(new(T)).Count(&n).Error; err != nil {
		return 0, translate("count", err)
	}
	return n, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
