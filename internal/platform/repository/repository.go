// Package repository defines the capability set every article store implements:
// save, lookup, enumeration, deletion, existence and count over one entity type.
//
// Implementations delegate all persistence to an external store. They keep no
// entity state between calls, perform no retries and do no logging; failures are
// surfaced as ErrStoreUnavailable or *ConstraintViolationError.
package repository

import (
	"context"
	"iter"
	"math"
)

// Entity is what generic backends need from a stored type: read the key, and
// write back a key the store assigned. The zero K means "not yet persisted".
type Entity[K comparable] interface {
	GetID() K
	SetID(id K)
}

// Repository is the CRUD capability set for entities of type E keyed by K.
type Repository[E any, K comparable] interface {
	// Save inserts e when its key is zero and updates it otherwise. A non-zero key
	// with no stored row is inserted as new under a store-assigned key. The
	// returned entity carries the persisted key.
	Save(ctx context.Context, e E) (E, error)

	// FindByID reports false, not an error, when nothing is stored under id.
	FindByID(ctx context.Context, id K) (E, bool, error)

	// FindAll yields entities in ascending key order. The query runs when
	// iteration starts, so ranging over the sequence again sees fresh data.
	// After yielding a non-nil error the sequence ends.
	FindAll(ctx context.Context, page Page) iter.Seq2[E, error]

	// DeleteByID is a no-op for an absent id.
	DeleteByID(ctx context.Context, id K) error

	ExistsByID(ctx context.Context, id K) (bool, error)

	Count(ctx context.Context) (int64, error)
}

// Page selects a window of FindAll results. The zero Page is unpaged.
type Page struct {
	Number int
	Size   int
}

func Unpaged() Page {
	return Page{}
}

func (p Page) IsPaged() bool {
	return p.Size > 0
}

func (p Page) Limit() int {
	if p.Size < 0 {
		return 0
	}
	return p.Size
}

// Offset saturates at math.MaxInt, which every backend treats as past the end.
func (p Page) Offset() int {
	if !p.IsPaged() || p.Number < 0 {
		return 0
	}
	if p.Number > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Number * p.Size
}

// Collect drains seq, stopping at the first error.
func Collect[E any](seq iter.Seq2[E, error]) ([]E, error) {
	var out []E
	for e, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
