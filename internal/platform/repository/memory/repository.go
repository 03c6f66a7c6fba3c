// Package memory is an in-process backend for the repository capability set.
package memory

import (
	"cmp"
	"context"
	"iter"
	"slices"
	"sync"

	"blog/internal/platform/repository"
)

type Repository[E repository.Entity[K], K cmp.Ordered] struct {
	data     map[K]E
	generate func() K
	clone    func(E) E
	mu       sync.RWMutex
}

// New builds an empty store. generate yields candidate keys for new entities;
// clone, when non-nil, copies entities on the way in and out so callers never
// share memory with the store.
func New[E repository.Entity[K], K cmp.Ordered](generate func() K, clone func(E) E) *Repository[E, K] {
	if clone == nil {
		clone = func(e E) E { return e }
	}
	return &Repository[E, K]{
		data:     make(map[K]E),
		generate: generate,
		clone:    clone,
	}
}

// NewSequential keys entities 1, 2, 3... like an identity column.
func NewSequential[E repository.Entity[int64]](clone func(E) E) *Repository[E, int64] {
	var last int64
	return New[E, int64](func() int64 {
		last++
		return last
	}, clone)
}

func (r *Repository[E, K]) Save(ctx context.Context, entity E) (E, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero K
	id := entity.GetID()
	if _, exists := r.data[id]; id == zero || !exists {
		id = r.nextID()
		entity.SetID(id)
	}

	r.data[id] = r.clone(entity)
	return entity, nil
}

// nextID skips keys already taken; callers hold the write lock.
func (r *Repository[E, K]) nextID() K {
	for {
		id := r.generate()
		if _, taken := r.data[id]; !taken {
			return id
		}
	}
}

func (r *Repository[E, K]) FindByID(ctx context.Context, id K) (E, bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	entity, exists := r.data[id]
	if !exists {
		var zero E
		return zero, false, nil
	}

	return r.clone(entity), true, nil
}

func (r *Repository[E, K]) FindAll(ctx context.Context, page repository.Page) iter.Seq2[E, error] {
	_ = ctx
	return func(yield func(E, error) bool) {
		for _, entity := range r.snapshot(page) {
			if !yield(entity, nil) {
				return
			}
		}
	}
}

// snapshot copies one page out under the read lock so yield runs unlocked.
func (r *Repository[E, K]) snapshot(page repository.Page) []E {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]K, 0, len(r.data))
	for id := range r.data {
		keys = append(keys, id)
	}
	slices.Sort(keys)

	if page.IsPaged() {
		offset := max(0, min(page.Offset(), len(keys)))
		end := min(offset+page.Limit(), len(keys))
		keys = keys[offset:end]
	}

	entities := make([]E, 0, len(keys))
	for _, id := range keys {
		entities = append(entities, r.clone(r.data[id]))
	}
	return entities
}

func (r *Repository[E, K]) DeleteByID(ctx context.Context, id K) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.data, id)
	return nil
}

func (r *Repository[E, K]) ExistsByID(ctx context.Context, id K) (bool, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.data[id]
	return exists, nil
}

func (r *Repository[E, K]) Count(ctx context.Context) (int64, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.data)), nil
}
