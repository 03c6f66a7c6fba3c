// Package repositorytest checks a repository.Repository implementation against
// the behaviour every backend must share.
package repositorytest

import (
	"context"
	"math"
	"testing"

	"blog/internal/platform/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Harness adapts one backend and entity type to the contract.
type Harness[E any, K comparable] struct {
	// New returns an empty repository whose first generated key is FirstKey.
	New func(t *testing.T) repository.Repository[E, K]
	// Make builds the i-th distinct, not yet persisted entity.
	Make    func(i int) E
	Key     func(e E) K
	WithKey func(e E, id K) E
	// Mutate changes every non-key field of a persisted entity.
	Mutate   func(e E) E
	FirstKey K
	// Missing is never assigned during a test.
	Missing K
}

func Run[E any, K comparable](t *testing.T, h Harness[E, K]) {
	t.Run("save_assigns_key", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()

		saved, err := repo.Save(ctx, h.Make(0))

		require.NoError(t, err)
		var zero K
		assert.NotEqual(t, zero, h.Key(saved))
	})

	t.Run("round_trip", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		saved := save(t, repo, h.Make(0))

		got, found, err := repo.FindByID(ctx, h.Key(saved))

		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, saved, got)
	})

	t.Run("absent_key", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		save(t, repo, h.Make(0))

		_, found, err := repo.FindByID(ctx, h.Missing)
		require.NoError(t, err)
		assert.False(t, found)

		exists, err := repo.ExistsByID(ctx, h.Missing)
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("exists_after_save", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		saved := save(t, repo, h.Make(0))

		exists, err := repo.ExistsByID(ctx, h.Key(saved))

		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("delete_is_idempotent", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		saved := save(t, repo, h.Make(0))
		id := h.Key(saved)

		require.NoError(t, repo.DeleteByID(ctx, id))

		_, found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.False(t, found)

		assert.NoError(t, repo.DeleteByID(ctx, id), "second delete must be a no-op")
		assert.NoError(t, repo.DeleteByID(ctx, h.Missing), "deleting an unknown key must be a no-op")
	})

	t.Run("count_matches_saves", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		const n = 5
		for i := 0; i < n; i++ {
			save(t, repo, h.Make(i))
		}

		count, err := repo.Count(ctx)

		require.NoError(t, err)
		assert.Equal(t, int64(n), count)
	})

	t.Run("save_updates_existing", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		saved := save(t, repo, h.Make(0))
		id := h.Key(saved)

		updated, err := repo.Save(ctx, h.Mutate(saved))
		require.NoError(t, err)
		assert.Equal(t, id, h.Key(updated))

		got, found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, updated, got)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("save_with_unknown_key_inserts_new", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()

		saved, err := repo.Save(ctx, h.WithKey(h.Make(0), h.Missing))

		require.NoError(t, err)
		assert.NotEqual(t, h.Missing, h.Key(saved))

		exists, err := repo.ExistsByID(ctx, h.Missing)
		require.NoError(t, err)
		assert.False(t, exists)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("find_all_is_ordered_and_restartable", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		var keys []K
		for i := 0; i < 3; i++ {
			keys = append(keys, h.Key(save(t, repo, h.Make(i))))
		}

		seq := repo.FindAll(ctx, repository.Unpaged())

		first, err := repository.Collect(seq)
		require.NoError(t, err)
		require.Len(t, first, 3)
		for i, e := range first {
			assert.Equal(t, keys[i], h.Key(e))
		}

		keys = append(keys, h.Key(save(t, repo, h.Make(3))))

		second, err := repository.Collect(seq)
		require.NoError(t, err)
		require.Len(t, second, 4, "ranging again must re-read the store")
		assert.Equal(t, keys[3], h.Key(second[3]))
	})

	t.Run("find_all_pages", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		var keys []K
		for i := 0; i < 5; i++ {
			keys = append(keys, h.Key(save(t, repo, h.Make(i))))
		}

		tests := []struct {
			page repository.Page
			want []K
		}{
			{page: repository.Page{Number: 0, Size: 2}, want: keys[0:2]},
			{page: repository.Page{Number: 1, Size: 2}, want: keys[2:4]},
			{page: repository.Page{Number: 2, Size: 2}, want: keys[4:5]},
			{page: repository.Page{Number: 3, Size: 2}, want: nil},
		}
		for _, tt := range tests {
			got, err := repository.Collect(repo.FindAll(ctx, tt.page))
			require.NoError(t, err)

			var gotKeys []K
			for _, e := range got {
				gotKeys = append(gotKeys, h.Key(e))
			}
			assert.Equal(t, tt.want, gotKeys, "page %+v", tt.page)
		}
	})

	t.Run("find_all_huge_page_is_empty", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		save(t, repo, h.Make(0))

		got, err := repository.Collect(repo.FindAll(ctx, repository.Page{Number: math.MaxInt/100 + 1, Size: 100}))

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("find_all_stops_on_break", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()
		for i := 0; i < 3; i++ {
			save(t, repo, h.Make(i))
		}

		seen := 0
		for _, err := range repo.FindAll(ctx, repository.Unpaged()) {
			require.NoError(t, err)
			seen++
			break
		}
		assert.Equal(t, 1, seen)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count, "store must stay usable after an abandoned iteration")
	})

	t.Run("first_entity_lifecycle", func(t *testing.T) {
		repo, ctx := h.New(t), context.Background()

		saved := save(t, repo, h.Make(0))
		require.Equal(t, h.FirstKey, h.Key(saved))

		got, found, err := repo.FindByID(ctx, h.FirstKey)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, saved, got)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		require.NoError(t, repo.DeleteByID(ctx, h.FirstKey))

		_, found, err = repo.FindByID(ctx, h.FirstKey)
		require.NoError(t, err)
		assert.False(t, found)

		count, err = repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func save[E any, K comparable](t *testing.T, repo repository.Repository[E, K], e E) E {
	t.Helper()
	saved, err := repo.Save(context.Background(), e)
	require.NoError(t, err)
	return saved
}
