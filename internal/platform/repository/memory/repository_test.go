package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"blog/internal/platform/repository"
	"blog/internal/platform/repository/repositorytest"

	"github.com/stretchr/testify/suite"
)

type testEntity struct {
	ID   int64
	Name string
}

func (e *testEntity) GetID() int64   { return e.ID }
func (e *testEntity) SetID(id int64) { e.ID = id }

func cloneTestEntity(e *testEntity) *testEntity {
	c := *e
	return &c
}

var _ repository.Repository[*testEntity, int64] = (*Repository[*testEntity, int64])(nil)

func TestRepository_Contract(t *testing.T) {
	repositorytest.Run(t, repositorytest.Harness[*testEntity, int64]{
		New: func(t *testing.T) repository.Repository[*testEntity, int64] {
			return NewSequential(cloneTestEntity)
		},
		Make: func(i int) *testEntity {
			return &testEntity{Name: fmt.Sprintf("entity-%d", i)}
		},
		Key: func(e *testEntity) int64 { return e.ID },
		WithKey: func(e *testEntity, id int64) *testEntity {
			e.ID = id
			return e
		},
		Mutate: func(e *testEntity) *testEntity {
			e.Name += " (edited)"
			return e
		},
		FirstKey: 1,
		Missing:  999_999,
	})
}

type RepositoryTestSuite struct {
	suite.Suite
	repo *Repository[*testEntity, int64]
	ctx  context.Context
}

func (s *RepositoryTestSuite) SetupTest() {
	s.repo = NewSequential(cloneTestEntity)
	s.ctx = context.Background()
}

func (s *RepositoryTestSuite) TestNew() {
	s.Require().NotNil(s.repo.data, "Repository data should be initialized")
	s.Assert().Empty(s.repo.data, "Repository data should be empty initially")
}

func (s *RepositoryTestSuite) TestSave_StoresCopy() {
	entity := &testEntity{Name: "original"}

	saved, err := s.repo.Save(s.ctx, entity)
	s.Require().NoError(err)
	s.Assert().Same(entity, saved)
	s.Assert().Equal(int64(1), entity.ID, "key should be written back to the caller's entity")

	entity.Name = "mutated after save"

	stored, found, err := s.repo.FindByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Assert().Equal("original", stored.Name)

	stored.Name = "mutated after read"
	again, _, err := s.repo.FindByID(s.ctx, 1)
	s.Require().NoError(err)
	s.Assert().Equal("original", again.Name)
}

func (s *RepositoryTestSuite) TestSave_WithoutClone_SharesPointer() {
	repo := NewSequential[*testEntity](nil)
	entity := &testEntity{Name: "shared"}

	_, err := repo.Save(s.ctx, entity)
	s.Require().NoError(err)

	stored, _, err := repo.FindByID(s.ctx, entity.ID)
	s.Require().NoError(err)
	s.Assert().Same(entity, stored)
}

func (s *RepositoryTestSuite) TestSave_SkipsTakenKeys() {
	keys := []int64{7, 7, 8}
	repo := New(func() int64 {
		k := keys[0]
		keys = keys[1:]
		return k
	}, cloneTestEntity)

	first, err := repo.Save(s.ctx, &testEntity{Name: "a"})
	s.Require().NoError(err)
	second, err := repo.Save(s.ctx, &testEntity{Name: "b"})
	s.Require().NoError(err)

	s.Assert().Equal(int64(7), first.ID)
	s.Assert().Equal(int64(8), second.ID)
}

func (s *RepositoryTestSuite) TestFindAll_NegativePageIsUnpaged() {
	for i := 0; i < 3; i++ {
		_, err := s.repo.Save(s.ctx, &testEntity{Name: fmt.Sprintf("e%d", i)})
		s.Require().NoError(err)
	}

	all, err := repository.Collect(s.repo.FindAll(s.ctx, repository.Page{Number: -1, Size: -5}))

	s.Require().NoError(err)
	s.Assert().Len(all, 3)
}

func (s *RepositoryTestSuite) TestFindAll_SaveDuringIteration() {
	_, err := s.repo.Save(s.ctx, &testEntity{Name: "seed"})
	s.Require().NoError(err)

	s.Assert().NotPanics(func() {
		for e, err := range s.repo.FindAll(s.ctx, repository.Unpaged()) {
			s.Require().NoError(err)
			_, saveErr := s.repo.Save(s.ctx, &testEntity{Name: e.Name + " copy"})
			s.Require().NoError(saveErr)
		}
	})

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(int64(2), count)
}

func (s *RepositoryTestSuite) TestConcurrentAccess() {
	const numGoroutines = 10
	const entitiesPerGoroutine = 10

	var wg sync.WaitGroup
	errChan := make(chan error, numGoroutines*entitiesPerGoroutine*2)

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(goroutineID int) {
			defer wg.Done()
			for j := 0; j < entitiesPerGoroutine; j++ {
				saved, err := s.repo.Save(s.ctx, &testEntity{Name: fmt.Sprintf("%d-%d", goroutineID, j)})
				errChan <- err
				if err == nil {
					_, err = s.repo.ExistsByID(s.ctx, saved.ID)
					errChan <- err
				}
			}
		}(i)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		s.Assert().NoError(err)
	}

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Assert().Equal(int64(numGoroutines*entitiesPerGoroutine), count)
}

func TestRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}
