package accounts

import (
	"context"
	"sync"
	"testing"

	"github.com/dmitrijs2005/devconnector/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemory_CreateAndFind(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	created, err := repo.Create(ctx, draft())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, created, got)

	got.Name = "mutated"
	again, err := repo.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", again.Name, "returned values are copies")
}

func TestInMemory_Create_Duplicate(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, draft())
	require.NoError(t, err)
	_, err = repo.Create(ctx, draft())
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Equal(t, 1, repo.Len())
}

func TestInMemory_Create_ConcurrentSameEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok, dup := 0, 0

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, draft())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, common.ErrorAlreadyExists) {
				dup++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
}

func TestInMemory_CancelledContext(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Create(ctx, draft())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.Len())
}
