package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(id string) ledger.Session {
	return ledger.Session{
		ID:         id,
		Department: "IT",
		FromMonth:  ledger.Month{Year: 2024, Month: time.June},
		ToMonth:    ledger.Month{Year: 2024, Month: time.June},
		Ledger:     ledger.Ledger{},
		CreatedAt:  time.Now().UTC(),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewSessionStore()

	require.NoError(t, store.Save(ctx, testSession("s1")))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", got.ID)
	assert.Equal(t, "IT", got.Department)
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	t.Parallel()
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ledger.ErrSessionNotFound)
}

func TestSessionStore_Replace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewSessionStore()

	session := testSession("s1")
	require.NoError(t, store.Save(ctx, session))

	session.Department = "Finance"
	require.NoError(t, store.Replace(ctx, session))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Finance", got.Department)
}

func TestSessionStore_Replace_NotFound(t *testing.T) {
	t.Parallel()
	store := NewSessionStore()

	err := store.Replace(context.Background(), testSession("missing"))
	assert.ErrorIs(t, err, ledger.ErrSessionNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewSessionStore()

	require.NoError(t, store.Save(ctx, testSession("s1")))
	require.NoError(t, store.Delete(ctx, "s1"))

	_, err := store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ledger.ErrSessionNotFound)

	err = store.Delete(ctx, "s1")
	assert.ErrorIs(t, err, ledger.ErrSessionNotFound)
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewSessionStore()
	require.NoError(t, store.Save(ctx, testSession("s1")))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx, "s1")
		}()
		go func() {
			defer wg.Done()
			_ = store.Replace(ctx, testSession("s1"))
		}()
	}
	wg.Wait()

	_, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
}
