package memory

import (
	"context"
	"testing"
	"time"

	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *Store) lockCount() int {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	return len(s.locks)
}

func TestStore_LocksOfUnknownDronesAreReleased(t *testing.T) {
	ctx := t.Context()
	store := NewStore()
	factory := NewUnitOfWorkFactory(store)

	for range 100 {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))

		_, err := uow.DroneRepository().GetForUpdate(ctx, "Drone-9")
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		require.NoError(t, uow.Rollback(ctx))
	}

	assert.Equal(t, 0, store.lockCount())
}

func TestStore_LockIsKeptWhileWaitersRemain(t *testing.T) {
	ctx := t.Context()
	store := NewStore()

	require.NoError(t, store.lockDrone(ctx, "Drone-1"))

	acquired := make(chan struct{})
	go func() {
		if err := store.lockDrone(ctx, "Drone-1"); err == nil {
			close(acquired)
		}
	}()

	require.Eventually(t, func() bool {
		store.locksMu.Lock()
		defer store.locksMu.Unlock()
		return store.locks["Drone-1"].refs == 2
	}, time.Second, 5*time.Millisecond)

	store.unlockDrone("Drone-1")
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter did not get the lock")
	}
	assert.Equal(t, 1, store.lockCount())

	store.unlockDrone("Drone-1")
	assert.Equal(t, 0, store.lockCount())
}

func TestStore_CancelledWaiterReleasesItsReference(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.lockDrone(t.Context(), "Drone-1"))

	ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, store.lockDrone(ctx, "Drone-1"), context.DeadlineExceeded)
	assert.Equal(t, 1, store.lockCount())

	store.unlockDrone("Drone-1")
	assert.Equal(t, 0, store.lockCount())
}
