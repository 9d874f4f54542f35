package drone_test

import (
	"fmt"
	"testing"

	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_Constants(t *testing.T) {
	assert.Equal(t, 0, int(drone.UnknownState))
	assert.Equal(t, 1, int(drone.Idle))
	assert.Equal(t, 2, int(drone.Loading))
	assert.Equal(t, 6, int(drone.Returning))
}

func TestState_Validate(t *testing.T) {
	for _, state := range []drone.State{
		drone.Idle, drone.Loading, drone.Loaded, drone.Delivering, drone.Delivered, drone.Returning,
	} {
		t.Run(fmt.Sprintf("should validate %s", state), func(t *testing.T) {
			require.NoError(t, state.Validate())
		})
	}

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		require.ErrorIs(t, drone.UnknownState.Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, drone.State(42).Validate(), errs.ErrValueIsInvalid)
		require.ErrorIs(t, drone.State(-1).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "IDLE", drone.Idle.String())
	assert.Equal(t, "LOADING", drone.Loading.String())
	assert.Equal(t, "RETURNING", drone.Returning.String())
	assert.Equal(t, "UNKNOWN", drone.State(99).String())
}

func TestParseState(t *testing.T) {
	state, err := drone.ParseState(" loading ")
	require.NoError(t, err)
	assert.Equal(t, drone.Loading, state)

	_, err = drone.ParseState("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = drone.ParseState("FLYING")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestState_Load(t *testing.T) {
	t.Run("IDLE moves to LOADING", func(t *testing.T) {
		next, err := drone.Idle.Load()

		require.NoError(t, err)
		assert.Equal(t, drone.Loading, next)
	})

	for _, state := range []drone.State{
		drone.UnknownState, drone.Loading, drone.Loaded, drone.Delivering, drone.Delivered, drone.Returning,
	} {
		t.Run(fmt.Sprintf("%s cannot be loaded", state), func(t *testing.T) {
			next, err := state.Load()

			require.ErrorIs(t, err, drone.ErrIllegalDroneState)
			assert.Contains(t, err.Error(), state.String())
			assert.Equal(t, drone.UnknownState, next)
		})
	}
}

func TestState_ValidateLoad(t *testing.T) {
	require.NoError(t, drone.Idle.ValidateLoad())
	require.ErrorIs(t, drone.Loaded.ValidateLoad(), drone.ErrIllegalDroneState)
}

func TestState_IsAvailable(t *testing.T) {
	assert.True(t, drone.Idle.IsAvailable())
	assert.False(t, drone.Loading.IsAvailable())
	assert.False(t, drone.Returning.IsAvailable())
}
