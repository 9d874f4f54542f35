package commands_test

import (
	"testing"

	"drones/internal/core/application/usecases/commands"
	"drones/internal/core/domain/model/drone"
	"drones/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterDroneCommand(t *testing.T) {
	tests := []struct {
		name      string
		number    string
		modelType drone.ModelType
		wantErr   error
	}{
		{name: "valid", number: "Drone-4", modelType: drone.Cruiserweight},
		{name: "empty number", number: "  ", modelType: drone.Lightweight, wantErr: errs.ErrValueIsRequired},
		{name: "unknown model", number: "Drone-4", modelType: drone.UnknownModel, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewRegisterDroneCommand(tt.number, tt.modelType)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, cmd.Validate())
			assert.Equal(t, tt.number, cmd.Number())
			assert.Equal(t, tt.modelType, cmd.ModelType())
		})
	}
}

func TestRegisterDroneCommand_TrimsNumber(t *testing.T) {
	cmd, err := commands.NewRegisterDroneCommand("  Drone-9 ", drone.Heavyweight)

	require.NoError(t, err)
	assert.Equal(t, "Drone-9", cmd.Number())
}

func TestRegisterDroneCommand_ZeroValueIsNotConstructed(t *testing.T) {
	cmd := commands.RegisterDroneCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrRegisterDroneCommandIsNotConstructed)
}
