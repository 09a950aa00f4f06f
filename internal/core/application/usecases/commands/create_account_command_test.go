package commands_test

import (
	"testing"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateAccountCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(id, "Maria Silva", testEmail(t), testCpf(t))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.AccountID())
	assert.Equal(t, "Maria Silva", cmd.Name())
	assert.Equal(t, testEmail(t), cmd.Email())
}

func TestNewCreateAccountCommand_InvalidAccountID(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(kernel.UUID{}, "Maria Silva", testEmail(t), testCpf(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateAccountCommand_BlankName(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "  ", testEmail(t), testCpf(t))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
}

func TestNewCreateAccountCommand_UnconstructedEmail(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Maria Silva", kernel.Email{}, testCpf(t))
	require.Error(t, err)
}

func TestCreateAccountCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateAccountCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateAccountCommandIsNotConstructed)
}
