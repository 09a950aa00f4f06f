package commands

import (
	"context"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/account"
)

// CreateAccountCommandHandler handles the business logic for account
// registration. New accounts start active with the client role.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewCreateAccountCommandHandler creates a handler for account registration.
// Requires an AccountUoWFactory for transactional persistence.
func NewCreateAccountCommandHandler(uowFactory AccountUoWFactory) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the account registration command.
// Uses a transaction to ensure the account is persisted or rolled back on error.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newAccount, err := account.NewAccount(cmd.AccountID(), cmd.Name(), cmd.Email(), cmd.Cpf())
	if err != nil {
		return err
	}

	if err = uow.AccountRepository().Add(ctx, newAccount); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
