package commands

import (
	"errors"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

var (
	ErrCreateAccountCommandIsNotConstructed = errors.New(
		"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateAccountCommand represents a request to register a new client account.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	name      string
	email     kernel.Email
	cpf       kernel.Cpf

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new account.
// Validates that the account ID, email and CPF are constructed values and the
// name is not blank.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	name string,
	email kernel.Email,
	cpf kernel.Cpf,
) (CreateAccountCommand, error) {
	command := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAccountID(accountID),
		command.setName(name),
		command.setEmail(email),
		command.setCpf(cpf),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// AccountID returns the unique identifier for the new account.
func (c CreateAccountCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Name returns the holder's display name.
func (c CreateAccountCommand) Name() string {
	return c.name
}

// Email returns the holder's email address.
func (c CreateAccountCommand) Email() kernel.Email {
	return c.email
}

// Cpf returns the holder's taxpayer id.
func (c CreateAccountCommand) Cpf() kernel.Cpf {
	return c.cpf
}

func (c *CreateAccountCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}

	c.accountID = accountID
	return nil
}

func (c *CreateAccountCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateAccountCommand) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}

	c.email = email
	return nil
}

func (c *CreateAccountCommand) setCpf(cpf kernel.Cpf) error {
	if err := cpf.Validate(); err != nil {
		return err
	}

	c.cpf = cpf
	return nil
}
