package account

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was not
	// created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

	// ErrInvalidAccountOperation is returned when an action is attempted on an
	// account whose state does not permit it.
	ErrInvalidAccountOperation = errors.New("invalid account operation")
)

// Account is the aggregate root for platform users.
type Account struct {
	id    kernel.UUID
	name  string
	email kernel.Email
	cpf   kernel.Cpf

	roles  []Role
	active bool

	isConstructed bool
}

// NewAccount creates an active account holding the Client role.
func NewAccount(id kernel.UUID, name string, email kernel.Email, cpf kernel.Cpf) (*Account, error) {
	account := &Account{
		roles:         []Role{Client},
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		account.setID(id),
		account.setName(name),
		account.setEmail(email),
		account.setCpf(cpf),
	); err != nil {
		return nil, err
	}

	return account, nil
}

// RestoreAccount rehydrates an account from storage with its complete state.
func RestoreAccount(
	id kernel.UUID,
	name string,
	email kernel.Email,
	cpf kernel.Cpf,
	roles []Role,
	active bool,
) (*Account, error) {
	account, err := NewAccount(id, name, email, cpf)
	if err != nil {
		return nil, err
	}

	if len(roles) == 0 {
		return nil, errs.NewValueIsRequiredError("roles")
	}
	for _, role := range roles {
		if roleErr := role.Validate(); roleErr != nil {
			return nil, roleErr
		}
	}

	account.roles = append([]Role(nil), roles...)
	account.active = active
	return account, nil
}

// Validate ensures the Account instance was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// IsEqual compares two accounts by identity.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the holder's display name.
func (a *Account) Name() string {
	return a.name
}

// Email returns the holder's email address.
func (a *Account) Email() kernel.Email {
	return a.email
}

// Cpf returns the holder's taxpayer id.
func (a *Account) Cpf() kernel.Cpf {
	return a.cpf
}

// Roles returns a copy of the granted roles in grant order.
func (a *Account) Roles() []Role {
	roles := make([]Role, len(a.roles))
	copy(roles, a.roles)
	return roles
}

// IsActive reports whether the account may act on the platform.
func (a *Account) IsActive() bool {
	return a.active
}

// HasRole reports whether the account was granted the role.
func (a *Account) HasRole(role Role) bool {
	for _, granted := range a.roles {
		if granted == role {
			return true
		}
	}
	return false
}

// ChangeName renames the holder. Fails with ErrInvalidAccountOperation on an
// inactive account.
func (a *Account) ChangeName(name string) error {
	if err := a.assertActive(); err != nil {
		return err
	}
	return a.setName(name)
}

// ChangeEmail replaces the holder's email. Fails with
// ErrInvalidAccountOperation on an inactive account.
func (a *Account) ChangeEmail(email kernel.Email) error {
	if err := a.assertActive(); err != nil {
		return err
	}
	return a.setEmail(email)
}

// AddRole grants a role. Granting a role the account already holds is a
// no-op. Fails with ErrInvalidAccountOperation on an inactive account.
func (a *Account) AddRole(role Role) error {
	if err := a.assertActive(); err != nil {
		return err
	}

	if err := role.Validate(); err != nil {
		return err
	}

	if a.HasRole(role) {
		return nil
	}

	a.roles = append(a.roles, role)
	return nil
}

// Activate re-enables the account. Idempotent.
func (a *Account) Activate() {
	a.active = true
}

// Deactivate disables the account. Idempotent.
func (a *Account) Deactivate() {
	a.active = false
}

// AssertCanPlaceOrder checks that the account is allowed to open an order.
// Fails with ErrInvalidAccountOperation on an inactive account.
func (a *Account) AssertCanPlaceOrder() error {
	if err := a.assertActive(); err != nil {
		return err
	}
	if !a.HasRole(Client) {
		return fmt.Errorf("%w: account %s has no client role", ErrInvalidAccountOperation, a.id)
	}
	return nil
}

func (a *Account) assertActive() error {
	if !a.active {
		return fmt.Errorf("%w: account %s is inactive", ErrInvalidAccountOperation, a.id)
	}
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	a.email = email
	return nil
}

func (a *Account) setCpf(cpf kernel.Cpf) error {
	if err := cpf.Validate(); err != nil {
		return err
	}
	a.cpf = cpf
	return nil
}
