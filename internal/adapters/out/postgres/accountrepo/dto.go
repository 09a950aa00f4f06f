// Package accountrepo provides data transfer objects and mapping functions
// for account persistence. Roles are kept in a child table so an account can
// hold several.
package accountrepo

import (
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/account"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting account aggregates.
type AccountDTO struct {
	ID     uuid.UUID        `gorm:"type:uuid;primaryKey"`
	Name   string           `gorm:"type:varchar(255);not null"`
	Email  string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	Cpf    string           `gorm:"type:varchar(14);not null;uniqueIndex"`
	Active bool             `gorm:"not null"`
	Roles  []AccountRoleDTO `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "accounts"
}

// AccountRoleDTO represents a role granted to an account.
type AccountRoleDTO struct {
	AccountID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      int       `gorm:"type:int;primaryKey"`
}

// TableName specifies the database table name for account roles.
func (AccountRoleDTO) TableName() string {
	return "account_roles"
}

// fromDomain converts an account domain aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	accountID := aggregate.ID().Bytes()

	roles := make([]AccountRoleDTO, 0, len(aggregate.Roles()))
	for _, role := range aggregate.Roles() {
		roles = append(roles, AccountRoleDTO{
			AccountID: accountID,
			Role:      int(role),
		})
	}

	return AccountDTO{
		ID:     accountID,
		Name:   aggregate.Name(),
		Email:  aggregate.Email().Value(),
		Cpf:    aggregate.Cpf().Value(),
		Active: aggregate.IsActive(),
		Roles:  roles,
	}
}

// toDomain converts a database DTO to an account domain aggregate using
// RestoreAccount.
func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmail(dto.Email)
	if err != nil {
		return nil, err
	}

	cpf, err := kernel.NewCpf(dto.Cpf)
	if err != nil {
		return nil, err
	}

	roles := make([]account.Role, 0, len(dto.Roles))
	for _, roleDTO := range dto.Roles {
		roles = append(roles, account.Role(roleDTO.Role))
	}

	return account.RestoreAccount(id, dto.Name, email, cpf, roles, dto.Active)
}
