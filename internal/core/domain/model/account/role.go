package account

import (
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// Role grants an account a set of platform capabilities.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// Client can browse restaurants and place orders.
	Client

	// RestaurantOwner can register restaurants and manage their menus.
	RestaurantOwner
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:     "Unknown",
		Client:          "Client",
		RestaurantOwner: "RestaurantOwner",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		Client:          "Client",
		RestaurantOwner: "RestaurantOwner",
	}
}

// RoleFromString parses a role name, typically when rehydrating from storage
// or transport.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
