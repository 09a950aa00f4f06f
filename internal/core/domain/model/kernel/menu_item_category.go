package kernel

import (
	"fmt"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
)

// MenuItemCategory classifies a sellable menu item. It is shared between the
// restaurant aggregate (which owns the menu) and the order aggregate (which
// snapshots item data into its lines).
type MenuItemCategory int

const (
	// MenuItemCategoryUnknown is an invalid, uninitialized category.
	MenuItemCategoryUnknown MenuItemCategory = iota

	// Appetizer is a starter dish.
	Appetizer

	// MainCourse is a main dish.
	MainCourse

	// Dessert is a sweet course.
	Dessert

	// Beverage is a drink.
	Beverage

	// SideDish accompanies a main course.
	SideDish
)

func getMenuItemCategoryStrings() map[MenuItemCategory]string {
	return map[MenuItemCategory]string{
		MenuItemCategoryUnknown: "Unknown",
		Appetizer:               "Appetizer",
		MainCourse:              "MainCourse",
		Dessert:                 "Dessert",
		Beverage:                "Beverage",
		SideDish:                "SideDish",
	}
}

func getValidMenuItemCategoryStrings() map[MenuItemCategory]string {
	//nolint:exhaustive // MenuItemCategoryUnknown is intentionally excluded as it's invalid
	return map[MenuItemCategory]string{
		Appetizer:  "Appetizer",
		MainCourse: "MainCourse",
		Dessert:    "Dessert",
		Beverage:   "Beverage",
		SideDish:   "SideDish",
	}
}

// MenuItemCategoryFromString parses a category name.
func MenuItemCategoryFromString(s string) (MenuItemCategory, error) {
	for category, name := range getValidMenuItemCategoryStrings() {
		if name == s {
			return category, nil
		}
	}
	return MenuItemCategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"menu item category is invalid", fmt.Errorf("%q is not a known category", s))
}

// Validate checks that the category is one of the known values.
func (c MenuItemCategory) Validate() error {
	if _, ok := getValidMenuItemCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"menu item category is invalid", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the category name, or "Unknown" for invalid values.
func (c MenuItemCategory) String() string {
	if str, ok := getMenuItemCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
