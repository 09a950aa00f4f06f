// Package restaurant contains the Restaurant aggregate.
//
// A restaurant is owned by an account, prices its menu in a single currency
// and alternates between open and closed. The menu is edited while closed;
// opening requires at least one active menu item and a moment within the
// restaurant's opening hours.
package restaurant
