// Package account contains the Account aggregate.
//
// An account identifies a person on the platform by name, email and CPF.
// Every account starts as an active client; the restaurant owner role is
// granted on top. Inactive accounts refuse profile changes and ordering.
package account
