// Package kernel provides the shared domain primitives of the food-delivery
// system. It contains the value objects used across aggregates:
//
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Currency and Money: currency-checked decimal amounts
//   - Address, ZipCode, Cpf, Email: validated record-style value objects
//
// All types are immutable after construction, validate entirely in their
// constructors, and are safe to share across goroutines. The zero value of
// every guarded type is invalid and fails Validate.
package kernel
