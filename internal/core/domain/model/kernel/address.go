package kernel

import (
	"errors"
	"strings"

	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when validating a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is a delivery destination. Street, number, city and country are
// required and must be non-blank; complement is optional. The zip code must
// be a constructed ZipCode.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	number     string
	complement string
	city       string
	country    string
	zipCode    ZipCode
	guard      guard.ConstructorGuard
}

// NewAddress creates a validated Address. All violations are reported
// together via a joined error.
func NewAddress(street, number, complement, city, country string, zipCode ZipCode) (Address, error) {
	address := Address{
		complement: strings.TrimSpace(complement),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setNumber(number),
		address.setCity(city),
		address.setCountry(country),
		address.setZipCode(zipCode),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks that the Address came from the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Complement returns the optional address complement. May be empty.
func (a Address) Complement() string {
	return a.complement
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// Country returns the country name.
func (a Address) Country() string {
	return a.country
}

// ZipCode returns the postal code.
func (a Address) ZipCode() ZipCode {
	return a.zipCode
}

// IsEqual reports field-by-field value equality.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.number == other.number &&
		a.complement == other.complement &&
		a.city == other.city &&
		a.country == other.country &&
		a.zipCode.IsEqual(other.zipCode)
}

func (a *Address) setStreet(street string) error {
	street = strings.TrimSpace(street)
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

func (a *Address) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setCountry(country string) error {
	country = strings.TrimSpace(country)
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}

func (a *Address) setZipCode(zipCode ZipCode) error {
	if err := zipCode.Validate(); err != nil {
		return err
	}
	a.zipCode = zipCode
	return nil
}
