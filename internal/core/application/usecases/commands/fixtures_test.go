package commands_test

import (
	"testing"
	"time"

	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/account"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var testInstant = time.Date(2024, 6, 1, 18, 30, 0, 0, time.UTC)

func testClock() clock.Clock {
	return clock.NewFixed(testInstant)
}

func brl(t *testing.T, amount string) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromString(amount, kernel.BRL)
	require.NoError(t, err)
	return money
}

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	zip, err := kernel.NewZipCode("01310-100")
	require.NoError(t, err)
	addr, err := kernel.NewAddress("Avenida Paulista", "1578", "", "São Paulo", "Brasil", zip)
	require.NoError(t, err)
	return addr
}

func testEmail(t *testing.T) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("maria@example.com")
	require.NoError(t, err)
	return email
}

func testCpf(t *testing.T) kernel.Cpf {
	t.Helper()
	cpf, err := kernel.NewCpf("123.456.789-09")
	require.NoError(t, err)
	return cpf
}

func testHours(t *testing.T) restaurant.OpeningHours {
	t.Helper()
	hours, err := restaurant.NewOpeningHours("11:30", "23:00")
	require.NoError(t, err)
	return hours
}

func activeAccount(t *testing.T) *account.Account {
	t.Helper()
	a, err := account.NewAccount(kernel.NewUUID(), "Maria Silva", testEmail(t), testCpf(t))
	require.NoError(t, err)
	return a
}

// openRestaurant returns an open restaurant with one active menu item and
// that item's identity.
func openRestaurant(t *testing.T) (*restaurant.Restaurant, kernel.UUID) {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), kernel.NewUUID(), "Cantina da Nona", kernel.BRL,
		testAddress(t), testHours(t))
	require.NoError(t, err)

	menuItemID := kernel.NewUUID()
	require.NoError(t, r.AddMenuItem(
		menuItemID, "Margherita", "Tomato and basil", kernel.MainCourse, brl(t, "49.90")))
	require.NoError(t, r.Open(testInstant))
	return r, menuItemID
}

func draftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.BRL, testClock())
	require.NoError(t, err)
	require.NoError(t, o.AddItem(
		kernel.NewUUID(), "Margherita", "Tomato and basil", kernel.MainCourse, brl(t, "49.90"), 2))
	return o
}

func checkoutReadyOrder(t *testing.T) *order.Order {
	t.Helper()
	o := draftOrder(t)
	require.NoError(t, o.ChangeDeliveryAddress(testAddress(t), brl(t, "8.00")))
	return o
}

func pendingPayment(t *testing.T) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), brl(t, "107.80"), testClock())
	require.NoError(t, err)
	return p
}
