package postgres

import (
	"github.com/Smeltier/basic-delivery-system/internal/adapters/out/postgres/accountrepo"
	"github.com/Smeltier/basic-delivery-system/internal/adapters/out/postgres/orderrepo"
	"github.com/Smeltier/basic-delivery-system/internal/adapters/out/postgres/paymentrepo"
	"github.com/Smeltier/basic-delivery-system/internal/adapters/out/postgres/restaurantrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every persisted aggregate.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountrepo.AccountDTO{},
		&accountrepo.AccountRoleDTO{},
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderPaymentDTO{},
		&paymentrepo.PaymentDTO{},
	)
}
