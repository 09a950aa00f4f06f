package http

import "github.com/shopspring/decimal"

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateAccountRequest carries the payload for account registration.
type CreateAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Cpf   string `json:"cpf"`
}

// CreateRestaurantRequest carries the payload for restaurant registration.
type CreateRestaurantRequest struct {
	OwnerID  string         `json:"ownerId"`
	Name     string         `json:"name"`
	Currency string         `json:"currency"`
	Address  AddressRequest `json:"address"`
	OpensAt  string         `json:"opensAt"`
	ClosesAt string         `json:"closesAt"`
}

// AddressRequest carries a postal address in request payloads.
type AddressRequest struct {
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	City       string `json:"city"`
	Country    string `json:"country"`
	ZipCode    string `json:"zipCode"`
}

// AddMenuItemRequest carries the payload for adding a menu item.
// Currency defaults to BRL when omitted.
type AddMenuItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       string `json:"price"`
	Currency    string `json:"currency"`
}

// AddOrderItemRequest carries the payload for adding an item to a draft order.
type AddOrderItemRequest struct {
	AccountID    string `json:"accountId"`
	RestaurantID string `json:"restaurantId"`
	MenuItemID   string `json:"menuItemId"`
	Quantity     int    `json:"quantity"`
}

// DecreaseOrderItemRequest carries the payload for decreasing a line quantity.
type DecreaseOrderItemRequest struct {
	MenuItemID string `json:"menuItemId"`
	Quantity   int    `json:"quantity"`
}

// ChangeDeliveryAddressRequest carries the payload for setting the delivery
// address and fee of a draft order. Currency defaults to BRL when omitted.
type ChangeDeliveryAddressRequest struct {
	Address     AddressRequest `json:"address"`
	DeliveryFee string         `json:"deliveryFee"`
	Currency    string         `json:"currency"`
}

// CreatedResponse returns the identity assigned to a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CheckoutResponse returns the identity of the payment created at checkout.
type CheckoutResponse struct {
	PaymentID string `json:"paymentId"`
}

// OrderResponse is the JSON shape of the order read model.
type OrderResponse struct {
	ID           string              `json:"id"`
	AccountID    string              `json:"accountId"`
	RestaurantID string              `json:"restaurantId"`
	Status       string              `json:"status"`
	Currency     string              `json:"currency"`
	Items        []OrderItemResponse `json:"items"`
	ItemsTotal   decimal.Decimal     `json:"itemsTotal"`
	DeliveryFee  decimal.Decimal     `json:"deliveryFee"`
	Total        decimal.Decimal     `json:"total"`
}

// OrderItemResponse is one line of the order read model.
type OrderItemResponse struct {
	MenuItemID string          `json:"menuItemId"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Quantity   int             `json:"quantity"`
	LineTotal  decimal.Decimal `json:"lineTotal"`
}

// MenuResponse is the JSON shape of the restaurant menu read model.
type MenuResponse struct {
	RestaurantID string             `json:"restaurantId"`
	Name         string             `json:"name"`
	Currency     string             `json:"currency"`
	Open         bool               `json:"open"`
	Items        []MenuItemResponse `json:"items"`
}

// MenuItemResponse is one entry of the restaurant menu read model.
type MenuItemResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Active   bool            `json:"active"`
}
