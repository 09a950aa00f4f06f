// Package http exposes the order platform over JSON endpoints.
// It coordinates between HTTP handlers and application use cases, keeping
// request and response DTO mapping local to the adapter.
package http

import (
	"errors"
	"net/http"

	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/commands"
	"github.com/Smeltier/basic-delivery-system/internal/core/application/usecases/queries"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/account"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/kernel"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/order"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/payment"
	"github.com/Smeltier/basic-delivery-system/internal/core/domain/model/restaurant"
	"github.com/Smeltier/basic-delivery-system/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the order platform.
type Server struct {
	// Command handlers
	createAccountHandler         commands.CreateAccountCommandHandler
	createRestaurantHandler      commands.CreateRestaurantCommandHandler
	addMenuItemHandler           commands.AddMenuItemCommandHandler
	addItemToOrderHandler        commands.AddItemToOrderCommandHandler
	decreaseOrderItemHandler     commands.DecreaseOrderItemCommandHandler
	removeOrderItemHandler       commands.RemoveOrderItemCommandHandler
	changeDeliveryAddressHandler commands.ChangeDeliveryAddressCommandHandler
	checkoutOrderHandler         commands.CheckoutOrderCommandHandler
	confirmOrderHandler          commands.ConfirmOrderCommandHandler
	deliverOrderHandler          commands.DeliverOrderCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createAccountHandler commands.CreateAccountCommandHandler,
	createRestaurantHandler commands.CreateRestaurantCommandHandler,
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	addItemToOrderHandler commands.AddItemToOrderCommandHandler,
	decreaseOrderItemHandler commands.DecreaseOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	changeDeliveryAddressHandler commands.ChangeDeliveryAddressCommandHandler,
	checkoutOrderHandler commands.CheckoutOrderCommandHandler,
	confirmOrderHandler commands.ConfirmOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getRestaurantMenuHandler queries.GetRestaurantMenuQueryHandler,
) *Server {
	return &Server{
		createAccountHandler:         createAccountHandler,
		createRestaurantHandler:      createRestaurantHandler,
		addMenuItemHandler:           addMenuItemHandler,
		addItemToOrderHandler:        addItemToOrderHandler,
		decreaseOrderItemHandler:     decreaseOrderItemHandler,
		removeOrderItemHandler:       removeOrderItemHandler,
		changeDeliveryAddressHandler: changeDeliveryAddressHandler,
		checkoutOrderHandler:         checkoutOrderHandler,
		confirmOrderHandler:          confirmOrderHandler,
		deliverOrderHandler:          deliverOrderHandler,
		cancelOrderHandler:           cancelOrderHandler,
		getOrderHandler:              getOrderHandler,
		getRestaurantMenuHandler:     getRestaurantMenuHandler,
	}
}

// RegisterRoutes wires every endpoint onto the echo instance under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/accounts", s.CreateAccount)

	api.POST("/restaurants", s.CreateRestaurant)
	api.POST("/restaurants/:restaurantId/menu-items", s.AddMenuItem)
	api.GET("/restaurants/:restaurantId/menu", s.GetRestaurantMenu)

	api.POST("/orders/items", s.AddOrderItem)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/decrease-item", s.DecreaseOrderItem)
	api.DELETE("/orders/:orderId/items/:menuItemId", s.RemoveOrderItem)
	api.PUT("/orders/:orderId/delivery-address", s.ChangeDeliveryAddress)
	api.POST("/orders/:orderId/checkout", s.CheckoutOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmOrder)
	api.POST("/orders/:orderId/deliver", s.DeliverOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var request CreateAccountRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	email, err := kernel.NewEmail(request.Email)
	if err != nil {
		return badRequest(ctx, "Invalid email: "+err.Error())
	}

	cpf, err := kernel.NewCpf(request.Cpf)
	if err != nil {
		return badRequest(ctx, "Invalid cpf: "+err.Error())
	}

	accountID := kernel.NewUUID()
	cmd, err := commands.NewCreateAccountCommand(accountID, request.Name, email, cpf)
	if err != nil {
		return badRequest(ctx, "Invalid account data: "+err.Error())
	}

	if err = s.createAccountHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: accountID.String()})
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var request CreateRestaurantRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	ownerID, err := kernel.UUIDFromString(request.OwnerID)
	if err != nil {
		return badRequest(ctx, "Invalid owner id: "+err.Error())
	}

	currency, err := kernel.CurrencyFromString(request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid currency: "+err.Error())
	}

	address, err := addressFromRequest(request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	openingHours, err := restaurant.NewOpeningHours(request.OpensAt, request.ClosesAt)
	if err != nil {
		return badRequest(ctx, "Invalid opening hours: "+err.Error())
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID, ownerID, request.Name, currency, address, openingHours)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant data: "+err.Error())
	}

	if err = s.createRestaurantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: restaurantID.String()})
}

// AddMenuItem handles POST /api/v1/restaurants/:restaurantId/menu-items.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	var request AddMenuItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	category, err := kernel.MenuItemCategoryFromString(request.Category)
	if err != nil {
		return badRequest(ctx, "Invalid category: "+err.Error())
	}

	price, err := moneyFromRequest(request.Price, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid price: "+err.Error())
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddMenuItemCommand(
		restaurantID, menuItemID, request.Name, request.Description, category, price)
	if err != nil {
		return badRequest(ctx, "Invalid menu item data: "+err.Error())
	}

	if err = s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: menuItemID.String()})
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:restaurantId/menu.
func (s *Server) GetRestaurantMenu(ctx echo.Context) error {
	restaurantID, err := kernel.UUIDFromString(ctx.Param("restaurantId"))
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	query, err := queries.NewGetRestaurantMenuQuery(restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	menu, err := s.getRestaurantMenuHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	items := make([]MenuItemResponse, len(menu.Items))
	for i, item := range menu.Items {
		items[i] = MenuItemResponse{
			ID:       item.ID.String(),
			Name:     item.Name,
			Category: item.Category,
			Price:    item.Price,
			Active:   item.Active,
		}
	}

	return ctx.JSON(http.StatusOK, MenuResponse{
		RestaurantID: menu.RestaurantID.String(),
		Name:         menu.Name,
		Currency:     menu.Currency,
		Open:         menu.Open,
		Items:        items,
	})
}

// AddOrderItem handles POST /api/v1/orders/items. It opens a draft order
// when the account has none at the restaurant.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	var request AddOrderItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	accountID, err := kernel.UUIDFromString(request.AccountID)
	if err != nil {
		return badRequest(ctx, "Invalid account id: "+err.Error())
	}

	restaurantID, err := kernel.UUIDFromString(request.RestaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+err.Error())
	}

	cmd, err := commands.NewAddItemToOrderCommand(accountID, restaurantID, menuItemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid order item data: "+err.Error())
	}

	if err = s.addItemToOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return commandError(ctx, err)
	}

	items := make([]OrderItemResponse, len(result.Items))
	for i, item := range result.Items {
		items[i] = OrderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Name:       item.Name,
			UnitPrice:  item.UnitPrice,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal,
		}
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:           result.ID.String(),
		AccountID:    result.AccountID.String(),
		RestaurantID: result.RestaurantID.String(),
		Status:       result.Status,
		Currency:     result.Currency,
		Items:        items,
		ItemsTotal:   result.ItemsTotal,
		DeliveryFee:  result.DeliveryFee,
		Total:        result.Total,
	})
}

// DecreaseOrderItem handles POST /api/v1/orders/:orderId/decrease-item.
func (s *Server) DecreaseOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request DecreaseOrderItemRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+err.Error())
	}

	cmd, err := commands.NewDecreaseOrderItemCommand(orderID, menuItemID, request.Quantity)
	if err != nil {
		return badRequest(ctx, "Invalid decrease data: "+err.Error())
	}

	if err = s.decreaseOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderId/items/:menuItemId.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("menuItemId"))
	if err != nil {
		return badRequest(ctx, "Invalid menu item id: "+err.Error())
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, menuItemID)
	if err != nil {
		return badRequest(ctx, "Invalid removal data: "+err.Error())
	}

	if err = s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeDeliveryAddress handles PUT /api/v1/orders/:orderId/delivery-address.
func (s *Server) ChangeDeliveryAddress(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	var request ChangeDeliveryAddressRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	address, err := addressFromRequest(request.Address)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	deliveryFee, err := moneyFromRequest(request.DeliveryFee, request.Currency)
	if err != nil {
		return badRequest(ctx, "Invalid delivery fee: "+err.Error())
	}

	cmd, err := commands.NewChangeDeliveryAddressCommand(orderID, address, deliveryFee)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	if err = s.changeDeliveryAddressHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CheckoutOrder handles POST /api/v1/orders/:orderId/checkout.
// Returns the identity of the payment created for the order.
func (s *Server) CheckoutOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	paymentID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutOrderCommand(orderID, paymentID)
	if err != nil {
		return badRequest(ctx, "Invalid checkout data: "+err.Error())
	}

	if err = s.checkoutOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return commandError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{PaymentID: paymentID.String()})
}

// ConfirmOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmOrder(ctx echo.Context) error {
	return s.lifecycle(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewConfirmOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.confirmOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// DeliverOrder handles POST /api/v1/orders/:orderId/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	return s.lifecycle(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewDeliverOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.lifecycle(ctx, func(orderID kernel.UUID) error {
		cmd, err := commands.NewCancelOrderCommand(orderID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// lifecycle factors the shared shape of the status transition endpoints.
func (s *Server) lifecycle(ctx echo.Context, run func(orderID kernel.UUID) error) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	if err = run(orderID); err != nil {
		return commandError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func addressFromRequest(request AddressRequest) (kernel.Address, error) {
	zipCode, err := kernel.NewZipCode(request.ZipCode)
	if err != nil {
		return kernel.Address{}, err
	}

	return kernel.NewAddress(
		request.Street,
		request.Number,
		request.Complement,
		request.City,
		request.Country,
		zipCode,
	)
}

// moneyFromRequest parses a request amount. An empty currency defaults to
// BRL; mismatches against the aggregate's currency are caught downstream.
func moneyFromRequest(amount, currency string) (kernel.Money, error) {
	if currency == "" {
		return kernel.MoneyFromString(amount, kernel.BRL)
	}

	parsed, err := kernel.CurrencyFromString(currency)
	if err != nil {
		return kernel.Money{}, err
	}
	return kernel.MoneyFromString(amount, parsed)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// commandError maps domain failures onto HTTP status codes: missing
// aggregates become 404, declined charges 402, business rule violations 409,
// validation failures 400, anything else 500.
func commandError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrPaymentDeclined):
		status = http.StatusPaymentRequired
	case errors.Is(err, order.ErrInvalidOrder),
		errors.Is(err, order.ErrInvalidOrderItem),
		errors.Is(err, payment.ErrInvalidPaymentOperation),
		errors.Is(err, account.ErrInvalidAccountOperation),
		errors.Is(err, restaurant.ErrInvalidRestaurantOperation),
		errors.Is(err, restaurant.ErrInvalidMenuItem),
		errors.Is(err, commands.ErrRestaurantIsClosed),
		errors.Is(err, commands.ErrMenuItemIsNotAvailable):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrInvalidOrderItemQuantity),
		errors.Is(err, kernel.ErrCurrencyMismatch):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
