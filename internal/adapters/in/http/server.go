package http

import (
	"errors"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/user"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	deactivateUserHandler    commands.DeactivateUserCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	addOrderItemHandler      commands.AddOrderItemCommandHandler
	removeOrderItemHandler   commands.RemoveOrderItemCommandHandler

	// Query handlers
	getOrderHandler          queries.GetOrderQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler

	deliveryEstimator services.DeliveryEstimator
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	deactivateUserHandler commands.DeactivateUserCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	addOrderItemHandler commands.AddOrderItemCommandHandler,
	removeOrderItemHandler commands.RemoveOrderItemCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	deliveryEstimator services.DeliveryEstimator,
) *Server {
	return &Server{
		registerUserHandler:      registerUserHandler,
		deactivateUserHandler:    deactivateUserHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		cancelOrderHandler:       cancelOrderHandler,
		addOrderItemHandler:      addOrderItemHandler,
		removeOrderItemHandler:   removeOrderItemHandler,
		getOrderHandler:          getOrderHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		deliveryEstimator:        deliveryEstimator,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/users", s.RegisterUser)
	v1.DELETE("/users/:id", s.DeactivateUser)
	v1.GET("/users/:id/orders", s.GetCustomerOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	v1.POST("/orders/:id/cancel", s.CancelOrder)
	v1.POST("/orders/:id/items", s.AddOrderItem)
	v1.DELETE("/orders/:id/items/:productId", s.RemoveOrderItem)
	v1.GET("/orders/:id/delivery-estimate", s.GetDeliveryEstimate)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// RegisterUser handles POST /api/v1/users - registers a new customer account.
func (s *Server) RegisterUser(ctx echo.Context) error {
	var request RegisterUserRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		request.Email,
		request.Password,
		request.FirstName,
		request.LastName,
		request.Phone,
	)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.registerUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, RegisterUserResponse{ID: userID.String()})
}

// DeactivateUser handles DELETE /api/v1/users/{id} - deactivates an account.
func (s *Server) DeactivateUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	cmd, err := commands.NewDeactivateUserCommand(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user data: "+err.Error())
	}

	if handleErr := s.deactivateUserHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - creates a new draft order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer ID")
	}

	items, err := toDomainItems(request.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items, order.Address{
		Street:     request.ShippingAddress.Street,
		City:       request.ShippingAddress.City,
		State:      request.ShippingAddress.State,
		PostalCode: request.ShippingAddress.PostalCode,
		Country:    request.ShippingAddress.Country,
	})
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/{id} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

// GetCustomerOrders handles GET /api/v1/users/{id}/orders - lists a
// customer's orders, newest first.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid user ID")
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return badRequest(ctx, "Invalid user ID: "+err.Error())
	}

	results, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderSummaryResponses(results))
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{id}/status - moves an
// order along its lifecycle.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	targetStatus, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, targetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status data: "+err.Error())
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/{id}/items - adds a line to a
// draft order.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	var request AddOrderItemRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	item, err := toDomainItem(OrderItemRequest(request))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, item)
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.addOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveOrderItem handles DELETE /api/v1/orders/{id}/items/{productId}.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, ctx.Param("productId"))
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	if handleErr := s.removeOrderItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetDeliveryEstimate handles GET /api/v1/orders/{id}/delivery-estimate.
// The order must exist; the estimate is counted from the current date.
func (s *Server) GetDeliveryEstimate(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order ID")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	if _, err := s.getOrderHandler.Handle(ctx.Request().Context(), query); err != nil {
		return errorResponse(ctx, err)
	}

	method := services.ShippingMethod(ctx.QueryParam("method"))
	if method == "" {
		method = services.ShippingStandard
	}

	estimate, err := s.deliveryEstimator.EstimateDeliveryDate(method, time.Now().UTC())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryEstimateResponse{
		Method:        string(method),
		EstimatedDate: estimate.Format("2006-01-02"),
	})
}

func toDomainItems(requests []OrderItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(requests))
	for _, request := range requests {
		item, err := toDomainItem(request)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDomainItem(request OrderItemRequest) (order.Item, error) {
	unitPrice, err := kernel.NewMoneyFromString(request.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.NewItem(request.ProductID, request.Quantity, unitPrice, request.DiscountPercent)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps use case failures onto HTTP status codes: missing
// aggregates are 404, state and concurrency conflicts are 409, rejected
// input is 400 and everything else is a 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrConcurrentModification),
		errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderNotEditable),
		errors.Is(err, user.ErrUserAlreadyInactive),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
