// Package http exposes the ordering use cases over a REST API. Identity
// arrives as an X-User-ID header set by the gateway; the middleware resolves
// it to an actor with a role before any handler runs.
package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	userIDHeader    = "X-User-ID"
	actorContextKey = "actor"
	timeFormat      = time.RFC3339
)

// ActorResolver turns an authenticated user identifier into an actor with a
// resolved role. Implementations read group membership from storage.
type ActorResolver func(ctx context.Context, userID kernel.UUID) (account.Actor, error)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	resolveActor ActorResolver

	// Command handlers
	addItemToCartHandler       commands.AddItemToCartCommandHandler
	clearCartHandler           commands.ClearCartCommandHandler
	checkoutHandler            commands.CheckoutCommandHandler
	updateOrderHandler         commands.UpdateOrderCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler
	createMenuItemHandler      commands.CreateMenuItemCommandHandler
	updateMenuItemHandler      commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler      commands.DeleteMenuItemCommandHandler
	addUserToGroupHandler      commands.AddUserToGroupCommandHandler
	removeUserFromGroupHandler commands.RemoveUserFromGroupCommandHandler

	// Query handlers
	getMenuItemsHandler  queries.GetMenuItemsQueryHandler
	getMenuItemHandler   queries.GetMenuItemQueryHandler
	getCartHandler       queries.GetCartQueryHandler
	getOrdersHandler     queries.GetOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getGroupUsersHandler queries.GetGroupUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	resolveActor ActorResolver,
	addItemToCartHandler commands.AddItemToCartCommandHandler,
	clearCartHandler commands.ClearCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	createMenuItemHandler commands.CreateMenuItemCommandHandler,
	updateMenuItemHandler commands.UpdateMenuItemCommandHandler,
	deleteMenuItemHandler commands.DeleteMenuItemCommandHandler,
	addUserToGroupHandler commands.AddUserToGroupCommandHandler,
	removeUserFromGroupHandler commands.RemoveUserFromGroupCommandHandler,
	getMenuItemsHandler queries.GetMenuItemsQueryHandler,
	getMenuItemHandler queries.GetMenuItemQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getGroupUsersHandler queries.GetGroupUsersQueryHandler,
) *Server {
	return &Server{
		resolveActor:               resolveActor,
		addItemToCartHandler:       addItemToCartHandler,
		clearCartHandler:           clearCartHandler,
		checkoutHandler:            checkoutHandler,
		updateOrderHandler:         updateOrderHandler,
		deleteOrderHandler:         deleteOrderHandler,
		createMenuItemHandler:      createMenuItemHandler,
		updateMenuItemHandler:      updateMenuItemHandler,
		deleteMenuItemHandler:      deleteMenuItemHandler,
		addUserToGroupHandler:      addUserToGroupHandler,
		removeUserFromGroupHandler: removeUserFromGroupHandler,
		getMenuItemsHandler:        getMenuItemsHandler,
		getMenuItemHandler:         getMenuItemHandler,
		getCartHandler:             getCartHandler,
		getOrdersHandler:           getOrdersHandler,
		getOrderHandler:            getOrderHandler,
		getGroupUsersHandler:       getGroupUsersHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance. Everything
// except the health probe sits behind actor resolution.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.actorMiddleware)

	api.GET("/menu-items", s.GetMenuItems)
	api.POST("/menu-items", s.CreateMenuItem)
	api.GET("/menu-items/:id", s.GetMenuItem)
	api.PUT("/menu-items/:id", s.UpdateMenuItem)
	api.DELETE("/menu-items/:id", s.DeleteMenuItem)

	api.GET("/cart", s.GetCart)
	api.POST("/cart", s.AddItemToCart)
	api.DELETE("/cart", s.ClearCart)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.Checkout)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id", s.UpdateOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)

	api.GET("/groups/:group/users", s.GetGroupUsers)
	api.POST("/groups/:group/users", s.AddUserToGroup)
	api.DELETE("/groups/:group/users/:id", s.RemoveUserFromGroup)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// actorMiddleware resolves the X-User-ID header to an actor and stores it in
// the request context. Requests without a resolvable identity get 401.
func (s *Server) actorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(userIDHeader)
		if header == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "missing " + userIDHeader + " header",
			})
		}

		userID, err := kernel.UUIDFromString(header)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "malformed " + userIDHeader + " header",
			})
		}

		actor, err := s.resolveActor(ctx.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, errs.ErrObjectNotFound) {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "unknown user",
				})
			}
			return s.renderError(ctx, err)
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

func (s *Server) actor(ctx echo.Context) account.Actor {
	actor, _ := ctx.Get(actorContextKey).(account.Actor)
	return actor
}

// renderError maps domain errors to HTTP status codes. Unknown errors stay
// opaque to the client.
func (s *Server) renderError(ctx echo.Context, err error) error {
	var code int
	message := err.Error()

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
		message = "internal server error"
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

// GetMenuItems handles GET /api/v1/menu-items - lists the catalog with
// optional search, category, max_price, sort_by, page and per_page parameters.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	var maxPrice *kernel.Money
	if raw := ctx.QueryParam("max_price"); raw != "" {
		price, err := kernel.MoneyFromString(raw)
		if err != nil {
			return s.renderError(ctx, err)
		}
		maxPrice = &price
	}

	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	perPage, _ := strconv.Atoi(ctx.QueryParam("per_page"))

	query, err := queries.NewGetMenuItemsQuery(
		ctx.QueryParam("search"),
		ctx.QueryParam("category"),
		maxPrice,
		ctx.QueryParam("sort_by"),
		page,
		perPage,
	)
	if err != nil {
		return s.renderError(ctx, err)
	}

	items, err := s.getMenuItemsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]MenuItem, 0, len(items))
	for _, item := range items {
		response = append(response, menuItemFromResponse(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMenuItem handles GET /api/v1/menu-items/:id - retrieves a single catalog entry.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetMenuItemQuery(itemID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	item, err := s.getMenuItemHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, menuItemFromResponse(item))
}

// CreateMenuItem handles POST /api/v1/menu-items - adds a catalog entry.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	var body NewMenuItem
	if err := ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.renderError(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(body.CategoryID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewCreateMenuItemCommand(
		s.actor(ctx), body.Title, price, body.Featured, categoryID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	itemID, err := s.createMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": itemID.String()})
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id - replaces a catalog entry.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	var body NewMenuItem
	if err = ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.renderError(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(body.CategoryID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		s.actor(ctx), itemID, body.Title, price, body.Featured, categoryID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.updateMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:id - removes a catalog entry.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	itemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(s.actor(ctx), itemID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.deleteMenuItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCart handles GET /api/v1/cart - shows the caller's cart with the running total.
func (s *Server) GetCart(ctx echo.Context) error {
	query, err := queries.NewGetCartQuery(s.actor(ctx))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cart, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, cartFromResponse(cart))
}

// AddItemToCart handles POST /api/v1/cart - adds a menu item by title.
// Answers 201 for a freshly created line and 200 when the quantity merged
// into an existing one.
func (s *Server) AddItemToCart(ctx echo.Context) error {
	var body AddCartLine
	if err := ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAddItemToCartCommand(s.actor(ctx), body.Title, body.Quantity)
	if err != nil {
		return s.renderError(ctx, err)
	}

	result, err := s.addItemToCartHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	status := http.StatusCreated
	if result == commands.CartLineMerged {
		status = http.StatusOK
	}

	return ctx.NoContent(status)
}

// ClearCart handles DELETE /api/v1/cart - empties the caller's cart.
func (s *Server) ClearCart(ctx echo.Context) error {
	cmd, err := commands.NewClearCartCommand(s.actor(ctx))
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.clearCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - lists orders scoped to the caller's
// role: customers see their own, crew their assignments, managers everything.
func (s *Server) GetOrders(ctx echo.Context) error {
	query, err := queries.NewGetOrdersQuery(s.actor(ctx))
	if err != nil {
		return s.renderError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// Checkout handles POST /api/v1/orders - turns the caller's cart into an order.
func (s *Server) Checkout(ctx echo.Context) error {
	cmd, err := commands.NewCheckoutCommand(s.actor(ctx))
	if err != nil {
		return s.renderError(ctx, err)
	}

	orderID, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CheckoutResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(s.actor(ctx), orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderDetailFromResponse(detail))
}

// UpdateOrder handles PUT and PATCH /api/v1/orders/:id - applies a partial
// update; the fields present in the body must match what the caller's role
// may change.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	var body OrderPatch
	if err = ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	var status *order.Status
	if body.Status != nil {
		parsed, statusErr := order.StatusFromString(*body.Status)
		if statusErr != nil {
			return s.renderError(ctx, statusErr)
		}
		status = &parsed
	}

	var crewID *kernel.UUID
	if body.DeliveryCrewID != nil {
		parsed, crewErr := kernel.UUIDFromString(*body.DeliveryCrewID)
		if crewErr != nil {
			return s.renderError(ctx, crewErr)
		}
		crewID = &parsed
	}

	resubmit := body.ResubmitItems != nil && *body.ResubmitItems

	cmd, err := commands.NewUpdateOrderCommand(s.actor(ctx), orderID, status, crewID, resubmit)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order (managers only).
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(s.actor(ctx), orderID)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetGroupUsers handles GET /api/v1/groups/:group/users - lists group members.
func (s *Server) GetGroupUsers(ctx echo.Context) error {
	group, err := account.GroupFromString(ctx.Param("group"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	query, err := queries.NewGetGroupUsersQuery(s.actor(ctx), group)
	if err != nil {
		return s.renderError(ctx, err)
	}

	users, err := s.getGroupUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}

	response := make([]GroupUser, 0, len(users))
	for _, user := range users {
		response = append(response, GroupUser{ID: user.ID.String(), Username: user.Username})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddUserToGroup handles POST /api/v1/groups/:group/users - grants a role by username.
func (s *Server) AddUserToGroup(ctx echo.Context) error {
	group, err := account.GroupFromString(ctx.Param("group"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	var body NewGroupUser
	if err = ctx.Bind(&body); err != nil {
		return s.renderError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewAddUserToGroupCommand(s.actor(ctx), body.Username, group)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.addUserToGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RemoveUserFromGroup handles DELETE /api/v1/groups/:group/users/:id - revokes a role.
func (s *Server) RemoveUserFromGroup(ctx echo.Context) error {
	group, err := account.GroupFromString(ctx.Param("group"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewRemoveUserFromGroupCommand(s.actor(ctx), userID, group)
	if err != nil {
		return s.renderError(ctx, err)
	}

	if err = s.removeUserFromGroupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
