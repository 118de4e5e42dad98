// Package http exposes the marketplace over a REST API. Handlers translate
// between transport concerns and application commands/queries, and map the
// domain error taxonomy onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler     commands.RegisterUserCommandHandler
	placeOrderHandler       commands.PlaceOrderCommandHandler
	claimJobHandler         commands.ClaimJobCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	createProductHandler    commands.CreateProductCommandHandler

	// Query handlers
	getJobFeedHandler      queries.GetJobFeedQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getProductsHandler     queries.GetProductsQueryHandler

	// Login support
	users  ports.UserRepository
	tokens *TokenService
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	registerUserHandler commands.RegisterUserCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	claimJobHandler commands.ClaimJobCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	getJobFeedHandler queries.GetJobFeedQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	users ports.UserRepository,
	tokens *TokenService,
) *Server {
	return &Server{
		registerUserHandler:     registerUserHandler,
		placeOrderHandler:       placeOrderHandler,
		claimJobHandler:         claimJobHandler,
		completeDeliveryHandler: completeDeliveryHandler,
		cancelOrderHandler:      cancelOrderHandler,
		createProductHandler:    createProductHandler,
		getJobFeedHandler:       getJobFeedHandler,
		getOrderHistoryHandler:  getOrderHistoryHandler,
		getProductsHandler:      getProductsHandler,
		users:                   users,
		tokens:                  tokens,
	}
}

// RegisterRoutes wires all routes into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api", MetricsMiddleware())

	api.POST("/auth/register", s.RegisterUser)
	api.POST("/auth/login", s.Login)
	api.GET("/products", s.GetProducts)

	authenticated := api.Group("", AuthMiddleware(s.tokens))
	authenticated.POST("/orders", s.PlaceOrder)
	authenticated.POST("/orders/:orderId/cancel", s.CancelOrder)
	authenticated.GET("/jobs", s.GetJobFeed)
	authenticated.POST("/jobs/:orderId/accept", s.ClaimJob)
	authenticated.POST("/jobs/:orderId/complete", s.CompleteDelivery)
	authenticated.GET("/user/orders", s.GetOrderHistory)
	authenticated.POST("/products", s.CreateProduct)
}

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func errorJSON(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Code: code, Message: message})
}

// handleError maps the domain error taxonomy onto HTTP status codes.
// Conflict consistently maps to 409; out-of-stock is a 400 because the
// request itself cannot succeed, not a race the client should retry.
func handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(c, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrConflict):
		return errorJSON(c, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrPermissionDenied):
		return errorJSON(c, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	default:
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError, "internal error")
	}
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// OrderResponse is the public view of an order.
type OrderResponse struct {
	ID          string    `json:"id"`
	BuyerID     string    `json:"buyerId"`
	SellerID    string    `json:"sellerId"`
	ProductID   string    `json:"productId"`
	RiderID     *string   `json:"riderId,omitempty"`
	Price       int64     `json:"price"`
	DeliveryFee int64     `json:"deliveryFee"`
	Commission  int64     `json:"commission"`
	TotalAmount int64     `json:"totalAmount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

func orderResponse(o *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:          o.ID().String(),
		BuyerID:     o.BuyerID().String(),
		SellerID:    o.SellerID().String(),
		ProductID:   o.ProductID().String(),
		Price:       o.Price(),
		DeliveryFee: o.DeliveryFee(),
		Commission:  o.Commission(),
		TotalAmount: o.TotalAmount(),
		Status:      o.Status().String(),
		CreatedAt:   o.CreatedAt(),
	}
	if rider := o.Rider(); rider != nil {
		id := rider.String()
		resp.RiderID = &id
	}
	return resp
}

// RegisterUser handles POST /api/auth/register.
func (s *Server) RegisterUser(c echo.Context) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	role, err := user.RoleFromString(req.Role)
	if err != nil {
		return handleError(c, err)
	}

	cmd, err := commands.NewRegisterUserCommand(req.Name, req.Email, req.Password, role)
	if err != nil {
		return handleError(c, err)
	}

	u, err := s.registerUserHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusCreated, UserResponse{
		ID:    u.ID().String(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	})
}

// Login handles POST /api/auth/login. Unknown email and wrong password both
// answer 401 with the same message.
func (s *Server) Login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	u, err := s.users.GetByEmail(c.Request().Context(), req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errorJSON(c, http.StatusUnauthorized, "Invalid email or password")
		}
		return handleError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(req.Password)) != nil {
		return errorJSON(c, http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := s.tokens.Issue(u)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"token": token})
}

// PlaceOrder handles POST /api/orders. The buyer identity comes from the
// token; any price or seller fields in the body are ignored.
func (s *Server) PlaceOrder(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}
	if identity.Role != user.RoleBuyer && identity.Role != user.RoleAdmin {
		return errorJSON(c, http.StatusForbidden, "Only buyers can place orders")
	}

	var req struct {
		ProductID   string `json:"productId"`
		DeliveryFee *int64 `json:"deliveryFee"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	productID, err := kernel.UUIDFromString(req.ProductID)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid productId")
	}

	cmd, err := commands.NewPlaceOrderCommand(identity.UserID, productID, req.DeliveryFee)
	if err != nil {
		return handleError(c, err)
	}

	result, err := s.placeOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"order":           orderResponse(result.Order),
		"yourCommission":  result.Commission,
		"netSellerPayout": result.NetSellerPayout,
	})
}

// CancelOrder handles POST /api/orders/:orderId/cancel.
func (s *Server) CancelOrder(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid orderId")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, identity.UserID, identity.Role)
	if err != nil {
		return handleError(c, err)
	}

	o, err := s.cancelOrderHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse(o))
}

// GetJobFeed handles GET /api/jobs.
func (s *Server) GetJobFeed(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	query, err := queries.NewGetJobFeedQuery(identity.Role)
	if err != nil {
		return handleError(c, err)
	}

	jobs, err := s.getJobFeedHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return handleError(c, err)
	}

	type jobView struct {
		OrderID     string    `json:"orderId"`
		BuyerID     string    `json:"buyerId"`
		ProductName string    `json:"productName"`
		SellerName  string    `json:"sellerName"`
		Price       int64     `json:"price"`
		RiderPayout int64     `json:"riderPayout"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	response := make([]jobView, len(jobs))
	for i, job := range jobs {
		response[i] = jobView{
			OrderID:     job.OrderID.String(),
			BuyerID:     job.BuyerID.String(),
			ProductName: job.ProductName,
			SellerName:  job.SellerName,
			Price:       job.Price,
			RiderPayout: job.RiderPayout,
			CreatedAt:   job.CreatedAt,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// ClaimJob handles POST /api/jobs/:orderId/accept.
func (s *Server) ClaimJob(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid orderId")
	}

	cmd, err := commands.NewClaimJobCommand(orderID, identity.UserID, identity.Role)
	if err != nil {
		return handleError(c, err)
	}

	o, err := s.claimJobHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrConflict) {
			claimsTotal.WithLabelValues("lost").Inc()
		}
		return handleError(c, err)
	}

	claimsTotal.WithLabelValues("won").Inc()
	return c.JSON(http.StatusOK, orderResponse(o))
}

// CompleteDelivery handles POST /api/jobs/:orderId/complete.
func (s *Server) CompleteDelivery(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	orderID, err := kernel.UUIDFromString(c.Param("orderId"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid orderId")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID, identity.UserID, identity.Role)
	if err != nil {
		return handleError(c, err)
	}

	o, err := s.completeDeliveryHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusOK, orderResponse(o))
}

// GetOrderHistory handles GET /api/user/orders.
func (s *Server) GetOrderHistory(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	query, err := queries.NewGetOrderHistoryQuery(identity.UserID, identity.Role)
	if err != nil {
		return handleError(c, err)
	}

	history, err := s.getOrderHistoryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return handleError(c, err)
	}

	type historyView struct {
		OrderID     string    `json:"orderId"`
		ProductName string    `json:"productName"`
		Status      string    `json:"status"`
		RiderID     *string   `json:"riderId,omitempty"`
		Price       int64     `json:"price"`
		DeliveryFee int64     `json:"deliveryFee"`
		Commission  int64     `json:"commission"`
		TotalAmount int64     `json:"totalAmount"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	response := make([]historyView, len(history))
	for i, entry := range history {
		view := historyView{
			OrderID:     entry.OrderID.String(),
			ProductName: entry.ProductName,
			Status:      entry.Status,
			Price:       entry.Price,
			DeliveryFee: entry.DeliveryFee,
			Commission:  entry.Commission,
			TotalAmount: entry.TotalAmount,
			CreatedAt:   entry.CreatedAt,
		}
		if entry.RiderID != nil {
			id := entry.RiderID.String()
			view.RiderID = &id
		}
		response[i] = view
	}

	return c.JSON(http.StatusOK, response)
}

// GetProducts handles GET /api/products, optionally filtered by sellerId.
func (s *Server) GetProducts(c echo.Context) error {
	query := queries.NewGetProductsQuery()
	if sellerParam := c.QueryParam("sellerId"); sellerParam != "" {
		sellerID, err := kernel.UUIDFromString(sellerParam)
		if err != nil {
			return errorJSON(c, http.StatusBadRequest, "Invalid sellerId")
		}
		query, err = queries.NewGetProductsBySellerQuery(sellerID)
		if err != nil {
			return handleError(c, err)
		}
	}

	products, err := s.getProductsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return handleError(c, err)
	}

	type productView struct {
		ID       string `json:"id"`
		SellerID string `json:"sellerId"`
		Name     string `json:"name"`
		Price    int64  `json:"price"`
		Stock    int    `json:"stock"`
	}

	response := make([]productView, len(products))
	for i, p := range products {
		response[i] = productView{
			ID:       p.ID.String(),
			SellerID: p.SellerID.String(),
			Name:     p.Name,
			Price:    p.Price,
			Stock:    p.Stock,
		}
	}

	return c.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/products.
func (s *Server) CreateProduct(c echo.Context) error {
	identity, ok := identityFrom(c)
	if !ok {
		return errorJSON(c, http.StatusUnauthorized, "Missing identity")
	}

	var req struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Stock int    `json:"stock"`
	}
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(identity.UserID, identity.Role, req.Name, req.Price, req.Stock)
	if err != nil {
		return handleError(c, err)
	}

	p, err := s.createProductHandler.Handle(c.Request().Context(), cmd)
	if err != nil {
		return handleError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"id":       p.ID().String(),
		"sellerId": p.SellerID().String(),
		"name":     p.Name(),
		"price":    p.Price(),
		"stock":    p.Stock(),
	})
}
