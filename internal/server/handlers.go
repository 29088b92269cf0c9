package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"shoplite/internal/domain"
)

type createUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type createProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Description string           `json:"description"`
}

type orderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

type createOrderRequest struct {
	UserID string             `json:"user_id" binding:"required"`
	Items  []orderItemRequest `json:"items" binding:"dive"`
}

func (s *Server) home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the shoplite order service"})
}

func (s *Server) healthCheck(c *gin.Context) {
	stats := s.health(c.Request.Context())
	code := http.StatusOK
	if stats["status"] != "up" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, stats)
}

func (s *Server) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &domain.User{Username: req.Username, Email: req.Email}
	if err := s.users.Create(c.Request.Context(), user); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.FindAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be non-negative"})
		return
	}

	product := &domain.Product{
		Name:        req.Name,
		Price:       *req.Price,
		Description: req.Description,
	}
	if err := s.products.Create(c.Request.Context(), product); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

func (s *Server) listProducts(c *gin.Context) {
	products, err := s.products.FindAll(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]domain.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	order, err := s.orders.PlaceOrder(c.Request.Context(), req.UserID, items)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.metrics.OrdersCreated.Inc()
	c.JSON(http.StatusCreated, order)
}

func (s *Server) listOrders(c *gin.Context) {
	orders, err := s.orders.ListOrders(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// fail maps domain errors to client responses; anything else is a 500.
func (s *Server) fail(c *gin.Context, err error) {
	code := statusFromError(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed",
			"request_id", c.GetString("request_id"),
			"error", err.Error(),
		)
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(code, gin.H{"error": err.Error()})
}

func statusFromError(err error) int {
	var userErr *domain.UserNotFoundError
	var productErr *domain.ProductNotFoundError
	switch {
	case errors.As(err, &userErr), errors.As(err, &productErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
