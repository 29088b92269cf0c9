package server

import (
	"context"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shoplite/internal/metrics"
	"shoplite/internal/repo"
	"shoplite/internal/service"
)

// HealthFunc reports store health; the memory driver supplies a static one.
type HealthFunc func(ctx context.Context) map[string]string

type Server struct {
	log      *slog.Logger
	metrics  *metrics.ServerMetrics
	users    repo.UserRepo
	products repo.ProductRepo
	orders   service.OrderService
	health   HealthFunc
}

func New(
	log *slog.Logger,
	m *metrics.ServerMetrics,
	users repo.UserRepo,
	products repo.ProductRepo,
	orders service.OrderService,
	health HealthFunc,
) *Server {
	return &Server{
		log:      log,
		metrics:  m,
		users:    users,
		products: products,
		orders:   orders,
		health:   health,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.Default())
	r.Use(s.requestID())
	r.Use(s.observe())

	r.GET("/", s.home)
	r.GET("/health", s.healthCheck)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.POST("/users", s.createUser)
	r.GET("/users", s.listUsers)
	r.POST("/products", s.createProduct)
	r.GET("/products", s.listProducts)
	r.POST("/orders", s.createOrder)
	r.GET("/orders", s.listOrders)

	return r
}
