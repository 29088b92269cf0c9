package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"shoplite/internal/config"
	"shoplite/internal/database"
	"shoplite/internal/logger"
	"shoplite/internal/metrics"
	"shoplite/internal/repo"
	"shoplite/internal/server"
	"shoplite/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "shoplite",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		users    repo.UserRepo
		products repo.ProductRepo
		orders   repo.OrderRepo
		health   server.HealthFunc
	)

	switch cfg.StoreDriver {
	case config.DriverPostgres:
		db, err := database.Open(cfg)
		if err != nil {
			log.Error("database open failed", "error", err.Error())
			os.Exit(1)
		}
		defer db.Close()

		if err := db.EnsureSchema(ctx); err != nil {
			log.Error("schema bootstrap failed", "error", err.Error())
			os.Exit(1)
		}

		users = repo.NewUserRepo(db.DB())
		products = repo.NewProductRepo(db.DB())
		orders = repo.NewOrderRepo(db.DB())
		health = db.Health
	case config.DriverMemory:
		users = repo.NewMemUserRepo()
		products = repo.NewMemProductRepo()
		orders = repo.NewMemOrderRepo()
		health = func(context.Context) map[string]string {
			return map[string]string{"status": "up", "message": "memory store"}
		}
	default:
		log.Error("unknown store driver", "driver", cfg.StoreDriver)
		os.Exit(1)
	}

	orderService := service.NewOrderService(users, products, orders)
	srv := server.New(log, metrics.NewServerMetrics("api"), users, products, orderService, health)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: srv.Router(),
	}

	go func() {
		log.Info("listening", "port", cfg.HTTPPort, "driver", cfg.StoreDriver)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err.Error())
	}
	log.Info("stopped")
}
