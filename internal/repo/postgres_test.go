package repo_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	"shoplite/internal/database"
	"shoplite/internal/domain"
	"shoplite/internal/repo"
	"shoplite/internal/service"
)

// Spins up a disposable postgres and runs the repos against it. Skipped in
// short mode and when no container runtime is available.
func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("shoplite"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Skipf("container runtime unavailable: %v", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(ctr); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("connection string: %v", err)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := db.PingContext(waitCtx); err != nil {
		t.Fatalf("ping: %v", err)
	}

	if err := database.EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return db
}

func TestPostgresRepos(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	users := repo.NewUserRepo(db)
	products := repo.NewProductRepo(db)
	orders := repo.NewOrderRepo(db)
	svc := service.NewOrderService(users, products, orders)

	alice := &domain.User{Username: "alice", Email: "a@x.com"}
	if err := users.Create(ctx, alice); err != nil {
		t.Fatalf("create user: %v", err)
	}
	if alice.ID == "" {
		t.Fatal("expected a serial id")
	}

	widget := &domain.Product{Name: "Widget", Price: decimal.NewFromFloat(10.0), Description: "w"}
	gadget := &domain.Product{Name: "Gadget", Price: decimal.NewFromFloat(2.5), Description: "g"}
	for _, p := range []*domain.Product{widget, gadget} {
		if err := products.Create(ctx, p); err != nil {
			t.Fatalf("create product: %v", err)
		}
	}

	t.Run("round trips a product with its price", func(t *testing.T) {
		found, err := products.FindById(ctx, widget.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found == nil {
			t.Fatal("expected product, got nil")
		}
		if !found.Price.Equal(decimal.NewFromFloat(10.0)) {
			t.Errorf("expected price 10, got %s", found.Price)
		}
	})

	t.Run("miss and non-numeric ids resolve to nil", func(t *testing.T) {
		for _, id := range []string{"999999", "nonexistent-id"} {
			u, err := users.FindById(ctx, id)
			if err != nil {
				t.Fatalf("find %q: %v", id, err)
			}
			if u != nil {
				t.Errorf("expected nil for %q, got %+v", id, u)
			}
		}
	})

	t.Run("order and items persist atomically", func(t *testing.T) {
		order, err := svc.PlaceOrder(ctx, alice.ID, []domain.OrderItem{
			{ProductID: widget.ID, Quantity: 2},
			{ProductID: gadget.ID, Quantity: 4},
		})
		if err != nil {
			t.Fatalf("place order: %v", err)
		}

		fresh, err := orders.FindById(ctx, order.ID)
		if err != nil {
			t.Fatalf("find order: %v", err)
		}
		if fresh == nil {
			t.Fatal("expected order, got nil")
		}
		if !fresh.TotalPrice.Equal(decimal.NewFromFloat(30.0)) {
			t.Errorf("expected total 30, got %s", fresh.TotalPrice)
		}
		if fresh.Status != domain.OrderConfirmed {
			t.Errorf("expected status confirmed, got %s", fresh.Status)
		}
		if len(fresh.Items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(fresh.Items))
		}
		if fresh.Items[0].ProductID != widget.ID || fresh.Items[0].Quantity != 2 {
			t.Errorf("unexpected first item %+v", fresh.Items[0])
		}
	})

	t.Run("failed validation leaves no rows", func(t *testing.T) {
		before, err := orders.FindAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}

		_, err = svc.PlaceOrder(ctx, alice.ID, []domain.OrderItem{
			{ProductID: widget.ID, Quantity: 1},
			{ProductID: "nonexistent-id", Quantity: 1},
		})
		var notFound *domain.ProductNotFoundError
		if !errors.As(err, &notFound) {
			t.Fatalf("expected ProductNotFoundError, got %v", err)
		}

		after, err := orders.FindAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("expected %d orders, got %d", len(before), len(after))
		}

		var itemCount int
		if err := db.QueryRowContext(ctx,
			"SELECT count(*) FROM order_items").Scan(&itemCount); err != nil {
			t.Fatalf("count items: %v", err)
		}
		if itemCount != 2 {
			t.Errorf("expected only the 2 committed items, got %d", itemCount)
		}
	})

	t.Run("orders list in insertion order with items attached", func(t *testing.T) {
		if _, err := svc.PlaceOrder(ctx, alice.ID, []domain.OrderItem{
			{ProductID: gadget.ID, Quantity: 1},
		}); err != nil {
			t.Fatalf("place order: %v", err)
		}

		all, err := orders.FindAll(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(all))
		}
		if len(all[0].Items) != 2 || len(all[1].Items) != 1 {
			t.Errorf("unexpected item grouping: %d and %d", len(all[0].Items), len(all[1].Items))
		}
	})
}
