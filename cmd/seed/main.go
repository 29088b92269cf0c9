package main

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"shoplite/internal/config"
	"shoplite/internal/database"
	"shoplite/internal/domain"
	"shoplite/internal/repo"
	"shoplite/internal/service"
)

// Seeds a handful of users and products and places demo orders through the
// validation workflow, printing what the store ends up holding.
func main() {
	ctx := context.Background()
	cfg := config.Load()

	var (
		users    repo.UserRepo
		products repo.ProductRepo
		orders   repo.OrderRepo
	)

	if cfg.StoreDriver == config.DriverPostgres {
		db, err := database.Open(cfg)
		if err != nil {
			log.Fatalf("database open failed: %v", err)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			log.Fatalf("schema bootstrap failed: %v", err)
		}
		users = repo.NewUserRepo(db.DB())
		products = repo.NewProductRepo(db.DB())
		orders = repo.NewOrderRepo(db.DB())
	} else {
		users = repo.NewMemUserRepo()
		products = repo.NewMemProductRepo()
		orders = repo.NewMemOrderRepo()
	}

	orderService := service.NewOrderService(users, products, orders)

	fmt.Printf("--- SEEDING (%s store) ---\n", cfg.StoreDriver)

	alice := &domain.User{Username: "alice", Email: "alice@example.com"}
	bob := &domain.User{Username: "bob", Email: "bob@example.com"}
	for _, u := range []*domain.User{alice, bob} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", u.Username, err)
		}
		fmt.Printf("user %s -> id %s\n", u.Username, u.ID)
	}

	widget := &domain.Product{Name: "Widget", Price: decimal.NewFromFloat(10.0), Description: "A widget"}
	gadget := &domain.Product{Name: "Gadget", Price: decimal.NewFromFloat(2.5), Description: "A gadget"}
	for _, p := range []*domain.Product{widget, gadget} {
		if err := products.Create(ctx, p); err != nil {
			log.Fatalf("create product %s: %v", p.Name, err)
		}
		fmt.Printf("product %s (%s) -> id %s\n", p.Name, p.Price, p.ID)
	}

	fmt.Println("--- PLACING ORDERS ---")

	demo := []struct {
		userID string
		items  []domain.OrderItem
	}{
		{alice.ID, []domain.OrderItem{{ProductID: widget.ID, Quantity: 2}, {ProductID: gadget.ID, Quantity: 4}}},
		{bob.ID, []domain.OrderItem{{ProductID: gadget.ID, Quantity: 1}}},
		// Deliberately broken reference: must fail and leave nothing behind.
		{alice.ID, []domain.OrderItem{{ProductID: widget.ID, Quantity: 1}, {ProductID: "nonexistent-id", Quantity: 1}}},
	}

	for i, d := range demo {
		fmt.Printf("[%d] placing order for user %s ... ", i+1, d.userID)
		order, err := orderService.PlaceOrder(ctx, d.userID, d.items)
		if err != nil {
			fmt.Printf("FAILED: %v\n", err)
			continue
		}
		fmt.Printf("SUCCESS: total=%s status=%s\n", order.TotalPrice, order.Status)
	}

	stored, err := orderService.ListOrders(ctx)
	if err != nil {
		log.Fatalf("list orders: %v", err)
	}
	fmt.Printf("--- STORE HOLDS %d ORDER(S) ---\n", len(stored))
	for _, o := range stored {
		fmt.Printf("order %s user=%s total=%s status=%s items=%d\n",
			o.ID, o.UserID, o.TotalPrice, o.Status, len(o.Items))
	}
}
