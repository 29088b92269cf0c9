package repo

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"shoplite/internal/domain"
)

func TestMemUserRepo(t *testing.T) {
	ctx := context.Background()
	users := NewMemUserRepo()

	t.Run("empty store lists an empty sequence", func(t *testing.T) {
		all, err := users.FindAll(ctx)
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if all == nil || len(all) != 0 {
			t.Fatalf("expected empty slice, got %v", all)
		}
	})

	t.Run("create assigns unique non-empty ids", func(t *testing.T) {
		a := &domain.User{Username: "alice", Email: "a@x.com"}
		b := &domain.User{Username: "bob", Email: "b@x.com"}
		if err := users.Create(ctx, a); err != nil {
			t.Fatalf("create: %v", err)
		}
		if err := users.Create(ctx, b); err != nil {
			t.Fatalf("create: %v", err)
		}
		if a.ID == "" || b.ID == "" {
			t.Error("expected ids to be assigned")
		}
		if a.ID == b.ID {
			t.Errorf("expected distinct ids, both were %q", a.ID)
		}
	})

	t.Run("lists in insertion order", func(t *testing.T) {
		all, err := users.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if len(all) != 2 {
			t.Fatalf("expected 2 users, got %d", len(all))
		}
		if all[0].Username != "alice" || all[1].Username != "bob" {
			t.Errorf("expected insertion order alice,bob; got %s,%s", all[0].Username, all[1].Username)
		}
	})

	t.Run("miss resolves to nil without error", func(t *testing.T) {
		u, err := users.FindById(ctx, "does-not-exist")
		if err != nil {
			t.Fatalf("expected no error, got: %v", err)
		}
		if u != nil {
			t.Errorf("expected nil, got %+v", u)
		}
	})
}

func TestMemProductRepo(t *testing.T) {
	ctx := context.Background()
	products := NewMemProductRepo()

	p := &domain.Product{Name: "Widget", Price: decimal.NewFromFloat(10.0), Description: "w"}
	if err := products.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	found, err := products.FindById(ctx, p.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found == nil {
		t.Fatal("expected product, got nil")
	}
	if !found.Price.Equal(decimal.NewFromFloat(10.0)) {
		t.Errorf("expected price 10, got %s", found.Price)
	}
}

func TestMemOrderRepo(t *testing.T) {
	ctx := context.Background()
	orders := NewMemOrderRepo()

	order := &domain.Order{
		UserID:     "u1",
		Items:      []domain.OrderItem{{ProductID: "p1", Quantity: 2}},
		TotalPrice: decimal.NewFromFloat(20.0),
		Status:     domain.OrderConfirmed,
	}
	if err := orders.Create(ctx, order); err != nil {
		t.Fatalf("create: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	t.Run("stored items are isolated from the caller's slice", func(t *testing.T) {
		order.Items[0].Quantity = 99

		found, err := orders.FindById(ctx, order.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if found == nil {
			t.Fatal("expected order, got nil")
		}
		if found.Items[0].Quantity != 2 {
			t.Errorf("expected stored quantity 2, got %d", found.Items[0].Quantity)
		}
	})

	t.Run("find all returns stored orders", func(t *testing.T) {
		all, err := orders.FindAll(ctx)
		if err != nil {
			t.Fatalf("find all: %v", err)
		}
		if len(all) != 1 {
			t.Fatalf("expected 1 order, got %d", len(all))
		}
		if all[0].Status != domain.OrderConfirmed {
			t.Errorf("expected status %s, got %s", domain.OrderConfirmed, all[0].Status)
		}
	})
}
