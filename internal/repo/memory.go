package repo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"shoplite/internal/domain"
)

// The memory repos back the transient stage of the service. Records live in
// insertion-order slices with an id index; ids are uuid tokens.

type memUserRepo struct {
	mu    sync.RWMutex
	users []domain.User
	byID  map[string]int
}

func NewMemUserRepo() UserRepo {
	return &memUserRepo{byID: make(map[string]int)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	r.byID[user.ID] = len(r.users)
	r.users = append(r.users, *user)
	return nil
}

func (r *memUserRepo) FindById(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil // not found
	}
	user := r.users[i]
	return &user, nil
}

func (r *memUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

type memProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
	byID     map[string]int
}

func NewMemProductRepo() ProductRepo {
	return &memProductRepo{byID: make(map[string]int)}
}

func (r *memProductRepo) Create(ctx context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product.ID = uuid.NewString()
	product.CreatedAt = time.Now()
	r.byID[product.ID] = len(r.products)
	r.products = append(r.products, *product)
	return nil
}

func (r *memProductRepo) FindById(ctx context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil // not found
	}
	product := r.products[i]
	return &product, nil
}

func (r *memProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]domain.Product, len(r.products))
	copy(products, r.products)
	return products, nil
}

type memOrderRepo struct {
	mu     sync.RWMutex
	orders []domain.Order
	byID   map[string]int
}

func NewMemOrderRepo() OrderRepo {
	return &memOrderRepo{byID: make(map[string]int)}
}

func (r *memOrderRepo) Create(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.ID = uuid.NewString()
	order.CreatedAt = time.Now()

	stored := *order
	stored.Items = make([]domain.OrderItem, len(order.Items))
	copy(stored.Items, order.Items)

	r.byID[stored.ID] = len(r.orders)
	r.orders = append(r.orders, stored)
	return nil
}

func (r *memOrderRepo) FindById(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil // not found
	}
	order := r.orders[i]
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	return &order, nil
}

func (r *memOrderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]domain.Order, len(r.orders))
	for i, order := range r.orders {
		order.Items = append([]domain.OrderItem(nil), order.Items...)
		orders[i] = order
	}
	return orders, nil
}
