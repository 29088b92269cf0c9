package service

import (
	"context"

	"github.com/shopspring/decimal"

	"shoplite/internal/domain"
	"shoplite/internal/repo"
)

type OrderService interface {
	// PlaceOrder validates the user and every product reference, prices the
	// order from the products' current prices, and persists it with status
	// confirmed. A failed validation leaves no records behind.
	PlaceOrder(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type orderService struct {
	userRepo    repo.UserRepo
	productRepo repo.ProductRepo
	orderRepo   repo.OrderRepo
}

func NewOrderService(
	userRepo repo.UserRepo,
	productRepo repo.ProductRepo,
	orderRepo repo.OrderRepo,
) OrderService {
	return &orderService{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID string, items []domain.OrderItem) (*domain.Order, error) {
	user, err := s.userRepo.FindById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &domain.UserNotFoundError{UserID: userID}
	}

	// Price snapshot: totals are frozen at creation time and never
	// recomputed from later product prices.
	total := decimal.Zero
	for _, item := range items {
		product, err := s.productRepo.FindById(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			// First unresolved product aborts; later items are not inspected.
			return nil, &domain.ProductNotFoundError{ProductID: item.ProductID}
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &domain.Order{
		UserID:     user.ID,
		Items:      items,
		TotalPrice: total,
		Status:     domain.OrderConfirmed,
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orderRepo.FindAll(ctx)
}
