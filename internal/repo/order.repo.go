package repo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"shoplite/internal/domain"
)

type OrderRepo interface {
	// Create persists the order and all of its items atomically; on any
	// error nothing is kept.
	Create(ctx context.Context, order *domain.Order) error
	FindById(ctx context.Context, id string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
}

type orderRepo struct {
	db *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepo {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *domain.Order) error {
	userID, err := strconv.ParseInt(order.UserID, 10, 64)
	if err != nil {
		return fmt.Errorf("order user id %q: %w", order.UserID, err)
	}

	order.CreatedAt = time.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var id int64
	err = tx.QueryRowContext(ctx,
		"INSERT INTO orders (user_id, status, total_price, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		userID, order.Status, order.TotalPrice, order.CreatedAt,
	).Scan(&id)
	if err != nil {
		return err
	}

	for _, item := range order.Items {
		productID, err := strconv.ParseInt(item.ProductID, 10, 64)
		if err != nil {
			return fmt.Errorf("order item product id %q: %w", item.ProductID, err)
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)",
			id, productID, item.Quantity,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	order.ID = strconv.FormatInt(id, 10)
	return nil
}

func (r *orderRepo) FindById(ctx context.Context, id string) (*domain.Order, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, nil // non-numeric ids cannot exist in this store
	}

	var order domain.Order
	var dbID int64
	err = r.db.QueryRowContext(ctx,
		"SELECT id, user_id, status, total_price, created_at FROM orders WHERE id = $1", key,
	).Scan(&dbID, &order.UserID, &order.Status, &order.TotalPrice, &order.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err // system error
	}
	order.ID = strconv.FormatInt(dbID, 10)

	order.Items, err = r.findItems(ctx, dbID)
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) FindAll(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, status, total_price, created_at FROM orders ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	index := map[int64]int{}
	for rows.Next() {
		var order domain.Order
		var dbID int64
		if err := rows.Scan(&dbID, &order.UserID, &order.Status, &order.TotalPrice, &order.CreatedAt); err != nil {
			return nil, err
		}
		order.ID = strconv.FormatInt(dbID, 10)
		order.Items = []domain.OrderItem{}
		index[dbID] = len(orders)
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := r.db.QueryContext(ctx,
		"SELECT order_id, product_id, quantity FROM order_items ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var orderID, productID int64
		var item domain.OrderItem
		if err := itemRows.Scan(&orderID, &productID, &item.Quantity); err != nil {
			return nil, err
		}
		item.ProductID = strconv.FormatInt(productID, 10)
		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	return orders, itemRows.Err()
}

func (r *orderRepo) findItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT product_id, quantity FROM order_items WHERE order_id = $1 ORDER BY id", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var productID int64
		var item domain.OrderItem
		if err := rows.Scan(&productID, &item.Quantity); err != nil {
			return nil, err
		}
		item.ProductID = strconv.FormatInt(productID, 10)
		items = append(items, item)
	}
	return items, rows.Err()
}
