package repo

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"shoplite/internal/domain"
)

type ProductRepo interface {
	Create(ctx context.Context, product *domain.Product) error
	FindById(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type productRepo struct {
	db *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepo {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *domain.Product) error {
	product.CreatedAt = time.Now()
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO products (name, price, description, created_at) VALUES ($1, $2, $3, $4) RETURNING id",
		product.Name, product.Price, product.Description, product.CreatedAt,
	).Scan(&id)
	if err != nil {
		return err
	}
	product.ID = strconv.FormatInt(id, 10)
	return nil
}

func (r *productRepo) FindById(ctx context.Context, id string) (*domain.Product, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, nil // non-numeric ids cannot exist in this store
	}

	var product domain.Product
	var dbID int64
	err = r.db.QueryRowContext(ctx,
		"SELECT id, name, price, description, created_at FROM products WHERE id = $1", key,
	).Scan(&dbID, &product.Name, &product.Price, &product.Description, &product.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err // system error
	}
	product.ID = strconv.FormatInt(dbID, 10)
	return &product, nil
}

func (r *productRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, price, description, created_at FROM products ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		var dbID int64
		if err := rows.Scan(&dbID, &product.Name, &product.Price, &product.Description, &product.CreatedAt); err != nil {
			return nil, err
		}
		product.ID = strconv.FormatInt(dbID, 10)
		products = append(products, product)
	}
	return products, rows.Err()
}
