package repo

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"shoplite/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	FindById(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) UserRepo {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	user.CreatedAt = time.Now()
	var id int64
	err := r.db.QueryRowContext(ctx,
		"INSERT INTO users (username, email, created_at) VALUES ($1, $2, $3) RETURNING id",
		user.Username, user.Email, user.CreatedAt,
	).Scan(&id)
	if err != nil {
		return err
	}
	user.ID = strconv.FormatInt(id, 10)
	return nil
}

func (r *userRepo) FindById(ctx context.Context, id string) (*domain.User, error) {
	key, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return nil, nil // non-numeric ids cannot exist in this store
	}

	var user domain.User
	var dbID int64
	err = r.db.QueryRowContext(ctx,
		"SELECT id, username, email, created_at FROM users WHERE id = $1", key,
	).Scan(&dbID, &user.Username, &user.Email, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err // system error
	}
	user.ID = strconv.FormatInt(dbID, 10)
	return &user, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, username, email, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		var dbID int64
		if err := rows.Scan(&dbID, &user.Username, &user.Email, &user.CreatedAt); err != nil {
			return nil, err
		}
		user.ID = strconv.FormatInt(dbID, 10)
		users = append(users, user)
	}
	return users, rows.Err()
}
