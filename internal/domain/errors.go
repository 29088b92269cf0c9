package domain

import "fmt"

// UserNotFoundError is returned when an order references a user that does
// not exist in the store.
type UserNotFoundError struct {
	UserID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.UserID)
}

// ProductNotFoundError names the first unresolved product reference of an
// order; items after it are never inspected.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}
