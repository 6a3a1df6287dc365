package repository

import (
	"context"
	"errors"

	"twiginvoice/models"
)

// ErrOrderNotFound reports that the provider does not know the order id.
// Any other error from GetOrder is an upstream failure.
var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
}
