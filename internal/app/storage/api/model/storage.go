package model

import (
	"context"

	"github.com/avGenie/go-order-processing/internal/app/entity"
)

type Storage interface {
	Close() error
	Ping(ctx context.Context) error

	AddOrder(ctx context.Context, userID entity.UserID, order entity.Order) error
	GetOrdersByUser(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus, priority entity.OrderPriority) (bool, error)
}
