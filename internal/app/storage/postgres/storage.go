package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/entity"
	err_storage "github.com/avGenie/go-order-processing/internal/app/storage/api/errors"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const uniqueViolationCode = "23505"

const queryTimeout = 5 * time.Second

const (
	insertOrderQuery = `INSERT INTO orders (id, user_id, type, amount, flag, status, priority) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	selectUserOrders = `SELECT id, type, amount, flag, status, priority FROM orders WHERE user_id = $1 ORDER BY id`
	updateOrderQuery = `UPDATE orders SET status = $2, priority = $3, updated_at = NOW() WHERE id = $1`
)

type Postgres struct {
	db *sql.DB
}

func NewPostgresStorage(dbStorageConnect string) (*Postgres, error) {
	db, err := sql.Open("pgx", dbStorageConnect)
	if err != nil {
		return nil, fmt.Errorf("error while postgresql connect: %w", err)
	}

	return &Postgres{
		db: db,
	}, nil
}

func (s *Postgres) Close() error {
	return s.db.Close()
}

func (s *Postgres) Ping(ctx context.Context) error {
	err := s.db.PingContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: error while pinging postgresql: %w", err_storage.ErrDatabase, err)
	}

	return nil
}

func (s *Postgres) AddOrder(ctx context.Context, userID entity.UserID, order entity.Order) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, insertOrderQuery,
		int64(order.ID),
		int64(userID),
		string(order.Type),
		order.Amount,
		order.Flag,
		string(order.Status),
		string(order.Priority),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return err_storage.ErrOrderExists
		}

		return fmt.Errorf("%w: error while adding order %d: %w", err_storage.ErrDatabase, order.ID, err)
	}

	return nil
}

func (s *Postgres) GetOrdersByUser(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, selectUserOrders, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("%w: error while selecting orders of user %s: %w", err_storage.ErrDatabase, userID, err)
	}
	defer rows.Close()

	orders := make(entity.Orders, 0)
	for rows.Next() {
		var (
			order     entity.Order
			id        int64
			orderType string
			status    string
			priority  string
		)

		err = rows.Scan(&id, &orderType, &order.Amount, &order.Flag, &status, &priority)
		if err != nil {
			return nil, fmt.Errorf("%w: error while scanning order of user %s: %w", err_storage.ErrDatabase, userID, err)
		}

		order.ID = entity.OrderID(id)
		order.Type = entity.OrderType(orderType)
		order.Status = entity.OrderStatus(status)
		order.Priority = entity.OrderPriority(priority)

		orders = append(orders, &order)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("%w: error while iterating orders of user %s: %w", err_storage.ErrDatabase, userID, err)
	}

	return orders, nil
}

func (s *Postgres) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus, priority entity.OrderPriority) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := s.db.ExecContext(ctx, updateOrderQuery, int64(orderID), string(status), string(priority))
	if err != nil {
		return false, fmt.Errorf("%w: error while updating order %d: %w", err_storage.ErrDatabase, orderID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("error while getting affected rows for order %d: %w", orderID, err)
	}

	return affected > 0, nil
}
