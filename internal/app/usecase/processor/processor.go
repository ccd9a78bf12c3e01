package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/entity"
	err_storage "github.com/avGenie/go-order-processing/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-processing/internal/app/usecase/remote"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	remoteHighAmount = 50
	orderLowAmount   = 100
)

// ErrFetchOrders is returned instead of orders when the user's batch can't be fetched.
var ErrFetchOrders = errors.New("error while fetching user orders")

type OrderStore interface {
	GetOrdersByUser(ctx context.Context, userID entity.UserID) (entity.Orders, error)
	UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus, priority entity.OrderPriority) (bool, error)
}

type RemoteClient interface {
	CallAPI(ctx context.Context, orderID entity.OrderID) (entity.APIResponse, error)
}

type ExportSink interface {
	Open(name string) (io.WriteCloser, error)
}

type Processor struct {
	store  OrderStore
	remote RemoteClient
	sink   ExportSink

	now func() time.Time
}

func New(store OrderStore, remoteClient RemoteClient, sink ExportSink) *Processor {
	return &Processor{
		store:  store,
		remote: remoteClient,
		sink:   sink,
		now:    time.Now,
	}
}

// ProcessOrders classifies every order of the user one by one and persists
// the outcome. Failures of a single order end up in its status; only a failed
// fetch aborts the batch.
func (p *Processor) ProcessOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	log := zap.L().With(
		zap.String("batch_id", uuid.New().String()),
		zap.String("user_id", userID.String()),
	)

	orders, err := p.store.GetOrdersByUser(ctx, userID)
	if err != nil {
		log.Error("error while fetching orders for processing", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFetchOrders, err)
	}

	for _, order := range orders {
		orderLog := log.With(zap.Int64("order_id", int64(order.ID)), zap.String("type", string(order.Type)))

		order.Status = p.classify(ctx, userID, order, orderLog)
		order.Priority = entity.PriorityForAmount(order.Amount)

		p.persist(ctx, order, orderLog)

		orderLog.Debug("order has been processed",
			zap.String("status", string(order.Status)),
			zap.String("priority", string(order.Priority)),
		)
	}

	log.Info("user orders have been processed", zap.Int("count", len(orders)), zap.Any("statuses", countStatuses(orders)))

	return orders, nil
}

func (p *Processor) classify(ctx context.Context, userID entity.UserID, order *entity.Order, log *zap.Logger) entity.OrderStatus {
	switch order.Type {
	case entity.OrderTypeExport:
		return p.exportOrder(userID, order, log)
	case entity.OrderTypeRemote:
		return p.classifyRemote(ctx, order, log)
	case entity.OrderTypeDerived:
		return deriveStatus(order)
	default:
		return entity.StatusUnknownType
	}
}

func (p *Processor) exportOrder(userID entity.UserID, order *entity.Order, log *zap.Logger) entity.OrderStatus {
	name := exportName(userID, p.now())

	sink, err := p.sink.Open(name)
	if err != nil {
		log.Error("error while opening export sink", zap.String("name", name), zap.Error(err))
		return entity.StatusExportFailed
	}

	err = writeExportRecord(sink, order)
	if err != nil {
		sink.Close()
		log.Error("error while writing export record", zap.String("name", name), zap.Error(err))
		return entity.StatusExportFailed
	}

	err = sink.Close()
	if err != nil {
		log.Error("error while closing export sink", zap.String("name", name), zap.Error(err))
		return entity.StatusExportFailed
	}

	return entity.StatusExported
}

func (p *Processor) classifyRemote(ctx context.Context, order *entity.Order, log *zap.Logger) entity.OrderStatus {
	response, err := p.remote.CallAPI(ctx, order.ID)
	if err != nil {
		if errors.Is(err, remote.ErrAPIFailure) {
			log.Error("order classification api failure", zap.Error(err))
			return entity.StatusAPIFailure
		}

		log.Error("unexpected error while calling order classification api", zap.Error(err))
		return entity.StatusAPIUnexpectedError
	}

	if entity.APIStatusSuccess != response.Status {
		log.Info("order classification api answered with non success status", zap.String("api_status", string(response.Status)))
		return entity.StatusAPIError
	}

	// the checks overlap, the first match wins
	if response.Data.Amount >= remoteHighAmount && order.Amount < orderLowAmount {
		return entity.StatusProcessed
	}
	if response.Data.Amount < remoteHighAmount || order.Flag {
		return entity.StatusPending
	}

	return entity.StatusError
}

func deriveStatus(order *entity.Order) entity.OrderStatus {
	if order.Flag {
		return entity.StatusCompleted
	}

	return entity.StatusInProgress
}

// persist never touches the priority.
func (p *Processor) persist(ctx context.Context, order *entity.Order, log *zap.Logger) {
	updated, err := p.store.UpdateOrderStatus(ctx, order.ID, order.Status, order.Priority)
	if err != nil {
		if errors.Is(err, err_storage.ErrDatabase) {
			log.Error("database error while updating order status", zap.String("status", string(order.Status)), zap.Error(err))
			order.Status = entity.StatusDBError
			return
		}

		log.Error("unexpected error while updating order status", zap.String("status", string(order.Status)), zap.Error(err))
		order.Status = entity.StatusDBUnexpectedError
		return
	}

	if !updated {
		log.Warn("order status update matched no stored order")
	}
}

func countStatuses(orders entity.Orders) map[entity.OrderStatus]int {
	statuses := make(map[entity.OrderStatus]int)
	for _, order := range orders {
		statuses[order.Status]++
	}

	return statuses
}
