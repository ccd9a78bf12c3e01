package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	httputils "github.com/avGenie/go-order-processing/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-processing/internal/app/converter"
	"github.com/avGenie/go-order-processing/internal/app/entity"
	"github.com/avGenie/go-order-processing/internal/app/model"
	err_storage "github.com/avGenie/go-order-processing/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-processing/internal/app/usecase/processor"
	"go.uber.org/zap"
)

type OrderProcessor interface {
	ProcessOrders(ctx context.Context, userID entity.UserID) (entity.Orders, error)
}

type OrderStorage interface {
	AddOrder(ctx context.Context, userID entity.UserID, order entity.Order) error
	GetOrdersByUser(ctx context.Context, userID entity.UserID) (entity.Orders, error)
}

type Order struct {
	processor OrderProcessor
	storage   OrderStorage
}

func New(processor OrderProcessor, storage OrderStorage) Order {
	return Order{
		processor: processor,
		storage:   storage,
	}
}

func (p *Order) UploadOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.GetUserIDFromContext(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while uploading order", zap.Error(err))
			return
		}

		order, err := p.parseOrder(w, r)
		if err != nil {
			zap.L().Error("error while parsing order while uploading order", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		err = p.storage.AddOrder(ctx, userID, order)
		if err != nil {
			if errors.Is(err, err_storage.ErrOrderExists) {
				zap.L().Info(
					"order exists in storage while uploading one",
					zap.String("user_id", userID.String()),
					zap.Int64("order_id", int64(order.ID)),
				)
				w.WriteHeader(http.StatusConflict)
				return
			}

			zap.L().Error("error while uploading order to storage", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		zap.L().Debug("order has been uploaded", zap.Int64("order_id", int64(order.ID)))

		w.WriteHeader(http.StatusAccepted)
	}
}

func (p *Order) GetUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.GetUserIDFromContext(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while getting orders", zap.Error(err))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), httputils.RequestTimeout)
		defer cancel()

		orders, err := p.storage.GetOrdersByUser(ctx, userID)
		if err != nil {
			zap.L().Error("error while getting user orders", zap.Error(err))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		p.sendOrders(userID, orders, w)
	}
}

func (p *Order) ProcessUserOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := httputils.GetUserIDFromContext(w, r)
		if err != nil {
			zap.L().Error("error while parsing user id while processing orders", zap.Error(err))
			return
		}

		// a started batch runs to the end even if the client goes away
		orders, err := p.processor.ProcessOrders(context.WithoutCancel(r.Context()), userID)
		if err != nil {
			if errors.Is(err, processor.ErrFetchOrders) {
				zap.L().Error("orders of user couldn't be fetched", zap.String("user_id", userID.String()), zap.Error(err))
			} else {
				zap.L().Error("unexpected error while processing user orders", zap.Error(err))
			}

			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		p.sendOrders(userID, orders, w)
	}
}

func (p *Order) sendOrders(userID entity.UserID, orders entity.Orders, w http.ResponseWriter) {
	if len(orders) == 0 {
		zap.L().Info("orders for given user not found", zap.String("user_id", userID.String()))
		w.WriteHeader(http.StatusNoContent)
		return
	}

	out, err := json.Marshal(converter.ConvertOrdersToProcessedOrders(orders))
	if err != nil {
		zap.L().Error("error while marshalling user orders", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (p *Order) parseOrder(w http.ResponseWriter, r *http.Request) (entity.Order, error) {
	var request model.UploadOrderRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return entity.Order{}, fmt.Errorf("error while decoding upload order request: %w", err)
	}
	defer r.Body.Close()

	if request.ID <= 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		return entity.Order{}, fmt.Errorf("order id = %d is invalid", request.ID)
	}

	return converter.ConvertUploadOrderRequestToOrder(request), nil
}
