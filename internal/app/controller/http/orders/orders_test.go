package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avGenie/go-order-processing/internal/app/controller/http/orders/mock"
	httputils "github.com/avGenie/go-order-processing/internal/app/controller/http/utils"
	"github.com/avGenie/go-order-processing/internal/app/entity"
	"github.com/avGenie/go-order-processing/internal/app/model"
	err_storage "github.com/avGenie/go-order-processing/internal/app/storage/api/errors"
	"github.com/avGenie/go-order-processing/internal/app/usecase/processor"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderProcessor(ctrl)
	storage := mock.NewMockOrderStorage(ctrl)

	type want struct {
		statusCode  int
		contentType string
		outputBody  string
	}
	tests := []struct {
		name       string
		isContext  bool
		userIDCtx  entity.UserIDCtx
		isProcess  bool
		orders     entity.Orders
		processErr error

		want want
	}{
		{
			name:      "processed orders",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				UserID:     7,
				StatusCode: http.StatusOK,
			},
			isProcess: true,
			orders: entity.Orders{
				{ID: 1, Type: entity.OrderTypeExport, Amount: 100, Status: entity.StatusExported, Priority: entity.PriorityLow},
				{ID: 2, Type: entity.OrderTypeDerived, Amount: 300, Flag: true, Status: entity.StatusDBError, Priority: entity.PriorityHigh},
			},

			want: want{
				statusCode:  http.StatusOK,
				contentType: "application/json",
				outputBody: `[{"id":1,"type":"A","amount":100,"flag":false,"status":"exported","priority":"low"},` +
					`{"id":2,"type":"C","amount":300,"flag":true,"status":"db_error","priority":"high"}]`,
			},
		},
		{
			name:      "user without orders",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				UserID:     7,
				StatusCode: http.StatusOK,
			},
			isProcess: true,
			orders:    entity.Orders{},

			want: want{
				statusCode: http.StatusNoContent,
			},
		},
		{
			name:      "fetch failure",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				UserID:     7,
				StatusCode: http.StatusOK,
			},
			isProcess:  true,
			processErr: fmt.Errorf("%w: connection refused", processor.ErrFetchOrders),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "unexpected processing error",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				UserID:     7,
				StatusCode: http.StatusOK,
			},
			isProcess:  true,
			processErr: errors.New("unexpected"),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "user id context undefined",
			isContext: false,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "user id bad request",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				StatusCode: http.StatusBadRequest,
			},

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: httputils.ErrInvalidAuth,
			},
		},
		{
			name:      "user unauthorized",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				StatusCode: http.StatusUnauthorized,
			},

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: httputils.ErrTokenExpired,
			},
		},
		{
			name:      "user id is invalid",
			isContext: true,
			userIDCtx: entity.UserIDCtx{
				UserID:     0,
				StatusCode: http.StatusOK,
			},

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: httputils.ErrInvalidAuth,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/user/orders/process", nil)
			writer := httptest.NewRecorder()

			if test.isContext {
				request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			}

			if test.isProcess {
				s.EXPECT().ProcessOrders(gomock.Any(), test.userIDCtx.UserID).Return(test.orders, test.processErr)
			} else {
				s.EXPECT().ProcessOrders(gomock.Any(), gomock.Any()).Times(0)
			}

			orders := New(s, storage)
			handler := orders.ProcessUserOrders()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)
			if len(test.want.contentType) != 0 {
				assert.Equal(t, test.want.contentType, res.Header.Get("Content-Type"))
			}

			if len(test.want.outputBody) != 0 {
				bodyResult, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				assert.Equal(t, test.want.outputBody, strings.TrimSuffix(string(bodyResult), "\n"))
			}

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}

type cancellingStore struct {
	orders    entity.Orders
	persisted []entity.OrderID
	cancel    context.CancelFunc
}

func (s *cancellingStore) GetOrdersByUser(ctx context.Context, userID entity.UserID) (entity.Orders, error) {
	return s.orders, nil
}

func (s *cancellingStore) UpdateOrderStatus(ctx context.Context, orderID entity.OrderID, status entity.OrderStatus, priority entity.OrderPriority) (bool, error) {
	err := ctx.Err()
	if err != nil {
		return false, err
	}

	s.persisted = append(s.persisted, orderID)
	s.cancel()

	return true, nil
}

func TestProcessUserOrdersClientGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &cancellingStore{
		orders: entity.Orders{
			entity.CreateOrder(1, entity.OrderTypeDerived, 10, true),
			entity.CreateOrder(2, entity.OrderTypeDerived, 20, false),
			entity.CreateOrder(3, "Z", 300, false),
		},
		cancel: cancel,
	}

	ctx = context.WithValue(ctx, entity.UserIDCtxKey{}, entity.CreateUserIDCtx(4, http.StatusOK))
	request := httptest.NewRequest(http.MethodPost, "/api/user/orders/process", nil).WithContext(ctx)
	writer := httptest.NewRecorder()

	orders := New(processor.New(store, nil, nil), mock.NewMockOrderStorage(ctrl))
	handler := orders.ProcessUserOrders()
	handler(writer, request)

	require.Equal(t, http.StatusOK, writer.Code)
	assert.Equal(t, []entity.OrderID{1, 2, 3}, store.persisted)

	var processed model.ProcessedOrders
	require.NoError(t, json.Unmarshal(writer.Body.Bytes(), &processed))
	require.Len(t, processed, 3)
	assert.Equal(t, string(entity.StatusCompleted), processed[0].Status)
	assert.Equal(t, string(entity.StatusInProgress), processed[1].Status)
	assert.Equal(t, string(entity.StatusUnknownType), processed[2].Status)
}

func TestUploadOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name      string
		body      string
		isContext bool
		userIDCtx entity.UserIDCtx
		isUpload  bool
		order     entity.Order
		uploadErr error

		want want
	}{
		{
			name:      "new order for user",
			body:      `{"id":12,"type":"A","amount":250.5,"flag":true}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isUpload:  true,
			order:     *entity.CreateOrder(12, entity.OrderTypeExport, 250.5, true),

			want: want{
				statusCode: http.StatusAccepted,
			},
		},
		{
			name:      "unknown type is accepted",
			body:      `{"id":13,"type":"Z","amount":-4}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isUpload:  true,
			order:     *entity.CreateOrder(13, "Z", -4, false),

			want: want{
				statusCode: http.StatusAccepted,
			},
		},
		{
			name:      "order exists",
			body:      `{"id":12,"type":"A","amount":250.5,"flag":true}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isUpload:  true,
			order:     *entity.CreateOrder(12, entity.OrderTypeExport, 250.5, true),
			uploadErr: err_storage.ErrOrderExists,

			want: want{
				statusCode: http.StatusConflict,
			},
		},
		{
			name:      "storage error",
			body:      `{"id":12,"type":"B","amount":1}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isUpload:  true,
			order:     *entity.CreateOrder(12, entity.OrderTypeRemote, 1, false),
			uploadErr: fmt.Errorf("%w: connection reset", err_storage.ErrDatabase),

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "invalid json",
			body:      `<invalid json>`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),

			want: want{
				statusCode: http.StatusBadRequest,
			},
		},
		{
			name:      "invalid order id",
			body:      `{"id":0,"type":"A","amount":1}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),

			want: want{
				statusCode: http.StatusUnprocessableEntity,
			},
		},
		{
			name:      "user unauthorized",
			body:      `{"id":12,"type":"A","amount":1}`,
			isContext: true,
			userIDCtx: entity.CreateUserIDCtx(0, http.StatusUnauthorized),

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: httputils.ErrTokenExpired,
			},
		},
		{
			name:      "user id context undefined",
			body:      `{"id":12,"type":"A","amount":1}`,
			isContext: false,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/api/user/orders", strings.NewReader(test.body))
			writer := httptest.NewRecorder()

			if test.isContext {
				request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			}

			if test.isUpload {
				s.EXPECT().AddOrder(gomock.Any(), test.userIDCtx.UserID, test.order).Return(test.uploadErr)
			} else {
				s.EXPECT().AddOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			orders := New(mock.NewMockOrderProcessor(ctrl), s)
			handler := orders.UploadOrder()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if len(test.want.outputBody) != 0 {
				bodyResult, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				assert.Equal(t, test.want.outputBody, strings.TrimSuffix(string(bodyResult), "\n"))
			}

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}

func TestGetUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s := mock.NewMockOrderStorage(ctrl)

	type want struct {
		statusCode int
		outputBody string
	}
	tests := []struct {
		name      string
		userIDCtx entity.UserIDCtx
		isGet     bool
		orders    entity.Orders
		getErr    error

		want want
	}{
		{
			name:      "stored orders",
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isGet:     true,
			orders: entity.Orders{
				{ID: 1, Type: entity.OrderTypeRemote, Amount: 80, Status: entity.StatusProcessed, Priority: entity.PriorityLow},
				{ID: 2, Type: entity.OrderTypeDerived, Amount: 10},
			},

			want: want{
				statusCode: http.StatusOK,
				outputBody: `[{"id":1,"type":"B","amount":80,"flag":false,"status":"processed","priority":"low"},` +
					`{"id":2,"type":"C","amount":10,"flag":false,"status":"","priority":""}]`,
			},
		},
		{
			name:      "no orders",
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isGet:     true,
			orders:    entity.Orders{},

			want: want{
				statusCode: http.StatusNoContent,
			},
		},
		{
			name:      "storage error",
			userIDCtx: entity.CreateUserIDCtx(3, http.StatusOK),
			isGet:     true,
			getErr:    err_storage.ErrDatabase,

			want: want{
				statusCode: http.StatusInternalServerError,
			},
		},
		{
			name:      "user id bad request",
			userIDCtx: entity.CreateUserIDCtx(0, http.StatusBadRequest),

			want: want{
				statusCode: http.StatusUnauthorized,
				outputBody: httputils.ErrInvalidAuth,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
			request = request.WithContext(context.WithValue(request.Context(), entity.UserIDCtxKey{}, test.userIDCtx))
			writer := httptest.NewRecorder()

			if test.isGet {
				s.EXPECT().GetOrdersByUser(gomock.Any(), test.userIDCtx.UserID).Return(test.orders, test.getErr)
			} else {
				s.EXPECT().GetOrdersByUser(gomock.Any(), gomock.Any()).Times(0)
			}

			orders := New(mock.NewMockOrderProcessor(ctrl), s)
			handler := orders.GetUserOrders()
			handler(writer, request)

			res := writer.Result()

			assert.Equal(t, test.want.statusCode, res.StatusCode)

			if len(test.want.outputBody) != 0 {
				bodyResult, err := io.ReadAll(res.Body)
				require.NoError(t, err)
				assert.Equal(t, test.want.outputBody, strings.TrimSuffix(string(bodyResult), "\n"))
			}

			err := res.Body.Close()
			require.NoError(t, err)
		})
	}
}
