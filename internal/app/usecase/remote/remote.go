package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avGenie/go-order-processing/internal/app/config"
	"github.com/avGenie/go-order-processing/internal/app/converter"
	"github.com/avGenie/go-order-processing/internal/app/entity"
	"github.com/avGenie/go-order-processing/internal/app/model"
	"go.uber.org/zap"
)

const (
	apiGetOrder = `/api/orders/`

	defaultTimeout = 3 * time.Second
)

var (
	ErrAPIFailure        = errors.New("order classification api failure")
	ErrAPIAddressInvalid = errors.New("order classification api address invalid")
)

type Client struct {
	client http.Client

	requestAddress string
}

func New(config config.Config) (*Client, error) {
	if len(config.APIAddr) == 0 {
		return nil, ErrAPIAddressInvalid
	}

	timeout := config.APITimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := http.Client{
		Timeout: timeout,
	}

	requestAddress := fmt.Sprintf("%s%s", strings.TrimSuffix(config.APIAddr, "/"), apiGetOrder)

	return &Client{
		client:         client,
		requestAddress: requestAddress,
	}, nil
}

// CallAPI wraps transport failures and non-200 answers with ErrAPIFailure.
func (c *Client) CallAPI(ctx context.Context, orderID entity.OrderID) (entity.APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%d", c.requestAddress, orderID), nil)
	if err != nil {
		return entity.APIResponse{}, fmt.Errorf("cannot create request for order classification api: %w", err)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return entity.APIResponse{}, fmt.Errorf("%w: cannot make request to order classification api: %w", ErrAPIFailure, err)
	}
	defer res.Body.Close()

	return c.processAPIResponse(res)
}

func (c *Client) processAPIResponse(res *http.Response) (entity.APIResponse, error) {
	if http.StatusOK != res.StatusCode {
		zap.L().Debug("unexpected status from order classification api", zap.Int("status", res.StatusCode))
		return entity.APIResponse{}, fmt.Errorf("%w: unexpected status %d", ErrAPIFailure, res.StatusCode)
	}

	var response model.APIResponse
	err := json.NewDecoder(res.Body).Decode(&response)
	if err != nil {
		return entity.APIResponse{}, fmt.Errorf("error while decoding order classification api response: %w", err)
	}

	return converter.ConvertAPIResponseToEntity(response), nil
}
