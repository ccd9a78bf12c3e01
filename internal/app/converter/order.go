package converter

import (
	"github.com/avGenie/go-order-processing/internal/app/entity"
	"github.com/avGenie/go-order-processing/internal/app/model"
)

func ConvertOrdersToProcessedOrders(orders entity.Orders) model.ProcessedOrders {
	processedOrders := make(model.ProcessedOrders, 0, len(orders))

	for _, order := range orders {
		processedOrder := model.ProcessedOrder{
			ID:       int64(order.ID),
			Type:     string(order.Type),
			Amount:   order.Amount,
			Flag:     order.Flag,
			Status:   string(order.Status),
			Priority: string(order.Priority),
		}
		processedOrders = append(processedOrders, processedOrder)
	}

	return processedOrders
}

func ConvertAPIResponseToEntity(response model.APIResponse) entity.APIResponse {
	return entity.CreateAPIResponse(
		entity.APIStatus(response.Status),
		ConvertOrderPayloadToOrder(response.Data),
	)
}

func ConvertOrderPayloadToOrder(payload model.OrderPayload) entity.Order {
	return entity.Order{
		ID:       entity.OrderID(payload.ID),
		Type:     entity.OrderType(payload.Type),
		Amount:   payload.Amount,
		Flag:     payload.Flag,
		Status:   entity.OrderStatus(payload.Status),
		Priority: entity.OrderPriority(payload.Priority),
	}
}

func ConvertUploadOrderRequestToOrder(request model.UploadOrderRequest) entity.Order {
	return *entity.CreateOrder(
		entity.OrderID(request.ID),
		entity.OrderType(request.Type),
		request.Amount,
		request.Flag,
	)
}
