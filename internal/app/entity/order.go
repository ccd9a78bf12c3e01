package entity

type OrderType string

const (
	OrderTypeExport  OrderType = `A`
	OrderTypeRemote  OrderType = `B`
	OrderTypeDerived OrderType = `C`
)

type OrderStatus string

const (
	StatusUnset OrderStatus = ``

	StatusExported     OrderStatus = `exported`
	StatusExportFailed OrderStatus = `export_failed`

	StatusProcessed          OrderStatus = `processed`
	StatusPending            OrderStatus = `pending`
	StatusError              OrderStatus = `error`
	StatusAPIError           OrderStatus = `api_error`
	StatusAPIFailure         OrderStatus = `api_failure`
	StatusAPIUnexpectedError OrderStatus = `api_unexpected_error`

	StatusCompleted  OrderStatus = `completed`
	StatusInProgress OrderStatus = `in_progress`

	StatusUnknownType OrderStatus = `unknown_type`

	StatusDBError           OrderStatus = `db_error`
	StatusDBUnexpectedError OrderStatus = `db_unexpected_error`
)

type OrderPriority string

const (
	PriorityUnset OrderPriority = ``
	PriorityHigh  OrderPriority = `high`
	PriorityLow   OrderPriority = `low`
)

const highPriorityAmount = 200

type OrderID int64

type Orders []*Order

type Order struct {
	ID       OrderID
	Type     OrderType
	Amount   float64
	Flag     bool
	Status   OrderStatus
	Priority OrderPriority
}

func CreateOrder(id OrderID, orderType OrderType, amount float64, flag bool) *Order {
	return &Order{
		ID:     id,
		Type:   orderType,
		Amount: amount,
		Flag:   flag,
	}
}

// PriorityForAmount depends on the amount only, never on type or status.
func PriorityForAmount(amount float64) OrderPriority {
	if amount > highPriorityAmount {
		return PriorityHigh
	}

	return PriorityLow
}
