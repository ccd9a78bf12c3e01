package model

type OrderPayload struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Flag     bool    `json:"flag"`
	Status   string  `json:"status,omitempty"`
	Priority string  `json:"priority,omitempty"`
}

type ProcessedOrders []ProcessedOrder

type ProcessedOrder struct {
	ID       int64   `json:"id"`
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Flag     bool    `json:"flag"`
	Status   string  `json:"status"`
	Priority string  `json:"priority"`
}

type UploadOrderRequest struct {
	ID     int64   `json:"id"`
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
	Flag   bool    `json:"flag"`
}
