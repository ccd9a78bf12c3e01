package model

type APIResponse struct {
	Status string       `json:"status"`
	Data   OrderPayload `json:"data"`
}
