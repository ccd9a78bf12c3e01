package entity

type APIStatus string

const (
	APIStatusSuccess APIStatus = `success`
	APIStatusFail    APIStatus = `fail`
)

// APIResponse is the remote system's answer for a single order.
type APIResponse struct {
	Status APIStatus
	Data   Order
}

func CreateAPIResponse(status APIStatus, data Order) APIResponse {
	return APIResponse{
		Status: status,
		Data:   data,
	}
}
