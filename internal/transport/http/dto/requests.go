package dto

import "time"

type RequestResp struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	RequesterID string    `json:"requester_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BatchUpdateReq moves the listed requests toward status (confirmed or
// rejected), in the given order.
type BatchUpdateReq struct {
	RequestIDs []string `json:"request_ids"`
	Status     string   `json:"status"`
}

type BatchUpdateResp struct {
	ConfirmedRequests []RequestResp `json:"confirmed_requests"`
	RejectedRequests  []RequestResp `json:"rejected_requests"`
}
