package dto

import "time"

type CreateEventReq struct {
	CategoryID  string `json:"category_id"`
	Title       string `json:"title"`
	Annotation  string `json:"annotation"`
	Description string `json:"description"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	StartTime time.Time `json:"event_date"`

	// optional: paid=false, participant_limit=0, request_moderation=true
	Paid              *bool `json:"paid"`
	ParticipantLimit  *int  `json:"participant_limit"`
	RequestModeration *bool `json:"request_moderation"`
}

// UpdateEventOwnerReq patches an owner's event; nil keeps the field.
// state_action is send_to_review or cancel_review.
type UpdateEventOwnerReq struct {
	CategoryID  *string `json:"category_id"`
	Title       *string `json:"title"`
	Annotation  *string `json:"annotation"`
	Description *string `json:"description"`

	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`

	StartTime         *time.Time `json:"event_date"`
	Paid              *bool      `json:"paid"`
	ParticipantLimit  *int       `json:"participant_limit"`
	RequestModeration *bool      `json:"request_moderation"`

	StateAction string `json:"state_action"`
}

// UpdateEventAdminReq is the moderator patch; state_action is publish_event
// or reject_event.
type UpdateEventAdminReq struct {
	CategoryID  *string `json:"category_id"`
	Title       *string `json:"title"`
	Annotation  *string `json:"annotation"`
	Description *string `json:"description"`

	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`

	StartTime         *time.Time `json:"event_date"`
	Paid              *bool      `json:"paid"`
	ParticipantLimit  *int       `json:"participant_limit"`
	RequestModeration *bool      `json:"request_moderation"`

	StateAction string `json:"state_action"`
}

type EventResp struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	CategoryID string `json:"category_id"`

	Title       string `json:"title"`
	Annotation  string `json:"annotation"`
	Description string `json:"description"`

	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`

	Paid              bool      `json:"paid"`
	StartTime         time.Time `json:"event_date"`
	ParticipantLimit  int       `json:"participant_limit"` // 0 means unlimited
	RequestModeration bool      `json:"request_moderation"`

	State       string     `json:"state"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`

	Views          int64 `json:"views"`
	ConfirmedCount int   `json:"confirmed_requests"`
}
