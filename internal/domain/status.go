package domain

type EventState string

const (
	StatePending   EventState = "pending"
	StatePublished EventState = "published"
	StateCanceled  EventState = "canceled"
)

func (s EventState) Valid() bool {
	return s == StatePending || s == StatePublished || s == StateCanceled
}

// OwnerStateAction is the closed set of state actions an event owner may request.
type OwnerStateAction string

const (
	ActionSendToReview OwnerStateAction = "send_to_review"
	ActionCancelReview OwnerStateAction = "cancel_review"
)

func (a OwnerStateAction) Valid() bool {
	return a == ActionSendToReview || a == ActionCancelReview
}

// AdminStateAction is the closed set of state actions a moderator may request.
type AdminStateAction string

const (
	ActionPublish AdminStateAction = "publish_event"
	ActionReject  AdminStateAction = "reject_event"
)

func (a AdminStateAction) Valid() bool {
	return a == ActionPublish || a == ActionReject
}
