package entities

import "time"

type NotificationType string

const (
	NotificationNegotiationStarted  NotificationType = "NEGOTIATION_STARTED"
	NotificationNegotiationMessage  NotificationType = "NEGOTIATION_MESSAGE"
	NotificationNegotiationAccepted NotificationType = "NEGOTIATION_ACCEPTED"
	NotificationNegotiationRejected NotificationType = "NEGOTIATION_REJECTED"
	NotificationOrderRequested      NotificationType = "ORDER_REQUESTED"
	NotificationOrderFulfilled      NotificationType = "ORDER_FULFILLED"
)

// Notification is the counterparty alert written alongside negotiation
// activity.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Link      string           `json:"link"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
