package entities

import "time"

// Allocation is the stock reservation recorded when a negotiation is
// fulfilled. The inventory service consumes these records; this service only
// writes them.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (negotiation_id-index): negotiation_id

type Allocation struct {
	ID            string    `json:"id"`
	NegotiationID string    `json:"negotiation_id"`
	ProductID     string    `json:"product_id"`
	DealerID      string    `json:"dealer_id"`
	Quantity      int       `json:"quantity"`
	UnitPrice     float64   `json:"unit_price"`
	CreatedAt     time.Time `json:"created_at"`
}
