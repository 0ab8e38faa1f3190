package interfaces

import (
	"context"
	"novamart/internal/domain/entities"
)

// IAllocationRepository abstracts DynamoDB persistence for stock allocations
// written on order fulfillment.
type IAllocationRepository interface {
	Create(ctx context.Context, a entities.Allocation) (entities.Allocation, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.Allocation, error)
}
