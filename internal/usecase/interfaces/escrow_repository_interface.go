package interfaces

import (
	"context"
	"novamart/internal/domain/entities"
)

// IEscrowRepository abstracts DynamoDB persistence for EscrowDeposit.
type IEscrowRepository interface {
	Create(ctx context.Context, d entities.EscrowDeposit) (entities.EscrowDeposit, error)
	ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.EscrowDeposit, error)
}
