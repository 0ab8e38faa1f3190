package repository

import (
	"context"
	"strconv"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultAllocationsTableName = "allocations"
	allocationsNegotiationIndex = "negotiation_id-index"
)

type allocationItem struct {
	ID            string `dynamodbav:"id"`
	NegotiationID string `dynamodbav:"negotiation_id"`
	ProductID     string `dynamodbav:"product_id"`
	DealerID      string `dynamodbav:"dealer_id"`
	Quantity      int    `dynamodbav:"quantity"`
	UnitPrice     string `dynamodbav:"unit_price"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// AllocationDynamoRepository persists stock allocations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: negotiation_id-index (PK: negotiation_id)

type AllocationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAllocationRepository = (*AllocationDynamoRepository)(nil)

func NewAllocationDynamoRepository(ddb *dynamodb.Client) *AllocationDynamoRepository {
	return &AllocationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ALLOCATIONS_TABLE", defaultAllocationsTableName),
	}
}

func (r *AllocationDynamoRepository) Create(ctx context.Context, a entities.Allocation) (entities.Allocation, error) {
	it := toAllocationItem(a)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Allocation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Allocation{}, err
	}
	return a, nil
}

func (r *AllocationDynamoRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.Allocation, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(allocationsNegotiationIndex),
		KeyConditionExpression: aws.String("negotiation_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: negotiationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Allocation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it allocationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromAllocationItem(it))
	}
	return items, nil
}

func toAllocationItem(a entities.Allocation) allocationItem {
	return allocationItem{
		ID:            a.ID,
		NegotiationID: a.NegotiationID,
		ProductID:     a.ProductID,
		DealerID:      a.DealerID,
		Quantity:      a.Quantity,
		UnitPrice:     floatToString(a.UnitPrice),
		CreatedAt:     a.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromAllocationItem(it allocationItem) entities.Allocation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.Allocation{
		ID:            it.ID,
		NegotiationID: it.NegotiationID,
		ProductID:     it.ProductID,
		DealerID:      it.DealerID,
		Quantity:      it.Quantity,
		UnitPrice:     unitPrice,
		CreatedAt:     createdAt,
	}
}
