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
	defaultEscrowTableName = "escrow_deposits"
	escrowNegotiationIndex = "negotiation_id-index"
)

type escrowDepositItem struct {
	ID                 string                 `dynamodbav:"id"`
	NegotiationID      string                 `dynamodbav:"negotiation_id"`
	Amount             string                 `dynamodbav:"amount"`
	Status             string                 `dynamodbav:"status"`
	Date               string                 `dynamodbav:"date"`
	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus     string                 `dynamodbav:"provider_status,omitempty"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// EscrowDynamoRepository persists EscrowDeposit entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: negotiation_id-index (PK: negotiation_id)

type EscrowDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEscrowRepository = (*EscrowDynamoRepository)(nil)

func NewEscrowDynamoRepository(ddb *dynamodb.Client) *EscrowDynamoRepository {
	return &EscrowDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESCROW_TABLE", defaultEscrowTableName),
	}
}

func (r *EscrowDynamoRepository) Create(ctx context.Context, d entities.EscrowDeposit) (entities.EscrowDeposit, error) {
	it := toEscrowDepositItem(d)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EscrowDeposit{}, err
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
		return entities.EscrowDeposit{}, err
	}
	return d, nil
}

func (r *EscrowDynamoRepository) ListByNegotiationID(ctx context.Context, negotiationID string) ([]entities.EscrowDeposit, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(escrowNegotiationIndex),
		KeyConditionExpression: aws.String("negotiation_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: negotiationID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.EscrowDeposit, 0, len(out.Items))
	for _, raw := range out.Items {
		var it escrowDepositItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromEscrowDepositItem(it))
	}
	return items, nil
}

func toEscrowDepositItem(d entities.EscrowDeposit) escrowDepositItem {
	return escrowDepositItem{
		ID:                 d.ID,
		NegotiationID:      d.NegotiationID,
		Amount:             floatToString(d.Amount),
		Status:             string(d.Status),
		Date:               d.Date.UTC().Format(time.RFC3339Nano),
		ProviderPaymentID:  d.ProviderPaymentID,
		ProviderStatus:     d.ProviderStatus,
		ProviderPayload:    d.ProviderPayload,
		ProviderPayloadRaw: string(d.ProviderPayloadRaw),
	}
}

func fromEscrowDepositItem(it escrowDepositItem) entities.EscrowDeposit {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.EscrowDeposit{
		ID:                 it.ID,
		NegotiationID:      it.NegotiationID,
		Amount:             amount,
		Status:             entities.EscrowStatus(it.Status),
		Date:               date,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderStatus:     it.ProviderStatus,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
