package repository

import (
	"context"
	"errors"
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
	defaultNegotiationsTableName    = "negotiations"
	negotiationsDealerIDIndex       = "dealer_id-index"
	negotiationsManufacturerIDIndex = "manufacturer_id-index"
)

type negotiationItem struct {
	ID             string `dynamodbav:"id"`
	DealerID       string `dynamodbav:"dealer_id"`
	ManufacturerID string `dynamodbav:"manufacturer_id"`
	ProductID      string `dynamodbav:"product_id"`
	Quantity       int    `dynamodbav:"quantity"`
	CurrentOffer   string `dynamodbav:"current_offer"`
	Status         string `dynamodbav:"status"`
	ChatID         string `dynamodbav:"chat_id"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// NegotiationDynamoRepository persists Negotiation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: dealer_id-index (PK: dealer_id, SK: updated_at)
//   - GSI: manufacturer_id-index (PK: manufacturer_id, SK: updated_at)
//
// ApplyTransition writes the negotiation update and the chat message in one
// TransactWriteItems call so a reader never sees a status change without its
// transcript entry (or the other way around).

type NegotiationDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	messagesTable string
}

var _ interfaces.INegotiationRepository = (*NegotiationDynamoRepository)(nil)

func NewNegotiationDynamoRepository(ddb *dynamodb.Client) *NegotiationDynamoRepository {
	return &NegotiationDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("NEGOTIATIONS_TABLE", defaultNegotiationsTableName),
		messagesTable: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *NegotiationDynamoRepository) Create(ctx context.Context, n entities.Negotiation) (entities.Negotiation, error) {
	it := toNegotiationItem(n)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Negotiation{}, err
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
		return entities.Negotiation{}, err
	}
	return n, nil
}

func (r *NegotiationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Negotiation{}, nil
	}

	var it negotiationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Negotiation{}, err
	}
	return fromNegotiationItem(it), nil
}

func (r *NegotiationDynamoRepository) ListByDealerID(ctx context.Context, dealerID string) ([]entities.Negotiation, error) {
	return r.queryIndex(ctx, negotiationsDealerIDIndex, "dealer_id", dealerID, nil)
}

func (r *NegotiationDynamoRepository) ListByManufacturerID(ctx context.Context, manufacturerID string) ([]entities.Negotiation, error) {
	return r.queryIndex(ctx, negotiationsManufacturerIDIndex, "manufacturer_id", manufacturerID, nil)
}

func (r *NegotiationDynamoRepository) FindOpenByDealerAndProduct(ctx context.Context, dealerID, productID string) (entities.Negotiation, error) {
	filter := &queryFilter{
		expression: "product_id = :pid AND #status = :open",
		values: map[string]types.AttributeValue{
			":pid":  &types.AttributeValueMemberS{Value: productID},
			":open": &types.AttributeValueMemberS{Value: string(entities.NegotiationStatusOpen)},
		},
		names: map[string]string{"#status": "status"},
	}
	items, err := r.queryIndex(ctx, negotiationsDealerIDIndex, "dealer_id", dealerID, filter)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if len(items) == 0 {
		return entities.Negotiation{}, nil
	}
	return items[0], nil
}

// ApplyTransition commits the field update and the message atomically. The
// update is conditioned on the stored status still matching expectedStatus; a
// cancelled transaction returns a zero-value Negotiation and a nil error.
func (r *NegotiationDynamoRepository) ApplyTransition(ctx context.Context, id string, expectedStatus entities.NegotiationStatus, update interfaces.NegotiationFieldUpdate, msg entities.Message) (entities.Negotiation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :status, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":status":     &types.AttributeValueMemberS{Value: string(update.Status)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
		":expected":   &types.AttributeValueMemberS{Value: string(expectedStatus)},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if update.CurrentOffer != nil {
		updateExpr += ", #current_offer = :current_offer"
		values[":current_offer"] = &types.AttributeValueMemberS{Value: floatToString(*update.CurrentOffer)}
		names["#current_offer"] = "current_offer"
	}
	if update.Quantity != nil {
		updateExpr += ", #quantity = :quantity"
		values[":quantity"] = &types.AttributeValueMemberN{Value: strconv.Itoa(*update.Quantity)}
		names["#quantity"] = "quantity"
	}

	msgAV, err := attributevalue.MarshalMap(toMessageItem(msg))
	if err != nil {
		return entities.Negotiation{}, err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Update: &types.Update{
					TableName: aws.String(r.tableName),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: id},
					},
					ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :expected"),
					UpdateExpression:          aws.String(updateExpr),
					ExpressionAttributeValues: values,
					ExpressionAttributeNames:  names,
				},
			},
			{
				Put: &types.Put{
					TableName:           aws.String(r.messagesTable),
					Item:                msgAV,
					ConditionExpression: aws.String("attribute_not_exists(#mid)"),
					ExpressionAttributeNames: map[string]string{
						"#mid": "id",
					},
				},
			},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for _, reason := range tce.CancellationReasons {
				if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
					return entities.Negotiation{}, nil
				}
			}
		}
		return entities.Negotiation{}, err
	}

	// TransactWriteItems has no ReturnValues; re-read the committed record.
	return r.GetByID(ctx, id)
}

type queryFilter struct {
	expression string
	values     map[string]types.AttributeValue
	names      map[string]string
}

func (r *NegotiationDynamoRepository) queryIndex(ctx context.Context, index, keyAttr, keyValue string, filter *queryFilter) ([]entities.Negotiation, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(keyAttr + " = :kv"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kv": &types.AttributeValueMemberS{Value: keyValue},
		},
		// Index sort key is updated_at; newest first.
		ScanIndexForward: aws.Bool(false),
	}
	if filter != nil {
		in.FilterExpression = aws.String(filter.expression)
		for k, v := range filter.values {
			in.ExpressionAttributeValues[k] = v
		}
		if len(filter.names) > 0 {
			in.ExpressionAttributeNames = filter.names
		}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Negotiation, 0, len(out.Items))
	for _, raw := range out.Items {
		var it negotiationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNegotiationItem(it))
	}
	return items, nil
}

func toNegotiationItem(n entities.Negotiation) negotiationItem {
	return negotiationItem{
		ID:             n.ID,
		DealerID:       n.DealerID,
		ManufacturerID: n.ManufacturerID,
		ProductID:      n.ProductID,
		Quantity:       n.Quantity,
		CurrentOffer:   floatToString(n.CurrentOffer),
		Status:         string(n.Status),
		ChatID:         n.ChatID,
		CreatedAt:      n.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      n.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromNegotiationItem(it negotiationItem) entities.Negotiation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	offer, _ := strconv.ParseFloat(it.CurrentOffer, 64)
	return entities.Negotiation{
		ID:             it.ID,
		DealerID:       it.DealerID,
		ManufacturerID: it.ManufacturerID,
		ProductID:      it.ProductID,
		Quantity:       it.Quantity,
		CurrentOffer:   offer,
		Status:         entities.NegotiationStatus(it.Status),
		ChatID:         it.ChatID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
