package repository

import (
	"context"
	"errors"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultChatsTableName   = "chats"
	chatsNegotiationIDIndex = "negotiation_id-index"
)

type chatParticipantItem struct {
	UserID string `dynamodbav:"user_id"`
	Role   string `dynamodbav:"role"`
}

type chatItem struct {
	ID            string                `dynamodbav:"id"`
	NegotiationID string                `dynamodbav:"negotiation_id"`
	Participants  []chatParticipantItem `dynamodbav:"participants"`
	Status        string                `dynamodbav:"status"`
	CreatedAt     string                `dynamodbav:"created_at"`
	UpdatedAt     string                `dynamodbav:"updated_at"`
	ClosedAt      string                `dynamodbav:"closed_at,omitempty"`
}

// ChatDynamoRepository persists Chat bindings in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: negotiation_id-index (PK: negotiation_id)

type ChatDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IChatRepository = (*ChatDynamoRepository)(nil)

func NewChatDynamoRepository(ddb *dynamodb.Client) *ChatDynamoRepository {
	return &ChatDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CHATS_TABLE", defaultChatsTableName),
	}
}

func (r *ChatDynamoRepository) Create(ctx context.Context, c entities.Chat) (entities.Chat, error) {
	it := toChatItem(c)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Chat{}, err
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
		return entities.Chat{}, err
	}
	return c, nil
}

func (r *ChatDynamoRepository) GetByID(ctx context.Context, id string) (entities.Chat, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Chat{}, err
	}
	if len(out.Item) == 0 {
		return entities.Chat{}, nil
	}

	var it chatItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Chat{}, err
	}
	return fromChatItem(it), nil
}

func (r *ChatDynamoRepository) FindOpenByNegotiationID(ctx context.Context, negotiationID string) (entities.Chat, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chatsNegotiationIDIndex),
		KeyConditionExpression: aws.String("negotiation_id = :nid"),
		FilterExpression:       aws.String("#status = :open"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid":  &types.AttributeValueMemberS{Value: negotiationID},
			":open": &types.AttributeValueMemberS{Value: string(entities.ChatStatusOpen)},
		},
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
	})
	if err != nil {
		return entities.Chat{}, err
	}
	if len(out.Items) == 0 {
		return entities.Chat{}, nil
	}

	var it chatItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Chat{}, err
	}
	return fromChatItem(it), nil
}

func (r *ChatDynamoRepository) Close(ctx context.Context, id string) (entities.Chat, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :closed, #closed_at = :now, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":closed": &types.AttributeValueMemberS{Value: string(entities.ChatStatusClosed)},
			":now":    &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#closed_at":  "closed_at",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Chat{}, nil
		}
		return entities.Chat{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Chat{}, nil
	}

	var it chatItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Chat{}, err
	}
	return fromChatItem(it), nil
}

func toChatItem(c entities.Chat) chatItem {
	it := chatItem{
		ID:            c.ID,
		NegotiationID: c.NegotiationID,
		Status:        string(c.Status),
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:     c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, p := range c.Participants {
		it.Participants = append(it.Participants, chatParticipantItem{UserID: p.UserID, Role: string(p.Role)})
	}
	if c.ClosedAt != nil {
		it.ClosedAt = c.ClosedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromChatItem(it chatItem) entities.Chat {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	c := entities.Chat{
		ID:            it.ID,
		NegotiationID: it.NegotiationID,
		Status:        entities.ChatStatus(it.Status),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
	for _, p := range it.Participants {
		c.Participants = append(c.Participants, entities.ChatParticipant{UserID: p.UserID, Role: entities.ActorRole(p.Role)})
	}
	if it.ClosedAt != "" {
		closedAt, err := time.Parse(time.RFC3339Nano, it.ClosedAt)
		if err == nil {
			c.ClosedAt = &closedAt
		}
	}
	return c
}
