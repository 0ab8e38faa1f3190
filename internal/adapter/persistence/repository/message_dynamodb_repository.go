package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMessagesTableName = "messages"

type messageOfferItem struct {
	Price    string `dynamodbav:"price"`
	Quantity int    `dynamodbav:"quantity"`
}

type messageItem struct {
	ChatID      string            `dynamodbav:"chat_id"`
	ID          string            `dynamodbav:"id"`
	SenderID    string            `dynamodbav:"sender_id"`
	SenderRole  string            `dynamodbav:"sender_role"`
	Message     string            `dynamodbav:"message"`
	MessageType string            `dynamodbav:"message_type"`
	Offer       *messageOfferItem `dynamodbav:"offer,omitempty"`
	CreatedAt   string            `dynamodbav:"created_at"`
}

// MessageDynamoRepository persists chat messages in DynamoDB.
//
// Table requirements:
//   - PK: chat_id (string)
//   - SK: id (string, ULID)
//
// ULID ids are lexicographically ordered, so the sort key alone gives the
// transcript its creation order and the page cursor is just the last key of
// the previous page.

type MessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb *dynamodb.Client) *MessageDynamoRepository {
	return &MessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *MessageDynamoRepository) Append(ctx context.Context, m entities.Message) (entities.Message, error) {
	it := toMessageItem(m)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Message{}, err
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
		return entities.Message{}, err
	}
	return m, nil
}

func (r *MessageDynamoRepository) ListByChatID(ctx context.Context, chatID string, limit int, cursor string) ([]entities.Message, string, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("chat_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: chatID},
		},
		ScanIndexForward: aws.Bool(true),
	}
	if limit > 0 {
		in.Limit = aws.Int32(int32(limit))
	}
	if cursor != "" {
		start, err := decodeMessageCursor(cursor)
		if err != nil {
			return nil, "", err
		}
		in.ExclusiveStartKey = start
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, "", err
	}

	items := make([]entities.Message, 0, len(out.Items))
	for _, raw := range out.Items {
		var it messageItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, "", err
		}
		items = append(items, fromMessageItem(it))
	}

	next, err := encodeMessageCursor(out.LastEvaluatedKey)
	if err != nil {
		return nil, "", err
	}
	return items, next, nil
}

type messageCursor struct {
	ChatID string `json:"chat_id"`
	ID     string `json:"id"`
}

func encodeMessageCursor(key map[string]types.AttributeValue) (string, error) {
	if len(key) == 0 {
		return "", nil
	}
	var c messageCursor
	if v, ok := key["chat_id"].(*types.AttributeValueMemberS); ok {
		c.ChatID = v.Value
	}
	if v, ok := key["id"].(*types.AttributeValueMemberS); ok {
		c.ID = v.Value
	}
	if c.ChatID == "" || c.ID == "" {
		return "", fmt.Errorf("unexpected page key shape")
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func decodeMessageCursor(cursor string) (map[string]types.AttributeValue, error) {
	b, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidCursor, err)
	}
	var c messageCursor
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", interfaces.ErrInvalidCursor, err)
	}
	if c.ChatID == "" || c.ID == "" {
		return nil, fmt.Errorf("%w: missing key", interfaces.ErrInvalidCursor)
	}
	return map[string]types.AttributeValue{
		"chat_id": &types.AttributeValueMemberS{Value: c.ChatID},
		"id":      &types.AttributeValueMemberS{Value: c.ID},
	}, nil
}

func toMessageItem(m entities.Message) messageItem {
	it := messageItem{
		ChatID:      m.ChatID,
		ID:          m.ID,
		SenderID:    m.SenderID,
		SenderRole:  string(m.SenderRole),
		Message:     m.Message,
		MessageType: string(m.MessageType),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if m.Offer != nil {
		it.Offer = &messageOfferItem{
			Price:    floatToString(m.Offer.Price),
			Quantity: m.Offer.Quantity,
		}
	}
	return it
}

func fromMessageItem(it messageItem) entities.Message {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	m := entities.Message{
		ChatID:      it.ChatID,
		ID:          it.ID,
		SenderID:    it.SenderID,
		SenderRole:  entities.ActorRole(it.SenderRole),
		Message:     it.Message,
		MessageType: entities.MessageType(it.MessageType),
		CreatedAt:   createdAt,
	}
	if it.Offer != nil {
		price, _ := strconv.ParseFloat(it.Offer.Price, 64)
		m.Offer = &entities.OfferDetails{Price: price, Quantity: it.Offer.Quantity}
	}
	return m
}
