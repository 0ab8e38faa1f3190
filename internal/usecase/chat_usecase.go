package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"
)

var (
	ErrChatNotFound       = errors.New("chat not found")
	ErrInvalidChatID      = errors.New("invalid chat id")
	ErrChatClosed         = errors.New("chat is closed")
	ErrNegotiationLocked  = errors.New("negotiation is closed to new messages")
	ErrInvalidSender      = errors.New("invalid sender")
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrInvalidOfferTerms  = errors.New("invalid offer terms")
)

type AppendMessageInput struct {
	SenderID    string
	SenderRole  entities.ActorRole
	Message     string
	MessageType entities.MessageType
	Offer       *entities.OfferDetails
}

// IChatUseCase exposes the message/offer channel.
//
// History pages the transcript in strict creation order with an opaque
// restartable cursor; AppendMessage is participant-gated and refuses closed
// chats and terminal negotiations. SYSTEM entries cannot be appended here:
// they only enter through the transition authority.
type IChatUseCase interface {
	EnsureForNegotiation(ctx context.Context, negotiationID string) (entities.Chat, error)
	GetByID(ctx context.Context, id string) (entities.Chat, error)
	AppendMessage(ctx context.Context, chatID string, in AppendMessageInput) (entities.Message, error)
	History(ctx context.Context, chatID, requesterID string, limit int, cursor string) ([]entities.Message, string, error)
	Close(ctx context.Context, chatID, requesterID string) (entities.Chat, error)
}

const (
	defaultHistoryPage = 50
	maxHistoryPage     = 100
)

type ChatUseCase struct {
	repo            interfaces.IChatRepository
	messageRepo     interfaces.IMessageRepository
	negotiationRepo interfaces.INegotiationRepository
	broadcaster     interfaces.IMessageBroadcaster
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(
	repo interfaces.IChatRepository,
	messageRepo interfaces.IMessageRepository,
	negotiationRepo interfaces.INegotiationRepository,
	broadcaster interfaces.IMessageBroadcaster,
) *ChatUseCase {
	return &ChatUseCase{
		repo:            repo,
		messageRepo:     messageRepo,
		negotiationRepo: negotiationRepo,
		broadcaster:     broadcaster,
	}
}

// EnsureForNegotiation resolves the chat bound to a negotiation, recreating
// the binding record if it is missing. Idempotent.
func (u *ChatUseCase) EnsureForNegotiation(ctx context.Context, negotiationID string) (entities.Chat, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return entities.Chat{}, ErrInvalidNegotiationID
	}

	n, err := u.negotiationRepo.GetByID(ctx, negotiationID)
	if err != nil {
		return entities.Chat{}, err
	}
	if n.ID == "" {
		return entities.Chat{}, ErrNegotiationNotFound
	}

	if n.ChatID != "" {
		chat, err := u.repo.GetByID(ctx, n.ChatID)
		if err != nil {
			return entities.Chat{}, err
		}
		if chat.ID != "" {
			return chat, nil
		}
	}

	now := time.Now().UTC()
	chat := entities.Chat{
		ID:            n.ChatID,
		NegotiationID: n.ID,
		Participants: []entities.ChatParticipant{
			{UserID: n.DealerID, Role: entities.RoleDealer},
			{UserID: n.ManufacturerID, Role: entities.RoleManufacturer},
		},
		Status:    entities.ChatStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	log.Printf("[chat][usecase] rebinding chat chat_id=%s negotiation_id=%s", chat.ID, n.ID)
	return u.repo.Create(ctx, chat)
}

func (u *ChatUseCase) GetByID(ctx context.Context, id string) (entities.Chat, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Chat{}, ErrInvalidChatID
	}

	chat, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Chat{}, err
	}
	if chat.ID == "" {
		return entities.Chat{}, ErrChatNotFound
	}
	return chat, nil
}

func (u *ChatUseCase) AppendMessage(ctx context.Context, chatID string, in AppendMessageInput) (entities.Message, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return entities.Message{}, ErrInvalidChatID
	}

	senderID := strings.TrimSpace(in.SenderID)
	if senderID == "" || !in.SenderRole.IsParty() {
		return entities.Message{}, ErrInvalidSender
	}

	msgType := in.MessageType
	if msgType == "" {
		msgType = entities.MessageTypeText
	}
	if !msgType.IsValid() || msgType == entities.MessageTypeSystem {
		return entities.Message{}, ErrInvalidMessageType
	}

	text := strings.TrimSpace(in.Message)
	if msgType == entities.MessageTypeOffer {
		if in.Offer == nil || in.Offer.Price <= 0 || in.Offer.Quantity < 0 {
			return entities.Message{}, ErrInvalidOfferTerms
		}
	} else if text == "" {
		return entities.Message{}, ErrEmptyMessage
	}

	chat, err := u.repo.GetByID(ctx, chatID)
	if err != nil {
		return entities.Message{}, err
	}
	if chat.ID == "" {
		return entities.Message{}, ErrChatNotFound
	}
	if chat.Status != entities.ChatStatusOpen {
		return entities.Message{}, ErrChatClosed
	}
	if !chat.HasParticipant(senderID) {
		return entities.Message{}, ErrNotParticipant
	}

	if chat.NegotiationID != "" {
		n, err := u.negotiationRepo.GetByID(ctx, chat.NegotiationID)
		if err != nil {
			return entities.Message{}, err
		}
		if n.ID != "" && n.Status.IsTerminal() {
			return entities.Message{}, ErrNegotiationLocked
		}
	}

	now := time.Now().UTC()
	msg := entities.Message{
		ID:          newMessageID(now),
		ChatID:      chat.ID,
		SenderID:    senderID,
		SenderRole:  in.SenderRole,
		Message:     text,
		MessageType: msgType,
		Offer:       in.Offer,
		CreatedAt:   now,
	}

	appended, err := u.messageRepo.Append(ctx, msg)
	if err != nil {
		return entities.Message{}, err
	}

	if u.broadcaster != nil {
		u.broadcaster.Broadcast(chat.ID, appended)
	}
	return appended, nil
}

// History returns one page of the transcript in ascending creation order.
// Calling it twice without intervening appends yields identical results.
func (u *ChatUseCase) History(ctx context.Context, chatID, requesterID string, limit int, cursor string) ([]entities.Message, string, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return nil, "", ErrInvalidChatID
	}

	chat, err := u.repo.GetByID(ctx, chatID)
	if err != nil {
		return nil, "", err
	}
	if chat.ID == "" {
		return nil, "", ErrChatNotFound
	}
	if requesterID = strings.TrimSpace(requesterID); requesterID != "" && !chat.HasParticipant(requesterID) {
		return nil, "", ErrNotParticipant
	}

	if limit <= 0 {
		limit = defaultHistoryPage
	}
	if limit > maxHistoryPage {
		limit = maxHistoryPage
	}

	return u.messageRepo.ListByChatID(ctx, chatID, limit, cursor)
}

// Close marks the chat CLOSED. Stored history is unaffected.
func (u *ChatUseCase) Close(ctx context.Context, chatID, requesterID string) (entities.Chat, error) {
	chatID = strings.TrimSpace(chatID)
	if chatID == "" {
		return entities.Chat{}, ErrInvalidChatID
	}
	requesterID = strings.TrimSpace(requesterID)
	if requesterID == "" {
		return entities.Chat{}, ErrInvalidSender
	}

	chat, err := u.repo.GetByID(ctx, chatID)
	if err != nil {
		return entities.Chat{}, err
	}
	if chat.ID == "" {
		return entities.Chat{}, ErrChatNotFound
	}
	if !chat.HasParticipant(requesterID) {
		return entities.Chat{}, ErrNotParticipant
	}
	if chat.Status == entities.ChatStatusClosed {
		return chat, nil
	}

	return u.repo.Close(ctx, chatID)
}
