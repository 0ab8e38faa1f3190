package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"novamart/internal/domain/entities"
	"novamart/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrNegotiationNotFound  = errors.New("negotiation not found")
	ErrInvalidNegotiationID = errors.New("invalid negotiation id")
	ErrInvalidParty         = errors.New("invalid negotiation parties")
	ErrInvalidProductID     = errors.New("invalid product id")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrInvalidOffer         = errors.New("invalid offer price")
	ErrInvalidActor         = errors.New("invalid actor")
	ErrNotParticipant       = errors.New("actor is not a participant of this negotiation")
	ErrEmptyMessage         = errors.New("empty message")
	ErrStaleState           = errors.New("negotiation status changed concurrently")
)

// OpenNegotiationExistsError reports a duplicate sourcing request. It carries
// the id of the existing OPEN negotiation so the client can resume it.
type OpenNegotiationExistsError struct {
	NegotiationID string
}

func (e *OpenNegotiationExistsError) Error() string {
	return fmt.Sprintf("open negotiation already exists: %s", e.NegotiationID)
}

type CreateNegotiationInput struct {
	DealerID       string
	ManufacturerID string
	ProductID      string
	Quantity       int
	InitialOffer   float64
}

// ApplyInput is one action request against the transition authority.
//
// ExpectedStatus is the status the actor last observed; the transition is
// committed only if the stored record still matches it. Leaving it empty
// falls back to the status read inside Apply, which keeps single-writer
// callers working but gives up conflict detection across the read.
type ApplyInput struct {
	ActorID        string
	ActorRole      entities.ActorRole
	Action         entities.NegotiationAction
	ExpectedStatus entities.NegotiationStatus
	Message        string
	Price          float64
	Quantity       int
}

type ApplyResult struct {
	Negotiation entities.Negotiation
	Message     entities.Message
}

// INegotiationUseCase exposes the negotiation lifecycle operations.
//
//   - Create: dealer initiates a sourcing request against a manufacturer's
//     product (seeds the chat and its opening system entry).
//   - Apply: the transition authority; the only mutation path for status and
//     offer fields.
type INegotiationUseCase interface {
	Create(ctx context.Context, in CreateNegotiationInput) (entities.Negotiation, error)
	GetByID(ctx context.Context, id string) (entities.Negotiation, error)
	ListByDealerID(ctx context.Context, dealerID string) ([]entities.Negotiation, error)
	ListByManufacturerID(ctx context.Context, manufacturerID string) ([]entities.Negotiation, error)
	Apply(ctx context.Context, negotiationID string, in ApplyInput) (ApplyResult, error)
}

type NegotiationUseCase struct {
	repo             interfaces.INegotiationRepository
	chatRepo         interfaces.IChatRepository
	messageRepo      interfaces.IMessageRepository
	notificationRepo interfaces.INotificationRepository
	allocationRepo   interfaces.IAllocationRepository
	broadcaster      interfaces.IMessageBroadcaster
}

var _ INegotiationUseCase = (*NegotiationUseCase)(nil)

func NewNegotiationUseCase(
	repo interfaces.INegotiationRepository,
	chatRepo interfaces.IChatRepository,
	messageRepo interfaces.IMessageRepository,
	notificationRepo interfaces.INotificationRepository,
	allocationRepo interfaces.IAllocationRepository,
	broadcaster interfaces.IMessageBroadcaster,
) *NegotiationUseCase {
	return &NegotiationUseCase{
		repo:             repo,
		chatRepo:         chatRepo,
		messageRepo:      messageRepo,
		notificationRepo: notificationRepo,
		allocationRepo:   allocationRepo,
		broadcaster:      broadcaster,
	}
}

func (u *NegotiationUseCase) Create(ctx context.Context, in CreateNegotiationInput) (entities.Negotiation, error) {
	dealerID := strings.TrimSpace(in.DealerID)
	manufacturerID := strings.TrimSpace(in.ManufacturerID)
	productID := strings.TrimSpace(in.ProductID)

	if dealerID == "" || manufacturerID == "" || dealerID == manufacturerID {
		return entities.Negotiation{}, ErrInvalidParty
	}
	if productID == "" {
		return entities.Negotiation{}, ErrInvalidProductID
	}
	if in.Quantity <= 0 {
		return entities.Negotiation{}, ErrInvalidQuantity
	}
	if in.InitialOffer <= 0 {
		return entities.Negotiation{}, ErrInvalidOffer
	}

	// Enforce: at most one OPEN negotiation per (dealer, product).
	if existing, err := u.repo.FindOpenByDealerAndProduct(ctx, dealerID, productID); err != nil {
		return entities.Negotiation{}, err
	} else if existing.ID != "" {
		return entities.Negotiation{}, &OpenNegotiationExistsError{NegotiationID: existing.ID}
	}

	now := time.Now().UTC()
	chat := entities.Chat{
		ID: uuid.NewString(),
		Participants: []entities.ChatParticipant{
			{UserID: dealerID, Role: entities.RoleDealer},
			{UserID: manufacturerID, Role: entities.RoleManufacturer},
		},
		Status:    entities.ChatStatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}

	n := entities.Negotiation{
		ID:             uuid.NewString(),
		DealerID:       dealerID,
		ManufacturerID: manufacturerID,
		ProductID:      productID,
		Quantity:       in.Quantity,
		CurrentOffer:   in.InitialOffer,
		Status:         entities.NegotiationStatusOpen,
		ChatID:         chat.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	chat.NegotiationID = n.ID

	if _, err := u.chatRepo.Create(ctx, chat); err != nil {
		return entities.Negotiation{}, err
	}
	created, err := u.repo.Create(ctx, n)
	if err != nil {
		return entities.Negotiation{}, err
	}

	opening := entities.Message{
		ID:          newMessageID(now),
		ChatID:      chat.ID,
		SenderID:    dealerID,
		SenderRole:  entities.RoleDealer,
		Message:     fmt.Sprintf("Started negotiation for %d units at %s", in.Quantity, formatPrice(in.InitialOffer)),
		MessageType: entities.MessageTypeSystem,
		CreatedAt:   now,
	}
	if _, err := u.messageRepo.Append(ctx, opening); err != nil {
		log.Printf("[negotiation][usecase] opening message append failed negotiation_id=%s err=%v", created.ID, err)
	} else {
		u.broadcast(chat.ID, opening)
	}

	u.notify(ctx, entities.Notification{
		UserID:  manufacturerID,
		Type:    entities.NotificationNegotiationStarted,
		Title:   "New Price Negotiation Request",
		Message: fmt.Sprintf("A dealer wants to negotiate pricing. Initial offer: %s for %d units.", formatPrice(in.InitialOffer), in.Quantity),
		Link:    "/manufacturer/negotiations",
	})

	log.Printf("[negotiation][usecase] created negotiation_id=%s dealer_id=%s manufacturer_id=%s", created.ID, dealerID, manufacturerID)
	return created, nil
}

// Apply validates and commits one action. Accepted actions append exactly one
// message and update the record atomically; rejected actions leave no trace.
func (u *NegotiationUseCase) Apply(ctx context.Context, negotiationID string, in ApplyInput) (ApplyResult, error) {
	negotiationID = strings.TrimSpace(negotiationID)
	if negotiationID == "" {
		return ApplyResult{}, ErrInvalidNegotiationID
	}
	if !in.ActorRole.IsParty() || !in.Action.IsValid() {
		// The full triple is validated below; unknown roles/actions short
		// circuit to the same rejection the transition table gives.
		return ApplyResult{}, entities.ErrInvalidTransition
	}

	n, err := u.repo.GetByID(ctx, negotiationID)
	if err != nil {
		return ApplyResult{}, err
	}
	if n.ID == "" {
		return ApplyResult{}, ErrNegotiationNotFound
	}

	actorID := strings.TrimSpace(in.ActorID)
	if actorID == "" {
		return ApplyResult{}, ErrInvalidActor
	}
	switch in.ActorRole {
	case entities.RoleDealer:
		if actorID != n.DealerID {
			return ApplyResult{}, ErrNotParticipant
		}
	case entities.RoleManufacturer:
		if actorID != n.ManufacturerID {
			return ApplyResult{}, ErrNotParticipant
		}
	}

	expected := in.ExpectedStatus
	if expected == "" {
		expected = n.Status
	}

	res, err := entities.Transition(expected, in.ActorRole, in.Action)
	if err != nil {
		return ApplyResult{}, err
	}

	now := time.Now().UTC()
	msg := entities.Message{
		ID:        newMessageID(now),
		ChatID:    n.ChatID,
		CreatedAt: now,
	}
	update := interfaces.NegotiationFieldUpdate{Status: res.NewStatus}

	switch in.Action {
	case entities.ActionMessage:
		text := strings.TrimSpace(in.Message)
		if text == "" {
			return ApplyResult{}, ErrEmptyMessage
		}
		msg.SenderID = actorID
		msg.SenderRole = in.ActorRole
		msg.Message = text
		msg.MessageType = entities.MessageTypeText

	case entities.ActionReviseOffer:
		if in.Price <= 0 {
			return ApplyResult{}, ErrInvalidOffer
		}
		if in.Quantity < 0 {
			return ApplyResult{}, ErrInvalidQuantity
		}
		qty := n.Quantity
		if in.Quantity > 0 {
			qty = in.Quantity
			update.Quantity = &in.Quantity
		}
		update.CurrentOffer = &in.Price

		msg.SenderID = actorID
		msg.SenderRole = in.ActorRole
		msg.MessageType = entities.MessageTypeOffer
		msg.Offer = &entities.OfferDetails{Price: in.Price, Quantity: qty}
		if text := strings.TrimSpace(in.Message); text != "" {
			msg.Message = text
		} else {
			msg.Message = fmt.Sprintf("Proposed %d units at %s", qty, formatPrice(in.Price))
		}

	default:
		// Status-changing actions log a SYSTEM entry.
		msg.SenderID = string(entities.RoleSystem)
		msg.SenderRole = entities.RoleSystem
		msg.Message = res.SystemNote
		msg.MessageType = entities.MessageTypeSystem
	}

	updated, err := u.repo.ApplyTransition(ctx, n.ID, expected, update, msg)
	if err != nil {
		return ApplyResult{}, err
	}
	if updated.ID == "" {
		// Conditional check failed: the record moved under the actor.
		return ApplyResult{}, ErrStaleState
	}

	u.broadcast(updated.ChatID, msg)
	u.fanOutSideEffects(ctx, updated, in)

	log.Printf("[negotiation][usecase] applied negotiation_id=%s action=%s actor_role=%s status=%s", updated.ID, in.Action, in.ActorRole, updated.Status)
	return ApplyResult{Negotiation: updated, Message: msg}, nil
}

// fanOutSideEffects writes the counterparty notification and, on fulfillment,
// the stock allocation. Failures here never roll back the committed
// transition; they are logged and the collaborators reconcile later.
func (u *NegotiationUseCase) fanOutSideEffects(ctx context.Context, n entities.Negotiation, in ApplyInput) {
	switch in.Action {
	case entities.ActionMessage, entities.ActionReviseOffer:
		recipient, link := u.counterparty(n, in.ActorRole)
		body := fmt.Sprintf("New offer: %s", formatPrice(in.Price))
		if in.Action == entities.ActionMessage {
			body = truncate(in.Message, 50)
		}
		u.notify(ctx, entities.Notification{
			UserID:  recipient,
			Type:    entities.NotificationNegotiationMessage,
			Title:   "New Negotiation Message",
			Message: body,
			Link:    link,
		})

	case entities.ActionAccept:
		u.notify(ctx, entities.Notification{
			UserID:  n.DealerID,
			Type:    entities.NotificationNegotiationAccepted,
			Title:   "Negotiation ACCEPTED",
			Message: "The manufacturer has accepted the negotiation terms. Stock will be allocated soon.",
			Link:    "/dealer/negotiations",
		})

	case entities.ActionReject:
		u.notify(ctx, entities.Notification{
			UserID:  n.DealerID,
			Type:    entities.NotificationNegotiationRejected,
			Title:   "Negotiation REJECTED",
			Message: "The manufacturer has declined the negotiation. You can start a new negotiation with different terms.",
			Link:    "/dealer/negotiations",
		})

	case entities.ActionRequestOrder:
		u.notify(ctx, entities.Notification{
			UserID:  n.ManufacturerID,
			Type:    entities.NotificationOrderRequested,
			Title:   "Order Requested",
			Message: fmt.Sprintf("The dealer converted the accepted terms into an order request: %d units at %s.", n.Quantity, formatPrice(n.CurrentOffer)),
			Link:    "/manufacturer/orders",
		})

	case entities.ActionFulfill:
		if u.allocationRepo != nil {
			alloc := entities.Allocation{
				ID:            uuid.NewString(),
				NegotiationID: n.ID,
				ProductID:     n.ProductID,
				DealerID:      n.DealerID,
				Quantity:      n.Quantity,
				UnitPrice:     n.CurrentOffer,
				CreatedAt:     time.Now().UTC(),
			}
			if _, err := u.allocationRepo.Create(ctx, alloc); err != nil {
				log.Printf("[negotiation][usecase] allocation create failed negotiation_id=%s err=%v", n.ID, err)
			}
		}
		u.notify(ctx, entities.Notification{
			UserID:  n.DealerID,
			Type:    entities.NotificationOrderFulfilled,
			Title:   "Order Fulfilled",
			Message: fmt.Sprintf("The manufacturer fulfilled your order of %d units.", n.Quantity),
			Link:    "/dealer/orders",
		})
	}
}

func (u *NegotiationUseCase) counterparty(n entities.Negotiation, actor entities.ActorRole) (userID, link string) {
	if actor == entities.RoleDealer {
		return n.ManufacturerID, "/manufacturer/negotiations"
	}
	return n.DealerID, "/dealer/negotiations"
}

func (u *NegotiationUseCase) notify(ctx context.Context, n entities.Notification) {
	if u.notificationRepo == nil {
		return
	}
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now().UTC()
	if _, err := u.notificationRepo.Create(ctx, n); err != nil {
		log.Printf("[negotiation][usecase] notification create failed user_id=%s type=%s err=%v", n.UserID, n.Type, err)
	}
}

func (u *NegotiationUseCase) broadcast(chatID string, m entities.Message) {
	if u.broadcaster == nil || chatID == "" {
		return
	}
	u.broadcaster.Broadcast(chatID, m)
}

func (u *NegotiationUseCase) GetByID(ctx context.Context, id string) (entities.Negotiation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Negotiation{}, ErrInvalidNegotiationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Negotiation{}, err
	}
	if n.ID == "" {
		return entities.Negotiation{}, ErrNegotiationNotFound
	}
	return n, nil
}

func (u *NegotiationUseCase) ListByDealerID(ctx context.Context, dealerID string) ([]entities.Negotiation, error) {
	dealerID = strings.TrimSpace(dealerID)
	if dealerID == "" {
		return nil, ErrInvalidParty
	}
	return u.repo.ListByDealerID(ctx, dealerID)
}

func (u *NegotiationUseCase) ListByManufacturerID(ctx context.Context, manufacturerID string) ([]entities.Negotiation, error) {
	manufacturerID = strings.TrimSpace(manufacturerID)
	if manufacturerID == "" {
		return nil, ErrInvalidParty
	}
	return u.repo.ListByManufacturerID(ctx, manufacturerID)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
