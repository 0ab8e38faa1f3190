package usecase

import (
	"context"
	"errors"
	"testing"

	"novamart/internal/domain/entities"
	mock_interfaces "novamart/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type chatMocks struct {
	repo            *mock_interfaces.MockIChatRepository
	messageRepo     *mock_interfaces.MockIMessageRepository
	negotiationRepo *mock_interfaces.MockINegotiationRepository
	broadcaster     *mock_interfaces.MockIMessageBroadcaster
}

func newChatUseCaseWithMocks(ctrl *gomock.Controller) (*ChatUseCase, chatMocks) {
	m := chatMocks{
		repo:            mock_interfaces.NewMockIChatRepository(ctrl),
		messageRepo:     mock_interfaces.NewMockIMessageRepository(ctrl),
		negotiationRepo: mock_interfaces.NewMockINegotiationRepository(ctrl),
		broadcaster:     mock_interfaces.NewMockIMessageBroadcaster(ctrl),
	}
	uc := NewChatUseCase(m.repo, m.messageRepo, m.negotiationRepo, m.broadcaster)
	return uc, m
}

func openChat() entities.Chat {
	return entities.Chat{
		ID:            "chat-1",
		NegotiationID: "neg-1",
		Participants: []entities.ChatParticipant{
			{UserID: "dealer-1", Role: entities.RoleDealer},
			{UserID: "manu-1", Role: entities.RoleManufacturer},
		},
		Status: entities.ChatStatusOpen,
	}
}

func TestChatUseCase_EnsureForNegotiation(t *testing.T) {
	t.Run("invalid negotiation id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, err := uc.EnsureForNegotiation(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidNegotiationID) {
			t.Fatalf("expected ErrInvalidNegotiationID, got %v", err)
		}
	})

	t.Run("negotiation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-404").Return(entities.Negotiation{}, nil)

		_, err := uc.EnsureForNegotiation(context.Background(), "neg-404")
		if !errors.Is(err, ErrNegotiationNotFound) {
			t.Fatalf("expected ErrNegotiationNotFound, got %v", err)
		}
	})

	t.Run("existing chat returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(openNegotiation(), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)

		chat, err := uc.EnsureForNegotiation(context.Background(), "neg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chat.ID != "chat-1" {
			t.Fatalf("expected chat-1, got %s", chat.ID)
		}
	})

	t.Run("missing binding recreated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(openNegotiation(), nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(entities.Chat{}, nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Chat{})).DoAndReturn(
			func(_ context.Context, c entities.Chat) (entities.Chat, error) {
				if c.ID != "chat-1" || c.NegotiationID != "neg-1" {
					t.Fatalf("rebind must keep the negotiation's chat id: %+v", c)
				}
				if len(c.Participants) != 2 || c.Status != entities.ChatStatusOpen {
					t.Fatalf("unexpected chat: %+v", c)
				}
				return c, nil
			},
		)

		chat, err := uc.EnsureForNegotiation(context.Background(), "neg-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if chat.ID != "chat-1" {
			t.Fatalf("expected chat-1, got %s", chat.ID)
		}
	})
}

func TestChatUseCase_AppendMessage(t *testing.T) {
	validInput := func() AppendMessageInput {
		return AppendMessageInput{
			SenderID:   "dealer-1",
			SenderRole: entities.RoleDealer,
			Message:    "can you do 40 per unit?",
		}
	}

	t.Run("invalid chat id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, err := uc.AppendMessage(context.Background(), " ", validInput())
		if !errors.Is(err, ErrInvalidChatID) {
			t.Fatalf("expected ErrInvalidChatID, got %v", err)
		}
	})

	t.Run("missing sender", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		in := validInput()
		in.SenderID = ""
		_, err := uc.AppendMessage(context.Background(), "chat-1", in)
		if !errors.Is(err, ErrInvalidSender) {
			t.Fatalf("expected ErrInvalidSender, got %v", err)
		}
	})

	t.Run("system type rejected", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		in := validInput()
		in.MessageType = entities.MessageTypeSystem
		_, err := uc.AppendMessage(context.Background(), "chat-1", in)
		if !errors.Is(err, ErrInvalidMessageType) {
			t.Fatalf("expected ErrInvalidMessageType, got %v", err)
		}
	})

	t.Run("empty text", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		in := validInput()
		in.Message = "   "
		_, err := uc.AppendMessage(context.Background(), "chat-1", in)
		if !errors.Is(err, ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("offer without terms", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		in := validInput()
		in.MessageType = entities.MessageTypeOffer
		in.Offer = nil
		_, err := uc.AppendMessage(context.Background(), "chat-1", in)
		if !errors.Is(err, ErrInvalidOfferTerms) {
			t.Fatalf("expected ErrInvalidOfferTerms, got %v", err)
		}
	})

	t.Run("chat not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-404").Return(entities.Chat{}, nil)

		_, err := uc.AppendMessage(context.Background(), "chat-404", validInput())
		if !errors.Is(err, ErrChatNotFound) {
			t.Fatalf("expected ErrChatNotFound, got %v", err)
		}
	})

	t.Run("closed chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		chat := openChat()
		chat.Status = entities.ChatStatusClosed
		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(chat, nil)

		_, err := uc.AppendMessage(context.Background(), "chat-1", validInput())
		if !errors.Is(err, ErrChatClosed) {
			t.Fatalf("expected ErrChatClosed, got %v", err)
		}
	})

	t.Run("non participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)

		in := validInput()
		in.SenderID = "stranger"
		_, err := uc.AppendMessage(context.Background(), "chat-1", in)
		if !errors.Is(err, ErrNotParticipant) {
			t.Fatalf("expected ErrNotParticipant, got %v", err)
		}
	})

	t.Run("terminal negotiation locks the chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)
		n := openNegotiation()
		n.Status = entities.NegotiationStatusOrderFulfilled
		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(n, nil)

		_, err := uc.AppendMessage(context.Background(), "chat-1", validInput())
		if !errors.Is(err, ErrNegotiationLocked) {
			t.Fatalf("expected ErrNegotiationLocked, got %v", err)
		}
	})

	t.Run("append success broadcasts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)
		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(openNegotiation(), nil)
		m.messageRepo.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.Message{})).DoAndReturn(
			func(_ context.Context, msg entities.Message) (entities.Message, error) {
				if msg.ID == "" {
					t.Fatalf("expected generated message id")
				}
				if msg.ChatID != "chat-1" || msg.SenderID != "dealer-1" {
					t.Fatalf("unexpected message: %+v", msg)
				}
				if msg.MessageType != entities.MessageTypeText {
					t.Fatalf("expected TEXT default, got %s", msg.MessageType)
				}
				return msg, nil
			},
		)
		m.broadcaster.EXPECT().Broadcast("chat-1", gomock.Any())

		msg, err := uc.AppendMessage(context.Background(), "chat-1", validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if msg.Message != "can you do 40 per unit?" {
			t.Fatalf("unexpected text: %q", msg.Message)
		}
	})

	t.Run("message ids are strictly increasing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil).Times(2)
		m.negotiationRepo.EXPECT().GetByID(gomock.Any(), "neg-1").Return(openNegotiation(), nil).Times(2)
		m.messageRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg entities.Message) (entities.Message, error) { return msg, nil },
		).Times(2)
		m.broadcaster.EXPECT().Broadcast("chat-1", gomock.Any()).Times(2)

		first, err := uc.AppendMessage(context.Background(), "chat-1", validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.AppendMessage(context.Background(), "chat-1", validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.ID <= first.ID {
			t.Fatalf("expected increasing ids, got %s then %s", first.ID, second.ID)
		}
	})
}

func TestChatUseCase_History(t *testing.T) {
	t.Run("invalid chat id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, _, err := uc.History(context.Background(), "", "dealer-1", 10, "")
		if !errors.Is(err, ErrInvalidChatID) {
			t.Fatalf("expected ErrInvalidChatID, got %v", err)
		}
	})

	t.Run("requester not a participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)

		_, _, err := uc.History(context.Background(), "chat-1", "stranger", 10, "")
		if !errors.Is(err, ErrNotParticipant) {
			t.Fatalf("expected ErrNotParticipant, got %v", err)
		}
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		cases := []struct {
			name  string
			limit int
			want  int
		}{
			{name: "zero uses default", limit: 0, want: defaultHistoryPage},
			{name: "negative uses default", limit: -5, want: defaultHistoryPage},
			{name: "above max is capped", limit: 500, want: maxHistoryPage},
			{name: "in range passes through", limit: 10, want: 10},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc, m := newChatUseCaseWithMocks(ctrl)

				m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)
				m.messageRepo.EXPECT().ListByChatID(gomock.Any(), "chat-1", tc.want, "").
					Return([]entities.Message{}, "", nil)

				if _, _, err := uc.History(context.Background(), "chat-1", "dealer-1", tc.limit, ""); err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			})
		}
	})

	t.Run("cursor is forwarded and next cursor returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		page := []entities.Message{{ID: "01A", ChatID: "chat-1"}, {ID: "01B", ChatID: "chat-1"}}
		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)
		m.messageRepo.EXPECT().ListByChatID(gomock.Any(), "chat-1", 2, "cursor-a").
			Return(page, "cursor-b", nil)

		msgs, next, err := uc.History(context.Background(), "chat-1", "manu-1", 2, "cursor-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(msgs) != 2 || next != "cursor-b" {
			t.Fatalf("unexpected page: %d messages, next=%q", len(msgs), next)
		}
	})
}

func TestChatUseCase_Close(t *testing.T) {
	t.Run("missing requester", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, nil, nil)
		_, err := uc.Close(context.Background(), "chat-1", " ")
		if !errors.Is(err, ErrInvalidSender) {
			t.Fatalf("expected ErrInvalidSender, got %v", err)
		}
	})

	t.Run("non participant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)

		_, err := uc.Close(context.Background(), "chat-1", "stranger")
		if !errors.Is(err, ErrNotParticipant) {
			t.Fatalf("expected ErrNotParticipant, got %v", err)
		}
	})

	t.Run("already closed is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		chat := openChat()
		chat.Status = entities.ChatStatusClosed
		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(chat, nil)

		out, err := uc.Close(context.Background(), "chat-1", "dealer-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.ChatStatusClosed {
			t.Fatalf("expected CLOSED, got %s", out.Status)
		}
	})

	t.Run("close success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newChatUseCaseWithMocks(ctrl)

		m.repo.EXPECT().GetByID(gomock.Any(), "chat-1").Return(openChat(), nil)
		closed := openChat()
		closed.Status = entities.ChatStatusClosed
		m.repo.EXPECT().Close(gomock.Any(), "chat-1").Return(closed, nil)

		out, err := uc.Close(context.Background(), "chat-1", "manu-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Status != entities.ChatStatusClosed {
			t.Fatalf("expected CLOSED, got %s", out.Status)
		}
	})
}
