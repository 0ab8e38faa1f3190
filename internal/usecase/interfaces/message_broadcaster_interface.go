package interfaces

import "novamart/internal/domain/entities"

// IMessageBroadcaster fans a committed message out to the live subscribers of
// its chat room.
//
// Delivery is fire-and-forget: the transport holds no authoritative state and
// a dropped event is recovered by the client replaying history. Implementations
// must never block the caller.
type IMessageBroadcaster interface {
	Broadcast(chatID string, m entities.Message)
}
