// ABOUTME: Store interface for dedup and conversation-ownership state.
// ABOUTME: Backends must provide atomic insert-if-absent for delivery ids.

package state

import (
	"context"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// Store tracks seen delivery ids and per-conversation ownership.
type Store interface {
	// CheckAndMark atomically records a delivery id, returning true if it
	// was already recorded. The atomicity guarantees a duplicate delivery
	// racing the first one cannot be processed twice.
	CheckAndMark(ctx context.Context, id string) (bool, error)

	// OwnerType returns the representative type owning the conversation.
	// ok is false when no owner has been recorded yet.
	OwnerType(ctx context.Context, conversationID string) (t bizmsg.RepresentativeType, ok bool, err error)

	// SetOwnerType records the representative type owning the conversation.
	SetOwnerType(ctx context.Context, conversationID string, t bizmsg.RepresentativeType) error

	Close() error
}
