// ABOUTME: Representative transfer flows between bot and live agent.
// ABOUTME: Join/leave events precede the confirmation text in a fixed order.

package bot

import (
	"context"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// TransferToLiveAgent shifts the conversation to a human representative.
// The REPRESENTATIVE_JOINED event shows the user a transfer tombstone,
// then a confirmation is sent under the human identity.
func (b *Bot) TransferToLiveAgent(ctx context.Context, conversationID string) error {
	human := b.profiles.Representative(bizmsg.RepresentativeTypeHuman)

	if err := b.step("representative_joined", conversationID,
		b.sendEvent(ctx, conversationID, bizmsg.EventTypeRepresentativeJoined, human)); err != nil {
		return err
	}

	return b.sendText(ctx, conversationID, human, respLiveAgentTransfer)
}

// TransferToBot shifts the conversation back to the bot: the human
// representative leaves, the bot joins, and a confirmation is sent under
// the bot identity. Steps are attempted in order even when an earlier one
// fails, unless the failure policy aborts.
func (b *Bot) TransferToBot(ctx context.Context, conversationID string) error {
	human := b.profiles.Representative(bizmsg.RepresentativeTypeHuman)

	if err := b.step("representative_left", conversationID,
		b.sendEvent(ctx, conversationID, bizmsg.EventTypeRepresentativeLeft, human)); err != nil {
		return err
	}

	botRep := b.profiles.Representative(bizmsg.RepresentativeTypeBot)

	if err := b.step("representative_joined", conversationID,
		b.sendEvent(ctx, conversationID, bizmsg.EventTypeRepresentativeJoined, botRep)); err != nil {
		return err
	}

	return b.sendText(ctx, conversationID, botRep, respBotTransfer)
}
