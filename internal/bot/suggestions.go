// ABOUTME: Suggestion chip construction: the default menu and the bespoke
// ABOUTME: chip sets for the link, dial, chips, and live agent commands.

package bot

import (
	"context"

	"github.com/google/uuid"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// helpMenuItem is the Help suggested reply attached to every suggestion set.
func helpMenuItem() bizmsg.Suggestion {
	return bizmsg.Suggestion{
		Reply: &bizmsg.SuggestedReply{Text: "Help", PostbackData: "help"},
	}
}

// defaultMenu builds the standard menu: Help, Rich card, Carousel, and
// Back to bot when a human currently owns the conversation.
func (b *Bot) defaultMenu(rep *bizmsg.Representative) []bizmsg.Suggestion {
	suggestions := []bizmsg.Suggestion{
		helpMenuItem(),
		{Reply: &bizmsg.SuggestedReply{Text: "Rich card", PostbackData: "card"}},
		{Reply: &bizmsg.SuggestedReply{Text: "Carousel", PostbackData: "carousel"}},
	}

	if rep.RepresentativeType == bizmsg.RepresentativeTypeHuman {
		suggestions = append(suggestions, bizmsg.Suggestion{
			Reply: &bizmsg.SuggestedReply{Text: "Back to bot", PostbackData: "back_to_bot"},
		})
	}

	return suggestions
}

// sendLinkAction sends a text message with an open-url chip, falling back
// to the literal URL on devices without action support.
func (b *Bot) sendLinkAction(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	suggestions := []bizmsg.Suggestion{openGoogleChip()}
	suggestions = append(suggestions, b.defaultMenu(rep)...)

	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		Text:           respLinkText,
		Fallback:       respLinkText + " https://www.google.com",
		Representative: rep,
		Suggestions:    suggestions,
	})
}

// sendDialAction sends a text message with a dial chip.
func (b *Bot) sendDialAction(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		Text:           respDialText,
		Representative: rep,
		Suggestions:    []bizmsg.Suggestion{callExampleChip(), helpMenuItem()},
	})
}

// sendLiveAgentAction sends a text message with a request-a-live-agent chip.
func (b *Bot) sendLiveAgentAction(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		Text:           respLiveAgentText,
		Representative: rep,
		Suggestions: []bizmsg.Suggestion{
			{LiveAgentRequest: &bizmsg.LiveAgentRequest{}},
			helpMenuItem(),
		},
	})
}

// sendChipExamples sends one of every chip variety.
func (b *Bot) sendChipExamples(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	suggestions := []bizmsg.Suggestion{
		{Reply: &bizmsg.SuggestedReply{Text: "Example suggestion", PostbackData: "example_postback"}},
		openGoogleChip(),
		{LiveAgentRequest: &bizmsg.LiveAgentRequest{}},
		callExampleChip(),
		helpMenuItem(),
	}

	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		Text:           respChipText,
		Representative: rep,
		Suggestions:    suggestions,
	})
}

func openGoogleChip() bizmsg.Suggestion {
	return bizmsg.Suggestion{
		Action: &bizmsg.SuggestedAction{
			Text:          "Open Google",
			PostbackData:  "open_url",
			OpenURLAction: &bizmsg.OpenURLAction{URL: "https://www.google.com"},
		},
	}
}

func callExampleChip() bizmsg.Suggestion {
	return bizmsg.Suggestion{
		Action: &bizmsg.SuggestedAction{
			Text:         "Call example",
			PostbackData: "call_example",
			DialAction:   &bizmsg.DialAction{PhoneNumber: "+12223334444"},
		},
	}
}
