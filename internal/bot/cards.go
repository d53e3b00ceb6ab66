// ABOUTME: Sample rich card and carousel construction with plain-text
// ABOUTME: fallbacks for devices that cannot render structured content.

package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// sendRichCard sends the sample standalone rich card.
func (b *Bot) sendRichCard(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	card := sampleCard()

	var fallback strings.Builder
	fallback.WriteString(card.CardContent.Title + "\n\n")
	fallback.WriteString(card.CardContent.Description + "\n\n")
	fallback.WriteString(card.CardContent.Media.ContentInfo.FileURL)

	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		RichCard:       &bizmsg.RichCard{StandaloneCard: card},
		Fallback:       fallback.String(),
		Representative: rep,
		Suggestions:    []bizmsg.Suggestion{helpMenuItem()},
	})
}

// sendCarousel sends the sample carousel, one card per sample image.
func (b *Bot) sendCarousel(ctx context.Context, conversationID string, rep *bizmsg.Representative) error {
	carousel := sampleCarousel()

	var fallback strings.Builder
	for _, content := range carousel.CardContents {
		fallback.WriteString(content.Title + "\n\n")
		fallback.WriteString(content.Description + "\n\n")
		fallback.WriteString(content.Media.ContentInfo.FileURL + "\n")
		fallback.WriteString(carouselDivider + "\n\n")
	}

	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		RichCard:       &bizmsg.RichCard{CarouselCard: carousel},
		Fallback:       fallback.String(),
		Representative: rep,
		Suggestions:    []bizmsg.Suggestion{helpMenuItem()},
	})
}

// sampleCard builds the standalone sample card.
func sampleCard() *bizmsg.StandaloneCard {
	return &bizmsg.StandaloneCard{
		CardContent: &bizmsg.CardContent{
			Title:       "Business Messages!!!",
			Description: "The future of business communication",
			Suggestions: cardSuggestions(),
			Media: &bizmsg.Media{
				Height:      bizmsg.MediaHeightMedium,
				ContentInfo: &bizmsg.ContentInfo{FileURL: sampleImages[0]},
			},
		},
	}
}

// sampleCarousel builds one card per sample image, in list order.
func sampleCarousel() *bizmsg.CarouselCard {
	contents := make([]bizmsg.CardContent, 0, len(sampleImages))
	for i, image := range sampleImages {
		contents = append(contents, bizmsg.CardContent{
			Title:       fmt.Sprintf("Card #%d", i+1),
			Description: "What do you think?",
			Suggestions: cardSuggestions(),
			Media: &bizmsg.Media{
				Height:      bizmsg.MediaHeightMedium,
				ContentInfo: &bizmsg.ContentInfo{FileURL: image},
			},
		})
	}

	return &bizmsg.CarouselCard{
		CardWidth:    bizmsg.CardWidthMedium,
		CardContents: contents,
	}
}

// cardSuggestions are the like/dislike replies attached to sample cards.
func cardSuggestions() []bizmsg.Suggestion {
	return []bizmsg.Suggestion{
		{Reply: &bizmsg.SuggestedReply{Text: "\U0001F44D Like", PostbackData: "like-item"}},
		{Reply: &bizmsg.SuggestedReply{Text: "\U0001F44E Dislike", PostbackData: "dislike-item"}},
	}
}
