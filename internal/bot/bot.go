// ABOUTME: Bot service that turns classified commands into outbound messages.
// ABOUTME: Every message send is wrapped in typing started/stopped events.

package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
)

// Sender defines what the bot needs from the outbound transport.
type Sender interface {
	CreateMessage(ctx context.Context, conversationID string, msg *bizmsg.Message) error
	CreateEvent(ctx context.Context, conversationID, eventID string, ev *bizmsg.Event) error
	CreateSurvey(ctx context.Context, conversationID, surveyID string) error
}

// Translator translates text between language codes.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// FailurePolicy decides what happens to the rest of a multi-call send
// sequence when one transport call fails.
type FailurePolicy string

const (
	// FailureContinue logs the failure and attempts the remaining calls.
	FailureContinue FailurePolicy = "continue"

	// FailureAbort logs the failure and abandons the remaining calls.
	FailureAbort FailurePolicy = "abort"
)

// Bot routes inbound text to command handlers and builds the responses.
type Bot struct {
	sender     Sender
	translator Translator
	profiles   Profiles
	policy     FailurePolicy
	logger     *slog.Logger
}

// Config contains configuration options for the Bot.
type Config struct {
	Sender     Sender
	Translator Translator
	Profiles   Profiles
	Policy     FailurePolicy
	Logger     *slog.Logger
}

// New creates a Bot with the given collaborators.
func New(cfg Config) *Bot {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	policy := cfg.Policy
	if policy == "" {
		policy = FailureContinue
	}
	return &Bot{
		sender:     cfg.Sender,
		translator: cfg.Translator,
		profiles:   cfg.Profiles,
		policy:     policy,
		logger:     logger.With("component", "bot"),
	}
}

// Profiles returns the representative profiles the bot speaks as.
func (b *Bot) Profiles() Profiles {
	return b.profiles
}

// Route produces a response to inbound text sent under the given
// representative. Text that matches no supported command is echoed back
// verbatim.
func (b *Bot) Route(ctx context.Context, conversationID string, rep *bizmsg.Representative, text string) error {
	normalized := Normalize(text)

	switch Classify(text) {
	case CommandLoremIpsum:
		return b.sendText(ctx, conversationID, rep, respLoremIpsum)
	case CommandMediumText:
		return b.sendText(ctx, conversationID, rep, respMediumText)
	case CommandLongText:
		return b.sendText(ctx, conversationID, rep, respLongText)
	case CommandSpeak:
		return b.attemptTranslation(ctx, conversationID, rep, normalized)
	case CommandLink:
		return b.sendLinkAction(ctx, conversationID, rep)
	case CommandDial:
		return b.sendDialAction(ctx, conversationID, rep)
	case CommandCard:
		return b.sendRichCard(ctx, conversationID, rep)
	case CommandCarousel:
		return b.sendCarousel(ctx, conversationID, rep)
	case CommandWho:
		return b.sendText(ctx, conversationID, rep, respWhoText)
	case CommandCSAT:
		return b.showCSAT(ctx, conversationID)
	case CommandHelp:
		return b.sendText(ctx, conversationID, rep, respHelpText)
	case CommandLiveAgent:
		return b.sendLiveAgentAction(ctx, conversationID, rep)
	case CommandChips:
		return b.sendChipExamples(ctx, conversationID, rep)
	case CommandBold:
		return b.sendRichText(ctx, conversationID, rep, "**"+respLoremIpsum+"**")
	case CommandItalics:
		return b.sendRichText(ctx, conversationID, rep, "*"+respLoremIpsum+"*")
	case CommandHyperlink:
		return b.sendRichText(ctx, conversationID, rep, respHyperlinkText)
	default:
		// Includes back_to_bot when it reaches the bot directly; the
		// webhook router intercepts it for the transfer flow first.
		return b.sendText(ctx, conversationID, rep, text)
	}
}

// showCSAT asks the platform to run its CSAT survey.
func (b *Bot) showCSAT(ctx context.Context, conversationID string) error {
	return b.step("create_survey", conversationID,
		b.sender.CreateSurvey(ctx, conversationID, uuid.New().String()))
}

// attemptTranslation handles "speak <language>". Unknown languages get a
// reply listing every supported name.
func (b *Bot) attemptTranslation(ctx context.Context, conversationID string, rep *bizmsg.Representative, normalized string) error {
	language := SpeakLanguage(normalized)
	b.logger.Info("translation requested", "language", language, "conversation_id", conversationID)

	code, ok := LanguageCode(language)
	if !ok {
		reply := "Sorry, but " + language + " is not a supported language.\n\n" +
			"Here is the list of supported languages: " + SupportedLanguages()
		return b.sendText(ctx, conversationID, rep, reply)
	}

	translated, err := b.translator.Translate(ctx, respToTranslate, "en", code)
	if err != nil {
		b.logger.Error("translation failed", "language", language, "error", err)
		return fmt.Errorf("translating to %s: %w", code, err)
	}

	return b.sendText(ctx, conversationID, rep, translated)
}

// sendText sends a plain text message with the default menu attached.
func (b *Bot) sendText(ctx context.Context, conversationID string, rep *bizmsg.Representative, text string) error {
	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:      uuid.New().String(),
		Text:           text,
		Fallback:       text,
		Representative: rep,
		Suggestions:    b.defaultMenu(rep),
	})
}

// sendRichText sends markdown text with containsRichText set so bold,
// italics, and links render.
func (b *Bot) sendRichText(ctx context.Context, conversationID string, rep *bizmsg.Representative, text string) error {
	return b.send(ctx, conversationID, &bizmsg.Message{
		MessageID:        uuid.New().String(),
		Text:             text,
		ContainsRichText: true,
		Fallback:         text,
		Representative:   rep,
		Suggestions:      b.defaultMenu(rep),
	})
}

// send delivers a message, bracketed by typing indicator events. Each
// transport call is independently attempted per the failure policy.
func (b *Bot) send(ctx context.Context, conversationID string, msg *bizmsg.Message) error {
	if err := b.step("typing_started", conversationID,
		b.sendEvent(ctx, conversationID, bizmsg.EventTypeTypingStarted, nil)); err != nil {
		return err
	}

	b.logger.Debug("sending message", "conversation_id", conversationID, "message_id", msg.MessageID)

	if err := b.step("create_message", conversationID,
		b.sender.CreateMessage(ctx, conversationID, msg)); err != nil {
		return err
	}

	return b.step("typing_stopped", conversationID,
		b.sendEvent(ctx, conversationID, bizmsg.EventTypeTypingStopped, nil))
}

// sendEvent delivers a single conversation event with a fresh event ID.
func (b *Bot) sendEvent(ctx context.Context, conversationID string, eventType bizmsg.EventType, rep *bizmsg.Representative) error {
	return b.sender.CreateEvent(ctx, conversationID, uuid.New().String(), &bizmsg.Event{
		EventType:      eventType,
		Representative: rep,
	})
}

// step logs a failed transport call and decides whether the surrounding
// sequence continues, per the configured failure policy.
func (b *Bot) step(op, conversationID string, err error) error {
	if err == nil {
		return nil
	}
	b.logger.Error("transport call failed",
		"op", op,
		"conversation_id", conversationID,
		"error", err,
	)
	if b.policy == FailureAbort {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
