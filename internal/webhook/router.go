// ABOUTME: Conversation router: dedup, shape classification, and dispatch
// ABOUTME: to the bot or the representative transfer flows.

package webhook

import (
	"context"
	"log/slog"

	"github.com/2389/bizmsg-gateway/internal/bizmsg"
	"github.com/2389/bizmsg-gateway/internal/bot"
)

// StateStore is what the router needs from dedup and ownership tracking.
type StateStore interface {
	CheckAndMark(ctx context.Context, id string) (bool, error)
	OwnerType(ctx context.Context, conversationID string) (bizmsg.RepresentativeType, bool, error)
	SetOwnerType(ctx context.Context, conversationID string, t bizmsg.RepresentativeType) error
}

// Agent is what the router needs from the bot layer.
type Agent interface {
	Route(ctx context.Context, conversationID string, rep *bizmsg.Representative, text string) error
	TransferToLiveAgent(ctx context.Context, conversationID string) error
	TransferToBot(ctx context.Context, conversationID string) error
}

// Router handles one inbound webhook delivery at a time. Deliveries for
// different conversations are safe to handle concurrently.
type Router struct {
	state    StateStore
	agent    Agent
	profiles bot.Profiles
	logger   *slog.Logger
}

// RouterConfig contains configuration options for the Router.
type RouterConfig struct {
	State    StateStore
	Agent    Agent
	Profiles bot.Profiles
	Logger   *slog.Logger
}

// NewRouter creates a Router with the given collaborators.
func NewRouter(cfg RouterConfig) *Router {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Router{
		state:    cfg.State,
		agent:    cfg.Agent,
		profiles: cfg.Profiles,
		logger:   logger.With("component", "webhook"),
	}
}

// HandleInbound processes one raw webhook delivery: parse, dedup, shape
// dispatch. Returned errors are for the HTTP layer's response policy; the
// payload is never retried.
func (r *Router) HandleInbound(ctx context.Context, raw []byte) error {
	p, err := Decode(raw)
	if err != nil {
		r.logger.Error("dropping malformed payload", "error", err)
		return err
	}

	switch {
	case p.Message != nil:
		if r.alreadySeen(ctx, p.Message.MessageID) {
			r.logger.Debug("duplicate message dropped",
				"conversation_id", p.ConversationID,
				"message_id", p.Message.MessageID)
			return nil
		}
		return r.routeText(ctx, p.ConversationID, p.Message.Text)

	case p.RequestID != "":
		if r.alreadySeen(ctx, p.RequestID) {
			r.logger.Debug("duplicate request dropped",
				"conversation_id", p.ConversationID,
				"request_id", p.RequestID)
			return nil
		}
		return r.handleNonMessage(ctx, p)

	default:
		// Survey responses carry no dedup key.
		return r.handleNonMessage(ctx, p)
	}
}

// alreadySeen records the delivery id, reporting whether it was already
// processed. A state store failure is logged and the delivery is treated
// as new: a rare double response beats silently dropping user input.
func (r *Router) alreadySeen(ctx context.Context, id string) bool {
	dup, err := r.state.CheckAndMark(ctx, id)
	if err != nil {
		r.logger.Error("dedup check failed", "id", id, "error", err)
		return false
	}
	return dup
}

// routeText handles inbound text, whether typed, posted back through a
// suggestion chip, or a survey rating.
func (r *Router) routeText(ctx context.Context, conversationID, text string) error {
	if bot.Classify(text) == bot.CommandBackToBot {
		if err := r.state.SetOwnerType(ctx, conversationID, bizmsg.RepresentativeTypeBot); err != nil {
			r.logger.Error("recording bot ownership failed",
				"conversation_id", conversationID, "error", err)
		}
		return r.agent.TransferToBot(ctx, conversationID)
	}

	rep := r.currentRepresentative(ctx, conversationID)
	return r.agent.Route(ctx, conversationID, rep, text)
}

// currentRepresentative resolves the conversation's owner, defaulting to
// the bot and recording the default on first contact.
func (r *Router) currentRepresentative(ctx context.Context, conversationID string) *bizmsg.Representative {
	t, ok, err := r.state.OwnerType(ctx, conversationID)
	if err != nil {
		r.logger.Error("resolving conversation owner failed",
			"conversation_id", conversationID, "error", err)
	}
	if !ok || t == "" {
		t = bizmsg.RepresentativeTypeBot
		if err := r.state.SetOwnerType(ctx, conversationID, t); err != nil {
			r.logger.Error("recording default ownership failed",
				"conversation_id", conversationID, "error", err)
		}
	}
	return r.profiles.Representative(t)
}

// handleNonMessage dispatches payloads that are not plain text messages.
func (r *Router) handleNonMessage(ctx context.Context, p *Payload) error {
	switch {
	case p.SuggestionResponse != nil:
		// Postback data re-enters the text route as if typed.
		return r.routeText(ctx, p.ConversationID, p.SuggestionResponse.PostbackData)

	case p.UserStatus != nil:
		if p.UserStatus.RequestedLiveAgent != nil && *p.UserStatus.RequestedLiveAgent {
			r.logger.Info("user requested transfer to live agent",
				"conversation_id", p.ConversationID)
			if err := r.state.SetOwnerType(ctx, p.ConversationID, bizmsg.RepresentativeTypeHuman); err != nil {
				r.logger.Error("recording human ownership failed",
					"conversation_id", p.ConversationID, "error", err)
			}
			return r.agent.TransferToLiveAgent(ctx, p.ConversationID)
		}
		if p.UserStatus.IsTyping != nil {
			r.logger.Info("user is typing", "conversation_id", p.ConversationID)
		}
		return nil

	case p.Receipts != nil:
		for _, receipt := range p.Receipts.Receipts {
			r.logger.Info("receipt received",
				"conversation_id", p.ConversationID,
				"receipt_type", receipt.ReceiptType,
				"message_id", receipt.Message)
		}
		return nil

	case p.SurveyResponse != nil:
		// Ratings run through the command grammar and typically echo.
		rep := r.currentRepresentative(ctx, p.ConversationID)
		return r.agent.Route(ctx, p.ConversationID, rep, p.SurveyResponse.Rating)

	default:
		r.logger.Debug("payload matched no known shape",
			"conversation_id", p.ConversationID)
		return nil
	}
}
