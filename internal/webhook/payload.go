// ABOUTME: Inbound webhook payload shapes and presence-checked decoding.
// ABOUTME: Exactly one shape field is populated per delivery.

package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload indicates the payload could not be parsed or is
// missing the required conversationId.
var ErrMalformedPayload = errors.New("malformed payload")

// Payload is one inbound webhook delivery. ConversationID is required;
// of the shape fields, the platform populates exactly one.
type Payload struct {
	ConversationID     string              `json:"conversationId"`
	RequestID          string              `json:"requestId,omitempty"`
	Message            *MessagePayload     `json:"message,omitempty"`
	SuggestionResponse *SuggestionResponse `json:"suggestionResponse,omitempty"`
	UserStatus         *UserStatus         `json:"userStatus,omitempty"`
	Receipts           *ReceiptsPayload    `json:"receipts,omitempty"`
	SurveyResponse     *SurveyResponse     `json:"surveyResponse,omitempty"`
}

// MessagePayload is a user text message.
type MessagePayload struct {
	MessageID string `json:"messageId"`
	Text      string `json:"text"`
}

// SuggestionResponse carries the postback data of a tapped suggestion.
type SuggestionResponse struct {
	PostbackData string `json:"postbackData"`
}

// UserStatus signals typing activity or a live agent request. Presence of
// a field matters, so both are pointers.
type UserStatus struct {
	IsTyping           *bool `json:"isTyping,omitempty"`
	RequestedLiveAgent *bool `json:"requestedLiveAgent,omitempty"`
}

// ReceiptsPayload is a batch of delivery/read receipts.
type ReceiptsPayload struct {
	Receipts []Receipt `json:"receipts"`
}

// Receipt is a single receipt entry.
type Receipt struct {
	ReceiptType string `json:"receiptType"`
	Message     string `json:"message"`
}

// SurveyResponse carries the user's CSAT rating.
type SurveyResponse struct {
	Rating string `json:"rating"`
}

// Decode parses a raw delivery. The only hard failure is unparsable JSON
// or a missing conversationId; shape fields are validated by presence at
// dispatch time.
func Decode(raw []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	if p.ConversationID == "" {
		return nil, fmt.Errorf("%w: missing conversationId", ErrMalformedPayload)
	}
	return &p, nil
}
