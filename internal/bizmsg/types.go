// ABOUTME: Wire types for the Business Messages v1 conversations API.
// ABOUTME: Structs serialize directly to the JSON bodies the API expects.

package bizmsg

// RepresentativeType identifies who is speaking to the user.
type RepresentativeType string

const (
	RepresentativeTypeBot   RepresentativeType = "BOT"
	RepresentativeTypeHuman RepresentativeType = "HUMAN"
)

// EventType identifies a conversation event sent alongside messages.
type EventType string

const (
	EventTypeTypingStarted        EventType = "TYPING_STARTED"
	EventTypeTypingStopped        EventType = "TYPING_STOPPED"
	EventTypeRepresentativeJoined EventType = "REPRESENTATIVE_JOINED"
	EventTypeRepresentativeLeft   EventType = "REPRESENTATIVE_LEFT"
)

// MediaHeight controls how tall card media renders.
type MediaHeight string

const (
	MediaHeightShort  MediaHeight = "SHORT"
	MediaHeightMedium MediaHeight = "MEDIUM"
	MediaHeightTall   MediaHeight = "TALL"
)

// CardWidth controls the width of carousel cards.
type CardWidth string

const (
	CardWidthSmall  CardWidth = "SMALL"
	CardWidthMedium CardWidth = "MEDIUM"
)

// Representative is the identity shown as the sender of outgoing messages.
type Representative struct {
	RepresentativeType RepresentativeType `json:"representativeType"`
	DisplayName        string             `json:"displayName,omitempty"`
	AvatarImage        string             `json:"avatarImage,omitempty"`
}

// Message is an outbound conversation message.
type Message struct {
	MessageID        string          `json:"messageId"`
	Text             string          `json:"text,omitempty"`
	ContainsRichText bool            `json:"containsRichText,omitempty"`
	Fallback         string          `json:"fallback,omitempty"`
	Representative   *Representative `json:"representative,omitempty"`
	RichCard         *RichCard       `json:"richCard,omitempty"`
	Suggestions      []Suggestion    `json:"suggestions,omitempty"`
}

// Event is an outbound conversation event (typing indicators, representative
// join/leave tombstones).
type Event struct {
	EventType      EventType       `json:"eventType"`
	Representative *Representative `json:"representative,omitempty"`
}

// Survey is a CSAT survey request. The API derives the survey content from
// the agent configuration, so the body carries no fields.
type Survey struct{}

// Suggestion is a chip shown under a message. Exactly one of the fields is set.
type Suggestion struct {
	Reply            *SuggestedReply   `json:"reply,omitempty"`
	Action           *SuggestedAction  `json:"action,omitempty"`
	LiveAgentRequest *LiveAgentRequest `json:"liveAgentRequest,omitempty"`
}

// SuggestedReply sends its postback data back through the webhook when tapped.
type SuggestedReply struct {
	Text         string `json:"text"`
	PostbackData string `json:"postbackData,omitempty"`
}

// SuggestedAction performs a device action when tapped. Exactly one of the
// action fields is set.
type SuggestedAction struct {
	Text          string         `json:"text"`
	PostbackData  string         `json:"postbackData,omitempty"`
	OpenURLAction *OpenURLAction `json:"openUrlAction,omitempty"`
	DialAction    *DialAction    `json:"dialAction,omitempty"`
}

// OpenURLAction opens a URL on the user's device.
type OpenURLAction struct {
	URL string `json:"url"`
}

// DialAction starts a phone call on the user's device.
type DialAction struct {
	PhoneNumber string `json:"phoneNumber"`
}

// LiveAgentRequest renders a "request a live agent" chip.
type LiveAgentRequest struct{}

// RichCard wraps either a standalone card or a carousel.
type RichCard struct {
	StandaloneCard *StandaloneCard `json:"standaloneCard,omitempty"`
	CarouselCard   *CarouselCard   `json:"carouselCard,omitempty"`
}

// StandaloneCard is a single rich card.
type StandaloneCard struct {
	CardContent *CardContent `json:"cardContent,omitempty"`
}

// CarouselCard is an ordered list of rich cards.
type CarouselCard struct {
	CardWidth    CardWidth     `json:"cardWidth,omitempty"`
	CardContents []CardContent `json:"cardContents,omitempty"`
}

// CardContent is the title, description, media, and suggestions of one card.
type CardContent struct {
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Media       *Media       `json:"media,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Media is an image attached to a card.
type Media struct {
	Height      MediaHeight  `json:"height,omitempty"`
	ContentInfo *ContentInfo `json:"contentInfo,omitempty"`
}

// ContentInfo points at the media file.
type ContentInfo struct {
	FileURL string `json:"fileUrl"`
}
