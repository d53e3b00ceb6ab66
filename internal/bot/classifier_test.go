// ABOUTME: Tests for command classification and speak-language extraction.
// ABOUTME: Covers rule precedence, normalization, and the echo fallback.

package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_ExactCommands(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"lorem ipsum", CommandLoremIpsum},
		{"medium text", CommandMediumText},
		{"long text", CommandLongText},
		{"link", CommandLink},
		{"dial", CommandDial},
		{"card", CommandCard},
		{"carousel", CommandCarousel},
		{"live agent", CommandLiveAgent},
		{"chips", CommandChips},
		{"back_to_bot", CommandBackToBot},
		{"bold", CommandBold},
		{"italics", CommandItalics},
		{"hyperlink", CommandHyperlink},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestClassify_Normalization(t *testing.T) {
	assert.Equal(t, CommandCard, Classify("Card"))
	assert.Equal(t, CommandCard, Classify("  CARD  "))
	assert.Equal(t, CommandLoremIpsum, Classify("Lorem Ipsum"))
}

func TestClassify_Patterns(t *testing.T) {
	tests := []struct {
		input string
		want  Command
	}{
		{"speak french", CommandSpeak},
		{"speak", CommandSpeak},
		{"who are you", CommandWho},
		{"who", CommandWho},
		{"csat", CommandCSAT},
		{"csat please", CommandCSAT},
		{"help", CommandHelp},
		{"help me", CommandHelp},
		{"commands please", CommandHelp},
		{"see the help menu", CommandHelp},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.input))
		})
	}
}

func TestClassify_PatternsAnchored(t *testing.T) {
	// Patterns match from the start of the text, not anywhere inside it.
	assert.Equal(t, CommandEcho, Classify("can you speak french"))
	assert.Equal(t, CommandEcho, Classify("guess who"))
	assert.Equal(t, CommandEcho, Classify("commandsX"))
}

func TestClassify_EchoFallback(t *testing.T) {
	tests := []string{
		"hello there",
		"cardgame",
		"5",
		"",
	}

	for _, input := range tests {
		assert.Equal(t, CommandEcho, Classify(input), "input %q", input)
	}
}

func TestSpeakLanguage(t *testing.T) {
	tests := []struct {
		normalized string
		want       string
	}{
		{"speak french", "french"},
		{"speak french now", "french"},
		{"speak scots gaelic", "scots"},
		{"speak", "speak"},
	}

	for _, tt := range tests {
		t.Run(tt.normalized, func(t *testing.T) {
			assert.Equal(t, tt.want, SpeakLanguage(tt.normalized))
		})
	}
}
