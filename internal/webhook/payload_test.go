// ABOUTME: Tests for webhook payload decoding.
// ABOUTME: Covers each payload shape and the malformed-payload failures.

package webhook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Message(t *testing.T) {
	p, err := Decode([]byte(`{
		"conversationId": "c1",
		"message": {"messageId": "m1", "text": "hello"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "c1", p.ConversationID)
	require.NotNil(t, p.Message)
	assert.Equal(t, "m1", p.Message.MessageID)
	assert.Equal(t, "hello", p.Message.Text)
	assert.Nil(t, p.SuggestionResponse)
}

func TestDecode_SuggestionResponse(t *testing.T) {
	p, err := Decode([]byte(`{
		"conversationId": "c1",
		"requestId": "r1",
		"suggestionResponse": {"postbackData": "card"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, "r1", p.RequestID)
	require.NotNil(t, p.SuggestionResponse)
	assert.Equal(t, "card", p.SuggestionResponse.PostbackData)
}

func TestDecode_UserStatus(t *testing.T) {
	p, err := Decode([]byte(`{
		"conversationId": "c1",
		"requestId": "r1",
		"userStatus": {"requestedLiveAgent": true}
	}`))
	require.NoError(t, err)

	require.NotNil(t, p.UserStatus)
	require.NotNil(t, p.UserStatus.RequestedLiveAgent)
	assert.True(t, *p.UserStatus.RequestedLiveAgent)
	assert.Nil(t, p.UserStatus.IsTyping, "absent fields stay nil")
}

func TestDecode_Receipts(t *testing.T) {
	p, err := Decode([]byte(`{
		"conversationId": "c1",
		"requestId": "r1",
		"receipts": {"receipts": [
			{"receiptType": "DELIVERED", "message": "m1"},
			{"receiptType": "READ", "message": "m2"}
		]}
	}`))
	require.NoError(t, err)

	require.NotNil(t, p.Receipts)
	require.Len(t, p.Receipts.Receipts, 2)
	assert.Equal(t, "DELIVERED", p.Receipts.Receipts[0].ReceiptType)
	assert.Equal(t, "m2", p.Receipts.Receipts[1].Message)
}

func TestDecode_SurveyResponse(t *testing.T) {
	p, err := Decode([]byte(`{
		"conversationId": "c1",
		"surveyResponse": {"rating": "5"}
	}`))
	require.NoError(t, err)

	assert.Empty(t, p.RequestID)
	require.NotNil(t, p.SurveyResponse)
	assert.Equal(t, "5", p.SurveyResponse.Rating)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	_, err = Decode([]byte(`{"message": {"messageId": "m1", "text": "hi"}}`))
	assert.ErrorIs(t, err, ErrMalformedPayload, "missing conversationId is a hard failure")
}
