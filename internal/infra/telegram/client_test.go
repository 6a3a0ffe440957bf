package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelebotAdapter_SendMessage(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":7,"date":1700000000,"chat":{"id":42,"type":"private"},"text":"hello"}}`))
	}))
	defer srv.Close()

	bot, err := NewBot("test-token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage("42", "hello", nil)
	require.NoError(t, err)
	assert.Equal(t, "42", got["chat_id"])
	assert.Equal(t, "hello", got["text"])
}

func TestTelebotAdapter_SendMessageAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	bot, err := NewBot("test-token", srv.URL, time.Second)
	require.NoError(t, err)

	err = NewTelebotAdapter(bot).SendMessage("@nowhere", "hello", nil)
	assert.Error(t, err)
}

func TestChatRecipient(t *testing.T) {
	assert.Equal(t, "@homework_channel", ChatRecipient("@homework_channel").Recipient())
}
