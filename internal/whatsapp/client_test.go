package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firstoffice/officebooking/config"
	"github.com/stretchr/testify/assert"
)

func testConfig(baseURL string) config.MessagingConfig {
	return config.MessagingConfig{
		BaseURL:    baseURL,
		AccountSID: "AC123",
		AuthToken:  "token-abc",
		FromNumber: "+14155238886",
	}
}

func TestClient_SendMessage(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody sendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"message_id":"MSG-1","status":"queued"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	messageID, err := client.SendMessage(context.Background(), "+6285700287191", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "MSG-1", messageID)
	assert.Equal(t, "/accounts/AC123/messages", gotPath)
	assert.Equal(t, "Bearer token-abc", gotAuth)
	assert.Equal(t, "whatsapp:+6285700287191", gotBody.To)
	assert.Equal(t, "whatsapp:+14155238886", gotBody.From)
	assert.Equal(t, "hello", gotBody.Body)
}

func TestClient_SendMessage_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"message":"provider down"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	messageID, err := client.SendMessage(context.Background(), "+6285700287191", "hello")

	assert.Error(t, err)
	assert.Empty(t, messageID)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_SendMessage_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":false,"error":{"message":"invalid number","code":"21211"}}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	_, err := client.SendMessage(context.Background(), "invalid", "hello")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "21211")
}

func TestClient_SendMessage_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	client := NewClient(testConfig(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.SendMessage(ctx, "+6285700287191", "hello")
	assert.Error(t, err)
}

func TestConfirmationMessage(t *testing.T) {
	body := ConfirmationMessage("Alice", "OTRX12345", "Angga Park Central")

	assert.Contains(t, body, "Alice")
	assert.Contains(t, body, "OTRX12345")
	assert.Contains(t, body, "Angga Park Central")
	assert.Contains(t, body, "terbayar penuh")
}
