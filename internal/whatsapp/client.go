package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/firstoffice/officebooking/config"
)

// Client sends WhatsApp messages through the external messaging provider.
// A send is fire-and-forget from the booking workflow's point of view:
// failures are reported to the caller for logging, never retried here.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
	fromNumber string
}

func NewClient(cfg config.MessagingConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.BaseURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		fromNumber: cfg.FromNumber,
	}
}

type sendRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendMessage delivers body to the phone number and returns the provider
// message id.
func (c *Client) SendMessage(ctx context.Context, to, body string) (string, error) {
	payload, err := json.Marshal(sendRequest{
		From: "whatsapp:" + c.fromNumber,
		To:   "whatsapp:" + to,
		Body: body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal message: %w", err)
	}

	url := fmt.Sprintf("%s/accounts/%s/messages", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		_ = json.NewDecoder(resp.Body).Decode(&errorBody)
		return "", fmt.Errorf("messaging provider returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			MessageID string `json:"message_id"`
			Status    string `json:"status"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !response.Success {
		return "", fmt.Errorf("messaging provider rejected message: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	return response.Data.MessageID, nil
}

// ConfirmationMessage renders the payment confirmation sent to customers
// once an admin approves their booking.
func ConfirmationMessage(name, trxID, officeName string) string {
	return fmt.Sprintf(
		"Hi %s, pemesanan Anda dengan kode %s sudah terbayar penuh. \n\n"+
			"Silahkan datang kepada lokasi kantor %s untuk mulai menggunakan ruangan kerja tersebut. \n\n"+
			"Jika Anda memiliki pertanyaan lebih lanjut, silahkan mengubungi CS kami di firstoffice.com/contact-us.",
		name, trxID, officeName)
}
