package portalsdk

import (
	"context"
	"net/http"
)

// MessageSender sends a single WhatsApp message. *Client implements it; the
// Dispatcher depends on the interface so tests can swap in a fake.
type MessageSender interface {
	SendMessage(ctx context.Context, to, message string) error
}

type sendMessageRequest struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

// SendMessage sends one WhatsApp message through the portal. Each successful
// send costs one credit.
func (c *Client) SendMessage(ctx context.Context, to, message string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/whatsapp/send-message", sendMessageRequest{
		To:      to,
		Message: message,
	}, nil)
}
