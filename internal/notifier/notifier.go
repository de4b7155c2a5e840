package notifier

import (
	"context"
	"log"
)

// NotificationPayload is the wire format expected by the notifications
// service at POST /api/v1/notifications.
type NotificationPayload struct {
	UserID        string `json:"user_id"`
	Type          string `json:"type"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	RelatedUserID string `json:"related_user_id"`
}

// Notifier dispatches new-message events to the notifications service.
type Notifier struct {
	client *Client
}

func New(client *Client) *Notifier {
	return &Notifier{client: client}
}

// NotifyNewMessage dispatches asynchronously: the message is already
// committed, so the caller returns immediately and the retry sequence runs to
// completion or exhaustion in the background.
func (n *Notifier) NotifyNewMessage(recipientID, senderID string, messageID int64) {
	go func() {
		if !n.Send(context.Background(), recipientID, senderID, messageID) {
			log.Printf("[Notifier] New message notification for message %d to user %s was dropped", messageID, recipientID)
		}
	}()
}

// Send runs one dispatch sequence synchronously and reports the outcome.
func (n *Notifier) Send(ctx context.Context, recipientID, senderID string, messageID int64) bool {
	log.Printf("[Notifier] Sending new message notification to user %s for message %d", recipientID, messageID)

	payload := NotificationPayload{
		UserID:        recipientID,
		Type:          "new_message",
		Title:         "New Message",
		Body:          "You have a new message",
		RelatedUserID: senderID,
	}

	return n.client.PostNotification(ctx, payload)
}
