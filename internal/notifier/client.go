package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	notificationsPath = "/api/v1/notifications"

	// Rate limiting: keep outbound bursts to the notifications service sane
	rateLimit = 10 // requests per second
	rateBurst = 20
)

// RetryPolicy describes the bounded retry schedule for one dispatch: up to
// MaxAttempts tries, exponential backoff starting at InitialDelay, doubling
// and capped at MaxDelay.
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
}

// DefaultRetryPolicy matches the notification delivery contract: 3 attempts,
// 1s initial backoff, 10s cap.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  3,
		InitialDelay: 1 * time.Second,
		MaxDelay:     10 * time.Second,
	}
}

// Client posts notification payloads to the notifications service with
// bounded retry. Delivery failures never propagate as errors: the outcome is
// a boolean, because notification delivery must not fail a message send.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	policy      RetryPolicy
	observer    DispatchObserver

	// sleep is swapped out in tests so backoff is observable without waiting
	sleep func(time.Duration)
}

// NewClient creates a notification client. timeout caps each individual
// attempt, not the whole dispatch sequence.
func NewClient(baseURL string, timeout time.Duration, policy RetryPolicy, observer DispatchObserver) *Client {
	if observer == nil {
		observer = NopObserver{}
	}
	return &Client{
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		policy:      policy,
		observer:    observer,
		sleep:       time.Sleep,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// PostNotification runs one full dispatch sequence for the payload and
// reports whether any attempt succeeded. A 201 from the service is success;
// transport errors and every other status are retryable failures.
func (c *Client) PostNotification(ctx context.Context, payload NotificationPayload) bool {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Notifier] Failed to marshal payload: %v", err)
		return false
	}

	url := c.baseURL + notificationsPath
	delay := c.policy.InitialDelay
	var lastErr error

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			c.observer.ObserveOutcome("send_notification", false)
			return false
		}

		err := c.post(ctx, url, body)
		c.observer.ObserveAttempt("send_notification", attempt, err)
		if err == nil {
			c.observer.ObserveOutcome("send_notification", true)
			return true
		}

		lastErr = err
		if attempt < c.policy.MaxAttempts {
			log.Printf("[Notifier] Attempt %d/%d failed: %v, retrying in %v...",
				attempt, c.policy.MaxAttempts, err, delay)
			c.sleep(delay)
			delay = minDuration(delay*2, c.policy.MaxDelay)
		}
	}

	log.Printf("[Notifier] Delivery failed after %d attempts: %v", c.policy.MaxAttempts, lastErr)
	c.observer.ObserveOutcome("send_notification", false)
	return false
}

func (c *Client) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}
