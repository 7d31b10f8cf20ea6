// Package notify submits form payloads to an external email relay. The relay
// is a best-effort side channel: a failed submission is reported to the user
// but never rolls back a local domain record.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Relay submits a named form payload for email delivery to the operator.
type Relay interface {
	// Submit sends the fields along with a human-readable subject line.
	// A nil error means the relay accepted the payload (2xx); any other
	// outcome is an error. There are no retries.
	Submit(ctx context.Context, subject string, fields map[string]string) error
}

// httpRelay posts JSON payloads to a fixed relay endpoint.
type httpRelay struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPRelay creates a relay that POSTs to url with the given timeout.
func NewHTTPRelay(url string, timeout time.Duration, logger zerolog.Logger) Relay {
	return &httpRelay{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With().Str("component", "relay").Logger(),
	}
}

// Submit sends the payload as a single JSON object. The subject rides along
// under the "_subject" key, the convention form relays use for the email
// subject line.
func (r *httpRelay) Submit(ctx context.Context, subject string, fields map[string]string) error {
	payload := make(map[string]string, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["_subject"] = subject

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn().Err(err).Str("subject", subject).Msg("relay unreachable")
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		r.logger.Warn().
			Int("status", resp.StatusCode).
			Str("subject", subject).
			Msg("relay rejected submission")
		return fmt.Errorf("relay returned status %d", resp.StatusCode)
	}

	r.logger.Debug().Str("subject", subject).Msg("relay submission accepted")
	return nil
}

// disabledRelay drops every submission. Used when no relay URL is
// configured; local records remain the source of truth either way.
type disabledRelay struct {
	logger zerolog.Logger
}

// NewDisabledRelay creates a relay that accepts and discards everything.
func NewDisabledRelay(logger zerolog.Logger) Relay {
	return &disabledRelay{
		logger: logger.With().Str("component", "relay").Logger(),
	}
}

func (r *disabledRelay) Submit(_ context.Context, subject string, _ map[string]string) error {
	r.logger.Debug().Str("subject", subject).Msg("relay disabled, submission dropped")
	return nil
}
