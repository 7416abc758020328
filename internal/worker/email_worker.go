package worker

// email_worker.go
// Sends representative welcome emails enqueued by the representative service.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Sender abstracts the SMTP mailer (infra.Mailer in production).
type Sender interface {
	Send(to, subject, body string) error
}

// WelcomeEmailPayload is the job envelope for a new staff account.
type WelcomeEmailPayload struct {
	ToEmail    string `json:"to_email"`
	Username   string `json:"username"`
	ConsoleURL string `json:"console_url"`
}

// EmailWorker delivers welcome emails from QueueEmail.
type EmailWorker struct {
	mailer Sender
}

func NewEmailWorker(mailer Sender) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends the welcome email. Returning an error triggers a retry.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload WelcomeEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		// Malformed payloads can never succeed; log and drop instead of retrying.
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email_worker: empty to_email, skipping")
		return nil
	}

	subject := "Your representative account is ready"
	body := fmt.Sprintf(
		"Hello %s,\n\nA representative account has been created for you.\nSign in at %s/login with the password shared by your administrator.\n",
		payload.Username, payload.ConsoleURL,
	)
	if err := w.mailer.Send(payload.ToEmail, subject, body); err != nil {
		return fmt.Errorf("email_worker: send to %s: %w", payload.ToEmail, err)
	}

	log.Info().Str("to", payload.ToEmail).Msg("email_worker: welcome email sent")
	return nil
}
