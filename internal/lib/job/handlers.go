package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/echo-lessons/internal/lib/email"
	"github.com/hibiken/asynq"
)

// InitHandlers gives the task handlers their email client.
func (j *JobService) InitHandlers(emailClient *email.Client) {
	j.emailClient = emailClient
}

// handleWelcomeEmailTask processes the welcome email task.
func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		// A payload that does not decode will never decode; do not retry it.
		return fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}

	if j.emailClient == nil {
		return errors.New("email client not initialized")
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Processing welcome email task")

	if err := j.emailClient.SendWelcomeEmail(ctx, p.To, p.Username); err != nil {
		j.logger.Error().
			Str("type", "welcome").
			Str("to", p.To).
			Err(err).
			Msg("Failed to send welcome email")
		return err // asynq marks the task failed and schedules a retry
	}

	j.logger.Info().
		Str("type", "welcome").
		Str("to", p.To).
		Msg("Successfully sent welcome email")

	return nil
}
