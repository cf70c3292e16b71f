package job

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// TaskWelcome is the job type name stored in Redis.
	TaskWelcome = "email:welcome"
)

// WelcomeEmailPayload is the JSON payload data for the welcome email task.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask constructs an Asynq task for sending a welcome email.
//
// The task retries up to 3 times on the "default" queue and is killed after 30s.
func NewWelcomeEmailTask(to, username string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue("default"),
		asynq.Timeout(30*time.Second),
	), nil
}

// EnqueueWelcome queues a welcome email for a freshly registered user.
func (j *JobService) EnqueueWelcome(ctx context.Context, to, username string) error {
	task, err := NewWelcomeEmailTask(to, username)
	if err != nil {
		return fmt.Errorf("failed to build welcome task: %w", err)
	}

	info, err := j.Client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue welcome task: %w", err)
	}

	j.logger.Debug().
		Str("task_id", info.ID).
		Str("queue", info.Queue).
		Str("to", to).
		Msg("welcome email queued")

	return nil
}
