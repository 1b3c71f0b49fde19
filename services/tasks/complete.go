package tasks

import (
	"encoding/json"
	"time"

	"salonbook/models"

	"github.com/hibiken/asynq"
)

const TypeCompleteAppointments = "appointments:complete"

// NewCompletionTask builds the sweep task. Unique keeps overlapping triggers
// from stacking sweeps in the queue.
func NewCompletionTask(trigger string) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(models.CompletionPayload{Trigger: trigger})
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeCompleteAppointments, b)
	opts := []asynq.Option{
		asynq.MaxRetry(3),
		asynq.Timeout(time.Minute),
		asynq.Unique(5 * time.Minute),
	}
	return task, opts, nil
}
