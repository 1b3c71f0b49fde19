package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"salonbook/config"
	"salonbook/models"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Completer marks ended appointments as completed.
type Completer interface {
	CompletePast(ctx context.Context) (int64, error)
}

// Worker owns the asynq server that runs sweeps and the scheduler that enqueues them.
type Worker struct {
	server    *asynq.Server
	scheduler *asynq.Scheduler
	client    *asynq.Client
	mux       *asynq.ServeMux
	cronSpec  string
}

// RedisOpt points asynq at the queue database.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

func NewWorker(redisOpt asynq.RedisClientOpt, completer Completer, cronSpec string, loc *time.Location) *Worker {
	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 2,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeCompleteAppointments, handleCompletionTask(completer))

	return &Worker{
		server:    srv,
		scheduler: asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Location: loc}),
		client:    asynq.NewClient(redisOpt),
		mux:       mux,
		cronSpec:  cronSpec,
	}
}

// Start registers the periodic sweep, queues one immediately and runs the
// server and scheduler in the background.
func (w *Worker) Start() error {
	logger := utils.GetLogger()

	task, opts, err := tasks.NewCompletionTask("scheduler")
	if err != nil {
		return err
	}
	entryID, err := w.scheduler.Register(w.cronSpec, task, opts...)
	if err != nil {
		return fmt.Errorf("failed to register completion sweep %q: %w", w.cronSpec, err)
	}
	logger.Info("Completion sweep scheduled", zap.String("cron", w.cronSpec), zap.String("entryID", entryID))

	go func() {
		logger.Info("Starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := w.server.Start(w.mux); err != nil {
				logger.Warn("Async worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Error("Async worker giving up")
					return
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
				continue
			}
			break
		}
	}()

	if err := w.scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	startup, startupOpts, err := tasks.NewCompletionTask("startup")
	if err != nil {
		return err
	}
	if _, err := w.client.Enqueue(startup, startupOpts...); err != nil {
		logger.Warn("Failed to enqueue startup sweep", zap.Error(err))
	}
	return nil
}

// Shutdown stops the scheduler first so nothing new is enqueued while the server drains.
func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
	if err := w.client.Close(); err != nil {
		utils.GetLogger().Warn("Failed to close asynq client", zap.Error(err))
	}
}

func handleCompletionTask(completer Completer) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.CompletionPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("Invalid completion payload", zap.Error(err))
			return fmt.Errorf("invalid payload: %v: %w", err, asynq.SkipRetry)
		}

		n, err := completer.CompletePast(ctx)
		if err != nil {
			logger.Error("Completion sweep failed", zap.String("trigger", p.Trigger), zap.Error(err))
			return err
		}
		logger.Debug("Completion sweep done", zap.String("trigger", p.Trigger), zap.Int64("completed", n))
		return nil
	}
}
