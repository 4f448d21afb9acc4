package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"spotbook/config"
	bookingRepo "spotbook/database/repository/booking"
	"spotbook/models"
	"spotbook/services/tasks"
	"spotbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(repo bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(repo))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask emits the reminder unless the booking was cancelled in
// the meantime. Cancellation never dequeues; the worker re-checks existence
// at fire time instead.
func handleReminderTask(repo bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		b, err := repo.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] failed to fetch booking %s: %v", p.BookingID, err)
			return err
		}
		if b == nil {
			// Booking was cancelled after the reminder was enqueued.
			return nil
		}

		utils.GetLogger().Info("upcoming booking reminder",
			zap.String("bookingID", b.ID),
			zap.String("userID", p.UserID),
			zap.String("spotName", p.SpotName),
			zap.Time("startDate", b.StartDate),
		)
		return nil
	}
}
