package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"tallerlink/config"
	ticketRepo "tallerlink/database/repository/ticket"
	"tallerlink/models"
	"tallerlink/services/notification"
	"tallerlink/services/tasks"

	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc))

	// Start async worker with retry logic.
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}
		return notifSvc.SendReminder(ctx, p)
	}
}

// InitTicketJanitor cancels pending tickets whose appointment date has
// passed without confirmation. Runs daily.
func InitTicketJanitor(repo ticketRepo.TicketRepository) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			today := time.Now().Truncate(24 * time.Hour)
			n, err := repo.ExpirePendingBefore(ctx, today)
			cancel()
			if err != nil {
				log.Printf("[TicketJanitor] failed to expire pending tickets: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("[TicketJanitor] cancelled %d stale pending tickets", n)
			}
		}
	}()
}
