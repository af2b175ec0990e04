package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"mentorsetu/config"
	"mentorsetu/services/booking"
	"mentorsetu/utils"

	"github.com/hibiken/asynq"
)

// InitSessionWorker runs the async worker and sweep scheduler in background.
func InitSessionWorker(bookingSvc booking.BookingSessionService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(TypeSessionReminder, handleSessionReminder)
	mux.HandleFunc(TypeCompleteSweep, handleCompleteSweep(bookingSvc))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Periodically sweep past sessions into the completed state.
	go func() {
		scheduler := asynq.NewScheduler(redisOpts, nil)
		if _, err := scheduler.Register("@every 10m", asynq.NewTask(TypeCompleteSweep, nil)); err != nil {
			log.Printf("[SessionWorker] Failed to register sweep task: %v", err)
			return
		}
		if err := scheduler.Run(); err != nil {
			log.Printf("[SessionWorker] Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[SessionWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[SessionWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[SessionWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSessionReminder(ctx context.Context, task *asynq.Task) error {
	var p SessionReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[SessionReminder] Invalid payload: %v", err)
		return err
	}

	// Delivery channel TBD; for now the reminder is recorded in the log.
	log.Printf("[SessionReminder] Session %s: %s with %s at %s %s (notify %s)",
		p.BookingID, p.StudentName, p.MentorName, p.Date, p.Time, p.StudentMail)
	return nil
}

func handleCompleteSweep(bookingSvc booking.BookingSessionService) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		n, err := bookingSvc.CompletePastSessions(ctx, time.Now())
		if err != nil {
			log.Printf("[CompleteSweep] Sweep failed: %v", err)
			return err
		}
		if n > 0 {
			log.Printf("[CompleteSweep] Marked %d session(s) completed", n)
		}
		return nil
	}
}

// monitorRedisConnection pings the queue Redis periodically to detect
// failures at runtime.
func monitorRedisConnection() {
	client := utils.GetQueueClient()
	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[SessionWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
