package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"akshara/config"
	"akshara/models"
	"akshara/services/webhook"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// reminderLeadTime is how far ahead of the appointment the reminder fires.
const reminderLeadTime = 24 * time.Hour

// ReminderPayload is the queued task body for a booking reminder.
type ReminderPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	StaffID string `json:"staffId,omitempty"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// reminderDispatch is the JSON body posted to the automation webhook when a
// reminder fires.
type reminderDispatch struct {
	ReminderPayload
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}

// ReminderScheduler enqueues booking reminders on the asynq queue.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler builds a scheduler backed by the reminder queue Redis DB.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderDB,
		}),
	}
}

// ScheduleBookingReminder queues a reminder ahead of the appointment. If the
// appointment is closer than the lead time (or in the past, which the widget
// allows), the reminder is queued for immediate processing.
func (s *ReminderScheduler) ScheduleBookingReminder(sub models.BookingSubmission) error {
	payload, err := json.Marshal(ReminderPayload{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		StaffID: sub.StaffID,
		Date:    sub.Date,
		Time:    sub.Time,
	})
	if err != nil {
		return err
	}

	task := asynq.NewTask(TypeBookingReminder, payload)

	appointment, err := time.ParseInLocation("2006-01-02 15:04", sub.Date+" "+sub.Time, time.Local)
	if err != nil {
		_, err = s.client.Enqueue(task)
		return err
	}

	fireAt := appointment.Add(-reminderLeadTime)
	if fireAt.Before(time.Now()) {
		_, err = s.client.Enqueue(task)
		return err
	}
	_, err = s.client.Enqueue(task, asynq.ProcessAt(fireAt))
	return err
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(dispatcher webhook.Dispatcher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(TypeBookingReminder, handleBookingReminder(dispatcher))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleBookingReminder(dispatcher webhook.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] Triggering reminder for %s → %s at %s", p.Email, p.Date, p.Time)

		dispatcher.Dispatch(ctx, reminderDispatch{
			ReminderPayload: p,
			Timestamp:       time.Now().UTC(),
			Source:          "booking_reminder",
		})
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
