package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"spotbook/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask builds an asynq task for an upcoming-booking reminder
// scheduled at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderClient enqueues booking reminders on the Redis-backed queue.
type ReminderClient struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderClient returns a client that schedules reminders lead ahead of
// each booking's start.
func NewReminderClient(opt asynq.RedisClientOpt, lead time.Duration) *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(opt),
		lead:   lead,
	}
}

// ScheduleBookingReminder enqueues a reminder for the booking. Bookings
// starting sooner than the lead time get their reminder processed
// immediately; asynq treats past ProcessAt instants as due now.
func (c *ReminderClient) ScheduleBookingReminder(b *models.Booking, spotName string) error {
	payload := models.ReminderPayload{
		BookingID: b.ID,
		UserID:    b.UserID,
		SpotName:  spotName,
		StartDate: b.StartDate,
	}
	task, opts, err := NewReminderTask(payload, b.StartDate.Add(-c.lead))
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := c.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (c *ReminderClient) Close() error {
	return c.client.Close()
}
