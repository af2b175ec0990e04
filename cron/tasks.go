package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentorsetu/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSessionReminder = "session:reminder"
	TypeCompleteSweep   = "session:complete-sweep"
)

// reminderLead is how long before the session slot the reminder fires.
const reminderLead = time.Hour

// SessionReminderPayload carries what the reminder needs to announce.
type SessionReminderPayload struct {
	BookingID   string `json:"bookingId"`
	MentorName  string `json:"mentorName"`
	StudentName string `json:"studentName"`
	StudentMail string `json:"studentEmail"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// NewSessionReminderTask builds a reminder task scheduled at fireAt.
func NewSessionReminderTask(payload SessionReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderQueue enqueues session reminders onto the task queue. It
// implements booking.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue creates a queue producer on the given Redis options.
func NewReminderQueue(opt asynq.RedisClientOpt) *ReminderQueue {
	return &ReminderQueue{client: asynq.NewClient(opt)}
}

// ScheduleSessionReminder enqueues a reminder one hour before the session
// slot. Slots already closer than the lead time get no reminder.
func (q *ReminderQueue) ScheduleSessionReminder(ctx context.Context, b models.BookingSession) error {
	slot, err := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.Time, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable session slot %q %q: %w", b.Date, b.Time, err)
	}

	fireAt := slot.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload := SessionReminderPayload{
		BookingID:   b.ID,
		MentorName:  b.MentorName,
		StudentName: b.StudentName,
		StudentMail: b.StudentMail,
		Date:        b.Date,
		Time:        b.Time,
	}
	task, opts, err := NewSessionReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := q.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue session reminder: %w", err)
	}
	return nil
}

// Close releases the queue connection.
func (q *ReminderQueue) Close() error {
	return q.client.Close()
}
