package stats

import (
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
)

// UrgentDays is how close a due date must be for a reminder to be urgent.
const UrgentDays = 7

type ReminderStatus string

const (
	StatusOverdue  ReminderStatus = "overdue"
	StatusUrgent   ReminderStatus = "urgent"
	StatusNotified ReminderStatus = "notified"
	StatusActive   ReminderStatus = "active"
)

type ReminderSummary struct {
	Total    int
	Overdue  int
	Urgent   int
	Notified int
}

// DaysUntil counts whole days from now to due, truncated toward zero.
func DaysUntil(due models.Date, now time.Time) int {
	return int(due.Sub(now) / (24 * time.Hour))
}

func isOverdue(r models.Reminder, now time.Time) bool {
	return r.DueDate.Before(now)
}

func isUrgent(r models.Reminder, now time.Time) bool {
	d := DaysUntil(r.DueDate, now)
	return d >= 0 && d <= UrgentDays
}

// Status picks the single label shown next to a reminder.
func Status(r models.Reminder, now time.Time) ReminderStatus {
	switch {
	case isOverdue(r, now):
		return StatusOverdue
	case isUrgent(r, now):
		return StatusUrgent
	case r.Notified:
		return StatusNotified
	}
	return StatusActive
}

// Reminders counts reminders per condition. The counts overlap: a reminder
// due earlier today is both overdue and urgent.
func Reminders(list []models.Reminder, now time.Time) ReminderSummary {

	s := ReminderSummary{Total: len(list)}
	for _, r := range list {
		if isOverdue(r, now) {
			s.Overdue++
		}
		if isUrgent(r, now) {
			s.Urgent++
		}
		if r.Notified {
			s.Notified++
		}
	}
	return s
}
