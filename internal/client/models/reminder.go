package models

import (
	"fmt"
	"strings"
)

type ReminderType string

const (
	// ReminderITP is the periodic technical inspection.
	ReminderITP ReminderType = "ITP"
	// ReminderRCA is the mandatory liability insurance.
	ReminderRCA ReminderType = "RCA"
	// ReminderOil is an oil change.
	ReminderOil ReminderType = "ULEI"
	// ReminderService is a scheduled service.
	ReminderService ReminderType = "REVIZIE"
)

var ReminderTypes = []ReminderType{ReminderITP, ReminderRCA, ReminderOil, ReminderService}

const MaxRepeatDays = 365

// DefaultRepeatDays is the usual interval for a reminder type, or 0.
func (t ReminderType) DefaultRepeatDays() int {
	switch t {
	case ReminderITP, ReminderRCA, ReminderService:
		return 365
	case ReminderOil:
		return 180
	}
	return 0
}

func ParseReminderType(s string) (ReminderType, error) {
	t := ReminderType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range ReminderTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown reminder type %q", ErrValidation, s)
}

type Reminder struct {
	ID         string       `json:"id"`
	CarID      string       `json:"carId"`
	Type       ReminderType `json:"type"`
	DueDate    Date         `json:"dueDate"`
	RepeatDays int          `json:"repeatDays,omitempty"`
	Notified   bool         `json:"notified"`
}

type ReminderInput struct {
	Type       ReminderType `json:"type"`
	DueDate    Date         `json:"dueDate"`
	RepeatDays int          `json:"repeatDays,omitempty"`
}

// WithDefaults fills RepeatDays from the type when it is unset.
func (r ReminderInput) WithDefaults() ReminderInput {
	if r.RepeatDays == 0 {
		r.RepeatDays = r.Type.DefaultRepeatDays()
	}
	return r
}

func (r ReminderInput) Validate() error {
	if _, err := ParseReminderType(string(r.Type)); err != nil {
		return err
	}
	if r.DueDate.IsZero() {
		return invalid("dueDate", "is required")
	}
	if r.RepeatDays < 0 || r.RepeatDays > MaxRepeatDays {
		return invalid("repeatDays", "must be between 1 and 365")
	}
	return nil
}

// ReminderUpdate carries the fields to change; nil fields are left as they are.
type ReminderUpdate struct {
	Type       *ReminderType `json:"type,omitempty"`
	DueDate    *Date         `json:"dueDate,omitempty"`
	RepeatDays *int          `json:"repeatDays,omitempty"`
	Notified   *bool         `json:"notified,omitempty"`
}
