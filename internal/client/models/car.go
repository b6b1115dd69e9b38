package models

import (
	"strings"
	"time"
)

const (
	MinCarYear = 1900
	MaxCarYear = 2030
)

type Car struct {
	ID          string      `json:"id"`
	UserID      string      `json:"userId"`
	Name        string      `json:"name"`
	Model       string      `json:"model"`
	Year        int         `json:"year"`
	NumberPlate string      `json:"numberPlate"`
	VIN         string      `json:"vin,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	FuelLogs    []FuelLog   `json:"fuelLogs,omitempty"`
	RepairLogs  []RepairLog `json:"repairLogs,omitempty"`
	Reminders   []Reminder  `json:"reminders,omitempty"`
}

// CarInput is the body for creating or replacing a car.
type CarInput struct {
	Name        string `json:"name"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	NumberPlate string `json:"numberPlate"`
	VIN         string `json:"vin,omitempty"`
}

func (c CarInput) Validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return invalid("name", "is required")
	case strings.TrimSpace(c.Model) == "":
		return invalid("model", "is required")
	case c.Year < MinCarYear || c.Year > MaxCarYear:
		return invalid("year", "must be between 1900 and 2030")
	case strings.TrimSpace(c.NumberPlate) == "":
		return invalid("numberPlate", "is required")
	}
	return nil
}
