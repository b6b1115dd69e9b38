package models

import "strings"

type RepairLog struct {
	ID          string  `json:"id"`
	CarID       string  `json:"carId"`
	Date        Date    `json:"date"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Service     string  `json:"service,omitempty"`
}

type RepairLogInput struct {
	Date        Date    `json:"date"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
	Service     string  `json:"service,omitempty"`
}

func (r RepairLogInput) Validate() error {
	switch {
	case r.Date.IsZero():
		return invalid("date", "is required")
	case strings.TrimSpace(r.Description) == "":
		return invalid("description", "is required")
	case r.Cost < 0:
		return invalid("cost", "must not be negative")
	}
	return nil
}
