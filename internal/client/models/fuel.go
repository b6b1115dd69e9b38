package models

// FuelType values used by the web client.
const (
	FuelPetrol   = "benzina"
	FuelDiesel   = "motorina"
	FuelLPG      = "gpl"
	FuelElectric = "electric"
	FuelHybrid   = "hibrid"
)

// DefaultFuelType is assumed for logs that do not name one.
const DefaultFuelType = FuelPetrol

type FuelLog struct {
	ID       string  `json:"id"`
	CarID    string  `json:"carId"`
	UserID   string  `json:"userId"`
	Date     Date    `json:"date"`
	Odometer float64 `json:"odometer"`
	Liters   float64 `json:"liters"`
	Price    float64 `json:"price"`
	Station  string  `json:"station,omitempty"`
	FuelType string  `json:"fuelType,omitempty"`
}

// FuelLogInput is the body for recording a fill-up. Price is the total paid.
type FuelLogInput struct {
	Date     Date    `json:"date"`
	Odometer float64 `json:"odometer"`
	Liters   float64 `json:"liters"`
	Price    float64 `json:"price"`
	Station  string  `json:"station,omitempty"`
	FuelType string  `json:"fuelType,omitempty"`
}

func (f FuelLogInput) Validate() error {
	switch {
	case f.Date.IsZero():
		return invalid("date", "is required")
	case f.Odometer < 0:
		return invalid("odometer", "must not be negative")
	case f.Liters < 0.1:
		return invalid("liters", "must be at least 0.1")
	case f.Price < 0.1:
		return invalid("price", "must be at least 0.1")
	}
	return nil
}
