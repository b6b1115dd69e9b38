package apitest

import (
	"net/http"
	"sort"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ownedCarLocked returns the car if it belongs to the caller. Callers hold s.mu.
func (s *Server) ownedCarLocked(c *gin.Context, carID string) (*models.Car, bool) {
	car, found := s.cars[carID]
	if !found || car.UserID != c.GetString(userIDKey) {
		fail(c, http.StatusNotFound, "Car not found")
		return nil, false
	}
	return car, true
}

func (s *Server) dropCarLocked(carID string) {
	delete(s.cars, carID)
	for id, f := range s.fuel {
		if f.CarID == carID {
			delete(s.fuel, id)
		}
	}
	for id, r := range s.repairs {
		if r.CarID == carID {
			delete(s.repairs, id)
		}
	}
	for id, r := range s.reminders {
		if r.CarID == carID {
			delete(s.reminders, id)
		}
	}
}

func (s *Server) listCars(c *gin.Context) {

	userID := c.GetString(userIDKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	cars := []models.Car{}
	for _, car := range s.cars {
		if car.UserID == userID {
			cars = append(cars, *car)
		}
	}
	sort.Slice(cars, func(i, j int) bool { return cars[i].CreatedAt.After(cars[j].CreatedAt) })
	ok(c, http.StatusOK, cars)
}

func (s *Server) createCar(c *gin.Context) {

	var in models.CarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	car := &models.Car{
		ID:          uuid.NewString(),
		UserID:      c.GetString(userIDKey),
		Name:        in.Name,
		Model:       in.Model,
		Year:        in.Year,
		NumberPlate: in.NumberPlate,
		VIN:         in.VIN,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.cars[car.ID] = car
	s.mu.Unlock()

	ok(c, http.StatusCreated, *car)
}

func (s *Server) updateCar(c *gin.Context) {

	var in models.CarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("id"))
	if !found {
		return
	}
	car.Name, car.Model, car.Year, car.NumberPlate, car.VIN = in.Name, in.Model, in.Year, in.NumberPlate, in.VIN
	ok(c, http.StatusOK, *car)
}

func (s *Server) deleteCar(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.ownedCarLocked(c, c.Param("id")); !found {
		return
	}
	s.dropCarLocked(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (s *Server) listFuel(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	logs := []models.FuelLog{}
	for _, f := range s.fuel {
		if f.CarID == car.ID {
			logs = append(logs, *f)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date.Time) })
	ok(c, http.StatusOK, logs)
}

func (s *Server) createFuel(c *gin.Context) {

	var in models.FuelLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	if in.FuelType == "" {
		in.FuelType = models.DefaultFuelType
	}
	f := &models.FuelLog{
		ID:       uuid.NewString(),
		CarID:    car.ID,
		UserID:   car.UserID,
		Date:     in.Date,
		Odometer: in.Odometer,
		Liters:   in.Liters,
		Price:    in.Price,
		Station:  in.Station,
		FuelType: in.FuelType,
	}
	s.fuel[f.ID] = f
	ok(c, http.StatusCreated, *f)
}

func (s *Server) deleteFuel(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	f, found := s.fuel[c.Param("id")]
	if !found || f.UserID != c.GetString(userIDKey) {
		fail(c, http.StatusNotFound, "Fuel log not found")
		return
	}
	delete(s.fuel, f.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Fuel log deleted"})
}

func (s *Server) listRepairs(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	logs := []models.RepairLog{}
	for _, r := range s.repairs {
		if r.CarID == car.ID {
			logs = append(logs, *r)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date.After(logs[j].Date.Time) })
	ok(c, http.StatusOK, logs)
}

func (s *Server) createRepair(c *gin.Context) {

	var in models.RepairLogInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	r := &models.RepairLog{
		ID:          uuid.NewString(),
		CarID:       car.ID,
		Date:        in.Date,
		Description: in.Description,
		Cost:        in.Cost,
		Service:     in.Service,
	}
	s.repairs[r.ID] = r
	ok(c, http.StatusCreated, *r)
}

func (s *Server) deleteRepair(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.repairs[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "Repair log not found")
		return
	}
	if _, owned := s.ownedCarLocked(c, r.CarID); !owned {
		return
	}
	delete(s.repairs, r.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Repair log deleted"})
}

func (s *Server) listReminders(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	list := []models.Reminder{}
	for _, r := range s.reminders {
		if r.CarID == car.ID {
			list = append(list, *r)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].DueDate.Before(list[j].DueDate.Time) })
	ok(c, http.StatusOK, list)
}

func (s *Server) createReminder(c *gin.Context) {

	var in models.ReminderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	in = in.WithDefaults()
	if err := in.Validate(); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	car, found := s.ownedCarLocked(c, c.Param("carId"))
	if !found {
		return
	}
	r := &models.Reminder{
		ID:         uuid.NewString(),
		CarID:      car.ID,
		Type:       in.Type,
		DueDate:    in.DueDate,
		RepeatDays: in.RepeatDays,
	}
	s.reminders[r.ID] = r
	ok(c, http.StatusCreated, *r)
}

func (s *Server) updateReminder(c *gin.Context) {

	var in models.ReminderUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.reminders[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "Reminder not found")
		return
	}
	if _, owned := s.ownedCarLocked(c, r.CarID); !owned {
		return
	}
	if in.Type != nil {
		r.Type = *in.Type
	}
	if in.DueDate != nil {
		r.DueDate = *in.DueDate
	}
	if in.RepeatDays != nil {
		r.RepeatDays = *in.RepeatDays
	}
	if in.Notified != nil {
		r.Notified = *in.Notified
	}
	ok(c, http.StatusOK, *r)
}

func (s *Server) deleteReminder(c *gin.Context) {

	s.mu.Lock()
	defer s.mu.Unlock()

	r, found := s.reminders[c.Param("id")]
	if !found {
		fail(c, http.StatusNotFound, "Reminder not found")
		return
	}
	if _, owned := s.ownedCarLocked(c, r.CarID); !owned {
		return
	}
	delete(s.reminders, r.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted"})
}
