package stats

import (
	"sort"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
)

type CarFuelTotals struct {
	CarID   string
	CarName string
	Count   int
	Liters  float64
	Spent   float64
}

type FuelSummary struct {
	Count            int
	TotalSpent       float64
	TotalLiters      float64
	AvgPricePerLiter float64
	// AvgConsumption is litres per 100 km; 0 when it cannot be computed.
	AvgConsumption   float64
	ThisMonthSpent   float64
	ThisMonthLiters  float64
	LastMonthSpent   float64
	SpendingTrend    float64
	MostUsedFuelType string
	// CostPer100Km is 0 when AvgConsumption is.
	CostPer100Km float64
	PerCar       []CarFuelTotals
}

func Fuel(logs []models.FuelLog, cars []models.Car, now time.Time) FuelSummary {

	s := FuelSummary{Count: len(logs)}

	cur := monthOf(now, now.Location())
	last := cur.prev()

	for _, l := range logs {
		s.TotalSpent += l.Price
		s.TotalLiters += l.Liters

		switch monthOf(l.Date.Time, now.Location()) {
		case cur:
			s.ThisMonthSpent += l.Price
			s.ThisMonthLiters += l.Liters
		case last:
			s.LastMonthSpent += l.Price
		}
	}

	if s.TotalLiters > 0 {
		s.AvgPricePerLiter = s.TotalSpent / s.TotalLiters
	}
	s.AvgConsumption = AverageConsumption(logs)
	s.CostPer100Km = s.AvgConsumption * s.AvgPricePerLiter
	s.SpendingTrend = trend(s.ThisMonthSpent, s.LastMonthSpent)
	s.MostUsedFuelType = mostUsedFuelType(logs)

	for _, car := range cars {
		t := CarFuelTotals{CarID: car.ID, CarName: car.Name}
		for _, l := range logs {
			if l.CarID == car.ID {
				t.Count++
				t.Liters += l.Liters
				t.Spent += l.Price
			}
		}
		s.PerCar = append(s.PerCar, t)
	}
	return s
}

// AverageConsumption sorts the logs by date and averages liters/distance*100
// over consecutive pairs with a positive distance. Fewer than two logs, or no
// usable pair, yield 0.
func AverageConsumption(logs []models.FuelLog) float64 {

	if len(logs) < 2 {
		return 0
	}

	sorted := append([]models.FuelLog(nil), logs...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date.Time) })

	var sum float64
	var n int
	for i := 1; i < len(sorted); i++ {
		distance := sorted[i].Odometer - sorted[i-1].Odometer
		if distance > 0 {
			sum += sorted[i].Liters / distance * 100
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// mostUsedFuelType counts logs per type, treating an empty type as the
// default. On a tie the type seen last wins.
func mostUsedFuelType(logs []models.FuelLog) string {

	counts := map[string]int{}
	var order []string
	for _, l := range logs {
		t := l.FuelType
		if t == "" {
			t = models.DefaultFuelType
		}
		if _, seen := counts[t]; !seen {
			order = append(order, t)
		}
		counts[t]++
	}

	best := models.DefaultFuelType
	bestCount := 0
	for _, t := range order {
		if counts[t] >= bestCount {
			best, bestCount = t, counts[t]
		}
	}
	return best
}
