package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/carlog/internal/client/models"
)

// Repair categories, matched against the description in this order.
const (
	CategoryOil        = "Oil change"
	CategoryBrakes     = "Brakes"
	CategoryEngine     = "Engine"
	CategoryTyres      = "Tyres"
	CategoryElectrical = "Electrical"
	CategoryService    = "Service"
	CategoryOther      = "Other"
)

var categoryKeywords = []struct {
	name     string
	keywords []string
}{
	{CategoryOil, []string{"ulei"}},
	{CategoryBrakes, []string{"frane", "placute"}},
	{CategoryEngine, []string{"motor"}},
	{CategoryTyres, []string{"anvelope", "roti"}},
	{CategoryElectrical, []string{"baterie", "electric"}},
	{CategoryService, []string{"revizie"}},
}

// Categorize maps a repair description to a category by keyword.
func Categorize(description string) string {
	desc := strings.ToLower(description)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(desc, kw) {
				return c.name
			}
		}
	}
	return CategoryOther
}

type CategoryTotal struct {
	Name string
	Cost float64
	// Share is the percentage of the overall repair spend.
	Share float64
}

type CarRepairTotals struct {
	CarID       string
	CarName     string
	Count       int
	Spent       float64
	AverageCost float64
}

type RepairSummary struct {
	Count          int
	TotalSpent     float64
	AverageCost    float64
	ThisMonthSpent float64
	LastMonthSpent float64
	SpendingTrend  float64
	// MostExpensive is nil when there are no repairs.
	MostExpensive *models.RepairLog
	// Categories is sorted by cost, highest first.
	Categories            []CategoryTotal
	MostExpensiveCategory string
	Year                  int
	YearCount             int
	YearSpent             float64
	AvgMonthlySpent       float64
	PerCar                []CarRepairTotals
}

func Repairs(logs []models.RepairLog, cars []models.Car, now time.Time) RepairSummary {

	loc := now.Location()
	s := RepairSummary{Count: len(logs), Year: now.Year()}

	cur := monthOf(now, loc)
	last := cur.prev()

	months := map[month]struct{}{}
	catCost := map[string]float64{}
	var catOrder []string

	for i, l := range logs {
		s.TotalSpent += l.Cost

		m := monthOf(l.Date.Time, loc)
		months[m] = struct{}{}
		switch m {
		case cur:
			s.ThisMonthSpent += l.Cost
		case last:
			s.LastMonthSpent += l.Cost
		}
		if m.year == s.Year {
			s.YearCount++
			s.YearSpent += l.Cost
		}

		if s.MostExpensive == nil || l.Cost > s.MostExpensive.Cost {
			s.MostExpensive = &logs[i]
		}

		c := Categorize(l.Description)
		if _, seen := catCost[c]; !seen {
			catOrder = append(catOrder, c)
		}
		catCost[c] += l.Cost
	}

	if s.Count > 0 {
		s.AverageCost = s.TotalSpent / float64(s.Count)
	}
	if len(months) > 0 {
		s.AvgMonthlySpent = s.TotalSpent / float64(len(months))
	}
	s.SpendingTrend = trend(s.ThisMonthSpent, s.LastMonthSpent)

	best := -1.0
	for _, name := range catOrder {
		ct := CategoryTotal{Name: name, Cost: catCost[name]}
		if s.TotalSpent > 0 {
			ct.Share = ct.Cost / s.TotalSpent * 100
		}
		s.Categories = append(s.Categories, ct)
		// later categories win ties
		if ct.Cost >= best {
			best = ct.Cost
			s.MostExpensiveCategory = name
		}
	}
	sort.SliceStable(s.Categories, func(i, j int) bool { return s.Categories[i].Cost > s.Categories[j].Cost })

	for _, car := range cars {
		t := CarRepairTotals{CarID: car.ID, CarName: car.Name}
		for _, l := range logs {
			if l.CarID == car.ID {
				t.Count++
				t.Spent += l.Cost
			}
		}
		if t.Count > 0 {
			t.AverageCost = t.Spent / float64(t.Count)
		}
		s.PerCar = append(s.PerCar, t)
	}
	return s
}
