package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/stats"
)

// Stats prints fuel, repair, and reminder figures over every car.
func (a *App) Stats(ctx context.Context, _ []string) error {

	cars, err := a.carService.List(ctx)
	if err != nil {
		return err
	}

	var (
		fuel      []models.FuelLog
		repairs   []models.RepairLog
		reminders []models.Reminder
	)
	for _, c := range cars {
		f, err := a.fuelService.List(ctx, c.ID)
		if err != nil {
			return err
		}
		r, err := a.repairService.List(ctx, c.ID)
		if err != nil {
			return err
		}
		rem, err := a.reminderService.List(ctx, c.ID)
		if err != nil {
			return err
		}
		fuel = append(fuel, f...)
		repairs = append(repairs, r...)
		reminders = append(reminders, rem...)
	}

	now := a.now()
	a.printFuelStats(stats.Fuel(fuel, cars, now))
	a.printRepairStats(stats.Repairs(repairs, cars, now))
	a.printReminderStats(stats.Reminders(reminders, now))
	return nil
}

func (a *App) printFuelStats(s stats.FuelSummary) {

	fmt.Fprintf(a.out, "Fuel (%d fill-ups)\n", s.Count)
	tw := newTable(a.out)
	fmt.Fprintf(tw, "  Total spent:\t%s\n", money(s.TotalSpent))
	fmt.Fprintf(tw, "  Total liters:\t%.1f L\n", s.TotalLiters)
	fmt.Fprintf(tw, "  Avg price/L:\t%s\n", money(s.AvgPricePerLiter))
	if s.AvgConsumption > 0 {
		fmt.Fprintf(tw, "  Avg consumption:\t%.1f L/100km\n", s.AvgConsumption)
		fmt.Fprintf(tw, "  Cost per 100km:\t%s\n", money(s.CostPer100Km))
	} else {
		fmt.Fprintf(tw, "  Avg consumption:\tN/A (needs at least 2 fill-ups)\n")
	}
	fmt.Fprintf(tw, "  This month:\t%s (%.1f L), %s\n", money(s.ThisMonthSpent), s.ThisMonthLiters, trendLabel(s.SpendingTrend))
	fmt.Fprintf(tw, "  Most used fuel:\t%s\n", s.MostUsedFuelType)
	for _, c := range s.PerCar {
		fmt.Fprintf(tw, "  %s:\t%d fill-ups, %.1f L, %s\n", c.CarName, c.Count, c.Liters, money(c.Spent))
	}
	_ = tw.Flush()
}

func (a *App) printRepairStats(s stats.RepairSummary) {

	fmt.Fprintf(a.out, "Repairs (%d)\n", s.Count)
	tw := newTable(a.out)
	fmt.Fprintf(tw, "  Total spent:\t%s\n", money(s.TotalSpent))
	fmt.Fprintf(tw, "  Average cost:\t%s\n", money(s.AverageCost))
	fmt.Fprintf(tw, "  This month:\t%s, %s\n", money(s.ThisMonthSpent), trendLabel(s.SpendingTrend))
	fmt.Fprintf(tw, "  In %d:\t%d repairs, %s\n", s.Year, s.YearCount, money(s.YearSpent))
	fmt.Fprintf(tw, "  Avg per month:\t%s\n", money(s.AvgMonthlySpent))
	if s.MostExpensive != nil && s.MostExpensive.Cost > 0 {
		fmt.Fprintf(tw, "  Most expensive:\t%s, %s on %s\n", s.MostExpensive.Description, money(s.MostExpensive.Cost), s.MostExpensive.Date)
	}
	for i, c := range s.Categories {
		if i == 5 {
			break
		}
		fmt.Fprintf(tw, "  %s:\t%s (%.1f%%)\n", c.Name, money(c.Cost), c.Share)
	}
	for _, c := range s.PerCar {
		fmt.Fprintf(tw, "  %s:\t%d repairs, %s, avg %s\n", c.CarName, c.Count, money(c.Spent), money(c.AverageCost))
	}
	_ = tw.Flush()
}

func (a *App) printReminderStats(s stats.ReminderSummary) {
	fmt.Fprintf(a.out, "Reminders: %d total, %d overdue, %d due within %d days, %d notified\n",
		s.Total, s.Overdue, s.Urgent, stats.UrgentDays, s.Notified)
}
