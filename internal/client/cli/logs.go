package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/stats"
)

func (a *App) Fuel(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}
	logs, err := a.fuelService.List(ctx, car.ID)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintf(a.out, "No fuel logs for %s.\n", car.Name)
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "DATE\tODOMETER\tLITERS\tPRICE\tTYPE\tSTATION\tID")
	for _, l := range logs {
		fmt.Fprintf(tw, "%s\t%.0f km\t%.2f\t%s\t%s\t%s\t%s\n",
			l.Date, l.Odometer, l.Liters, money(l.Price), orDash(l.FuelType), orDash(l.Station), l.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if c := stats.AverageConsumption(logs); c > 0 {
		fmt.Fprintf(a.out, "Average consumption: %.1f L/100km\n", c)
	}
	return nil
}

func (a *App) AddFuel(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}

	var in models.FuelLogInput
	if in.Date, err = a.askDate("Date", "date"); err != nil {
		return err
	}
	if in.Odometer, err = a.askFloat("Odometer (km)", "odometer", 0); err != nil {
		return err
	}
	if in.Liters, err = a.askFloat("Liters", "liters", 0); err != nil {
		return err
	}
	if in.Price, err = a.askFloat("Total price (RON)", "price", 0); err != nil {
		return err
	}
	if in.Station, err = a.ask("Station (optional)"); err != nil {
		return err
	}
	fuelType, err := a.ask(fmt.Sprintf("Fuel type (%s; empty for %s)",
		strings.Join([]string{models.FuelPetrol, models.FuelDiesel, models.FuelLPG, models.FuelElectric, models.FuelHybrid}, ", "),
		models.DefaultFuelType))
	if err != nil {
		return err
	}
	in.FuelType = strings.ToLower(fuelType)

	l, err := a.fuelService.Create(ctx, car.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded %.2f L for %s (%s).\n", l.Liters, car.Name, l.ID)
	return nil
}

func (a *App) DelFuel(ctx context.Context, args []string) error {

	id, err := a.argOrAsk(args, "Fuel log id", "id")
	if err != nil {
		return err
	}
	if err := a.fuelService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Fuel log deleted.")
	return nil
}

func (a *App) Repairs(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}
	logs, err := a.repairService.List(ctx, car.ID)
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		fmt.Fprintf(a.out, "No repairs for %s.\n", car.Name)
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "DATE\tDESCRIPTION\tCATEGORY\tCOST\tSERVICE\tID")
	for _, r := range logs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date, r.Description, stats.Categorize(r.Description), money(r.Cost), orDash(r.Service), r.ID)
	}
	return tw.Flush()
}

func (a *App) AddRepair(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}

	var in models.RepairLogInput
	if in.Date, err = a.askDate("Date", "date"); err != nil {
		return err
	}
	if in.Description, err = a.askRequired("Description", "description"); err != nil {
		return err
	}
	if in.Cost, err = a.askFloat("Cost (RON)", "cost", 0); err != nil {
		return err
	}
	if in.Service, err = a.ask("Service (optional)"); err != nil {
		return err
	}

	r, err := a.repairService.Create(ctx, car.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded repair for %s (%s).\n", car.Name, r.ID)
	return nil
}

func (a *App) DelRepair(ctx context.Context, args []string) error {

	id, err := a.argOrAsk(args, "Repair id", "id")
	if err != nil {
		return err
	}
	if err := a.repairService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Repair deleted.")
	return nil
}
