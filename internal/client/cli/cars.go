package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/carlog/internal/client/models"
)

func (a *App) Cars(ctx context.Context, _ []string) error {

	cars, err := a.carService.List(ctx)
	if err != nil {
		return err
	}
	if len(cars) == 0 {
		fmt.Fprintln(a.out, "No cars yet. Add one with 'addcar'.")
		return nil
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "#\tNAME\tMODEL\tYEAR\tPLATE\tID")
	for i, c := range cars {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", i+1, c.Name, c.Model, c.Year, c.NumberPlate, c.ID)
	}
	return tw.Flush()
}

func (a *App) AddCar(ctx context.Context, _ []string) error {

	var in models.CarInput
	var err error

	if in.Name, err = a.askRequired("Name (e.g. Family car)", "name"); err != nil {
		return err
	}
	if in.Model, err = a.askRequired("Make and model", "model"); err != nil {
		return err
	}
	if in.Year, err = a.askInt("Year", "year", 0); err != nil {
		return err
	}
	if in.NumberPlate, err = a.askRequired("Number plate", "numberPlate"); err != nil {
		return err
	}
	if in.VIN, err = a.ask("VIN (optional)"); err != nil {
		return err
	}

	car, err := a.carService.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s).\n", car.Name, car.ID)
	return nil
}

func (a *App) DelCar(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}
	ok, err := a.confirm(fmt.Sprintf("Delete %s and all its logs?", car.Name))
	if err != nil || !ok {
		return err
	}
	if err := a.carService.Delete(ctx, car.ID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s.\n", car.Name)
	return nil
}

// resolveCar finds the car named by args[0], or asks for one. A car can be
// given by its position in the 'cars' list, its plate, or its id. With a
// single car and no argument that car is used.
func (a *App) resolveCar(ctx context.Context, args []string) (*models.Car, error) {

	cars, err := a.carService.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(cars) == 0 {
		return nil, fmt.Errorf("%w: add a car first", models.ErrValidation)
	}
	if len(args) == 0 && len(cars) == 1 {
		return &cars[0], nil
	}

	ref, err := a.argOrAsk(args, "Car (number from 'cars', plate, or id)", "car")
	if err != nil {
		return nil, err
	}
	return matchCar(cars, ref)
}

func matchCar(cars []models.Car, ref string) (*models.Car, error) {
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(cars) {
		return &cars[n-1], nil
	}
	for i := range cars {
		if cars[i].ID == ref || strings.EqualFold(cars[i].NumberPlate, ref) {
			return &cars[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no car %q", models.ErrValidation, ref)
}
