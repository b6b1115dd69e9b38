package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carlog/internal/client/models"
	"github.com/dmitrijs2005/carlog/internal/client/stats"
)

func (a *App) Reminders(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}
	list, err := a.reminderService.List(ctx, car.ID)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintf(a.out, "No reminders for %s.\n", car.Name)
		return nil
	}

	now := a.now()
	tw := newTable(a.out)
	fmt.Fprintln(tw, "TYPE\tDUE\tDAYS\tREPEAT\tSTATUS\tID")
	for _, r := range list {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d d\t%s\t%s\n",
			r.Type, r.DueDate, stats.DaysUntil(r.DueDate, now), r.RepeatDays, stats.Status(r, now), r.ID)
	}
	return tw.Flush()
}

func (a *App) AddReminder(ctx context.Context, args []string) error {

	car, err := a.resolveCar(ctx, args)
	if err != nil {
		return err
	}

	typ, err := a.askRequired("Type (ITP, RCA, ULEI, REVIZIE)", "type")
	if err != nil {
		return err
	}
	rt, err := models.ParseReminderType(typ)
	if err != nil {
		return err
	}

	in := models.ReminderInput{Type: rt}
	if in.DueDate, err = a.askDate("Due date", "dueDate"); err != nil {
		return err
	}
	prompt := fmt.Sprintf("Repeat every N days (empty for %d)", rt.DefaultRepeatDays())
	if in.RepeatDays, err = a.askInt(prompt, "repeatDays", 0); err != nil {
		return err
	}

	r, err := a.reminderService.Create(ctx, car.ID, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s reminder set for %s (%s).\n", r.Type, r.DueDate, r.ID)
	return nil
}

func (a *App) MarkNotified(ctx context.Context, args []string) error {

	id, err := a.argOrAsk(args, "Reminder id", "id")
	if err != nil {
		return err
	}
	notified := true
	if _, err := a.reminderService.Update(ctx, id, models.ReminderUpdate{Notified: &notified}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Reminder marked as notified.")
	return nil
}

func (a *App) DelReminder(ctx context.Context, args []string) error {

	id, err := a.argOrAsk(args, "Reminder id", "id")
	if err != nil {
		return err
	}
	if err := a.reminderService.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Reminder deleted.")
	return nil
}
