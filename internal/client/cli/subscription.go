package cli

import (
	"context"
	"fmt"
)

func (a *App) Plans(_ context.Context, _ []string) error {

	current := ""
	if a.user != nil {
		current = a.user.PlanID
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "PLAN\tPRICE\t")
	for _, p := range a.subscriptionService.Plans() {
		mark := ""
		if p.ID == current {
			mark = "(current)"
		}
		fmt.Fprintf(tw, "%s\t%.0f RON/month\t%s\n", p.Name, p.Price, mark)
	}
	return tw.Flush()
}

// Upgrade creates a checkout session and prints the payment link.
func (a *App) Upgrade(ctx context.Context, args []string) error {

	planID, err := a.argOrAsk(args, "Plan (PRO or FLEET)", "plan")
	if err != nil {
		return err
	}
	url, err := a.subscriptionService.CreateCheckoutSession(ctx, planID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Open this link to complete the upgrade:")
	fmt.Fprintln(a.out, url)
	return nil
}
