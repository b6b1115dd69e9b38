package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(v float64) string {
	return fmt.Sprintf("%.2f RON", v)
}

// trendLabel renders a spending change, or "-" without a baseline.
func trendLabel(pct float64) string {
	switch {
	case pct > 0:
		return fmt.Sprintf("up %.1f%%", pct)
	case pct < 0:
		return fmt.Sprintf("down %.1f%%", -pct)
	}
	return "-"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
