package stats

import "time"

type month struct {
	year int
	m    time.Month
}

func monthOf(t time.Time, loc *time.Location) month {
	t = t.In(loc)
	return month{year: t.Year(), m: t.Month()}
}

func (m month) prev() month {
	if m.m == time.January {
		return month{year: m.year - 1, m: time.December}
	}
	return month{year: m.year, m: m.m - 1}
}

// trend is the change from last to current in percent, or 0 without a
// baseline.
func trend(current, last float64) float64 {
	if last <= 0 {
		return 0
	}
	return (current - last) / last * 100
}
