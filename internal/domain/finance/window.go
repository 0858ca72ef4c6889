package finance

import (
	"time"

	"github.com/kampusadmin/dashboard-api/internal/httperr"
)

// ===============================
// Reporting Windows
// ===============================

type Window string

const (
	WindowDaily   Window = "daily"
	WindowWeekly  Window = "weekly"
	WindowMonthly Window = "monthly"
	WindowYearly  Window = "yearly"
)

// ParseWindow maps the query value onto a window, defaulting to yearly.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "":
		return WindowYearly, nil
	case string(WindowDaily), string(WindowWeekly), string(WindowMonthly), string(WindowYearly):
		return Window(s), nil
	}
	return "", httperr.ErrBusiness(httperr.CodeValidationError)
}

// Start returns the inclusive lower bound of the window anchored at now.
// Daily means since local midnight, weekly the trailing 7 days, monthly and
// yearly calendar-to-date. All arithmetic happens in now's location.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case WindowDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case WindowWeekly:
		return now.AddDate(0, 0, -7)
	case WindowMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case WindowYearly:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	}
	return now
}

// EarliestBound is the lower bound covering every window at once: the weekly
// window can reach before January 1st during the first week of a year.
func EarliestBound(now time.Time) time.Time {
	yearStart := WindowYearly.Start(now)
	weekStart := WindowWeekly.Start(now)
	if weekStart.Before(yearStart) {
		return weekStart
	}
	return yearStart
}

type PeriodTotals struct {
	Daily   float64
	Weekly  float64
	Monthly float64
	Yearly  float64
}

// Totals partitions the details into the four windows anchored at now and
// sums each. A detail counts toward a window when its transaction date lies
// in [window start, now].
func Totals(now time.Time, details []TransactionDetail) PeriodTotals {
	var totals PeriodTotals

	dailyStart := WindowDaily.Start(now)
	weeklyStart := WindowWeekly.Start(now)
	monthlyStart := WindowMonthly.Start(now)
	yearlyStart := WindowYearly.Start(now)

	for _, d := range details {
		if d.TransactionDate.After(now) {
			continue
		}
		if !d.TransactionDate.Before(dailyStart) {
			totals.Daily += d.Amount
		}
		if !d.TransactionDate.Before(weeklyStart) {
			totals.Weekly += d.Amount
		}
		if !d.TransactionDate.Before(monthlyStart) {
			totals.Monthly += d.Amount
		}
		if !d.TransactionDate.Before(yearlyStart) {
			totals.Yearly += d.Amount
		}
	}

	return totals
}

// Filter keeps the details falling inside the window anchored at now.
func Filter(w Window, now time.Time, details []TransactionDetail) []TransactionDetail {
	start := w.Start(now)

	out := make([]TransactionDetail, 0, len(details))
	for _, d := range details {
		if d.TransactionDate.After(now) || d.TransactionDate.Before(start) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Sum totals the amounts of the given details.
func Sum(details []TransactionDetail) float64 {
	var total float64
	for _, d := range details {
		total += d.Amount
	}
	return total
}
