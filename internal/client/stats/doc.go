// Package stats computes the dashboard figures shown by the CLI from lists
// of fuel logs, repairs, and reminders. All functions are pure; the current
// time is passed in and month boundaries use now's location.
package stats
