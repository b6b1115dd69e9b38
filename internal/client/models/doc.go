// Package models defines the payloads exchanged with the carlog API: users,
// cars, fuel and repair logs, reminders and subscription plans, plus the
// response envelope every endpoint wraps them in.
package models
