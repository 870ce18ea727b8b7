// Package services defines the business logic for release reminders.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import "errors"

// Reminder-related errors.
var (
	// ErrReminderNotFound indicates that the requested reminder does not exist
	// or is not owned by the current user.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrReminderLimit is returned when a user has exhausted the reminder
	// quota for their subscription tier. Handlers map it to a forbidden
	// response carrying an upgrade message.
	ErrReminderLimit = errors.New("reminder limit reached")

	// ErrReminderExists is returned when a concurrent toggle already created
	// a reminder for the same (user, release) pair; the unique index in the
	// store is the authority, this sentinel is the conflict branch.
	ErrReminderExists = errors.New("reminder already exists")

	// ErrInvalidDramaID is returned when the external catalog identifier is
	// missing or not a positive number.
	ErrInvalidDramaID = errors.New("drama id must be a positive number")

	// ErrEmptyDramaName is returned when a toggle request carries a blank
	// display name.
	ErrEmptyDramaName = errors.New("drama name is empty")
)
