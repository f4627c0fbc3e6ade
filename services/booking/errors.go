package booking

import "errors"

var (
	// ErrSessionNotFound means the session id is unknown or the session expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrSessionCompleted means the session already reached the success phase
	// and no longer accepts changes.
	ErrSessionCompleted = errors.New("booking session already completed")

	// ErrDateTimeNotSelected blocks submission until both a date and a time
	// slot have been picked. Recoverable by completing the selection.
	ErrDateTimeNotSelected = errors.New("please select a date and time")

	// ErrNoDateSelected means a time slot was picked before any date.
	ErrNoDateSelected = errors.New("select a date before picking a time slot")

	// ErrUnknownSlot means the requested time is not one of the offered slots.
	ErrUnknownSlot = errors.New("unknown time slot")

	// ErrInvalidDate means the requested day does not exist in the given month.
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrUnknownDirection means month navigation got something other than
	// "previous" or "next".
	ErrUnknownDirection = errors.New("unknown navigation direction")
)
