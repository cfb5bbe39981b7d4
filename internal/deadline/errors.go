package deadline

import "errors"

var (
	// ErrInvalidDeadlineLength is returned when the requested business days fall
	// outside 1 to MaxBusinessDays.
	ErrInvalidDeadlineLength = errors.New("invalid deadline length")

	// ErrUnknownTriggerType is returned for a trigger type outside the known set.
	ErrUnknownTriggerType = errors.New("unknown trigger type")

	// ErrComputationDivergence is returned when a search exceeds its iteration bound.
	// It points at a broken holiday source rather than at user input.
	ErrComputationDivergence = errors.New("deadline computation did not converge")

	// ErrHolidayOracleFailure wraps any error returned by the holiday oracle.
	ErrHolidayOracleFailure = errors.New("holiday lookup failed")

	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")
)
