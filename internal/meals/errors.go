package meals

import "errors"

// ErrUnknownStrategy is returned by Lookup for names that no filter is registered under.
var ErrUnknownStrategy = errors.New("unknown strategy")

// ErrInvalidMeal indicates a meal argument that does not match "YYYY-MM-DD HH:MM <calories> <description>".
var ErrInvalidMeal = errors.New("invalid meal")

// ErrInvalidTime indicates a time of day that is not HH:MM or HH:MM:SS within a single day.
var ErrInvalidTime = errors.New("invalid time of day")
