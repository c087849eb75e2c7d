package shared

import "time"

// nowFunc is the time source used for all domain timestamps.
// It is a variable so tests can freeze time.
var nowFunc = time.Now

// Now returns the current time from the configured time source.
func Now() time.Time {
	return nowFunc()
}

// SetNowFunc overrides the time source. Intended for tests only.
// It returns a restore function that puts the previous source back.
func SetNowFunc(fn func() time.Time) func() {
	prev := nowFunc
	nowFunc = fn
	return func() { nowFunc = prev }
}
