package usecase

import "fmt"

// MaxWeek covers the regular season plus the postseason rounds.
const MaxWeek = 22

func validateSeasonWeek(season, week int) error {
	if season <= 0 {
		return fmt.Errorf("%w: season must be > 0", ErrInvalidInput)
	}
	if week < 1 || week > MaxWeek {
		return fmt.Errorf("%w: week must be between 1 and %d", ErrInvalidInput, MaxWeek)
	}
	return nil
}
