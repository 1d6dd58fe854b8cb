package recommendation

import "time"

// Fixed vocabularies for the two contextual signals.
const (
	SeasonSpring = "spring"
	SeasonSummer = "summer"
	SeasonAutumn = "autumn"
	SeasonWinter = "winter"

	MealBreakfast      = "breakfast"
	MealLunch          = "lunch"
	MealAfternoonTea   = "afternoon_tea"
	MealDinner         = "dinner"
	MealLateNightSnack = "late_night_snack"
)

var validSeasons = map[string]bool{
	SeasonSpring: true,
	SeasonSummer: true,
	SeasonAutumn: true,
	SeasonWinter: true,
}

var validMealTimes = map[string]bool{
	MealBreakfast:      true,
	MealLunch:          true,
	MealAfternoonTea:   true,
	MealDinner:         true,
	MealLateNightSnack: true,
}

// SeasonForMonth maps a calendar month to its season.
func SeasonForMonth(month time.Month) string {
	switch {
	case month >= time.March && month <= time.May:
		return SeasonSpring
	case month >= time.June && month <= time.August:
		return SeasonSummer
	case month >= time.September && month <= time.November:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// MealTimeForHour maps a local clock hour to a meal period.
func MealTimeForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 10:
		return MealBreakfast
	case hour >= 10 && hour < 14:
		return MealLunch
	case hour >= 14 && hour < 17:
		return MealAfternoonTea
	case hour >= 17 && hour < 21:
		return MealDinner
	default:
		return MealLateNightSnack
	}
}
