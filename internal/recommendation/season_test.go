package recommendation

import (
	"testing"
	"time"
)

func TestSeasonForMonth(t *testing.T) {
	cases := map[time.Month]string{
		time.January:   SeasonWinter,
		time.February:  SeasonWinter,
		time.March:     SeasonSpring,
		time.April:     SeasonSpring,
		time.May:       SeasonSpring,
		time.June:      SeasonSummer,
		time.July:      SeasonSummer,
		time.August:    SeasonSummer,
		time.September: SeasonAutumn,
		time.October:   SeasonAutumn,
		time.November:  SeasonAutumn,
		time.December:  SeasonWinter,
	}

	for month, want := range cases {
		if got := SeasonForMonth(month); got != want {
			t.Errorf("month %v: expected %q, got %q", month, want, got)
		}
	}
}

func TestMealTimeForHour(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, MealLateNightSnack},
		{5, MealLateNightSnack},
		{6, MealBreakfast},
		{9, MealBreakfast},
		{10, MealLunch},
		{13, MealLunch},
		{14, MealAfternoonTea},
		{16, MealAfternoonTea},
		{17, MealDinner},
		{20, MealDinner},
		{21, MealLateNightSnack},
		{23, MealLateNightSnack},
	}

	for _, tc := range cases {
		if got := MealTimeForHour(tc.hour); got != tc.want {
			t.Errorf("hour %d: expected %q, got %q", tc.hour, tc.want, got)
		}
	}
}
