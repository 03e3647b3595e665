package schedule

import (
	"testing"
	"time"
)

func at(hhmm string) time.Time {
	t, _ := time.Parse("15:04", hhmm)
	return time.Date(2025, 3, 10, t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func TestEvaluateGrace(t *testing.T) {
	cases := []struct {
		boundary string
		observed string
		within   bool
		early    bool
		late     bool
		minEarly int
		minLate  int
		diff     int
	}{
		{"09:00", "09:00", true, false, false, 0, 0, 0},
		{"09:00", "08:55", true, false, false, 0, 0, -5}, // boundary inclusive
		{"09:00", "08:54", false, true, false, 6, 0, -6},
		{"09:00", "09:05", true, false, false, 0, 0, 5},
		{"09:00", "09:06", false, false, true, 0, 6, 6},
		{"06:00", "05:30", false, true, false, 30, 0, -30},
		{"22:00", "23:15", false, false, true, 0, 75, 75},
	}

	for _, c := range cases {
		got := EvaluateGrace(c.boundary, at(c.observed))
		if got.WithinGrace != c.within || got.Early != c.early || got.Late != c.late {
			t.Errorf("EvaluateGrace(%s, %s) classification = %+v", c.boundary, c.observed, got)
		}
		if got.MinutesEarly != c.minEarly || got.MinutesLate != c.minLate || got.TimeDifference != c.diff {
			t.Errorf("EvaluateGrace(%s, %s) minutes = %+v, want early=%d late=%d diff=%d",
				c.boundary, c.observed, got, c.minEarly, c.minLate, c.diff)
		}
	}
}

func TestEvaluateGrace_ExactlyOneFlag(t *testing.T) {
	for minute := -30; minute <= 30; minute++ {
		observed := at("09:00").Add(time.Duration(minute) * time.Minute)
		got := EvaluateGrace("09:00", observed)

		count := 0
		for _, flag := range []bool{got.WithinGrace, got.Early, got.Late} {
			if flag {
				count++
			}
		}
		if count != 1 {
			t.Errorf("offset %d: expected exactly one classification flag, got %+v", minute, got)
		}
	}
}
