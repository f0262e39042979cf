package trends

import (
	"sort"
	"time"

	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/scoring"
)

// DayAggregate is the per-day summary the analyzer works on.
type DayAggregate struct {
	Date     time.Time
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Workouts int

	// HasCondition is set when the day carries a condition entry.
	HasCondition bool
	SleepHours   float64
	Fatigue      string
	Weight       *float64
}

// Series is a window of days in chronological order.
type Series []DayAggregate

// NewSeries summarizes the given days and orders them by date.
// Days without a record are skipped.
func NewSeries(days []diary.Day) Series {
	series := make(Series, 0, len(days))
	for _, day := range days {
		if day.Record == nil {
			continue
		}
		series = append(series, NewDayAggregate(day.Date, day.Record))
	}
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}

func NewDayAggregate(date time.Time, record *diary.DailyRecord) DayAggregate {
	totals := scoring.Aggregate(record.Meals)
	agg := DayAggregate{
		Date:     date,
		Calories: totals.Calories,
		Protein:  totals.Protein,
		Fat:      totals.Fat,
		Carbs:    totals.Carbs,
		Workouts: len(record.Workouts),
	}

	if c := record.Conditions; c != nil {
		agg.HasCondition = true
		if c.SleepHours != nil {
			agg.SleepHours = float64(*c.SleepHours)
		}
		agg.Fatigue = c.Fatigue
		agg.Weight = c.Weight
	}

	return agg
}
