package diary

import (
	"time"

	"github.com/2beens/nutridiary/internal/nutrients"
)

const DateLayout = "2006-01-02"

// DailyRecord is everything logged for one user on one day.
// Created on first log of a day, superseded as a whole on every save.
type DailyRecord struct {
	Meals       []MealEntry     `json:"meals"`
	Workouts    []WorkoutEntry  `json:"workouts"`
	Supplements []MealEntry     `json:"supplements"`
	Conditions  *ConditionEntry `json:"conditions"`
	Routine     *Routine        `json:"routine,omitempty"`
}

// IsRestDay reports whether the day is a planned recovery day in the training plan.
func (r *DailyRecord) IsRestDay() bool {
	return r != nil && r.Routine != nil && r.Routine.IsRestDay
}

type Routine struct {
	Name      string `json:"name,omitempty"`
	IsRestDay bool   `json:"isRestDay"`
}

type MealEntry struct {
	Name     string     `json:"name,omitempty"`
	Calories float64    `json:"calories"`
	Items    []MealItem `json:"items"`
}

// MealItem is a single logged food. Nutrient fields are per reference serving:
// per 100g for weight quantities, per piece for count quantities.
type MealItem struct {
	Name   string       `json:"name"`
	Amount float64      `json:"amount"`
	Unit   string       `json:"unit"`
	Kind   QuantityKind `json:"quantityKind"`

	Protein            float64 `json:"protein"`
	Fat                float64 `json:"fat"`
	Carbs              float64 `json:"carbs"`
	Sugar              float64 `json:"sugar"`
	Fiber              float64 `json:"fiber"`
	SolubleFiber       float64 `json:"solubleFiber"`
	InsolubleFiber     float64 `json:"insolubleFiber"`
	SaturatedFat       float64 `json:"saturatedFat"`
	MonounsaturatedFat float64 `json:"monounsaturatedFat"`
	PolyunsaturatedFat float64 `json:"polyunsaturatedFat"`
	GI                 float64 `json:"gi"`
	DIAAS              float64 `json:"diaas"`

	Vitamins nutrients.Map `json:"vitamins"`
	Minerals nutrients.Map `json:"minerals"`
}

// Ratio is the number of reference servings the logged amount stands for.
// Items built without a kind resolve it from the unit.
func (i MealItem) Ratio() float64 {
	kind := i.Kind
	if kind == "" {
		kind = KindForUnit(i.Unit)
	}
	if kind == QuantityCount {
		return i.Amount
	}
	return i.Amount / 100
}

type ExerciseType string

const (
	ExerciseAnaerobic ExerciseType = "anaerobic"
	ExerciseAerobic   ExerciseType = "aerobic"
	ExerciseStretch   ExerciseType = "stretch"
)

type WorkoutEntry struct {
	Name      string          `json:"name,omitempty"`
	Exercises []ExerciseEntry `json:"exercises"`
}

type ExerciseEntry struct {
	Name         string       `json:"name,omitempty"`
	ExerciseType ExerciseType `json:"exerciseType"`
	Sets         []SetEntry   `json:"sets,omitempty"`
	// Duration in minutes, already totalled. Used by aerobic and stretch exercises.
	Duration float64 `json:"duration,omitempty"`
}

type SetEntry struct {
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	Duration float64 `json:"duration,omitempty"`
}

// ConditionEntry holds the subjective day ratings, each 1-5.
type ConditionEntry struct {
	SleepHours   *int `json:"sleepHours"`
	SleepQuality *int `json:"sleepQuality"`
	Stress       *int `json:"stress"`
	Appetite     *int `json:"appetite"`
	Digestion    *int `json:"digestion"`
	Focus        *int `json:"focus"`

	// Fatigue is a free-form band: low, normal or high (legacy 低, 普通, 高).
	Fatigue string   `json:"fatigue,omitempty"`
	Weight  *float64 `json:"weight,omitempty"`
	BodyFat *float64 `json:"bodyFat,omitempty"`
	Notes   string   `json:"notes,omitempty"`
}

// FullyRecorded is true only when all six ratings are present.
func (c *ConditionEntry) FullyRecorded() bool {
	if c == nil {
		return false
	}
	for _, v := range c.Ratings() {
		if v == nil {
			return false
		}
	}
	return true
}

// Ratings returns the six ratings in a fixed order:
// sleepHours, sleepQuality, stress, appetite, digestion, focus.
func (c *ConditionEntry) Ratings() [6]*int {
	return [6]*int{c.SleepHours, c.SleepQuality, c.Stress, c.Appetite, c.Digestion, c.Focus}
}

// Day pairs a record with the date it was logged for.
type Day struct {
	Date   time.Time    `json:"date"`
	Record *DailyRecord `json:"record"`
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
