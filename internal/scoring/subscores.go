package scoring

import (
	"math"

	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/nutrients"
)

func clamp(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// MacroRateScore is the achieved share of a macro target, capped at 100.
// A zero target scores 0.
func MacroRateScore(actual, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return clamp(actual / target * 100)
}

// CalorieScore drops one point per percent of deviation from the target.
// A zero target counts as no deviation and scores 100.
func CalorieScore(actual, target float64) float64 {
	if target == 0 {
		return 100
	}
	deviation := math.Abs(actual-target) / target * 100
	return clamp(100 - deviation)
}

func DIAASScore(avgDIAAS float64) float64 {
	return clamp(avgDIAAS * 100)
}

// FattyAcidScore rates how close the saturated/mono/poly split is to the ideal mix.
func (r Rules) FattyAcidScore(saturated, mono, poly float64) float64 {
	sum := saturated + mono + poly
	if sum <= 0 {
		return 0
	}

	ideal := r.IdealFattyAcids
	deviation := (math.Abs(saturated/sum*100-ideal.Saturated) +
		math.Abs(mono/sum*100-ideal.Monounsaturated) +
		math.Abs(poly/sum*100-ideal.Polyunsaturated)) / 3

	return clamp(100 - deviation/r.FattyAcidTolerance*100)
}

// GLLimit is the daily glycemic load limit derived from the carbs target.
func (r Rules) GLLimit(targetCarbs float64) float64 {
	return math.Round(targetCarbs * r.GLLimitFactor)
}

// GlycemicLoadScore loses one point per percent over the limit.
func (r Rules) GlycemicLoadScore(totalGL, targetCarbs float64) float64 {
	var glPercent float64
	if limit := r.GLLimit(targetCarbs); limit > 0 {
		glPercent = totalGL / limit * 100
	}
	return clamp(100 - math.Max(0, glPercent-100))
}

// FiberScore uses the default fiber target when fiberTarget is not positive.
func FiberScore(totalFiber, fiberTarget float64) float64 {
	if fiberTarget <= 0 {
		fiberTarget = nutrients.DefaultFiberTarget
	}
	return clamp(totalFiber / fiberTarget * 100)
}

// MicronutrientScore averages the capped achievement of each key with a positive target.
// Keys without a target are left out; when none has one the score is 0.
func MicronutrientScore(actual, targets nutrients.Map, keys []nutrients.Key) float64 {
	var sum float64
	var counted int
	for _, k := range keys {
		target := targets.Get(k)
		if target <= 0 {
			continue
		}
		sum += math.Min(100, actual.Get(k)/target*100)
		counted++
	}
	if counted == 0 {
		return 0
	}
	return clamp(sum / float64(counted))
}

func (r Rules) ExerciseCountScore(count int, bodymaker bool) float64 {
	if bodymaker {
		return r.BodymakerExerciseCount.Score(count)
	}
	return r.GeneralExerciseCount.Score(count)
}

func (r Rules) SetCountScore(sets int, bodymaker bool) float64 {
	if bodymaker {
		return r.BodymakerSets.Score(sets)
	}
	return r.GeneralSets.Score(sets)
}

// EquivalentSets counts anaerobic sets as logged and converts aerobic and
// stretch minutes into sets, rounding up.
func (r Rules) EquivalentSets(exercise diary.ExerciseEntry) int {
	switch exercise.ExerciseType {
	case diary.ExerciseAerobic:
		return minutesToSets(exercise.Duration, r.AerobicMinutesPerSet)
	case diary.ExerciseStretch:
		return minutesToSets(exercise.Duration, r.StretchMinutesPerSet)
	default:
		return len(exercise.Sets)
	}
}

func minutesToSets(minutes, perSet float64) int {
	if minutes <= 0 || perSet <= 0 {
		return 0
	}
	return int(math.Ceil(minutes / perSet))
}

// ConditionScore is the mean of the six 1-5 ratings scaled to 0-100 and rounded.
// Missing ratings count as 0; a missing entry scores 0.
func ConditionScore(c *diary.ConditionEntry) int {
	if c == nil {
		return 0
	}
	var sum int
	for _, v := range c.Ratings() {
		if v != nil {
			sum += *v
		}
	}
	return int(math.Round(clamp(float64(sum) / 6 * 20)))
}

// RatingPercent scales a single 1-5 rating to 0-100 for display.
func RatingPercent(rating *int) int {
	if rating == nil {
		return 0
	}
	return int(math.Round(float64(*rating) / 5 * 100))
}
