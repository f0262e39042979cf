package trends

import (
	"fmt"
	"math"
	"strings"

	"github.com/2beens/nutridiary/internal/profile"
)

type Consistency string

const (
	ConsistencyHigh   Consistency = "high"
	ConsistencyMedium Consistency = "medium"
	ConsistencyLow    Consistency = "low"
)

type ProteinStatus string

const (
	ProteinSufficient  ProteinStatus = "sufficient"
	ProteinSlightlyLow ProteinStatus = "slightly low"
	ProteinLow         ProteinStatus = "low"
	// ProteinUnknown is reported when the lean body mass is not known.
	ProteinUnknown ProteinStatus = "unknown"
)

type WeightTrend string

const (
	WeightIncrease WeightTrend = "increase"
	WeightDecrease WeightTrend = "decrease"
	WeightMaintain WeightTrend = "maintain"
)

const (
	NotEnoughDataInsight = "Not enough data yet. Keep logging to unlock a detailed analysis."
	ContinueHabits       = "Keep up your current eating and training habits."
)

// Thresholds are the banding limits of the analyzer.
type Thresholds struct {
	HighConsistencyStdDev   float64
	MediumConsistencyStdDev float64
	SufficientProteinPerLBM float64
	LowProteinPerLBM        float64
	MinConditionDays        int
	LowSleep                float64
	MinWeightReadings       int
	LowFrequencyPercent     int
	LowCarbRatioPercent     float64
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		HighConsistencyStdDev:   300,
		MediumConsistencyStdDev: 500,
		SufficientProteinPerLBM: 2.0,
		LowProteinPerLBM:        1.5,
		MinConditionDays:        5,
		LowSleep:                6,
		MinWeightReadings:       3,
		LowFrequencyPercent:     50,
		LowCarbRatioPercent:     30,
	}
}

// Insights is the analyzer output. The statistics behind the text are exposed too.
type Insights struct {
	RecordCount     int      `json:"recordCount"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`

	Stats *Stats `json:"stats,omitempty"`
}

type Stats struct {
	AvgCalories      float64       `json:"avgCalories"`
	CaloriesStdDev   float64       `json:"caloriesStdDev"`
	Consistency      Consistency   `json:"consistency"`
	AvgProtein       float64       `json:"avgProtein"`
	ProteinStatus    ProteinStatus `json:"proteinStatus"`
	WorkoutDays      int           `json:"workoutDays"`
	FrequencyPercent int           `json:"frequencyPercent"`
	WeeklyFrequency  float64       `json:"weeklyFrequency"`
	AvgSleep         *float64      `json:"avgSleep,omitempty"`
	RecoveryRate     *int          `json:"recoveryRate,omitempty"`
	ProteinRatio     float64       `json:"proteinRatio"`
	FatRatio         float64       `json:"fatRatio"`
	CarbsRatio       float64       `json:"carbsRatio"`
	WeightChange     *float64      `json:"weightChange,omitempty"`
	WeightTrend      WeightTrend   `json:"weightTrend,omitempty"`
}

// Analyzer derives longitudinal statistics from a window of days.
// It keeps no state between calls.
type Analyzer struct {
	thresholds Thresholds
}

func NewAnalyzer(thresholds Thresholds) *Analyzer {
	return &Analyzer{
		thresholds: thresholds,
	}
}

func (a *Analyzer) Analyze(series Series, p *profile.UserProfile) *Insights {
	if len(series) == 0 {
		return &Insights{
			RecordCount:     0,
			Insights:        []string{NotEnoughDataInsight},
			Recommendations: []string{},
		}
	}

	th := a.thresholds
	stats := &Stats{}
	var insights []string

	calories := make([]float64, len(series))
	proteins := make([]float64, len(series))
	for i, day := range series {
		calories[i] = day.Calories
		proteins[i] = day.Protein
	}

	stats.AvgCalories, stats.CaloriesStdDev = meanStdDev(calories)
	switch {
	case stats.CaloriesStdDev < th.HighConsistencyStdDev:
		stats.Consistency = ConsistencyHigh
	case stats.CaloriesStdDev < th.MediumConsistencyStdDev:
		stats.Consistency = ConsistencyMedium
	default:
		stats.Consistency = ConsistencyLow
	}
	insights = append(insights, fmt.Sprintf(
		"Calorie intake consistency: %s (average %.0f kcal, standard deviation %.0f kcal)",
		stats.Consistency, stats.AvgCalories, stats.CaloriesStdDev,
	))

	stats.AvgProtein, _ = meanStdDev(proteins)
	stats.ProteinStatus = ProteinUnknown
	if lbm := p.LBM(); lbm > 0 {
		switch {
		case stats.AvgProtein >= lbm*th.SufficientProteinPerLBM:
			stats.ProteinStatus = ProteinSufficient
		case stats.AvgProtein >= lbm*th.LowProteinPerLBM:
			stats.ProteinStatus = ProteinSlightlyLow
		default:
			stats.ProteinStatus = ProteinLow
		}
		insights = append(insights, fmt.Sprintf(
			"Protein intake: %s (average %.0f g/day, %.2f g per kg LBM)",
			stats.ProteinStatus, stats.AvgProtein, stats.AvgProtein/lbm,
		))
	} else {
		insights = append(insights, fmt.Sprintf(
			"Protein intake: average %.0f g/day (lean body mass unknown)", stats.AvgProtein,
		))
	}

	for _, day := range series {
		if day.Workouts > 0 {
			stats.WorkoutDays++
		}
	}
	frequency := float64(stats.WorkoutDays) / float64(len(series))
	stats.FrequencyPercent = int(math.Round(frequency * 100))
	stats.WeeklyFrequency = frequency * 7
	insights = append(insights, fmt.Sprintf(
		"Training frequency: %.1f times per week (%d of the last %d days, %d%%)",
		stats.WeeklyFrequency, stats.WorkoutDays, len(series), stats.FrequencyPercent,
	))

	insights = append(insights, a.conditionInsights(series, stats)...)

	stats.ProteinRatio, stats.FatRatio, stats.CarbsRatio = macroRatios(series)
	insights = append(insights, fmt.Sprintf(
		"Average PFC balance: P%.0f%% / F%.0f%% / C%.0f%%",
		stats.ProteinRatio, stats.FatRatio, stats.CarbsRatio,
	))

	if insight, ok := a.weightInsight(series, stats); ok {
		insights = append(insights, insight)
	}

	return &Insights{
		RecordCount:     len(series),
		Insights:        insights,
		Recommendations: a.recommendations(stats, p),
		Stats:           stats,
	}
}

func (a *Analyzer) conditionInsights(series Series, stats *Stats) []string {
	var days, recovered int
	var sleep float64
	for _, day := range series {
		if !day.HasCondition {
			continue
		}
		days++
		sleep += day.SleepHours
		if isRecovered(day.Fatigue) {
			recovered++
		}
	}
	if days <= a.thresholds.MinConditionDays {
		return nil
	}

	avgSleep := sleep / float64(days)
	recoveryRate := int(math.Round(float64(recovered) / float64(days) * 100))
	stats.AvgSleep = &avgSleep
	stats.RecoveryRate = &recoveryRate

	insights := []string{fmt.Sprintf("Sleep: %.1f hours on average, recovery rate %d%%", avgSleep, recoveryRate)}
	if avgSleep < a.thresholds.LowSleep {
		insights = append(insights, "Note: sleep tends to be short. Muscle recovery needs 7-9 hours of sleep, not only protein.")
	}
	return insights
}

// isRecovered treats low or normal fatigue as recovered. Missing fatigue is normal.
func isRecovered(fatigue string) bool {
	switch strings.ToLower(strings.TrimSpace(fatigue)) {
	case "", "low", "normal", "低", "普通":
		return true
	default:
		return false
	}
}

// macroRatios averages the per-day P/F/C share of energy (4/9/4 kcal per gram).
// Each day's shares are rounded to whole percent first; days without intake count as 0.
func macroRatios(series Series) (protein, fat, carbs float64) {
	for _, day := range series {
		p, f, c := day.Protein*4, day.Fat*9, day.Carbs*4
		total := p + f + c
		if total <= 0 {
			continue
		}
		protein += math.Round(p / total * 100)
		fat += math.Round(f / total * 100)
		carbs += math.Round(c / total * 100)
	}
	n := float64(len(series))
	return protein / n, fat / n, carbs / n
}

func (a *Analyzer) weightInsight(series Series, stats *Stats) (string, bool) {
	var weights []float64
	for _, day := range series {
		if day.Weight != nil && *day.Weight > 0 {
			weights = append(weights, *day.Weight)
		}
	}
	if len(weights) < a.thresholds.MinWeightReadings {
		return "", false
	}

	first, last := weights[0], weights[len(weights)-1]
	change := last - first
	stats.WeightChange = &change
	switch {
	case change > 0:
		stats.WeightTrend = WeightIncrease
	case change < 0:
		stats.WeightTrend = WeightDecrease
	default:
		stats.WeightTrend = WeightMaintain
	}

	return fmt.Sprintf(
		"Weight change: %.1f kg %s (%g kg -> %g kg)",
		math.Abs(change), stats.WeightTrend, first, last,
	), true
}

func (a *Analyzer) recommendations(stats *Stats, p *profile.UserProfile) []string {
	th := a.thresholds
	bulking := p.IsBulking()

	var recs []string
	if bulking && (stats.ProteinStatus == ProteinSlightlyLow || stats.ProteinStatus == ProteinLow) {
		recs = append(recs, "Protein is running low for a bulking goal. Aim for 2.5 g per kg of lean body mass per day.")
	}
	if stats.FrequencyPercent < th.LowFrequencyPercent {
		recs = append(recs, "You train on fewer than half of the days. Four to five sessions a week make the most of your training.")
	}
	if bulking && stats.CarbsRatio < th.LowCarbRatioPercent {
		recs = append(recs, "Carbohydrate share is low. Eating carbs around training improves performance and recovery.")
	}
	if stats.Consistency == ConsistencyLow {
		recs = append(recs, "Daily calories vary a lot. A steady daily intake makes body composition easier to manage.")
	}

	if len(recs) == 0 {
		return []string{ContinueHabits}
	}
	return recs
}

// meanStdDev returns the mean and the population standard deviation.
func meanStdDev(values []float64) (mean, stdDev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var variance float64
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(values))

	return mean, math.Sqrt(variance)
}
