package scoring

import (
	"math"

	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/nutrients"
	"github.com/2beens/nutridiary/internal/profile"
)

type Report struct {
	Food        FoodReport      `json:"food"`
	Exercise    ExerciseReport  `json:"exercise"`
	Condition   ConditionReport `json:"condition"`
	Total       int             `json:"total"`
	Achievement Achievement     `json:"achievement"`
}

type FoodReport struct {
	Score     int `json:"score"`
	Protein   int `json:"protein"`
	Fat       int `json:"fat"`
	Carbs     int `json:"carbs"`
	Calorie   int `json:"calorie"`
	DIAAS     int `json:"diaas"`
	FattyAcid int `json:"fattyAcid"`
	GL        int `json:"gl"`
	Fiber     int `json:"fiber"`
	Vitamin   int `json:"vitamin"`
	Mineral   int `json:"mineral"`

	GLLimit float64 `json:"glLimit"`
	Totals  Totals  `json:"totals"`
}

type ExerciseReport struct {
	Score int `json:"score"`
	// ExerciseCount and Sets are the sub-scores, Count and TotalSets the raw counts.
	ExerciseCount int  `json:"exerciseCount"`
	Sets          int  `json:"sets"`
	TotalSets     int  `json:"totalSets"`
	Count         int  `json:"count"`
	RestDay       bool `json:"restDay"`
}

type ConditionReport struct {
	Score         int  `json:"score"`
	Sleep         int  `json:"sleep"`
	Quality       int  `json:"quality"`
	Appetite      int  `json:"appetite"`
	Digestion     int  `json:"digestion"`
	Focus         int  `json:"focus"`
	Stress        int  `json:"stress"`
	FullyRecorded bool `json:"fullyRecorded"`
}

// Scorer turns a day's record into a Report. It holds no state besides its rules
// and is safe for concurrent use.
type Scorer struct {
	rules Rules
}

func NewScorer(rules Rules) *Scorer {
	return &Scorer{
		rules: rules,
	}
}

func (s *Scorer) Rules() Rules {
	return s.rules
}

func (s *Scorer) Score(p *profile.UserProfile, record *diary.DailyRecord, targets nutrients.Targets) *Report {
	if record == nil {
		record = &diary.DailyRecord{}
	}

	food := s.foodReport(Aggregate(record.Meals), targets)
	exercise := s.exerciseReport(record, p.IsBodymaker())
	condition := conditionReport(record.Conditions)

	total := s.rules.Total.Food*float64(food.Score) +
		s.rules.Total.Exercise*float64(exercise.Score) +
		s.rules.Total.Condition*float64(condition.Score)

	return &Report{
		Food:        food,
		Exercise:    exercise,
		Condition:   condition,
		Total:       int(math.Round(total)),
		Achievement: NewAchievement(food.Totals, targets),
	}
}

func (s *Scorer) foodReport(totals Totals, targets nutrients.Targets) FoodReport {
	r := s.rules

	protein := MacroRateScore(totals.Protein, targets.Protein)
	fat := MacroRateScore(totals.Fat, targets.Fat)
	carbs := MacroRateScore(totals.Carbs, targets.Carbs)
	calorie := CalorieScore(totals.Calories, targets.Calories)
	diaas := DIAASScore(totals.AvgDIAAS)
	fattyAcid := r.FattyAcidScore(totals.SaturatedFat, totals.MonounsaturatedFat, totals.PolyunsaturatedFat)
	gl := r.GlycemicLoadScore(totals.GL, targets.Carbs)
	fiber := FiberScore(totals.Fiber, targets.FiberTarget())
	vitamin := MicronutrientScore(totals.Vitamins, targets.Micros, nutrients.VitaminKeys)
	mineral := MicronutrientScore(totals.Minerals, targets.Micros, nutrients.MineralKeys)

	w := r.Food
	score := protein*w.Protein +
		fat*w.Fat +
		carbs*w.Carbs +
		calorie*w.Calorie +
		diaas*w.DIAAS +
		fattyAcid*w.FattyAcid +
		gl*w.GL +
		fiber*w.Fiber +
		vitamin*w.Vitamin +
		mineral*w.Mineral

	return FoodReport{
		Score:     round(clamp(score)),
		Protein:   round(protein),
		Fat:       round(fat),
		Carbs:     round(carbs),
		Calorie:   round(calorie),
		DIAAS:     round(diaas),
		FattyAcid: round(fattyAcid),
		GL:        round(gl),
		Fiber:     round(fiber),
		Vitamin:   round(vitamin),
		Mineral:   round(mineral),
		GLLimit:   r.GLLimit(targets.Carbs),
		Totals:    totals,
	}
}

func (s *Scorer) exerciseReport(record *diary.DailyRecord, bodymaker bool) ExerciseReport {
	var count, totalSets int
	for _, workout := range record.Workouts {
		for _, exercise := range workout.Exercises {
			count++
			totalSets += s.rules.EquivalentSets(exercise)
		}
	}

	countScore := s.rules.ExerciseCountScore(count, bodymaker)
	setsScore := s.rules.SetCountScore(totalSets, bodymaker)
	restDay := record.IsRestDay()
	if restDay {
		countScore, setsScore = 100, 100
	}

	return ExerciseReport{
		Score:         round((countScore + setsScore) / 2),
		ExerciseCount: round(countScore),
		Sets:          round(setsScore),
		TotalSets:     totalSets,
		Count:         count,
		RestDay:       restDay,
	}
}

func conditionReport(c *diary.ConditionEntry) ConditionReport {
	if c == nil {
		return ConditionReport{}
	}
	return ConditionReport{
		Score:         ConditionScore(c),
		Sleep:         RatingPercent(c.SleepHours),
		Quality:       RatingPercent(c.SleepQuality),
		Appetite:      RatingPercent(c.Appetite),
		Digestion:     RatingPercent(c.Digestion),
		Focus:         RatingPercent(c.Focus),
		Stress:        RatingPercent(c.Stress),
		FullyRecorded: c.FullyRecorded(),
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
