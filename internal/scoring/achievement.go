package scoring

import (
	"github.com/2beens/nutridiary/internal/nutrients"
)

type Evaluation string

const (
	EvaluationExcellent Evaluation = "excellent"
	EvaluationGood      Evaluation = "good"
	EvaluationModerate  Evaluation = "moderate"
	EvaluationPoor      Evaluation = "poor"
)

// Achievement reports actual intake as a rounded percentage of each macro target.
type Achievement struct {
	Calories   int        `json:"calories"`
	Protein    int        `json:"protein"`
	Fat        int        `json:"fat"`
	Carbs      int        `json:"carbs"`
	Overall    int        `json:"overall"`
	Evaluation Evaluation `json:"evaluation"`
}

func NewAchievement(totals Totals, targets nutrients.Targets) Achievement {
	a := Achievement{
		Calories: rate(totals.Calories, targets.Calories),
		Protein:  rate(totals.Protein, targets.Protein),
		Fat:      rate(totals.Fat, targets.Fat),
		Carbs:    rate(totals.Carbs, targets.Carbs),
	}
	a.Overall = round(float64(a.Calories+a.Protein+a.Fat+a.Carbs) / 4)
	a.Evaluation = evaluate(a.Overall)
	return a
}

func rate(actual, target float64) int {
	if target <= 0 {
		return 0
	}
	return round(actual / target * 100)
}

func evaluate(overall int) Evaluation {
	switch {
	case overall >= 95 && overall <= 105:
		return EvaluationExcellent
	case overall >= 85 && overall <= 115:
		return EvaluationGood
	case overall >= 70 && overall <= 130:
		return EvaluationModerate
	default:
		return EvaluationPoor
	}
}
