package scoring

// StepBand awards Score to counts of at least Min.
type StepBand struct {
	Min   int
	Score float64
}

// StepTable is a step function over raw counts. Bands are ordered by Min, highest first;
// counts below every band score 0.
type StepTable []StepBand

func (t StepTable) Score(n int) float64 {
	for _, band := range t {
		if n >= band.Min {
			return band.Score
		}
	}
	return 0
}

// FattyAcidMix is a saturated/monounsaturated/polyunsaturated split in percent.
type FattyAcidMix struct {
	Saturated       float64
	Monounsaturated float64
	Polyunsaturated float64
}

// FoodWeights are the composition weights of the food score. They sum to 1.
type FoodWeights struct {
	Protein   float64
	Fat       float64
	Carbs     float64
	Calorie   float64
	DIAAS     float64
	FattyAcid float64
	GL        float64
	Fiber     float64
	Vitamin   float64
	Mineral   float64
}

// TotalWeights combine the three headline scores into the overall day score.
type TotalWeights struct {
	Food      float64
	Exercise  float64
	Condition float64
}

// Rules holds every table and constant the scorers use.
type Rules struct {
	BodymakerExerciseCount StepTable
	GeneralExerciseCount   StepTable
	BodymakerSets          StepTable
	GeneralSets            StepTable

	// Minutes of activity counted as one set on the set-count axis.
	AerobicMinutesPerSet float64
	StretchMinutesPerSet float64

	IdealFattyAcids FattyAcidMix
	// Mean percentage-point deviation at which the fatty-acid score reaches 0.
	FattyAcidTolerance float64

	// The glycemic load limit is this share of the carbs target.
	GLLimitFactor float64

	Food  FoodWeights
	Total TotalWeights
}

func DefaultRules() Rules {
	return Rules{
		BodymakerExerciseCount: StepTable{
			{Min: 5, Score: 100},
			{Min: 4, Score: 80},
			{Min: 3, Score: 60},
			{Min: 2, Score: 40},
			{Min: 1, Score: 20},
		},
		GeneralExerciseCount: StepTable{
			{Min: 3, Score: 100},
			{Min: 2, Score: 66},
			{Min: 1, Score: 33},
		},
		BodymakerSets: StepTable{
			{Min: 20, Score: 100},
			{Min: 15, Score: 75},
			{Min: 10, Score: 50},
			{Min: 5, Score: 25},
		},
		GeneralSets: StepTable{
			{Min: 12, Score: 100},
			{Min: 9, Score: 75},
			{Min: 6, Score: 50},
			{Min: 3, Score: 25},
		},
		AerobicMinutesPerSet: 15,
		StretchMinutesPerSet: 10,
		IdealFattyAcids: FattyAcidMix{
			Saturated:       30,
			Monounsaturated: 40,
			Polyunsaturated: 25,
		},
		FattyAcidTolerance: 30,
		GLLimitFactor:      0.6,
		Food: FoodWeights{
			Protein:   0.20,
			Fat:       0.20,
			Carbs:     0.20,
			Calorie:   0.10,
			DIAAS:     0.05,
			FattyAcid: 0.05,
			GL:        0.05,
			Fiber:     0.05,
			Vitamin:   0.05,
			Mineral:   0.05,
		},
		Total: TotalWeights{
			Food:      0.60,
			Exercise:  0.30,
			Condition: 0.10,
		},
	}
}
