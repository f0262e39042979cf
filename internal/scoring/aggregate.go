package scoring

import (
	"github.com/2beens/nutridiary/internal/diary"
	"github.com/2beens/nutridiary/internal/nutrients"
)

// Totals are the aggregated nutrient amounts of a day's meals.
type Totals struct {
	Calories           float64 `json:"totalCalories"`
	Protein            float64 `json:"totalProtein"`
	Fat                float64 `json:"totalFat"`
	Carbs              float64 `json:"totalCarbs"`
	Sugar              float64 `json:"totalSugar"`
	Fiber              float64 `json:"totalFiber"`
	SolubleFiber       float64 `json:"totalSolubleFiber"`
	InsolubleFiber     float64 `json:"totalInsolubleFiber"`
	SaturatedFat       float64 `json:"totalSaturatedFat"`
	MonounsaturatedFat float64 `json:"totalMonounsaturatedFat"`
	PolyunsaturatedFat float64 `json:"totalPolyunsaturatedFat"`
	GL                 float64 `json:"totalGL"`
	// AvgDIAAS is the protein-weighted average DIAAS, 0 when no item qualifies.
	AvgDIAAS float64 `json:"avgDIAAS"`

	Vitamins nutrients.Map `json:"vitamins"`
	Minerals nutrients.Map `json:"minerals"`
}

// Aggregate sums nutrients over all meal items, scaling each item by its quantity ratio.
// Calories are taken from the meal entries, not recomputed from items.
func Aggregate(meals []diary.MealEntry) Totals {
	t := Totals{
		Vitamins: nutrients.Map{}.Subset(nutrients.VitaminKeys),
		Minerals: nutrients.Map{}.Subset(nutrients.MineralKeys),
	}

	var weightedDIAAS, diaasProtein float64
	for _, meal := range meals {
		t.Calories += meal.Calories
		for _, item := range meal.Items {
			ratio := item.Ratio()

			protein := item.Protein * ratio
			carbs := item.Carbs * ratio
			t.Protein += protein
			t.Fat += item.Fat * ratio
			t.Carbs += carbs
			t.Sugar += item.Sugar * ratio
			t.Fiber += item.Fiber * ratio
			t.SolubleFiber += item.SolubleFiber * ratio
			t.InsolubleFiber += item.InsolubleFiber * ratio
			t.SaturatedFat += item.SaturatedFat * ratio
			t.MonounsaturatedFat += item.MonounsaturatedFat * ratio
			t.PolyunsaturatedFat += item.PolyunsaturatedFat * ratio

			if item.GI > 0 && carbs > 0 {
				t.GL += item.GI * carbs / 100
			}
			if item.DIAAS > 0 && protein > 0 {
				weightedDIAAS += item.DIAAS * protein
				diaasProtein += protein
			}

			t.Vitamins.AddScaled(item.Vitamins, ratio)
			t.Minerals.AddScaled(item.Minerals, ratio)
		}
	}

	if diaasProtein > 0 {
		t.AvgDIAAS = weightedDIAAS / diaasProtein
	}

	return t
}
