package diary

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/2beens/nutridiary/internal/nutrients"
)

// UnmarshalJSON accepts both stored shapes of a meal item: nested vitamins/minerals
// objects and flat top-level micronutrient keys. Both are added up into the item's maps,
// and the quantity kind is resolved from the unit when not given explicitly.
func (i *MealItem) UnmarshalJSON(data []byte) error {
	data = coerceNumbers(data, mealItemNumbers, nil)

	type plain MealItem
	aux := struct {
		*plain
		Vitamins map[string]json.RawMessage `json:"vitamins"`
		Minerals map[string]json.RawMessage `json:"minerals"`
	}{plain: (*plain)(i)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}

	i.Vitamins, i.Minerals = normalizeMicros(aux.Vitamins, aux.Minerals, flat)
	if i.Kind == "" {
		i.Kind = KindForUnit(i.Unit)
	}

	return nil
}

// normalizeMicros builds the vitamin and mineral maps of an item. Aliases
// accumulate into their canonical key (folate adds to folicAcid, a nested A to
// vitaminA) and amounts of the same key from different shapes are summed.
// Short vitamin names are only recognized inside the nested vitamins object.
func normalizeMicros(nestedVitamins, nestedMinerals, flat map[string]json.RawMessage) (vitamins, minerals nutrients.Map) {
	all := collectMicros(nestedVitamins, nutrients.CanonicalNested)
	for _, other := range []nutrients.Map{
		collectMicros(nestedMinerals, nutrients.Canonical),
		collectMicros(flat, nutrients.Canonical),
	} {
		for k, v := range other {
			all[k] += v
		}
	}

	vitamins = nutrients.Map{}
	minerals = nutrients.Map{}
	for k, v := range all {
		if nutrients.IsVitamin(k) {
			vitamins[k] = v
		} else {
			minerals[k] = v
		}
	}
	return vitamins, minerals
}

func collectMicros(raw map[string]json.RawMessage, canonical func(string) (nutrients.Key, bool)) nutrients.Map {
	out := nutrients.Map{}
	for name, value := range raw {
		key, ok := canonical(name)
		if !ok {
			continue
		}
		if f := lenientNumber(value); f != 0 {
			out[key] += f
		}
	}
	return out
}

// lenientNumber reads a JSON number or numeric string, anything else is 0.
func lenientNumber(raw json.RawMessage) float64 {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f
		}
	}
	return 0
}

var mealItemNumbers = []string{
	"amount", "protein", "fat", "carbs", "sugar", "fiber", "solubleFiber", "insolubleFiber",
	"saturatedFat", "monounsaturatedFat", "polyunsaturatedFat", "gi", "diaas",
}

var (
	conditionNumbers = []string{"weight", "bodyWeight", "bodyFat"}
	conditionRatings = []string{"sleepHours", "sleepQuality", "stress", "appetite", "digestion", "focus"}
)

// coerceNumbers rewrites the named fields of a JSON object into plain numbers.
// Numeric strings are parsed, other non-numbers become 0 and null is kept.
// intFields are rounded to whole numbers. Anything but an object is returned as is.
func coerceNumbers(data []byte, floatFields, intFields []string) []byte {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil || obj == nil {
		return data
	}

	changed := false
	for _, name := range floatFields {
		raw, ok := obj[name]
		if !ok || isNull(raw) {
			continue
		}
		var f float64
		if json.Unmarshal(raw, &f) == nil {
			continue
		}
		obj[name] = json.RawMessage(strconv.FormatFloat(lenientNumber(raw), 'f', -1, 64))
		changed = true
	}
	for _, name := range intFields {
		raw, ok := obj[name]
		if !ok || isNull(raw) {
			continue
		}
		var n int
		if json.Unmarshal(raw, &n) == nil {
			continue
		}
		obj[name] = json.RawMessage(strconv.FormatInt(int64(math.Round(lenientNumber(raw))), 10))
		changed = true
	}
	if !changed {
		return data
	}

	coerced, err := json.Marshal(obj)
	if err != nil {
		return data
	}
	return coerced
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// UnmarshalJSON reads calories leniently.
func (m *MealEntry) UnmarshalJSON(data []byte) error {
	type plain MealEntry
	return json.Unmarshal(coerceNumbers(data, []string{"calories"}, nil), (*plain)(m))
}

// UnmarshalJSON reads the duration leniently.
func (e *ExerciseEntry) UnmarshalJSON(data []byte) error {
	type plain ExerciseEntry
	return json.Unmarshal(coerceNumbers(data, []string{"duration"}, nil), (*plain)(e))
}

// UnmarshalJSON reads weight, reps and duration leniently.
func (e *SetEntry) UnmarshalJSON(data []byte) error {
	type plain SetEntry
	return json.Unmarshal(coerceNumbers(data, []string{"weight", "duration"}, []string{"reps"}), (*plain)(e))
}

// UnmarshalJSON folds the legacy bodyWeight key into weight. Numbers are read leniently.
func (c *ConditionEntry) UnmarshalJSON(data []byte) error {
	data = coerceNumbers(data, conditionNumbers, conditionRatings)

	type plain ConditionEntry
	aux := struct {
		*plain
		BodyWeight *float64 `json:"bodyWeight"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if c.Weight == nil && aux.BodyWeight != nil {
		c.Weight = aux.BodyWeight
	}
	return nil
}

// UnmarshalJSON accepts the legacy is_rest_day key.
func (r *Routine) UnmarshalJSON(data []byte) error {
	type plain Routine
	aux := struct {
		*plain
		LegacyRestDay *bool `json:"is_rest_day"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.LegacyRestDay != nil && *aux.LegacyRestDay {
		r.IsRestDay = true
	}
	return nil
}
