package nutrients

// Map holds amounts per micronutrient key. A nil Map reads as all zeros.
type Map map[Key]float64

// Get returns the amount for k, 0 when absent.
func (m Map) Get(k Key) float64 {
	if m == nil {
		return 0
	}
	return m[k]
}

// AddScaled accumulates every entry of other, multiplied by ratio, into m.
func (m Map) AddScaled(other Map, ratio float64) {
	for k, v := range other {
		if v == 0 {
			continue
		}
		m[k] += v * ratio
	}
}

// Subset returns a copy of m restricted to keys, with zero entries for missing keys.
func (m Map) Subset(keys []Key) Map {
	out := make(Map, len(keys))
	for _, k := range keys {
		out[k] = m.Get(k)
	}
	return out
}

// Targets are the per-user daily intake targets. Supplied by a target resolver,
// read-only for the scoring code.
type Targets struct {
	Calories float64 `json:"calories" toml:"calories"`
	Protein  float64 `json:"protein" toml:"protein"`
	Fat      float64 `json:"fat" toml:"fat"`
	Carbs    float64 `json:"carbs" toml:"carbs"`
	// Micros holds the 13 vitamin and 13 mineral targets plus fiber.
	Micros Map `json:"micros" toml:"micros"`
}

// FiberTarget returns the fiber target, falling back to 20g when none is set.
func (t Targets) FiberTarget() float64 {
	if f := t.Micros.Get(Fiber); f > 0 {
		return f
	}
	return DefaultFiberTarget
}

const DefaultFiberTarget = 20.0
