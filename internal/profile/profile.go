package profile

import (
	"encoding/json"
	"strings"

	"github.com/2beens/nutridiary/internal/nutrients"
)

// BodymakerStyles are the training styles scored with the stricter exercise tables:
// hypertrophy, strength, endurance and balanced.
var BodymakerStyles = []string{"筋肥大", "筋力", "持久力", "バランス"}

// bulkPurposes mark a weight gain goal.
var bulkPurposes = []string{"バルクアップ", "bulk"}

type UserProfile struct {
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage,omitempty"`
	LeanBodyMass      float64  `json:"leanBodyMass,omitempty"`
	Style             string   `json:"style"`
	Purpose           string   `json:"purpose"`
	// Targets, when set, override the resolver defaults.
	Targets *nutrients.Targets `json:"targets,omitempty"`
}

// UnmarshalJSON accepts the legacy bodyFat key.
func (p *UserProfile) UnmarshalJSON(data []byte) error {
	type plain UserProfile
	aux := struct {
		*plain
		BodyFat *float64 `json:"bodyFat"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if p.BodyFatPercentage == nil && aux.BodyFat != nil {
		p.BodyFatPercentage = aux.BodyFat
	}
	return nil
}

// LBM returns the lean body mass in kg. Without an explicit value it is derived
// from weight and body fat percentage; 0 means unknown.
func (p *UserProfile) LBM() float64 {
	if p == nil {
		return 0
	}
	if p.LeanBodyMass > 0 {
		return p.LeanBodyMass
	}
	if p.Weight > 0 && p.BodyFatPercentage != nil {
		return p.Weight * (1 - *p.BodyFatPercentage/100)
	}
	return 0
}

func (p *UserProfile) IsBodymaker() bool {
	if p == nil {
		return false
	}
	for _, s := range BodymakerStyles {
		if p.Style == s {
			return true
		}
	}
	return false
}

func (p *UserProfile) IsBulking() bool {
	if p == nil {
		return false
	}
	purpose := strings.ToLower(p.Purpose)
	for _, b := range bulkPurposes {
		if strings.Contains(purpose, b) {
			return true
		}
	}
	return false
}
