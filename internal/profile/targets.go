package profile

import (
	"context"

	"github.com/2beens/nutridiary/internal/nutrients"
)

// TargetResolver supplies the daily nutrient targets for a profile.
type TargetResolver interface {
	Resolve(ctx context.Context, p *UserProfile) (nutrients.Targets, error)
}

// StaticTargetResolver serves configured default targets, overlaid with any
// explicit targets stored in the profile.
type StaticTargetResolver struct {
	defaults nutrients.Targets
}

func NewStaticTargetResolver(defaults nutrients.Targets) *StaticTargetResolver {
	return &StaticTargetResolver{
		defaults: defaults,
	}
}

func (r *StaticTargetResolver) Resolve(_ context.Context, p *UserProfile) (nutrients.Targets, error) {
	targets := nutrients.Targets{
		Calories: r.defaults.Calories,
		Protein:  r.defaults.Protein,
		Fat:      r.defaults.Fat,
		Carbs:    r.defaults.Carbs,
		Micros:   nutrients.Map{},
	}
	for k, v := range r.defaults.Micros {
		targets.Micros[k] = v
	}

	if p == nil || p.Targets == nil {
		return targets, nil
	}

	own := p.Targets
	if own.Calories > 0 {
		targets.Calories = own.Calories
	}
	if own.Protein > 0 {
		targets.Protein = own.Protein
	}
	if own.Fat > 0 {
		targets.Fat = own.Fat
	}
	if own.Carbs > 0 {
		targets.Carbs = own.Carbs
	}
	for k, v := range own.Micros {
		if v > 0 {
			targets.Micros[k] = v
		}
	}

	return targets, nil
}
