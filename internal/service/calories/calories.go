// Package calories computes daily calorie targets with the Mifflin-St Jeor
// equation and a simple macro split.
package calories

import "math"

type Params struct {
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	WeightKG      int    `json:"weight"`
	HeightCM      int    `json:"height"`
	ActivityLevel string `json:"activityLevel"`
	Goal          string `json:"goal"`
}

type Result struct {
	BMR         int `json:"bmr"`
	Maintenance int `json:"maintenance"`
	Target      int `json:"target"`
	ProteinG    int `json:"protein"`
	CarbsG      int `json:"carbs"`
	FatsG       int `json:"fats"`
}

const (
	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
	goalAdjustment         = 500
)

func activityMultiplier(level string) float64 {
	switch level {
	case "light":
		return 1.375
	case "moderate":
		return 1.55
	case "active":
		return 1.725
	case "very-active":
		return 1.9
	default:
		return 1.2 // sedentary
	}
}

func Calculate(params Params) Result {
	bmr := 10*float64(params.WeightKG) + 6.25*float64(params.HeightCM) - 5*float64(params.Age)
	if params.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	maintenance := int(math.Round(bmr * activityMultiplier(params.ActivityLevel)))

	target := maintenance
	switch params.Goal {
	case "lose":
		target = maintenance - goalAdjustment
	case "gain":
		target = maintenance + goalAdjustment
	}

	// Protein at 2g per kg of bodyweight, fat at 25% of target calories,
	// carbs from whatever calories remain.
	protein := params.WeightKG * 2
	fats := int(math.Round(float64(target) * 0.25 / caloriesPerGramFat))
	carbs := int(math.Round(float64(target-protein*caloriesPerGramProtein-fats*caloriesPerGramFat) / caloriesPerGramCarbs))

	return Result{
		BMR:         int(math.Round(bmr)),
		Maintenance: maintenance,
		Target:      target,
		ProteinG:    protein,
		CarbsG:      carbs,
		FatsG:       fats,
	}
}
