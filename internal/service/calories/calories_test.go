package calories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	assert := assert.New(t)

	t.Run("male moderate lose", func(t *testing.T) {
		result := Calculate(Params{
			Age:           30,
			Gender:        "male",
			WeightKG:      80,
			HeightCM:      180,
			ActivityLevel: "moderate",
			Goal:          "lose",
		})

		assert.Equal(1780, result.BMR)
		assert.Equal(2759, result.Maintenance)
		assert.Equal(2259, result.Target)
		assert.Equal(160, result.ProteinG)
		assert.Equal(63, result.FatsG)
		assert.Equal(263, result.CarbsG)
	})

	t.Run("female sedentary maintain", func(t *testing.T) {
		result := Calculate(Params{
			Age:           25,
			Gender:        "female",
			WeightKG:      60,
			HeightCM:      165,
			ActivityLevel: "sedentary",
			Goal:          "maintain",
		})

		assert.Equal(1345, result.BMR)
		assert.Equal(1614, result.Maintenance)
		assert.Equal(result.Maintenance, result.Target)
		assert.Equal(120, result.ProteinG)
	})

	t.Run("gain adds a surplus", func(t *testing.T) {
		params := Params{
			Age:           40,
			Gender:        "male",
			WeightKG:      90,
			HeightCM:      175,
			ActivityLevel: "active",
			Goal:          "gain",
		}
		result := Calculate(params)
		params.Goal = "maintain"
		baseline := Calculate(params)

		assert.Equal(baseline.Target+500, result.Target)
	})

	t.Run("macros account for target calories", func(t *testing.T) {
		result := Calculate(Params{
			Age:           30,
			Gender:        "male",
			WeightKG:      80,
			HeightCM:      180,
			ActivityLevel: "moderate",
			Goal:          "maintain",
		})

		total := result.ProteinG*4 + result.CarbsG*4 + result.FatsG*9
		assert.InDelta(result.Target, total, 4, "rounding may drift by a few calories")
	})
}
