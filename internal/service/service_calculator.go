package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/ar-fit/internal/logger"
	"github.com/MKhiriev/ar-fit/internal/validators"
	"github.com/MKhiriev/ar-fit/models"
)

// activityFactors scale BMR to total daily energy expenditure.
var activityFactors = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

// goalAdjustments shift the daily target in kcal.
var goalAdjustments = map[models.WeightGoal]int{
	models.GoalLose:     -500,
	models.GoalMaintain: 0,
	models.GoalGain:     500,
}

// calculatorService is stateless; it only validates and computes.
type calculatorService struct {
	validator validators.Validator

	logger *logger.Logger
}

// NewCalculatorService returns the pure calorie and BMI calculator.
func NewCalculatorService(logger *logger.Logger) CalculatorService {
	return &calculatorService{
		validator: validators.NewFitnessValidator(),
		logger:    logger,
	}
}

// Calculate estimates daily calorie needs with the Mifflin-St Jeor
// equation and classifies the body mass index.
//
// BMR is 10*weight + 6.25*height - 5*age, plus 5 for men or minus 161
// for women. The target is BMR times the activity factor, adjusted by
// the goal.
//
// Returns [ErrInvalidDataProvided] for out-of-range inputs.
func (c *calculatorService) Calculate(ctx context.Context, req models.CalorieRequest) (models.CalorieResult, error) {
	if err := c.validator.Validate(ctx, req); err != nil {
		return models.CalorieResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	bmr := 10*req.Weight + 6.25*req.Height - 5*float64(req.Age)
	if req.Gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	maintenance := int(math.Round(bmr * activityFactors[req.Activity]))
	bmi := BMI(req.Weight, req.Height)

	return models.CalorieResult{
		BMR:         int(math.Round(bmr)),
		Maintenance: maintenance,
		Target:      maintenance + goalAdjustments[req.Goal],
		BMI:         math.Round(bmi*10) / 10,
		BMICategory: BMICategory(bmi),
	}, nil
}

// BMI expects weight in kilograms and height in centimeters.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	h := heightCm / 100
	return weightKg / (h * h)
}

// BMICategory names the WHO weight band of bmi.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
