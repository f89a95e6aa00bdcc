package models

// ActivityLevel scales the basal metabolic rate into daily energy needs.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// WeightGoal shifts the maintenance calories up or down.
type WeightGoal string

const (
	GoalLose     WeightGoal = "lose"
	GoalMaintain WeightGoal = "maintain"
	GoalGain     WeightGoal = "gain"
)

// CalorieRequest is the input of the calorie calculator.
type CalorieRequest struct {
	Gender   string        `json:"gender"`
	Age      int           `json:"age"`
	Weight   float64       `json:"weight"`
	Height   float64       `json:"height"`
	Activity ActivityLevel `json:"activity"`
	Goal     WeightGoal    `json:"goal"`
}

// CalorieResult is the output of the calorie calculator.
type CalorieResult struct {
	BMR         int     `json:"bmr"`
	Maintenance int     `json:"maintenance"`
	Target      int     `json:"target"`
	BMI         float64 `json:"bmi"`
	BMICategory string  `json:"bmiCategory"`
}
