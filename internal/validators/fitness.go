package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/ar-fit/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
	FieldGender   = "gender"
	FieldAge      = "age"
	FieldWeight   = "weight"
	FieldHeight   = "height"

	FieldCalories = "calories"

	FieldUserID   = "user_id"
	FieldType     = "type"
	FieldDuration = "duration"
	FieldPrice    = "price"

	FieldActivity = "activity"
	FieldGoal     = "goal"
)

const (
	minAge = 1
	maxAge = 120
)

var allowedActivityLevels = []models.ActivityLevel{
	models.ActivitySedentary,
	models.ActivityLight,
	models.ActivityModerate,
	models.ActivityActive,
	models.ActivityVeryActive,
}

var allowedWeightGoals = []models.WeightGoal{
	models.GoalLose,
	models.GoalMaintain,
	models.GoalGain,
}

// FitnessValidator validates user records, profile patches, meals,
// subscription activations and calorie requests.
type FitnessValidator struct {
}

func NewFitnessValidator() Validator {
	return &FitnessValidator{}
}

func (v *FitnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.ProfilePatch:
		return v.validateProfilePatch(ctx, value, fields...)
	case *models.ProfilePatch:
		return v.validateProfilePatch(ctx, *value, fields...)

	case models.Meal:
		return v.validateMeal(ctx, value, fields...)
	case *models.Meal:
		return v.validateMeal(ctx, *value, fields...)

	case models.ActivationRequest:
		return v.validateActivation(ctx, value, fields...)
	case *models.ActivationRequest:
		return v.validateActivation(ctx, *value, fields...)

	case models.CalorieRequest:
		return v.validateCalorieRequest(ctx, value, fields...)
	case *models.CalorieRequest:
		return v.validateCalorieRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateUser checks a record about to be registered. Optional profile
// scalars are only checked when set.
func (v *FitnessValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldGender, FieldAge, FieldWeight, FieldHeight}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" || !strings.Contains(user.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldGender:
			if user.Gender != "" && !isValidGender(user.Gender) {
				return ErrInvalidGender
			}
		case FieldAge:
			if user.Age != 0 && !isValidAge(user.Age) {
				return ErrInvalidAge
			}
		case FieldWeight:
			if user.Weight < 0 {
				return ErrInvalidWeight
			}
		case FieldHeight:
			if user.Height < 0 {
				return ErrInvalidHeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateProfilePatch(_ context.Context, patch models.ProfilePatch, fields ...string) error {
	if patch.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if len(fields) == 0 {
		fields = []string{FieldName, FieldGender, FieldAge, FieldWeight, FieldHeight}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
				return ErrEmptyName
			}
		case FieldGender:
			if patch.Gender != nil && !isValidGender(*patch.Gender) {
				return ErrInvalidGender
			}
		case FieldAge:
			if patch.Age != nil && !isValidAge(*patch.Age) {
				return ErrInvalidAge
			}
		case FieldWeight:
			if patch.Weight != nil && *patch.Weight <= 0 {
				return ErrInvalidWeight
			}
		case FieldHeight:
			if patch.Height != nil && *patch.Height <= 0 {
				return ErrInvalidHeight
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateMeal(_ context.Context, meal models.Meal, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCalories}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(meal.Name) == "" {
				return ErrEmptyMealName
			}
		case FieldCalories:
			if meal.Calories <= 0 {
				return ErrInvalidCalories
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateActivation(_ context.Context, req models.ActivationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldType, FieldDuration, FieldPrice}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == "" {
				return ErrInvalidUserID
			}
		case FieldType:
			if !req.Type.Valid() {
				return ErrInvalidSubscriptionType
			}
		case FieldDuration:
			if !slices.Contains(models.AllowedDurations, req.Duration) {
				return ErrInvalidDuration
			}
		case FieldPrice:
			if req.Price < 0 {
				return ErrNegativePrice
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FitnessValidator) validateCalorieRequest(_ context.Context, req models.CalorieRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldGender, FieldAge, FieldWeight, FieldHeight, FieldActivity, FieldGoal}
	}

	for _, f := range fields {
		switch f {
		case FieldGender:
			if !isValidGender(req.Gender) {
				return ErrInvalidGender
			}
		case FieldAge:
			if !isValidAge(req.Age) {
				return ErrInvalidAge
			}
		case FieldWeight:
			if req.Weight <= 0 {
				return ErrInvalidWeight
			}
		case FieldHeight:
			if req.Height <= 0 {
				return ErrInvalidHeight
			}
		case FieldActivity:
			if !slices.Contains(allowedActivityLevels, req.Activity) {
				return ErrInvalidActivityLevel
			}
		case FieldGoal:
			if req.Goal != "" && !slices.Contains(allowedWeightGoals, req.Goal) {
				return ErrInvalidWeightGoal
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidGender(g string) bool {
	return g == models.GenderMale || g == models.GenderFemale
}

func isValidAge(age int) bool {
	return age >= minAge && age <= maxAge
}
