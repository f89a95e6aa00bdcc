package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("email is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrEmptyName        = errors.New("name cannot be blank")
	ErrInvalidGender    = errors.New("gender must be male or female")
	ErrInvalidAge       = errors.New("age must be between 1 and 120")
	ErrInvalidWeight    = errors.New("weight must be positive")
	ErrInvalidHeight    = errors.New("height must be positive")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")

	ErrEmptyMealName   = errors.New("meal name is required")
	ErrInvalidCalories = errors.New("calories must be positive")

	ErrInvalidUserID           = errors.New("invalid user ID")
	ErrInvalidSubscriptionType = errors.New("invalid subscription type")
	ErrInvalidDuration         = errors.New("duration must be 1, 6 or 12 months")
	ErrNegativePrice           = errors.New("price cannot be negative")

	ErrInvalidActivityLevel = errors.New("invalid activity level")
	ErrInvalidWeightGoal    = errors.New("invalid weight goal")
)
