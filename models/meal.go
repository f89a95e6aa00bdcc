package models

import "time"

// Meal is a single logged meal embedded in [User.Meals].
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	Date     time.Time `json:"date"`
}
