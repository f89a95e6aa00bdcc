// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TaskCategory is the closed set of exercise categories.
type TaskCategory string

const (
	CategoryStrength    TaskCategory = "strength"
	CategoryCardio      TaskCategory = "cardio"
	CategoryFlexibility TaskCategory = "flexibility"
)

// CaloriesBurned returns the fixed calorie credit for completing one task
// of the category.
func (c TaskCategory) CaloriesBurned() int {
	switch c {
	case CategoryStrength:
		return 150
	case CategoryCardio:
		return 250
	case CategoryFlexibility:
		return 80
	}
	return 0
}

// DailyTask is one generated exercise for a user's calendar day.
type DailyTask struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    TaskCategory `json:"category"`
	Completed   bool         `json:"completed"`
}

// DayProgress is the derived state of a day's task list. Percentage is
// completed/total*100, unrounded; displays round it.
type DayProgress struct {
	Day            string  `json:"day"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	Percentage     float64 `json:"percentage"`
	CaloriesBurned int     `json:"caloriesBurned"`
}
