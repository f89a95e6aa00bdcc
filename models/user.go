// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Gender values accepted for [User.Gender].
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User is the persisted user record. The JSON field names are the stored
// format of the users collection and of the export file, so they must not
// change.
type User struct {
	// ID is an opaque unique identifier assigned on registration. Immutable.
	ID string `json:"id"`

	// Email is unique across all users at registration time.
	Email string `json:"email"`

	// Password is kept verbatim and compared verbatim on login.
	Password string `json:"password"`

	Name   string  `json:"name"`
	Gender string  `json:"gender,omitempty"`
	Age    int     `json:"age,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Height float64 `json:"height,omitempty"`

	// LoggedIn mirrors whether this user is the one held by the session.
	LoggedIn bool `json:"loggedIn"`

	// CreatedAt is set once on registration. Immutable.
	CreatedAt time.Time `json:"createdAt"`

	// BodyProblems and DietRestrictions are tag sets collected by the
	// onboarding surveys. Order carries no meaning.
	BodyProblems     []string `json:"bodyProblems"`
	DietRestrictions []string `json:"dietRestrictions"`

	// Meals is append-only and ordered by creation.
	Meals []Meal `json:"meals"`

	Stats         Stats         `json:"stats"`
	Subscriptions Subscriptions `json:"subscriptions"`
}

// Stats holds per-weekday counters indexed Monday=0 .. Sunday=6.
type Stats struct {
	Calories          [7]int `json:"calories"`
	Steps             [7]int `json:"steps"`
	WorkoutsCompleted int    `json:"workoutsCompleted"`
	Streak            int    `json:"streak"`

	// LastCompletedDay is the YYYY-MM-DD of the last day whose tasks were
	// all completed. Drives Streak.
	LastCompletedDay string `json:"lastCompletedDay,omitempty"`
}

// ProfilePatch carries the profile scalars a user may change. Nil fields
// are left untouched.
type ProfilePatch struct {
	Name   *string  `json:"name,omitempty"`
	Gender *string  `json:"gender,omitempty"`
	Age    *int     `json:"age,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.Gender == nil && p.Age == nil && p.Weight == nil && p.Height == nil
}

// WeekdayIndex converts a time to the Monday=0 .. Sunday=6 index used by
// [Stats].
func WeekdayIndex(t time.Time) int {
	day := int(t.Weekday())
	if day == 0 {
		return 6
	}
	return day - 1
}
