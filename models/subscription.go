// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubscriptionType identifies what a subscription grants access to.
type SubscriptionType string

const (
	// SubscriptionWorkout grants access to workout features.
	SubscriptionWorkout SubscriptionType = "workout"
	// SubscriptionNutrition grants access to nutrition features.
	SubscriptionNutrition SubscriptionType = "nutrition"
	// SubscriptionCombo grants both and is stored in both slots.
	SubscriptionCombo SubscriptionType = "combo"
)

// Valid reports whether t is one of the known subscription types.
func (t SubscriptionType) Valid() bool {
	switch t {
	case SubscriptionWorkout, SubscriptionNutrition, SubscriptionCombo:
		return true
	}
	return false
}

// AllowedDurations lists the subscription lengths, in months, that can be
// purchased.
var AllowedDurations = []int{1, 6, 12}

// Subscription is a time-bounded entitlement. It is never deleted: once
// EndDate has passed it is simply inactive.
type Subscription struct {
	Type      SubscriptionType `json:"type"`
	Duration  int              `json:"duration"`
	StartDate time.Time        `json:"startDate"`
	EndDate   time.Time        `json:"endDate"`
	Price     float64          `json:"price"`
}

// ActiveAt reports whether the subscription ends strictly after now.
func (s *Subscription) ActiveAt(now time.Time) bool {
	return s != nil && s.EndDate.After(now)
}

// Subscriptions holds one optional slot per kind. A combo purchase writes
// the same value into both slots.
type Subscriptions struct {
	Workout   *Subscription `json:"workout,omitempty"`
	Nutrition *Subscription `json:"nutrition,omitempty"`
}

// Plan is a purchasable subscription offer.
type Plan struct {
	Type     SubscriptionType `json:"type"`
	Duration int              `json:"duration"`
	Price    float64          `json:"price"`
}

// DefaultPlans is the price list offered by the client interfaces.
var DefaultPlans = []Plan{
	{Type: SubscriptionWorkout, Duration: 1, Price: 300},
	{Type: SubscriptionWorkout, Duration: 6, Price: 1500},
	{Type: SubscriptionWorkout, Duration: 12, Price: 2700},
	{Type: SubscriptionNutrition, Duration: 1, Price: 250},
	{Type: SubscriptionNutrition, Duration: 6, Price: 1200},
	{Type: SubscriptionNutrition, Duration: 12, Price: 2200},
	{Type: SubscriptionCombo, Duration: 1, Price: 500},
	{Type: SubscriptionCombo, Duration: 6, Price: 3000},
	{Type: SubscriptionCombo, Duration: 12, Price: 5000},
}

// ActivationRequest asks to start a subscription for UserID, who must be
// the session user.
type ActivationRequest struct {
	UserID   string           `json:"userId"`
	Type     SubscriptionType `json:"type"`
	Duration int              `json:"duration"`
	Price    float64          `json:"price"`
}
