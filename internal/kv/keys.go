package kv

import (
	"fmt"
	"time"
)

// Storage keys. The names are the persisted layout and are shared with the
// export format documentation, so they are part of the external interface.
const (
	UsersKey         = "ar-fit-users"
	UsersRevisionKey = "ar-fit-users-rev"
	SessionKey       = "ar-fit-user"
	ThemeKey         = "ar-fit-theme"
	LanguageKey      = "ar-fit-language"

	tasksKeyPrefix = "ar-fit-tasks-"
	visitKeySuffix = "-visit-count"
)

// DayLayout is the calendar-day format used in task keys.
const DayLayout = "2006-01-02"

// TasksKey builds the key holding a user's task list for one day.
func TasksKey(userID, day string) string {
	return fmt.Sprintf("%s%s-%s", tasksKeyPrefix, userID, day)
}

// VisitCountKey builds the key of a UI feature's visit counter.
func VisitCountKey(feature string) string {
	return feature + visitKeySuffix
}

// Day formats t as a local calendar day.
func Day(t time.Time) string {
	return t.Local().Format(DayLayout)
}
