package domain

import "context"

// DayFormat is the calendar-day layout used throughout: "2006-01-02".
const DayFormat = "2006-01-02"

// DailyLog holds every meal a user logged on one calendar day. Entries
// are created lazily on first log and only ever appended to.
type DailyLog struct {
	Username string `json:"username"`
	Day      string `json:"day"`
	Meals    []Meal `json:"meals"`
}

// LogRepository is the port for daily-log persistence. AppendMeal
// creates the (username, day) entry if absent and appends the meal.
// ListLogs returns a user's entries ordered by day descending.
type LogRepository interface {
	AppendMeal(ctx context.Context, username, day string, m Meal) error
	ListLogs(ctx context.Context, username string) ([]DailyLog, error)
}
