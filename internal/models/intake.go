package models

// WaterIntake is today's in-progress tally. It is a fast-path duplicate of
// today's ledger record and is reconciled with it on every mutation.
type WaterIntake struct {
	Count int    `json:"count"`
	Date  string `json:"date"` // YYYY-MM-DD format
}

// DayRecord is one finished (or in-progress, if Date is today) day of history.
type DayRecord struct {
	Date    string `json:"date"` // YYYY-MM-DD format
	Count   int    `json:"count"`
	Goal    int    `json:"goal"`
	GoalMet bool   `json:"goalMet"`
}

// NewDayRecord builds a ledger record, deriving GoalMet from count and goal.
func NewDayRecord(date string, count, goal int) DayRecord {
	return DayRecord{
		Date:    date,
		Count:   count,
		Goal:    goal,
		GoalMet: count >= goal,
	}
}

// Stats is the aggregate read served to the presentation layer.
type Stats struct {
	CurrentStreak int         `json:"currentStreak"`
	TotalGoalDays int         `json:"totalGoalDays"`
	WeeklyData    []DayRecord `json:"weeklyData"`
}
