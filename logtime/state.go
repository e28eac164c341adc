package logtime

// GoalState remembers which periods already had their goal notified.
type GoalState struct {
	// WeekReached is the first counted day of the week, see weekKey.
	WeekReached  Date   `json:"week_reached"`
	MonthReached string `json:"month_reached"`
}

type GoalStateRepository interface {
	GetGoalState(login string) (GoalState, error)
	SaveGoalState(login string, s GoalState) error
}
