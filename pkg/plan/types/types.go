package types

type ActivityKind string

const (
	SoilPreparation ActivityKind = "soil_preparation"
	Planting        ActivityKind = "planting"
	Fertilizing     ActivityKind = "fertilizing"
	PestControl     ActivityKind = "pest_control"
	Harvesting      ActivityKind = "harvesting"
)

// Activity is one farming task placed on a 1-based week of the growth timeline.
type Activity struct {
	Week        int          `json:"week"`
	Kind        ActivityKind `json:"kind"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

type MonthBucket struct {
	Index      int        `json:"index"`  // 0-based offset from the start month
	Number     int        `json:"number"` // "Month N" as shown to the user
	Label      string     `json:"label"`
	Activities []Activity `json:"activities"`
}

type CalendarPlan struct {
	GrowthPeriodMonths int           `json:"growth_period_months"`
	StartMonth         string        `json:"start_month"`
	TotalWeeks         int           `json:"total_weeks"`
	MonthCount         int           `json:"month_count"`
	Activities         []Activity    `json:"activities"`
	Months             []MonthBucket `json:"months"`
	DailyReminders     []string      `json:"daily_reminders"` // HH:MM watering reminders
}
