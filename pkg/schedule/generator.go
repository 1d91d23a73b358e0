package schedule

import (
	"errors"
	"fmt"
	"sort"

	"growsphere/pkg/plan/types"
)

const WeeksPerMonth = 4

// MaxGrowthPeriodMonths bounds growth periods accepted from requests.
// Generate itself takes any positive value.
const MaxGrowthPeriodMonths = 120

var ErrInvalidGrowthPeriod = errors.New("growth period must be at least 1 month")

type activityTemplate struct {
	title string
	desc  string
}

var templates = map[types.ActivityKind]activityTemplate{
	types.SoilPreparation: {"Soil Preparation", "Prepare and test soil, add organic matter"},
	types.Planting:        {"Seeding/Planting", "Plant seeds or seedlings according to spacing requirements"},
	types.Fertilizing:     {"Fertilizing", "Apply fertilizer as per plant requirements"},
	types.PestControl:     {"Pest Control", "Check for pests and apply control measures"},
	types.Harvesting:      {"Harvesting", "Harvest mature crops"},
}

// DailyReminders are the watering reminder times attached to every plan.
var DailyReminders = []string{"07:00", "17:00"}

func newActivity(week int, kind types.ActivityKind) types.Activity {
	t := templates[kind]
	return types.Activity{Week: week, Kind: kind, Title: t.title, Description: t.desc}
}

// Generate builds the week-by-week activity timeline for a growth period and
// buckets it into months labelled from startMonth.
func Generate(growthPeriodMonths int, startMonth string) (types.CalendarPlan, error) {
	if growthPeriodMonths < 1 {
		return types.CalendarPlan{}, fmt.Errorf("%w: got %d", ErrInvalidGrowthPeriod, growthPeriodMonths)
	}
	totalWeeks := growthPeriodMonths * WeeksPerMonth
	acts := Activities(totalWeeks)

	months := (totalWeeks + WeeksPerMonth - 1) / WeeksPerMonth
	buckets := make([]types.MonthBucket, months)
	for i := range buckets {
		buckets[i] = types.MonthBucket{
			Index:      i,
			Number:     i + 1,
			Label:      MonthLabel(startMonth, i),
			Activities: []types.Activity{},
		}
	}
	for _, a := range acts {
		idx := MonthIndex(a.Week)
		buckets[idx].Activities = append(buckets[idx].Activities, a)
	}

	return types.CalendarPlan{
		GrowthPeriodMonths: growthPeriodMonths,
		StartMonth:         startMonth,
		TotalWeeks:         totalWeeks,
		MonthCount:         months,
		Activities:         acts,
		Months:             buckets,
		DailyReminders:     append([]string(nil), DailyReminders...),
	}, nil
}

// Activities emits the tasks for a timeline of totalWeeks, sorted by week.
// Same-week entries keep emission order: fertilizing, pest control, harvesting.
func Activities(totalWeeks int) []types.Activity {
	var out []types.Activity
	out = append(out, newActivity(1, types.SoilPreparation))
	out = append(out, newActivity(2, types.Planting))
	for w := 4; w <= totalWeeks; w += 4 {
		out = append(out, newActivity(w, types.Fertilizing))
	}
	for w := 6; w <= totalWeeks; w += 2 {
		out = append(out, newActivity(w, types.PestControl))
	}
	// harvest window is the final four weeks, never before week 1
	start := totalWeeks - 3
	if start < 1 {
		start = 1
	}
	for w := start; w <= totalWeeks; w++ {
		out = append(out, newActivity(w, types.Harvesting))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Week < out[j].Week })
	return out
}

// MonthIndex returns the 0-based month bucket of a 1-based week.
func MonthIndex(week int) int {
	return (week+WeeksPerMonth-1)/WeeksPerMonth - 1
}
