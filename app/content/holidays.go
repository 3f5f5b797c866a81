package content

import (
	"sort"
	"time"
)

// CentralState labels holidays that carry no state of their own.
const CentralState = "Central"

// holidayMax is the sort key for holidays with no parseable date. Unlike
// the feed, where an unknown date means "oldest", an unknown-date holiday
// is a low-priority tail entry in an ascending calendar, so it sorts last.
// The two conventions are deliberate and must not be unified.
var holidayMax = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func holidaySortKey(t *time.Time) time.Time {
	if t == nil {
		return holidayMax
	}
	return *t
}

// Regroup turns a flat holiday list into per-state groups ordered by date
// ascending. Groups appear in order of first sight; every input item lands
// in exactly one group.
func Regroup(items []ResourceItem) []StateHolidayGroup {
	type bucket struct {
		holidays []ResourceItem
	}

	order := make([]string, 0)
	buckets := make(map[string]*bucket)

	for _, item := range items {
		state := item.State
		if state == "" {
			state = CentralState
		}

		b, ok := buckets[state]
		if !ok {
			b = &bucket{}
			buckets[state] = b
			order = append(order, state)
		}
		b.holidays = append(b.holidays, item)
	}

	groups := make([]StateHolidayGroup, 0, len(order))
	for _, state := range order {
		b := buckets[state]

		sort.SliceStable(b.holidays, func(i, j int) bool {
			return holidaySortKey(b.holidays[i].EffectiveDate).Before(holidaySortKey(b.holidays[j].EffectiveDate))
		})

		group := StateHolidayGroup{
			State:    state,
			Holidays: make([]StateHoliday, 0, len(b.holidays)),
		}
		for _, item := range b.holidays {
			group.Holidays = append(group.Holidays, StateHoliday{
				Name: item.Title,
				Date: FormatDMY(item.EffectiveDate),
				Day:  WeekdayName(item.EffectiveDate),
			})
		}

		groups = append(groups, group)
	}

	return groups
}
