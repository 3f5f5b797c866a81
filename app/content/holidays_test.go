package content

import "testing"

func holidayItem(title, state, effectiveDate string) ResourceItem {
	return ResourceItem{
		FeedItem:      FeedItem{Title: title, Category: HolidaysCategory},
		State:         state,
		EffectiveDate: ParseFirst(effectiveDate),
	}
}

func TestRegroup_ByStateDateAscending(t *testing.T) {
	items := []ResourceItem{
		holidayItem("Diwali", "MH", "2024-11-01"),
		holidayItem("Gudi Padwa", "MH", "2024-03-25"),
		holidayItem("Pongal", "TN", "2024-01-15"),
	}

	groups := Regroup(items)

	if len(groups) != 2 {
		t.Fatalf("Expected 2 state groups, got %d", len(groups))
	}

	mh := groups[0]
	if mh.State != "MH" {
		t.Fatalf("Expected first group 'MH' (insertion order), got %q", mh.State)
	}
	if len(mh.Holidays) != 2 {
		t.Fatalf("Expected 2 MH holidays, got %d", len(mh.Holidays))
	}
	if mh.Holidays[0].Name != "Gudi Padwa" || mh.Holidays[1].Name != "Diwali" {
		t.Errorf("Expected MH order [Gudi Padwa, Diwali], got [%s, %s]", mh.Holidays[0].Name, mh.Holidays[1].Name)
	}

	tn := groups[1]
	if tn.State != "TN" || len(tn.Holidays) != 1 || tn.Holidays[0].Name != "Pongal" {
		t.Errorf("Unexpected TN group: %+v", tn)
	}
}

func TestRegroup_Completeness(t *testing.T) {
	items := []ResourceItem{
		holidayItem("A", "MH", "2024-01-01"),
		holidayItem("B", "TN", "2024-02-01"),
		holidayItem("C", "MH", "garbage"),
		holidayItem("D", "", "2024-03-01"),
		holidayItem("E", "KA", ""),
	}

	groups := Regroup(items)

	total := 0
	for _, group := range groups {
		total += len(group.Holidays)
	}

	if total != len(items) {
		t.Errorf("Expected every input item in exactly one bucket: %d in, %d out", len(items), total)
	}
}

func TestRegroup_UnknownDatesSortLast(t *testing.T) {
	// Opposite of the feed's nil-date rule: the calendar puts unknown
	// dates at the tail, not the head.
	items := []ResourceItem{
		holidayItem("Unknown", "MH", ""),
		holidayItem("Known", "MH", "2024-06-01"),
	}

	groups := Regroup(items)

	if len(groups) != 1 {
		t.Fatalf("Expected 1 group, got %d", len(groups))
	}

	holidays := groups[0].Holidays
	if holidays[0].Name != "Known" || holidays[1].Name != "Unknown" {
		t.Errorf("Expected unknown-date holiday last, got [%s, %s]", holidays[0].Name, holidays[1].Name)
	}
	if holidays[1].Date != "N/A" {
		t.Errorf("Expected 'N/A' sentinel for unknown date, got %q", holidays[1].Date)
	}
	if holidays[1].Day != "TBA" {
		t.Errorf("Expected 'TBA' for unknown weekday, got %q", holidays[1].Day)
	}
}

func TestRegroup_MissingStateFallsBackToCentral(t *testing.T) {
	items := []ResourceItem{
		holidayItem("Republic Day", "", "2024-01-26"),
	}

	groups := Regroup(items)

	if len(groups) != 1 || groups[0].State != CentralState {
		t.Errorf("Expected the Central group, got %+v", groups)
	}
}

func TestRegroup_FormatsDateAndDay(t *testing.T) {
	items := []ResourceItem{
		holidayItem("Diwali", "MH", "2024-11-01"), // a Friday
	}

	groups := Regroup(items)

	holiday := groups[0].Holidays[0]
	if holiday.Date != "01-11-2024" {
		t.Errorf("Expected '01-11-2024', got %q", holiday.Date)
	}
	if holiday.Day != "Friday" {
		t.Errorf("Expected 'Friday', got %q", holiday.Day)
	}
}

func TestRegroup_Empty(t *testing.T) {
	groups := Regroup(nil)

	if len(groups) != 0 {
		t.Errorf("Expected no groups for empty input, got %d", len(groups))
	}
}
