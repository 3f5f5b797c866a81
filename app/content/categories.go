package content

// HolidaysCategory is the catalog category that renders as the per-state
// calendar instead of the generic list, and is excluded from the
// chronological feed.
const HolidaysCategory = "Holidays List"

// categoryLabels is the fixed catalog taxonomy, in display order.
var categoryLabels = []string{
	"Acts",
	"Forms",
	"Gazette",
	HolidaysCategory,
	"LWF",
	"Leave",
	"Wages",
	"Professional Tax",
	"Provident Fund",
	"Rules",
	"ESIC",
}

// Categories returns the ordered catalog taxonomy. Icons come from the
// same keyword rules items use, so a category and its items always agree.
func Categories() []Category {
	categories := make([]Category, 0, len(categoryLabels))
	for _, label := range categoryLabels {
		categories = append(categories, Category{
			ID:    label,
			Label: label,
			Icon:  ResolveIcon(label, SourceTypeResource),
		})
	}
	return categories
}

// KnownCategory reports whether the given ID is part of the taxonomy.
func KnownCategory(categoryID string) bool {
	for _, label := range categoryLabels {
		if label == categoryID {
			return true
		}
	}
	return false
}

// Partition filters the catalog down to one category. Pure equality on the
// category field; the holiday-view dispatch is the caller's branch, not
// this function's.
func Partition(catalog []ResourceItem, categoryID string) []ResourceItem {
	filtered := make([]ResourceItem, 0, len(catalog))
	for _, item := range catalog {
		if item.Category == categoryID {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// IsHolidayCategory reports whether the category routes to the per-state
// calendar view.
func IsHolidayCategory(categoryID string) bool {
	return categoryID == HolidaysCategory
}
