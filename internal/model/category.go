package model

// IncomeCategory is a selectable income classification.
type IncomeCategory struct {
	Key   string
	Value string
}

// DefaultIncomeCategoryKey is the option preselected on a new income form.
const DefaultIncomeCategoryKey = "1"

// DefaultIncomeCategory is the label a new income form starts with.
const DefaultIncomeCategory = "Salary"

var incomeCategories = []IncomeCategory{
	{Key: "1", Value: "Salary"},
	{Key: "2", Value: "Freelance"},
	{Key: "3", Value: "Investment"},
}

// IncomeCategories returns the income catalog in display order.
// The returned slice is a copy; the catalog itself never changes at runtime.
func IncomeCategories() []IncomeCategory {
	out := make([]IncomeCategory, len(incomeCategories))
	copy(out, incomeCategories)
	return out
}

// LookupIncomeCategory returns the catalog entry registered under key.
func LookupIncomeCategory(key string) (IncomeCategory, bool) {
	for _, c := range incomeCategories {
		if c.Key == key {
			return c, true
		}
	}
	return IncomeCategory{}, false
}

// ResolveIncomeCategory maps a catalog key to its display label.
// Anything that is not a catalog key is returned unchanged.
func ResolveIncomeCategory(key string) string {
	if c, ok := LookupIncomeCategory(key); ok {
		return c.Value
	}
	return key
}
