package valueobjects

import "fmt"

// Category is the classifier's label for an intake. It is assigned once at
// creation and never set by clients.
type Category string

const (
	CategoryBilling          Category = "billing"
	CategoryTechnicalSupport Category = "technical_support"
	CategoryNewMatterProject Category = "new_matter_project"
	CategoryOther            Category = "other"
)

var validCategories = map[Category]bool{
	CategoryBilling:          true,
	CategoryTechnicalSupport: true,
	CategoryNewMatterProject: true,
	CategoryOther:            true,
}

// AllCategories lists every category in classifier evaluation order, with the
// fallback last.
func AllCategories() []Category {
	return []Category{
		CategoryBilling,
		CategoryTechnicalSupport,
		CategoryNewMatterProject,
		CategoryOther,
	}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	return validCategories[c]
}

func (c Category) IsOther() bool {
	return c == CategoryOther
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
