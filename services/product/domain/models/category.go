package models

import "fmt"

// Category is a value object for the fixed product category set.
type Category string

// The enumerated categories. Records never carry a value outside this set;
// ParseCategory is the only way in.
const (
	CategoryElectronics Category = "electronics"
	CategoryBooks       Category = "books"
	CategoryClothing    Category = "clothing"
	CategoryFood        Category = "food"
	CategoryOther       Category = "other"
)

var validCategories = map[Category]struct{}{
	CategoryElectronics: {},
	CategoryBooks:       {},
	CategoryClothing:    {},
	CategoryFood:        {},
	CategoryOther:       {},
}

// ParseCategory validates s against the enumerated category set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := validCategories[c]; !ok {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Categories returns the enumerated set in declaration order.
func Categories() []Category {
	return []Category{CategoryElectronics, CategoryBooks, CategoryClothing, CategoryFood, CategoryOther}
}

// String returns the underlying string value.
func (c Category) String() string {
	return string(c)
}
