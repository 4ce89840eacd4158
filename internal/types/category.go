// README: Place category enumeration shared by every flow that accepts a category.
package types

import "strings"

type Category string

const (
	CategoryLodging           Category = "lodging"
	CategoryRestaurant        Category = "restaurant"
	CategoryCafe              Category = "café"
	CategoryTouristAttraction Category = "tourist-attraction"
)

// Categories is the closed category set in enumeration order.
// Index-aligned tables (such as canned queries) depend on this order.
var Categories = []Category{
	CategoryLodging,
	CategoryRestaurant,
	CategoryCafe,
	CategoryTouristAttraction,
}

// categoryAliases maps the labels the mobile UI sends onto the canonical set.
var categoryAliases = map[string]Category{
	"숙박":   CategoryLodging,
	"식당":   CategoryRestaurant,
	"카페":   CategoryCafe,
	"cafe": CategoryCafe,
	"관광지":  CategoryTouristAttraction,
}

// ParseCategory validates v against the fixed category set.
func ParseCategory(v string) (Category, error) {
	trimmed := strings.TrimSpace(v)
	for _, c := range Categories {
		if string(c) == trimmed {
			return c, nil
		}
	}
	if c, ok := categoryAliases[trimmed]; ok {
		return c, nil
	}
	return "", &InvalidCategoryError{Given: v, Allowed: Categories}
}

// Index returns the position of c in Categories, or -1.
func (c Category) Index() int {
	for i, known := range Categories {
		if known == c {
			return i
		}
	}
	return -1
}

func (c Category) String() string {
	return string(c)
}
