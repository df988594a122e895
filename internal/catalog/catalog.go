// Package catalog holds the static car catalog the frontend's group
// creation form is populated from: brand → model → variant → transmission →
// ex-showroom price in rupees. The data is compiled in — it changes rarely
// and versioning it with the code keeps deploys atomic.
package catalog

import "sort"

// Variants maps variant name → transmission → price.
type Variants map[string]map[string]int64

// Brands returns all catalog brands in stable alphabetical order.
func Brands() []string {
	brands := make([]string, 0, len(cars))
	for b := range cars {
		brands = append(brands, b)
	}
	sort.Strings(brands)
	return brands
}

// Models returns the model → variants map for a brand. Unknown brands yield
// an empty map, not an error — the API contract is an empty object.
func Models(brand string) map[string]Variants {
	models, ok := cars[brand]
	if !ok {
		return map[string]Variants{}
	}
	return models
}
