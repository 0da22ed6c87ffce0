package domain

// Totals is an aggregated nutrient amount. The zero value means "no
// contribution", which is what an unknown product resolves to.
type Totals struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Minerals float64 `json:"minerals"`
}

// Add returns the element-wise sum of two totals.
func (t Totals) Add(o Totals) Totals {
	return Totals{
		Calories: t.Calories + o.Calories,
		Proteins: t.Proteins + o.Proteins,
		Minerals: t.Minerals + o.Minerals,
	}
}

// Catalog resolves product names during nutrient arithmetic. Lookups
// that miss yield a zero contribution, never an error.
type Catalog map[string]Product

// NewCatalog builds a Catalog from a product list.
func NewCatalog(products []Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.Name] = p
	}
	return c
}

// Resolve returns the product for name, reporting whether it exists.
func (c Catalog) Resolve(name string) (Product, bool) {
	p, ok := c[name]
	return p, ok
}

// Contribution returns the nutrients contributed by quantity units of
// the named product scaled by a meal's serving multiplier. An unknown
// product contributes zero.
func (c Catalog) Contribution(name string, quantity, servings float64) Totals {
	p, ok := c[name]
	if !ok {
		return Totals{}
	}
	return Totals{
		Calories: p.Calories * quantity * servings,
		Proteins: p.Proteins * quantity * servings,
		Minerals: p.Minerals * quantity * servings,
	}
}

// Totals sums the contribution of every item in the meal, each scaled
// by the meal's serving multiplier.
func (m Meal) Totals(c Catalog) Totals {
	var sum Totals
	for _, it := range m.Items {
		sum = sum.Add(c.Contribution(it.Product, it.Quantity, m.Servings))
	}
	return sum
}

// Totals sums the contribution of every meal logged that day, resolving
// each product through the catalog at call time. Edits to a product
// therefore retroactively change historical totals.
func (l DailyLog) Totals(c Catalog) Totals {
	var sum Totals
	for _, m := range l.Meals {
		sum = sum.Add(m.Totals(c))
	}
	return sum
}
