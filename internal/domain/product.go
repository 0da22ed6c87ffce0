package domain

import "context"

// Product is a named food item with nutrient values defined per one
// unit of its declared measurement unit. Names are globally unique.
type Product struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Minerals float64 `json:"minerals"`
}

// ProductRepository is the port for catalog persistence. SaveProduct
// inserts or overwrites the entry for the product's name. GetProduct
// returns nil (not an error) when the name is unknown.
type ProductRepository interface {
	SaveProduct(ctx context.Context, p Product) error
	GetProduct(ctx context.Context, name string) (*Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
}
