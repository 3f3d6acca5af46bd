package domain

import "github.com/shopspring/decimal"

const productIDPrefix = "prod-"

// Product is a basic product: the finished output of a recipe sold as-is.
type Product struct {
	ID          string          `json:"id"`
	RecipeID    string          `json:"recipeId"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ProductType ProductType     `json:"productType"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl,omitempty"`
}

func ProductID(recipeID string) string {
	return productIDPrefix + recipeID
}

func ProductFromRecipe(r ProductRecipe) Product {
	return Product{
		ID:          ProductID(r.ID),
		RecipeID:    r.ID,
		Name:        r.Name,
		Description: r.Description,
		ProductType: r.ProductType,
		Price:       r.SellingPrice,
		ImageURL:    r.ImageURL,
	}
}
