package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidRecipe = errors.New("invalid recipe")

type RecipeLine struct {
	IngredientID string  `json:"ingredientId"`
	Amount       float64 `json:"amount"`
}

type ProductRecipe struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description,omitempty"`
	ProductType         ProductType     `json:"productType"`
	IngredientLines     []RecipeLine    `json:"ingredientLines"`
	OverheadCost        decimal.Decimal `json:"overheadCost"`
	ProfitMarginPercent decimal.Decimal `json:"profitMarginPercent"`
	RecipeYield         int             `json:"recipeYield"`
	SellingPrice        decimal.Decimal `json:"sellingPrice"`
	ImageURL            string          `json:"imageUrl,omitempty"`
}

func (r ProductRecipe) Validate() error {
	var errs []error
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if r.RecipeYield < 1 {
		errs = append(errs, errors.New("recipe yield must be at least 1"))
	}
	if r.OverheadCost.IsNegative() || r.ProfitMarginPercent.IsNegative() || r.SellingPrice.IsNegative() {
		errs = append(errs, errors.New("costs and prices must not be negative"))
	}
	for _, l := range r.IngredientLines {
		if strings.TrimSpace(l.IngredientID) == "" || l.Amount < 0 {
			errs = append(errs, errors.New("ingredient lines need an id and a non-negative amount"))
			break
		}
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidRecipe}, errs...)...)
	}
	return nil
}

// Yield is the batch size used for per-unit math; never below 1.
func (r ProductRecipe) Yield() int {
	return max(r.RecipeYield, 1)
}
