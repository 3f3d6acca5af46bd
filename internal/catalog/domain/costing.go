package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

type Costing struct {
	RecipeID       string          `json:"recipeId"`
	IngredientCost decimal.Decimal `json:"ingredientCost"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	CostPerUnit    decimal.Decimal `json:"costPerUnit"`
	SuggestedPrice decimal.Decimal `json:"suggestedPrice"`
}

// ComputeCosting prices a recipe against the inventory in s. Lines whose
// ingredient is missing or has no package size contribute zero.
func ComputeCosting(r ProductRecipe, s *Snapshot) Costing {
	ingredientCost := decimal.Zero
	for _, line := range r.IngredientLines {
		item, ok := s.Item(line.IngredientID)
		if !ok || item.PackageSize <= 0 {
			continue
		}
		share := decimal.NewFromFloat(line.Amount).Div(decimal.NewFromFloat(item.PackageSize))
		ingredientCost = ingredientCost.Add(share.Mul(item.UnitCost))
	}

	total := ingredientCost.Add(r.OverheadCost)
	perUnit := total.Div(decimal.NewFromInt(int64(r.Yield())))
	markup := decimal.NewFromInt(1).Add(r.ProfitMarginPercent.Div(hundred))

	return Costing{
		RecipeID:       r.ID,
		IngredientCost: ingredientCost,
		TotalCost:      total,
		CostPerUnit:    perUnit,
		SuggestedPrice: perUnit.Mul(markup),
	}
}
