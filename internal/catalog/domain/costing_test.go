package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func flour(cost string, pkg float64) InventoryItem {
	return InventoryItem{
		Ingredient:  Ingredient{ID: "r1", Name: "Harina", Category: CategoryRawMaterial},
		UnitCost:    dec(cost),
		PackageSize: pkg,
		Unit:        UnitGram,
	}
}

func TestComputeCosting(t *testing.T) {
	recipe := ProductRecipe{
		ID:                  "rec-1",
		Name:                "Galletas",
		IngredientLines:     []RecipeLine{{IngredientID: "r1", Amount: 20}},
		OverheadCost:        dec("1"),
		ProfitMarginPercent: dec("100"),
		RecipeYield:         2,
	}

	t.Run("line contribution and derived fields", func(t *testing.T) {
		c := ComputeCosting(recipe, NewSnapshot([]InventoryItem{flour("10", 100)}, nil))

		cases := []struct {
			name string
			got  decimal.Decimal
			want string
		}{
			{"ingredientCost", c.IngredientCost, "2"},
			{"totalCost", c.TotalCost, "3"},
			{"costPerUnit", c.CostPerUnit, "1.5"},
			{"suggestedPrice", c.SuggestedPrice, "3"},
		}
		for _, tc := range cases {
			if !tc.got.Equal(dec(tc.want)) {
				t.Errorf("%s: got %s want %s", tc.name, tc.got, tc.want)
			}
		}
	})

	t.Run("missing ingredient -> zero contribution", func(t *testing.T) {
		r := recipe
		r.IngredientLines = []RecipeLine{{IngredientID: "ghost", Amount: 500}}
		c := ComputeCosting(r, NewSnapshot(nil, nil))
		if !c.IngredientCost.IsZero() {
			t.Fatalf("expected zero ingredient cost, got %s", c.IngredientCost)
		}
		if !c.TotalCost.Equal(dec("1")) {
			t.Fatalf("expected overhead only, got %s", c.TotalCost)
		}
	})

	t.Run("zero package size -> zero contribution", func(t *testing.T) {
		c := ComputeCosting(recipe, NewSnapshot([]InventoryItem{flour("10", 0)}, nil))
		if !c.IngredientCost.IsZero() {
			t.Fatalf("expected zero, got %s", c.IngredientCost)
		}
	})

	t.Run("nil snapshot is empty", func(t *testing.T) {
		c := ComputeCosting(recipe, nil)
		if !c.IngredientCost.IsZero() {
			t.Fatalf("expected zero, got %s", c.IngredientCost)
		}
	})

	t.Run("yield below 1 treated as 1", func(t *testing.T) {
		r := recipe
		r.RecipeYield = 0
		c := ComputeCosting(r, NewSnapshot([]InventoryItem{flour("10", 100)}, nil))
		if !c.CostPerUnit.Equal(dec("3")) {
			t.Fatalf("expected 3, got %s", c.CostPerUnit)
		}
	})

	t.Run("recomputed from current costs", func(t *testing.T) {
		before := ComputeCosting(recipe, NewSnapshot([]InventoryItem{flour("10", 100)}, nil))
		after := ComputeCosting(recipe, NewSnapshot([]InventoryItem{flour("20", 100)}, nil))
		if before.IngredientCost.Equal(after.IngredientCost) {
			t.Fatal("expected costing to follow inventory cost change")
		}
	})
}
