package domain

import (
	cart "github.com/dwikikusuma/bakery-shop/internal/cart/domain"
	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

// Adjustment is stock to remove from one inventory item.
type Adjustment struct {
	IngredientID string  `json:"ingredientId"`
	Amount       float64 `json:"amount"`
}

// Plan turns order lines into stock removals against the catalog in snap.
// Custom desserts consume one unit of each component per dessert. Basic
// products consume their recipe scaled to one unit. References missing
// from snap are skipped. Amounts for the same item are summed and the
// result keeps first-seen order.
func Plan(lines []cart.Line, snap *catalog.Snapshot) []Adjustment {
	var (
		out   []Adjustment
		index = make(map[string]int)
	)
	add := func(id string, amount float64) {
		if amount <= 0 {
			return
		}
		if _, ok := snap.Item(id); !ok {
			return
		}
		if i, ok := index[id]; ok {
			out[i].Amount += amount
			return
		}
		index[id] = len(out)
		out = append(out, Adjustment{IngredientID: id, Amount: amount})
	}

	for _, l := range lines {
		qty := float64(l.Quantity)
		switch {
		case l.Kind == cart.KindCustom && l.Custom != nil:
			for _, c := range l.Custom.Components() {
				add(c.ID, qty)
			}
		case l.Kind == cart.KindBasic && l.Basic != nil:
			recipe, ok := recipeFor(l.Basic, snap)
			if !ok {
				continue
			}
			yield := float64(recipe.Yield())
			for _, rl := range recipe.IngredientLines {
				add(rl.IngredientID, rl.Amount/yield*qty)
			}
		}
	}
	return out
}

func recipeFor(b *cart.BasicProduct, snap *catalog.Snapshot) (catalog.ProductRecipe, bool) {
	id := b.RecipeID
	if id == "" {
		p, ok := snap.Product(b.ProductID)
		if !ok {
			return catalog.ProductRecipe{}, false
		}
		id = p.RecipeID
	}
	return snap.Recipe(id)
}
