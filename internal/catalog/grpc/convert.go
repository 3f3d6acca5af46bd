package grpc

import (
	catalogv1 "github.com/dwikikusuma/bakery-shop/api/catalog/v1"
	"github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
)

// IngredientToProto is shared with the cart and order servers, whose lines
// carry catalog ingredients.
func IngredientToProto(i domain.Ingredient) catalogv1.Ingredient {
	return catalogv1.Ingredient{
		ID:                     i.ID,
		Name:                   i.Name,
		Category:               string(i.Category),
		UnitPrice:              i.UnitPrice,
		ApplicableProductTypes: productTypesToProto(i.ApplicableProductTypes),
	}
}

func IngredientFromProto(m catalogv1.Ingredient) domain.Ingredient {
	return domain.Ingredient{
		ID:                     m.ID,
		Name:                   m.Name,
		Category:               domain.Category(m.Category),
		UnitPrice:              m.UnitPrice,
		ApplicableProductTypes: productTypesFromProto(m.ApplicableProductTypes),
	}
}

func ItemToProto(it domain.InventoryItem) catalogv1.InventoryItem {
	ing := IngredientToProto(it.Ingredient)
	return catalogv1.InventoryItem{
		ID:                     ing.ID,
		Name:                   ing.Name,
		Category:               ing.Category,
		UnitPrice:              ing.UnitPrice,
		ApplicableProductTypes: ing.ApplicableProductTypes,
		QuantityOnHand:         it.QuantityOnHand,
		LowStockThreshold:      it.LowStockThreshold,
		UnitCost:               it.UnitCost,
		PackageSize:            it.PackageSize,
		Unit:                   string(it.Unit),
		ImageURL:               it.ImageURL,
	}
}

func ItemsToProto(items []domain.InventoryItem) []catalogv1.InventoryItem {
	out := make([]catalogv1.InventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, ItemToProto(it))
	}
	return out
}

func itemFromProto(m catalogv1.InventoryItem) domain.InventoryItem {
	return domain.InventoryItem{
		Ingredient: IngredientFromProto(catalogv1.Ingredient{
			ID:                     m.ID,
			Name:                   m.Name,
			Category:               m.Category,
			UnitPrice:              m.UnitPrice,
			ApplicableProductTypes: m.ApplicableProductTypes,
		}),
		QuantityOnHand:    m.QuantityOnHand,
		LowStockThreshold: m.LowStockThreshold,
		UnitCost:          m.UnitCost,
		PackageSize:       m.PackageSize,
		Unit:              domain.Unit(m.Unit),
		ImageURL:          m.ImageURL,
	}
}

func recipeToProto(r domain.ProductRecipe) catalogv1.Recipe {
	lines := make([]catalogv1.RecipeLine, 0, len(r.IngredientLines))
	for _, l := range r.IngredientLines {
		lines = append(lines, catalogv1.RecipeLine{IngredientID: l.IngredientID, Amount: l.Amount})
	}
	return catalogv1.Recipe{
		ID:                  r.ID,
		Name:                r.Name,
		Description:         r.Description,
		ProductType:         string(r.ProductType),
		IngredientLines:     lines,
		OverheadCost:        r.OverheadCost,
		ProfitMarginPercent: r.ProfitMarginPercent,
		RecipeYield:         r.RecipeYield,
		SellingPrice:        r.SellingPrice,
		ImageURL:            r.ImageURL,
	}
}

func recipeFromProto(m catalogv1.Recipe) domain.ProductRecipe {
	lines := make([]domain.RecipeLine, 0, len(m.IngredientLines))
	for _, l := range m.IngredientLines {
		lines = append(lines, domain.RecipeLine{IngredientID: l.IngredientID, Amount: l.Amount})
	}
	return domain.ProductRecipe{
		ID:                  m.ID,
		Name:                m.Name,
		Description:         m.Description,
		ProductType:         domain.ProductType(m.ProductType),
		IngredientLines:     lines,
		OverheadCost:        m.OverheadCost,
		ProfitMarginPercent: m.ProfitMarginPercent,
		RecipeYield:         m.RecipeYield,
		SellingPrice:        m.SellingPrice,
		ImageURL:            m.ImageURL,
	}
}

func costingToProto(c domain.Costing) catalogv1.Costing {
	return catalogv1.Costing{
		RecipeID:       c.RecipeID,
		IngredientCost: c.IngredientCost,
		TotalCost:      c.TotalCost,
		CostPerUnit:    c.CostPerUnit,
		SuggestedPrice: c.SuggestedPrice,
	}
}

func productToProto(p domain.Product) catalogv1.Product {
	return catalogv1.Product{
		ID:          p.ID,
		RecipeID:    p.RecipeID,
		Name:        p.Name,
		Description: p.Description,
		ProductType: string(p.ProductType),
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}

func productTypesToProto(ts []domain.ProductType) []string {
	if len(ts) == 0 {
		return nil
	}
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}
	return out
}

func productTypesFromProto(ts []string) []domain.ProductType {
	if len(ts) == 0 {
		return nil
	}
	out := make([]domain.ProductType, len(ts))
	for i, t := range ts {
		out[i] = domain.ProductType(t)
	}
	return out
}
