package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	catalog "github.com/dwikikusuma/bakery-shop/internal/catalog/domain"
	settings "github.com/dwikikusuma/bakery-shop/internal/settings/domain"
	"github.com/dwikikusuma/bakery-shop/internal/storefront"
)

type seedFile struct {
	Settings  seedSettings `yaml:"settings"`
	Inventory []seedItem   `yaml:"inventory"`
	Recipes   []seedRecipe `yaml:"recipes"`
}

type seedSettings struct {
	AdminPhoneNumber string `yaml:"adminPhoneNumber"`
	AdminCardNumber  string `yaml:"adminCardNumber"`
	BirthdayOffer    string `yaml:"birthdayOffer"`
	DeliveryFee      string `yaml:"deliveryFee"`
}

type seedItem struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	Category          string  `yaml:"category"`
	Price             string  `yaml:"price"`
	Quantity          float64 `yaml:"quantity"`
	LowStockThreshold float64 `yaml:"lowStockThreshold"`
	UnitCost          string  `yaml:"unitCost"`
	PackageSize       float64 `yaml:"packageSize"`
	Unit              string  `yaml:"unit"`
	ImageURL          string  `yaml:"imageUrl"`
}

type seedRecipe struct {
	ID                  string `yaml:"id"`
	Name                string `yaml:"name"`
	Description         string `yaml:"description"`
	ProductType         string `yaml:"productType"`
	RecipeYield         int    `yaml:"recipeYield"`
	OverheadCost        string `yaml:"overheadCost"`
	ProfitMarginPercent string `yaml:"profitMarginPercent"`
	SellingPrice        string `yaml:"sellingPrice"`
	ImageURL            string `yaml:"imageUrl"`
	Ingredients         []struct {
		ID     string  `yaml:"id"`
		Amount float64 `yaml:"amount"`
	} `yaml:"ingredients"`
}

func loadSeed(path string) (seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return seedFile{}, err
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return seedFile{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// money reads an optional decimal; blank means zero.
func money(field, v string) (decimal.Decimal, error) {
	if v == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", field, err)
	}
	return d, nil
}

func (s seedItem) toDomain() (catalog.InventoryItem, error) {
	price, err := money(s.ID+".price", s.Price)
	if err != nil {
		return catalog.InventoryItem{}, err
	}
	cost, err := money(s.ID+".unitCost", s.UnitCost)
	if err != nil {
		return catalog.InventoryItem{}, err
	}
	unit := catalog.Unit(s.Unit)
	if unit == "" {
		unit = catalog.UnitEach
	}
	return catalog.InventoryItem{
		Ingredient: catalog.Ingredient{
			ID:        s.ID,
			Name:      s.Name,
			Category:  catalog.Category(s.Category),
			UnitPrice: price,
		},
		QuantityOnHand:    s.Quantity,
		LowStockThreshold: s.LowStockThreshold,
		UnitCost:          cost,
		PackageSize:       s.PackageSize,
		Unit:              unit,
		ImageURL:          s.ImageURL,
	}, nil
}

func (s seedRecipe) toDomain() (catalog.ProductRecipe, error) {
	overhead, err := money(s.ID+".overheadCost", s.OverheadCost)
	if err != nil {
		return catalog.ProductRecipe{}, err
	}
	margin, err := money(s.ID+".profitMarginPercent", s.ProfitMarginPercent)
	if err != nil {
		return catalog.ProductRecipe{}, err
	}
	price, err := money(s.ID+".sellingPrice", s.SellingPrice)
	if err != nil {
		return catalog.ProductRecipe{}, err
	}
	r := catalog.ProductRecipe{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		ProductType:         catalog.ProductType(s.ProductType),
		RecipeYield:         s.RecipeYield,
		OverheadCost:        overhead,
		ProfitMarginPercent: margin,
		SellingPrice:        price,
		ImageURL:            s.ImageURL,
	}
	for _, in := range s.Ingredients {
		r.IngredientLines = append(r.IngredientLines, catalog.RecipeLine{IngredientID: in.ID, Amount: in.Amount})
	}
	return r, nil
}

type counts struct {
	Items   int
	Recipes int
}

// apply writes the seed through the application services so the usual
// validation runs. Existing documents with the same ids are replaced.
func apply(ctx context.Context, app *storefront.App, f seedFile) (counts, error) {
	var c counts

	fee, err := money("settings.deliveryFee", f.Settings.DeliveryFee)
	if err != nil {
		return c, err
	}
	st := settings.Defaults()
	if f.Settings.AdminPhoneNumber != "" {
		st.AdminPhoneNumber = f.Settings.AdminPhoneNumber
	}
	if f.Settings.AdminCardNumber != "" {
		st.AdminCardNumber = f.Settings.AdminCardNumber
	}
	if f.Settings.BirthdayOffer != "" {
		st.BirthdayOffer.Description = f.Settings.BirthdayOffer
	}
	if f.Settings.DeliveryFee != "" {
		st.DeliveryFee = fee
	}
	if _, err := app.Settings.Save(ctx, st); err != nil {
		return c, fmt.Errorf("settings: %w", err)
	}

	for _, s := range f.Inventory {
		item, err := s.toDomain()
		if err != nil {
			return c, err
		}
		if _, err := app.Catalog.UpsertItem(ctx, item); err != nil {
			return c, fmt.Errorf("item %s: %w", s.ID, err)
		}
		c.Items++
	}

	for _, s := range f.Recipes {
		r, err := s.toDomain()
		if err != nil {
			return c, err
		}
		if _, err := app.Catalog.UpsertRecipe(ctx, r); err != nil {
			return c, fmt.Errorf("recipe %s: %w", s.ID, err)
		}
		c.Recipes++
	}
	return c, nil
}
