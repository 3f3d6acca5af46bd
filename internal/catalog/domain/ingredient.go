package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidItem = errors.New("invalid inventory item")

type Category string

const (
	CategoryBase        Category = "base"
	CategoryFilling     Category = "filling"
	CategoryTopping     Category = "topping"
	CategoryFrosting    Category = "frosting"
	CategoryDecoration  Category = "decoration"
	CategoryRawMaterial Category = "raw_material"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryBase, CategoryFilling, CategoryTopping, CategoryFrosting, CategoryDecoration, CategoryRawMaterial:
		return true
	}
	return false
}

// Sellable reports whether items of this category can be picked as a custom
// dessert component. Raw materials only feed recipes.
func (c Category) Sellable() bool {
	return c.Valid() && c != CategoryRawMaterial
}

type Unit string

const (
	UnitGram       Unit = "gram"
	UnitMilliliter Unit = "milliliter"
	UnitEach       Unit = "each"
)

type ProductType string

type Ingredient struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Category               Category        `json:"category"`
	UnitPrice              decimal.Decimal `json:"unitPrice"`
	ApplicableProductTypes []ProductType   `json:"applicableProductTypes,omitempty"`
}

// AppliesTo is true when the ingredient has no product type restriction or
// lists pt explicitly.
func (i Ingredient) AppliesTo(pt ProductType) bool {
	if len(i.ApplicableProductTypes) == 0 {
		return true
	}
	for _, t := range i.ApplicableProductTypes {
		if t == pt {
			return true
		}
	}
	return false
}

type InventoryItem struct {
	Ingredient
	QuantityOnHand    float64         `json:"quantityOnHand"`
	LowStockThreshold float64         `json:"lowStockThreshold"`
	UnitCost          decimal.Decimal `json:"unitCost"`
	PackageSize       float64         `json:"packageSize"`
	Unit              Unit            `json:"unit"`
	ImageURL          string          `json:"imageUrl,omitempty"`
}

// Validate only checks identity and that numeric fields are not negative;
// domain rules beyond that belong to callers.
func (it InventoryItem) Validate() error {
	switch {
	case strings.TrimSpace(it.ID) == "":
		return errors.Join(ErrInvalidItem, errors.New("id is required"))
	case it.Category != "" && !it.Category.Valid():
		return errors.Join(ErrInvalidItem, errors.New("unknown category "+string(it.Category)))
	case it.UnitPrice.IsNegative(), it.UnitCost.IsNegative():
		return errors.Join(ErrInvalidItem, errors.New("prices must not be negative"))
	case it.QuantityOnHand < 0, it.LowStockThreshold < 0, it.PackageSize < 0:
		return errors.Join(ErrInvalidItem, errors.New("quantities must not be negative"))
	}
	return nil
}

func (it InventoryItem) LowStock() bool {
	return it.QuantityOnHand <= it.LowStockThreshold
}

// Adjust returns a copy with delta applied to the stock on hand, clamped at 0.
func (it InventoryItem) Adjust(delta float64) InventoryItem {
	it.QuantityOnHand += delta
	if it.QuantityOnHand < 0 {
		it.QuantityOnHand = 0
	}
	return it
}
