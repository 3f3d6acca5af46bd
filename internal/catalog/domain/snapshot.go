package domain

import (
	"slices"
	"strings"
)

// Snapshot is an immutable read view of inventory and recipes. The zero
// value and a nil *Snapshot are both empty catalogs.
type Snapshot struct {
	items    map[string]InventoryItem
	recipes  map[string]ProductRecipe
	itemList []InventoryItem
	recList  []ProductRecipe
}

func NewSnapshot(items []InventoryItem, recipes []ProductRecipe) *Snapshot {
	s := &Snapshot{}
	s.setItems(items)
	s.setRecipes(recipes)
	return s
}

// WithItems returns a copy holding items and the receiver's recipes.
func (s *Snapshot) WithItems(items []InventoryItem) *Snapshot {
	next := &Snapshot{}
	next.setItems(items)
	next.setRecipes(s.Recipes())
	return next
}

// WithRecipes returns a copy holding recipes and the receiver's items.
func (s *Snapshot) WithRecipes(recipes []ProductRecipe) *Snapshot {
	next := &Snapshot{}
	next.setItems(s.Items())
	next.setRecipes(recipes)
	return next
}

func (s *Snapshot) Item(id string) (InventoryItem, bool) {
	if s == nil {
		return InventoryItem{}, false
	}
	it, ok := s.items[id]
	return it, ok
}

func (s *Snapshot) Recipe(id string) (ProductRecipe, bool) {
	if s == nil {
		return ProductRecipe{}, false
	}
	r, ok := s.recipes[id]
	return r, ok
}

// Items are ordered by id.
func (s *Snapshot) Items() []InventoryItem {
	if s == nil {
		return nil
	}
	return slices.Clone(s.itemList)
}

// Recipes are ordered by id.
func (s *Snapshot) Recipes() []ProductRecipe {
	if s == nil {
		return nil
	}
	return slices.Clone(s.recList)
}

func (s *Snapshot) Product(id string) (Product, bool) {
	recipeID, ok := strings.CutPrefix(id, productIDPrefix)
	if !ok {
		return Product{}, false
	}
	r, ok := s.Recipe(recipeID)
	if !ok {
		return Product{}, false
	}
	return ProductFromRecipe(r), true
}

func (s *Snapshot) BasicProducts() []Product {
	recipes := s.Recipes()
	out := make([]Product, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, ProductFromRecipe(r))
	}
	return out
}

func (s *Snapshot) LowStock() []InventoryItem {
	var out []InventoryItem
	for _, it := range s.Items() {
		if it.LowStock() {
			out = append(out, it)
		}
	}
	return out
}

func (s *Snapshot) setItems(items []InventoryItem) {
	s.items = make(map[string]InventoryItem, len(items))
	for _, it := range items {
		s.items[it.ID] = it
	}
	s.itemList = make([]InventoryItem, 0, len(s.items))
	for _, it := range s.items {
		s.itemList = append(s.itemList, it)
	}
	slices.SortFunc(s.itemList, func(a, b InventoryItem) int { return strings.Compare(a.ID, b.ID) })
}

func (s *Snapshot) setRecipes(recipes []ProductRecipe) {
	s.recipes = make(map[string]ProductRecipe, len(recipes))
	for _, r := range recipes {
		s.recipes[r.ID] = r
	}
	s.recList = make([]ProductRecipe, 0, len(s.recipes))
	for _, r := range s.recipes {
		s.recList = append(s.recList, r)
	}
	slices.SortFunc(s.recList, func(a, b ProductRecipe) int { return strings.Compare(a.ID, b.ID) })
}
