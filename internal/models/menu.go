package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category represents the kind of menu item
type Category string

const (
	// Menu categories
	CategoryEntree  Category = "entree"
	CategoryDrink   Category = "drink"
	CategoryDessert Category = "dessert"
	CategoryCombo   Category = "combo"
)

// DietaryType represents the dietary classification of a menu item
type DietaryType string

const (
	// Dietary classifications
	DietaryRegular    DietaryType = "regular"
	DietaryVegetarian DietaryType = "vegetarian"
	DietaryVegan      DietaryType = "vegan"
	DietaryGlutenFree DietaryType = "gluten_free"
)

// MenuItem is the closed set of menu item variants: Entree, Drink, Dessert
// and Combo. Variants mutate only through the With* copies, so the canonical
// state always lives in the menu store and orders can hold snapshots that
// later menu edits never touch.
type MenuItem interface {
	ID() string
	Name() string
	Description() string
	Category() Category
	Dietary() DietaryType
	Available() bool
	BasePrice() decimal.Decimal

	// Price is the effective selling price. For a Combo it folds the
	// component prices and applies the combo discount.
	Price() decimal.Decimal
	RequiresKitchenPrep() bool
	RequiredIngredients() []string

	// WithAvailability and WithBasePrice return an adjusted copy with all
	// other fields unchanged.
	WithAvailability(available bool) MenuItem
	WithBasePrice(price decimal.Decimal) MenuItem

	// Clone returns an independent copy for snapshotting into an order.
	Clone() MenuItem
}

// itemCore carries the fields shared by every menu item variant.
type itemCore struct {
	id          string
	name        string
	description string
	basePrice   decimal.Decimal
	category    Category
	dietary     DietaryType
	available   bool
}

func newCore(id, name, description string, price decimal.Decimal, category Category, dietary DietaryType) itemCore {
	return itemCore{
		id:          id,
		name:        name,
		description: description,
		basePrice:   price,
		category:    category,
		dietary:     dietary,
		available:   true,
	}
}

func (c *itemCore) ID() string                 { return c.id }
func (c *itemCore) Name() string               { return c.name }
func (c *itemCore) Description() string        { return c.description }
func (c *itemCore) Category() Category         { return c.category }
func (c *itemCore) Dietary() DietaryType       { return c.dietary }
func (c *itemCore) Available() bool            { return c.available }
func (c *itemCore) BasePrice() decimal.Decimal { return c.basePrice }

func (c *itemCore) describe(kind string, price decimal.Decimal) string {
	state := "Available"
	if !c.available {
		state = "Unavailable"
	}
	return fmt.Sprintf("%s[%s: %s | $%s | %s]", kind, c.id, c.name, price.StringFixed(2), state)
}

// Entree is a prepared main dish.
type Entree struct {
	itemCore
	ingredients []string
	prepMinutes int
}

// NewEntree creates an available entree.
func NewEntree(id, name, description string, price decimal.Decimal, dietary DietaryType, ingredients []string, prepMinutes int) *Entree {
	return &Entree{
		itemCore:    newCore(id, name, description, price, CategoryEntree, dietary),
		ingredients: append([]string(nil), ingredients...),
		prepMinutes: prepMinutes,
	}
}

func (e *Entree) Price() decimal.Decimal    { return e.basePrice }
func (e *Entree) RequiresKitchenPrep() bool { return true }
func (e *Entree) RequiredIngredients() []string {
	return append([]string(nil), e.ingredients...)
}

// PrepMinutes returns the estimated kitchen prep time.
func (e *Entree) PrepMinutes() int { return e.prepMinutes }

func (e *Entree) WithAvailability(available bool) MenuItem {
	c := *e
	c.available = available
	return &c
}

func (e *Entree) WithBasePrice(price decimal.Decimal) MenuItem {
	c := *e
	c.basePrice = price
	return &c
}

func (e *Entree) Clone() MenuItem {
	c := *e
	c.ingredients = append([]string(nil), e.ingredients...)
	return &c
}

func (e *Entree) String() string { return e.describe("Entree", e.Price()) }

// Drink is a beverage; drinks skip the kitchen entirely.
type Drink struct {
	itemCore
	alcoholic bool
}

// NewDrink creates an available drink.
func NewDrink(id, name, description string, price decimal.Decimal, alcoholic bool) *Drink {
	return &Drink{
		itemCore:  newCore(id, name, description, price, CategoryDrink, DietaryRegular),
		alcoholic: alcoholic,
	}
}

func (d *Drink) Price() decimal.Decimal    { return d.basePrice }
func (d *Drink) RequiresKitchenPrep() bool { return false }
func (d *Drink) RequiredIngredients() []string {
	return []string{strings.ToLower(d.name)}
}

// RequiresAgeVerification reports whether serving the drink needs an ID check.
func (d *Drink) RequiresAgeVerification() bool { return d.alcoholic }

func (d *Drink) WithAvailability(available bool) MenuItem {
	c := *d
	c.available = available
	return &c
}

func (d *Drink) WithBasePrice(price decimal.Decimal) MenuItem {
	c := *d
	c.basePrice = price
	return &c
}

func (d *Drink) Clone() MenuItem {
	c := *d
	return &c
}

func (d *Drink) String() string { return d.describe("Drink", d.Price()) }

// Dessert is a sweet course with a declared allergen list.
type Dessert struct {
	itemCore
	allergens []string
}

// NewDessert creates an available dessert.
func NewDessert(id, name, description string, price decimal.Decimal, dietary DietaryType, allergens []string) *Dessert {
	return &Dessert{
		itemCore:  newCore(id, name, description, price, CategoryDessert, dietary),
		allergens: append([]string(nil), allergens...),
	}
}

func (d *Dessert) Price() decimal.Decimal    { return d.basePrice }
func (d *Dessert) RequiresKitchenPrep() bool { return true }
func (d *Dessert) RequiredIngredients() []string {
	return []string{strings.ToLower(d.name)}
}

// Allergens returns the declared allergen list.
func (d *Dessert) Allergens() []string {
	return append([]string(nil), d.allergens...)
}

func (d *Dessert) WithAvailability(available bool) MenuItem {
	c := *d
	c.available = available
	return &c
}

func (d *Dessert) WithBasePrice(price decimal.Decimal) MenuItem {
	c := *d
	c.basePrice = price
	return &c
}

func (d *Dessert) Clone() MenuItem {
	c := *d
	c.allergens = append([]string(nil), d.allergens...)
	return &c
}

func (d *Dessert) String() string { return d.describe("Dessert", d.Price()) }

// Combo bundles other menu items at a percentage discount. Price, kitchen
// prep and ingredients are all derived by folding over the components, so a
// combo of combos keeps working.
type Combo struct {
	itemCore
	items           []MenuItem
	discountPercent float64
}

// NewCombo creates an available combo over copies of the given components.
func NewCombo(id, name, description string, items []MenuItem, discountPercent float64) *Combo {
	components := make([]MenuItem, len(items))
	for i, item := range items {
		components[i] = item.Clone()
	}
	return &Combo{
		itemCore:        newCore(id, name, description, decimal.Zero, CategoryCombo, DietaryRegular),
		items:           components,
		discountPercent: discountPercent,
	}
}

func (c *Combo) Price() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price())
	}
	discount := decimal.NewFromFloat(c.discountPercent).Div(decimal.NewFromInt(100))
	return total.Mul(decimal.NewFromInt(1).Sub(discount))
}

func (c *Combo) RequiresKitchenPrep() bool {
	for _, item := range c.items {
		if item.RequiresKitchenPrep() {
			return true
		}
	}
	return false
}

func (c *Combo) RequiredIngredients() []string {
	seen := make(map[string]bool)
	var ingredients []string
	for _, item := range c.items {
		for _, ing := range item.RequiredIngredients() {
			if !seen[ing] {
				seen[ing] = true
				ingredients = append(ingredients, ing)
			}
		}
	}
	return ingredients
}

// Components returns copies of the bundled items.
func (c *Combo) Components() []MenuItem {
	components := make([]MenuItem, len(c.items))
	for i, item := range c.items {
		components[i] = item.Clone()
	}
	return components
}

// DiscountPercent returns the combo discount in percent.
func (c *Combo) DiscountPercent() float64 { return c.discountPercent }

func (c *Combo) WithAvailability(available bool) MenuItem {
	cp := *c
	cp.available = available
	return &cp
}

func (c *Combo) WithBasePrice(price decimal.Decimal) MenuItem {
	cp := *c
	cp.basePrice = price
	return &cp
}

func (c *Combo) Clone() MenuItem {
	cp := *c
	cp.items = c.Components()
	return &cp
}

func (c *Combo) String() string { return c.describe("Combo", c.Price()) }
