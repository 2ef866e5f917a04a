package models

import "fmt"

// StockStatus represents the derived stock state of an inventory item
type StockStatus string

const (
	StockInStock    StockStatus = "IN_STOCK"
	StockLowStock   StockStatus = "LOW_STOCK"
	StockOutOfStock StockStatus = "OUT_OF_STOCK"
)

// InventoryItem tracks the stock backing a menu item. The stock level stays
// within [0, MaxCapacity]: Consume rejects over-withdrawal and Restock clamps
// at capacity.
type InventoryItem struct {
	ID               string
	Name             string
	Unit             string
	StockLevel       int
	ReorderThreshold int
	MaxCapacity      int
}

// NewInventoryItem creates an inventory item at the given starting level.
func NewInventoryItem(id, name, unit string, stockLevel, reorderThreshold, maxCapacity int) *InventoryItem {
	return &InventoryItem{
		ID:               id,
		Name:             name,
		Unit:             unit,
		StockLevel:       stockLevel,
		ReorderThreshold: reorderThreshold,
		MaxCapacity:      maxCapacity,
	}
}

// Status derives the stock state from the current level and threshold.
func (i *InventoryItem) Status() StockStatus {
	switch {
	case i.StockLevel == 0:
		return StockOutOfStock
	case i.StockLevel <= i.ReorderThreshold:
		return StockLowStock
	default:
		return StockInStock
	}
}

// Consume withdraws stock, rejecting quantities the level cannot cover.
func (i *InventoryItem) Consume(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("consume quantity must not be negative, got %d", quantity)
	}
	if quantity > i.StockLevel {
		return fmt.Errorf("insufficient stock for %s: have %d, need %d", i.Name, i.StockLevel, quantity)
	}
	i.StockLevel -= quantity
	return nil
}

// Restock adds stock, clamping at MaxCapacity.
func (i *InventoryItem) Restock(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("restock quantity must not be negative, got %d", quantity)
	}
	i.StockLevel += quantity
	if i.StockLevel > i.MaxCapacity {
		i.StockLevel = i.MaxCapacity
	}
	return nil
}

func (i *InventoryItem) String() string {
	return fmt.Sprintf("InventoryItem[%s: %s | %d %s | Status=%s]", i.ID, i.Name, i.StockLevel, i.Unit, i.Status())
}
