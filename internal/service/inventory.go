package service

import (
	"fmt"
	"log/slog"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// InventoryService manages stock levels and keeps the linked menu items'
// availability in step with them: a menu item sharing an inventory item's id
// is available exactly while that stock is above zero.
type InventoryService struct {
	inventory *store.InventoryStore
	menu      *store.MenuStore
	audits    *audit.Chain
	policy    *auth.Policy
	metrics   *monitoring.Metrics
	logger    *slog.Logger
}

// NewInventoryService creates an inventory service over the given
// collaborators. Metrics may be nil; a nil logger falls back to slog.Default.
func NewInventoryService(inventory *store.InventoryStore, menu *store.MenuStore, audits *audit.Chain, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *InventoryService {
	return &InventoryService{
		inventory: inventory,
		menu:      menu,
		audits:    audits,
		policy:    policy,
		metrics:   metrics,
		logger:    componentLogger(logger, "inventory_service"),
	}
}

// ReduceStock withdraws stock from an item. Withdrawing more than the
// current level fails with no mutation.
func (s *InventoryService) ReduceStock(staff auth.Staff, itemID string, quantity int) (err error) {
	defer func() {
		s.metrics.RecordOperation("inventory", string(auth.OpReduceStock), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpReduceStock); err != nil {
		s.logger.Warn("reduce stock denied", "role", staff.Role, "item_id", itemID)
		return err
	}

	item, ok := s.inventory.FindByID(itemID)
	if !ok {
		err = fmt.Errorf("reduce stock: inventory item %s %w", itemID, ErrNotFound)
		return err
	}
	if consumeErr := item.Consume(quantity); consumeErr != nil {
		err = fmt.Errorf("reduce stock: %w: %v", ErrInvariant, consumeErr)
		s.logger.Warn("reduce stock rejected", "item_id", itemID, "quantity", quantity, "level", item.StockLevel)
		return err
	}

	s.inventory.Save(item)
	s.syncMenuAvailability(item)
	appendAudit(s.audits, s.metrics, staff, "REDUCE_STOCK", entityInventoryItem, itemID,
		fmt.Sprintf("reduced by %d, level now %d (%s)", quantity, item.StockLevel, item.Status()))
	s.logger.Info("stock reduced", "item_id", itemID, "quantity", quantity, "level", item.StockLevel)
	return nil
}

// IncreaseStock adds stock to an item, clamping at its capacity.
func (s *InventoryService) IncreaseStock(staff auth.Staff, itemID string, quantity int) (err error) {
	defer func() {
		s.metrics.RecordOperation("inventory", string(auth.OpIncreaseStock), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpIncreaseStock); err != nil {
		s.logger.Warn("increase stock denied", "role", staff.Role, "item_id", itemID)
		return err
	}

	item, ok := s.inventory.FindByID(itemID)
	if !ok {
		err = fmt.Errorf("increase stock: inventory item %s %w", itemID, ErrNotFound)
		return err
	}
	if restockErr := item.Restock(quantity); restockErr != nil {
		err = fmt.Errorf("increase stock: %w: %v", ErrInvariant, restockErr)
		return err
	}

	s.inventory.Save(item)
	s.syncMenuAvailability(item)
	appendAudit(s.audits, s.metrics, staff, "INCREASE_STOCK", entityInventoryItem, itemID,
		fmt.Sprintf("increased by %d, level now %d (%s)", quantity, item.StockLevel, item.Status()))
	s.logger.Info("stock increased", "item_id", itemID, "quantity", quantity, "level", item.StockLevel)
	return nil
}

// syncMenuAvailability recomputes the linked menu item's availability from
// the stock level. Inventory items without a menu counterpart are skipped.
func (s *InventoryService) syncMenuAvailability(item *models.InventoryItem) {
	menuItem, ok := s.menu.FindByID(item.ID)
	if !ok {
		return
	}
	available := item.StockLevel > 0
	if menuItem.Available() != available {
		s.menu.Save(menuItem.WithAvailability(available))
		s.logger.Info("menu availability synced", "item_id", item.ID, "available", available)
	}
}

// StockLevel returns the current level of an inventory item.
func (s *InventoryService) StockLevel(itemID string) (int, error) {
	item, ok := s.inventory.FindByID(itemID)
	if !ok {
		return 0, fmt.Errorf("stock level: inventory item %s %w", itemID, ErrNotFound)
	}
	return item.StockLevel, nil
}

// ItemsByStatus lists inventory in the given stock state. Kitchen-relevant,
// so chefs may call it.
func (s *InventoryService) ItemsByStatus(staff auth.Staff, status models.StockStatus) (items []*models.InventoryItem, err error) {
	defer func() {
		s.metrics.RecordOperation("inventory", string(auth.OpViewInventory), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpViewInventory); err != nil {
		return nil, err
	}
	return s.inventory.FindByStatus(status), nil
}
