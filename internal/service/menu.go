package service

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// MenuService manages the menu. Only managers may change it.
type MenuService struct {
	menu    *store.MenuStore
	audits  *audit.Chain
	policy  *auth.Policy
	metrics *monitoring.Metrics
	logger  *slog.Logger
}

// NewMenuService creates a menu service over the given collaborators.
// Metrics may be nil; a nil logger falls back to slog.Default.
func NewMenuService(menu *store.MenuStore, audits *audit.Chain, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *MenuService {
	return &MenuService{
		menu:    menu,
		audits:  audits,
		policy:  policy,
		metrics: metrics,
		logger:  componentLogger(logger, "menu_service"),
	}
}

// AddMenuItem puts a new item on the menu.
func (s *MenuService) AddMenuItem(staff auth.Staff, item models.MenuItem) (err error) {
	defer func() {
		s.metrics.RecordOperation("menu", string(auth.OpAddMenuItem), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpAddMenuItem); err != nil {
		s.logger.Warn("add menu item denied", "role", staff.Role, "item_id", item.ID())
		return err
	}

	s.menu.Save(item)
	appendAudit(s.audits, s.metrics, staff, "ADD_MENU_ITEM", entityMenuItem, item.ID(),
		fmt.Sprintf("added %s (%s) at $%s", item.Name(), item.Category(), item.Price().StringFixed(2)))
	s.logger.Info("menu item added", "item_id", item.ID(), "name", item.Name())
	return nil
}

// UpdatePrice replaces the stored item with a price-adjusted copy, leaving
// every other field unchanged.
func (s *MenuService) UpdatePrice(staff auth.Staff, itemID string, price decimal.Decimal) (err error) {
	defer func() {
		s.metrics.RecordOperation("menu", string(auth.OpUpdateMenuPrice), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpUpdateMenuPrice); err != nil {
		s.logger.Warn("update price denied", "role", staff.Role, "item_id", itemID)
		return err
	}

	item, ok := s.menu.FindByID(itemID)
	if !ok {
		err = fmt.Errorf("update price: menu item %s %w", itemID, ErrNotFound)
		return err
	}

	previous := item.Price()
	s.menu.Save(item.WithBasePrice(price))
	appendAudit(s.audits, s.metrics, staff, "UPDATE_PRICE", entityMenuItem, itemID,
		fmt.Sprintf("price %s -> %s", previous.StringFixed(2), price.StringFixed(2)))
	s.logger.Info("menu price updated", "item_id", itemID, "price", price.StringFixed(2))
	return nil
}

// AvailableItems lists the items currently on offer.
func (s *MenuService) AvailableItems() []models.MenuItem {
	return s.menu.FindAvailable()
}

// ItemsByCategory lists the items of one category, available or not.
func (s *MenuService) ItemsByCategory(category models.Category) []models.MenuItem {
	return s.menu.FindByCategory(category)
}

// GetItem returns one menu item by id.
func (s *MenuService) GetItem(itemID string) (models.MenuItem, error) {
	item, ok := s.menu.FindByID(itemID)
	if !ok {
		return nil, fmt.Errorf("get menu item: %s %w", itemID, ErrNotFound)
	}
	return item, nil
}
