package store

import (
	"strings"
	"time"

	"maitred/internal/models"
)

// MenuStore keeps the canonical menu item state.
type MenuStore struct {
	*Store[models.MenuItem]
}

// NewMenuStore creates an empty menu store.
func NewMenuStore() *MenuStore {
	return &MenuStore{New(func(item models.MenuItem) string { return item.ID() })}
}

// FindByCategory returns all items in the given category.
func (s *MenuStore) FindByCategory(category models.Category) []models.MenuItem {
	return s.Search(func(item models.MenuItem) bool { return item.Category() == category })
}

// FindAvailable returns all items currently marked available.
func (s *MenuStore) FindAvailable() []models.MenuItem {
	return s.Search(models.MenuItem.Available)
}

// OrderStore keeps all orders ever placed; orders are never deleted.
type OrderStore struct {
	*Store[*models.Order]
}

// NewOrderStore creates an empty order store.
func NewOrderStore() *OrderStore {
	return &OrderStore{New(func(order *models.Order) string { return order.ID.String() })}
}

// FindByStatus returns all orders in the given status.
func (s *OrderStore) FindByStatus(status models.OrderStatus) []*models.Order {
	return s.Search(func(order *models.Order) bool { return order.Status == status })
}

// FindByTable returns all orders for the given table number.
func (s *OrderStore) FindByTable(tableNumber int) []*models.Order {
	return s.Search(func(order *models.Order) bool { return order.TableNumber == tableNumber })
}

// InventoryStore keeps the stock records.
type InventoryStore struct {
	*Store[*models.InventoryItem]
}

// NewInventoryStore creates an empty inventory store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{New(func(item *models.InventoryItem) string { return item.ID })}
}

// FindByName returns the first item whose name matches case-insensitively.
func (s *InventoryStore) FindByName(name string) (*models.InventoryItem, bool) {
	matches := s.Search(func(item *models.InventoryItem) bool {
		return strings.EqualFold(item.Name, name)
	})
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// FindByStatus returns all items in the given stock state.
func (s *InventoryStore) FindByStatus(status models.StockStatus) []*models.InventoryItem {
	return s.Search(func(item *models.InventoryItem) bool { return item.Status() == status })
}

// ReservationStore keeps all reservations ever made.
type ReservationStore struct {
	*Store[*models.Reservation]
}

// NewReservationStore creates an empty reservation store.
func NewReservationStore() *ReservationStore {
	return &ReservationStore{New(func(r *models.Reservation) string { return r.ID.String() })}
}

// FindActive returns reservations still occupying capacity.
func (s *ReservationStore) FindActive() []*models.Reservation {
	return s.Search((*models.Reservation).IsActive)
}

// FindByDate returns reservations falling on the same calendar day.
func (s *ReservationStore) FindByDate(date time.Time) []*models.Reservation {
	year, month, day := date.Date()
	return s.Search(func(r *models.Reservation) bool {
		y, m, d := r.Time.Date()
		return y == year && m == month && d == day
	})
}

// PaymentStore keeps settled payments keyed by transaction id.
type PaymentStore struct {
	*Store[*models.Payment]
}

// NewPaymentStore creates an empty payment store.
func NewPaymentStore() *PaymentStore {
	return &PaymentStore{New(func(p *models.Payment) string { return p.TransactionID })}
}
