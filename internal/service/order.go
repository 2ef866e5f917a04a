package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// OrderService places table orders and moves them through their lifecycle.
type OrderService struct {
	orders  *store.OrderStore
	audits  *audit.Chain
	policy  *auth.Policy
	metrics *monitoring.Metrics
	logger  *slog.Logger
}

// NewOrderService creates an order service over the given collaborators.
// Metrics may be nil; a nil logger falls back to slog.Default.
func NewOrderService(orders *store.OrderStore, audits *audit.Chain, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *OrderService {
	return &OrderService{
		orders:  orders,
		audits:  audits,
		policy:  policy,
		metrics: metrics,
		logger:  componentLogger(logger, "order_service"),
	}
}

// PlaceOrder creates a pending order for a table. The table number comes in
// as caller-supplied text; every item must be available at call time or the
// whole call fails with no order created.
func (s *OrderService) PlaceOrder(staff auth.Staff, tableNumber string, items []models.MenuItem) (order *models.Order, err error) {
	defer func() {
		s.metrics.RecordOperation("order", string(auth.OpPlaceOrder), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpPlaceOrder); err != nil {
		s.logger.Warn("place order denied", "role", staff.Role, "table", tableNumber)
		return nil, err
	}

	table, convErr := strconv.Atoi(strings.TrimSpace(tableNumber))
	if convErr != nil {
		err = fmt.Errorf("place order: %w: table number %q is not numeric", ErrInvariant, tableNumber)
		return nil, err
	}
	for _, item := range items {
		if !item.Available() {
			err = fmt.Errorf("place order: %w: item %q is not available", ErrInvariant, item.Name())
			s.logger.Warn("place order rejected", "table", table, "item_id", item.ID())
			return nil, err
		}
	}

	order = models.NewOrder(table, staff.ID)
	for _, item := range items {
		if addErr := order.AddItem(item); addErr != nil {
			err = fmt.Errorf("place order: %w: %v", ErrInvariant, addErr)
			return nil, err
		}
	}

	s.orders.Save(order)
	appendAudit(s.audits, s.metrics, staff, "PLACE_ORDER", entityOrder, order.ID.String(),
		fmt.Sprintf("table %d, %d items, total $%s", table, len(order.Items), order.Total().StringFixed(2)))
	s.logger.Info("order placed", "order_id", order.ID, "table", table, "items", len(order.Items))
	return order, nil
}

// UpdateOrderStatus moves an order to the named status. The name matches
// case-insensitively; transition legality is deliberately permissive, only
// payment checks the current state.
func (s *OrderService) UpdateOrderStatus(staff auth.Staff, orderID, statusName string) (err error) {
	defer func() {
		s.metrics.RecordOperation("order", string(auth.OpUpdateOrderStatus), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpUpdateOrderStatus); err != nil {
		s.logger.Warn("update order status denied", "role", staff.Role, "order_id", orderID)
		return err
	}

	order, findErr := s.findOrder(orderID)
	if findErr != nil {
		err = fmt.Errorf("update order status: %w", findErr)
		return err
	}
	status, parseErr := models.ParseOrderStatus(statusName)
	if parseErr != nil {
		err = fmt.Errorf("update order status: %w: %v", ErrInvariant, parseErr)
		return err
	}

	previous := order.Status
	order.UpdateStatus(status)
	s.orders.Save(order)
	appendAudit(s.audits, s.metrics, staff, "UPDATE_ORDER_STATUS", entityOrder, order.ID.String(),
		fmt.Sprintf("status %s -> %s", previous, status))
	s.logger.Info("order status updated", "order_id", order.ID, "status", status)
	return nil
}

// GetOrder returns one order by id.
func (s *OrderService) GetOrder(orderID string) (*models.Order, error) {
	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// kitchenStatuses are the order states the kitchen still works on.
var kitchenStatuses = map[models.OrderStatus]bool{
	models.OrderStatusPending:   true,
	models.OrderStatusConfirmed: true,
	models.OrderStatusPrepared:  true,
}

// KitchenQueue lists the orders that still need kitchen work. This is the
// kitchen-facing order surface, so chefs may call it.
func (s *OrderService) KitchenQueue(staff auth.Staff) (queue []*models.Order, err error) {
	defer func() {
		s.metrics.RecordOperation("order", string(auth.OpViewKitchenQueue), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpViewKitchenQueue); err != nil {
		return nil, err
	}
	return s.orders.Search(func(order *models.Order) bool {
		return kitchenStatuses[order.Status] && order.RequiresKitchenPrep()
	}), nil
}

// findOrder resolves an order by its textual id. A malformed id behaves like
// an unknown one.
func (s *OrderService) findOrder(orderID string) (*models.Order, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, fmt.Errorf("order %q %w", orderID, ErrNotFound)
	}
	order, ok := s.orders.FindByID(id.String())
	if !ok {
		return nil, fmt.Errorf("order %s %w", orderID, ErrNotFound)
	}
	return order, nil
}
