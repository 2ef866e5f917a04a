package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the possible states of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusPrepared  OrderStatus = "PREPARED"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusServed    OrderStatus = "SERVED"
	OrderStatusPaid      OrderStatus = "PAID"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderStatuses lists every valid order status.
var OrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPrepared,
	OrderStatusReady,
	OrderStatusServed,
	OrderStatusPaid,
	OrderStatusCancelled,
}

// ParseOrderStatus matches a status name case-insensitively.
func ParseOrderStatus(name string) (OrderStatus, error) {
	for _, status := range OrderStatuses {
		if strings.EqualFold(name, string(status)) {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", name)
}

// Order is a table order. Items are snapshots taken when they are added:
// later menu price or availability changes never alter an existing order.
type Order struct {
	ID          uuid.UUID
	Items       []MenuItem
	TableNumber int
	CreatedAt   time.Time
	Status      OrderStatus
	Payment     *Payment
	WaiterID    string
}

// NewOrder creates a pending order stamped with the current time.
func NewOrder(tableNumber int, waiterID string) *Order {
	return NewOrderAt(tableNumber, waiterID, time.Now())
}

// NewOrderAt creates a pending order with an explicit creation time. Tests
// and imports of historical data use this instead of poking at CreatedAt.
func NewOrderAt(tableNumber int, waiterID string, createdAt time.Time) *Order {
	return &Order{
		ID:          uuid.New(),
		TableNumber: tableNumber,
		CreatedAt:   createdAt,
		Status:      OrderStatusPending,
		WaiterID:    waiterID,
	}
}

// AddItem snapshots an available menu item onto the order. Unavailable items
// are rejected.
func (o *Order) AddItem(item MenuItem) error {
	if !item.Available() {
		return fmt.Errorf("item %q is not available", item.Name())
	}
	o.Items = append(o.Items, item.Clone())
	return nil
}

// Total sums the item prices; combos fold their own discount.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price())
	}
	return total
}

// UpdateStatus moves the order to the given status. Transition legality is
// deliberately permissive; payment is the only operation that cares about
// the current state.
func (o *Order) UpdateStatus(status OrderStatus) {
	o.Status = status
}

// ProcessPayment records a payment for a served order and marks it paid.
func (o *Order) ProcessPayment(method PaymentMethod) (*Payment, error) {
	if o.Status != OrderStatusServed {
		return nil, fmt.Errorf("order must be served before payment, currently %s", o.Status)
	}
	payment := NewPayment(method, o.Total())
	o.Payment = payment
	o.Status = OrderStatusPaid
	return payment, nil
}

// RequiresKitchenPrep reports whether any item on the order needs the kitchen.
func (o *Order) RequiresKitchenPrep() bool {
	for _, item := range o.Items {
		if item.RequiresKitchenPrep() {
			return true
		}
	}
	return false
}

func (o *Order) String() string {
	return fmt.Sprintf("Order[%s | Table=%d | Items=%d | Total=$%s | Status=%s]",
		o.ID.String()[:8], o.TableNumber, len(o.Items), o.Total().StringFixed(2), o.Status)
}
