package service

import (
	"github.com/shopspring/decimal"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/store"
)

// fixture wires fresh stores, an empty audit chain and the fixed policy for
// one test. Services under test share the same chain so cross-service audit
// ordering is observable.
type fixture struct {
	menu         *store.MenuStore
	orders       *store.OrderStore
	inventory    *store.InventoryStore
	reservations *store.ReservationStore
	payments     *store.PaymentStore
	audits       *audit.Chain
	policy       *auth.Policy

	manager auth.Staff
	waiter  auth.Staff
	chef    auth.Staff
}

func newFixture() *fixture {
	return &fixture{
		menu:         store.NewMenuStore(),
		orders:       store.NewOrderStore(),
		inventory:    store.NewInventoryStore(),
		reservations: store.NewReservationStore(),
		payments:     store.NewPaymentStore(),
		audits:       audit.NewChain(),
		policy:       auth.NewPolicy(),
		manager:      auth.NewManager("m1", "Alice Manager"),
		waiter:       auth.NewWaiter("w1", "Bob Waiter"),
		chef:         auth.NewChef("c1", "Charlie Chef"),
	}
}

func (f *fixture) menuService() *MenuService {
	return NewMenuService(f.menu, f.audits, f.policy, nil, nil)
}

func (f *fixture) orderService() *OrderService {
	return NewOrderService(f.orders, f.audits, f.policy, nil, nil)
}

func (f *fixture) inventoryService() *InventoryService {
	return NewInventoryService(f.inventory, f.menu, f.audits, f.policy, nil, nil)
}

func (f *fixture) paymentService() *PaymentService {
	return NewPaymentService(f.orders, f.payments, f.audits, f.policy, nil, nil)
}

func (f *fixture) reservationService() *ReservationService {
	return NewReservationService(f.reservations, f.audits, f.policy, nil, nil)
}

func (f *fixture) analyticsService() *AnalyticsService {
	return NewAnalyticsService(f.orders, f.policy, nil, nil)
}

func newPasta() *models.Entree {
	return models.NewEntree("i1", "Pasta", "Fresh pasta", decimal.NewFromFloat(12.0),
		models.DietaryRegular, []string{"flour", "sauce"}, 10)
}

func newBurger() *models.Entree {
	return models.NewEntree("i2", "Burger", "Beef burger", decimal.NewFromFloat(15.0),
		models.DietaryRegular, []string{"beef", "bun"}, 8)
}

func newCola() *models.Drink {
	return models.NewDrink("i3", "Cola", "Refreshing drink", decimal.NewFromFloat(3.0), false)
}
