// Package auth defines staff identities, the closed set of roles and the
// capability table consulted before every service operation.
package auth

import "sort"

// Role is the closed set of staff roles.
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleWaiter  Role = "WAITER"
	RoleChef    Role = "CHEF"
)

// Staff identifies a caller: who they are and which role they act under.
type Staff struct {
	ID   string
	Name string
	Role Role
}

// NewManager creates a manager identity.
func NewManager(id, name string) Staff {
	return Staff{ID: id, Name: name, Role: RoleManager}
}

// NewWaiter creates a waiter identity.
func NewWaiter(id, name string) Staff {
	return Staff{ID: id, Name: name, Role: RoleWaiter}
}

// NewChef creates a chef identity.
func NewChef(id, name string) Staff {
	return Staff{ID: id, Name: name, Role: RoleChef}
}

// Operation names a service capability a role may hold.
type Operation string

const (
	OpAddMenuItem       Operation = "menu.add_item"
	OpUpdateMenuPrice   Operation = "menu.update_price"
	OpPlaceOrder        Operation = "order.place"
	OpUpdateOrderStatus Operation = "order.update_status"
	OpViewKitchenQueue  Operation = "order.view_kitchen_queue"
	OpReduceStock       Operation = "inventory.reduce_stock"
	OpIncreaseStock     Operation = "inventory.increase_stock"
	OpViewInventory     Operation = "inventory.view"
	OpCreateReservation Operation = "reservation.create"
	OpCancelReservation Operation = "reservation.cancel"
	OpAssignTable       Operation = "reservation.assign_table"
	OpCompletePayment   Operation = "payment.complete"
	OpViewPayment       Operation = "payment.view"
	OpViewAnalytics     Operation = "analytics.view"
)

var allOperations = []Operation{
	OpAddMenuItem,
	OpUpdateMenuPrice,
	OpPlaceOrder,
	OpUpdateOrderStatus,
	OpViewKitchenQueue,
	OpReduceStock,
	OpIncreaseStock,
	OpViewInventory,
	OpCreateReservation,
	OpCancelReservation,
	OpAssignTable,
	OpCompletePayment,
	OpViewPayment,
	OpViewAnalytics,
}

// Policy maps each role to its fixed capability set. Managers hold every
// capability; waiters run the front of house; chefs see kitchen-relevant
// state only and can mutate nothing outside it.
type Policy struct {
	grants map[Role]map[Operation]bool
}

// NewPolicy builds the fixed capability table.
func NewPolicy() *Policy {
	grants := map[Role]map[Operation]bool{
		RoleManager: grant(allOperations...),
		RoleWaiter: grant(
			OpPlaceOrder,
			OpUpdateOrderStatus,
			OpCreateReservation,
			OpCancelReservation,
			OpAssignTable,
			OpCompletePayment,
			OpViewPayment,
		),
		RoleChef: grant(
			OpViewKitchenQueue,
			OpViewInventory,
		),
	}
	return &Policy{grants: grants}
}

func grant(ops ...Operation) map[Operation]bool {
	set := make(map[Operation]bool, len(ops))
	for _, op := range ops {
		set[op] = true
	}
	return set
}

// Allows reports whether the role may invoke the operation.
func (p *Policy) Allows(role Role, op Operation) bool {
	return p.grants[role][op]
}

// Operations returns the sorted capability set of a role.
func (p *Policy) Operations(role Role) []Operation {
	ops := make([]Operation, 0, len(p.grants[role]))
	for op := range p.grants[role] {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
