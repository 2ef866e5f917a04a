package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/config"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/service"
	"maitred/internal/store"
)

var configFile = flag.String("config", "configs/config.yaml", "Path to configuration file")

func main() {
	flag.Parse()

	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	var metrics *monitoring.Metrics
	if cfg.Metrics.Enabled {
		metrics = monitoring.NewMetrics()
	}

	app, err := buildApp(cfg, metrics, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}

	logger.Info("restaurant open", "name", cfg.Restaurant.Name,
		"menu_items", len(cfg.Menu), "staff", len(cfg.Staff))

	if err := runServiceDay(app, logger); err != nil {
		logger.Error("service day aborted", "error", err)
		os.Exit(1)
	}

	printAuditTrail(app.audits)
}

// app bundles the stores and services wired at startup.
type app struct {
	staff map[string]auth.Staff

	audits *audit.Chain

	menuSvc        *service.MenuService
	orderSvc       *service.OrderService
	inventorySvc   *service.InventoryService
	paymentSvc     *service.PaymentService
	reservationSvc *service.ReservationService
	analyticsSvc   *service.AnalyticsService
}

func buildApp(cfg *config.Config, metrics *monitoring.Metrics, logger *slog.Logger) (*app, error) {
	menu := store.NewMenuStore()
	orders := store.NewOrderStore()
	inventory := store.NewInventoryStore()
	reservations := store.NewReservationStore()
	payments := store.NewPaymentStore()
	audits := audit.NewChain()
	policy := auth.NewPolicy()

	a := &app{
		staff:          make(map[string]auth.Staff),
		audits:         audits,
		menuSvc:        service.NewMenuService(menu, audits, policy, metrics, logger),
		orderSvc:       service.NewOrderService(orders, audits, policy, metrics, logger),
		inventorySvc:   service.NewInventoryService(inventory, menu, audits, policy, metrics, logger),
		paymentSvc:     service.NewPaymentService(orders, payments, audits, policy, metrics, logger),
		reservationSvc: service.NewReservationService(reservations, audits, policy, metrics, logger),
		analyticsSvc:   service.NewAnalyticsService(orders, policy, metrics, logger),
	}

	for _, s := range cfg.Staff {
		switch strings.ToUpper(s.Role) {
		case "MANAGER":
			a.staff[s.ID] = auth.NewManager(s.ID, s.Name)
		case "WAITER":
			a.staff[s.ID] = auth.NewWaiter(s.ID, s.Name)
		case "CHEF":
			a.staff[s.ID] = auth.NewChef(s.ID, s.Name)
		}
	}
	manager, ok := a.managerOnDuty()
	if !ok {
		return nil, fmt.Errorf("configuration defines no manager")
	}

	for _, seed := range cfg.Menu {
		item, err := menuItemFromSeed(seed)
		if err != nil {
			return nil, err
		}
		if err := a.menuSvc.AddMenuItem(manager, item); err != nil {
			return nil, fmt.Errorf("seed menu item %q: %w", seed.ID, err)
		}
	}
	for _, seed := range cfg.Inventory {
		stock := models.NewInventoryItem(seed.ItemID, seed.Name, seed.Unit,
			seed.Level, seed.Threshold, seed.Capacity)
		inventory.Save(stock)
	}
	return a, nil
}

func menuItemFromSeed(seed config.MenuSeed) (models.MenuItem, error) {
	price := decimal.NewFromFloat(seed.Price)
	dietary := models.DietaryType(strings.ToLower(seed.Dietary))
	if dietary == "" {
		dietary = models.DietaryRegular
	}
	switch strings.ToLower(seed.Kind) {
	case "entree":
		return models.NewEntree(seed.ID, seed.Name, seed.Description, price,
			dietary, seed.Ingredients, seed.PrepMinutes), nil
	case "drink":
		return models.NewDrink(seed.ID, seed.Name, seed.Description, price, seed.Alcoholic), nil
	case "dessert":
		return models.NewDessert(seed.ID, seed.Name, seed.Description, price,
			dietary, seed.Allergens), nil
	default:
		return nil, fmt.Errorf("menu item %q: unknown kind %q", seed.ID, seed.Kind)
	}
}

func (a *app) managerOnDuty() (auth.Staff, bool) { return a.staffWithRole(auth.RoleManager) }
func (a *app) waiterOnDuty() (auth.Staff, bool)  { return a.staffWithRole(auth.RoleWaiter) }
func (a *app) chefOnDuty() (auth.Staff, bool)    { return a.staffWithRole(auth.RoleChef) }

func (a *app) staffWithRole(role auth.Role) (auth.Staff, bool) {
	for _, s := range a.staff {
		if s.Role == role {
			return s, true
		}
	}
	return auth.Staff{}, false
}

// runServiceDay walks one evening of service end to end: a reservation is
// seated, an order is placed, prepared and paid, stock runs out, and the
// manager closes with the daily numbers.
func runServiceDay(a *app, logger *slog.Logger) error {
	manager, _ := a.managerOnDuty()
	waiter, hasWaiter := a.waiterOnDuty()
	if !hasWaiter {
		waiter = manager
	}
	chef, hasChef := a.chefOnDuty()

	reservation, err := a.reservationSvc.CreateReservation(waiter,
		"Dana Fontaine", "555-0142", "dana@example.com", 2, time.Now().Add(30*time.Minute))
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	if err := a.reservationSvc.AssignTable(waiter, reservation.ID.String(), 5); err != nil {
		return fmt.Errorf("assign table: %w", err)
	}
	logger.Info("party seated", "customer", reservation.Customer.Name, "table", reservation.AssignedTable)

	available := a.menuSvc.AvailableItems()
	if len(available) == 0 {
		return fmt.Errorf("nothing on the menu")
	}
	selection := available[:min(2, len(available))]
	order, err := a.orderSvc.PlaceOrder(waiter, "5", selection)
	if err != nil {
		return fmt.Errorf("place order: %w", err)
	}
	logger.Info("order placed", "order_id", order.ID, "total", order.Total())

	if hasChef {
		queue, err := a.orderSvc.KitchenQueue(chef)
		if err != nil {
			return fmt.Errorf("kitchen queue: %w", err)
		}
		logger.Info("kitchen queue", "pending", len(queue))
	}

	for _, status := range []string{"CONFIRMED", "PREPARED", "READY", "SERVED"} {
		if err := a.orderSvc.UpdateOrderStatus(waiter, order.ID.String(), status); err != nil {
			return fmt.Errorf("advance order to %s: %w", status, err)
		}
	}
	for _, item := range selection {
		if err := a.inventorySvc.ReduceStock(manager, item.ID(), 1); err != nil {
			logger.Warn("stock not tracked for item", "item", item.Name(), "error", err)
		}
	}

	payment, err := a.paymentSvc.CompletePayment(waiter, order.ID.String(), models.PaymentCreditCard)
	if err != nil {
		return fmt.Errorf("complete payment: %w", err)
	}
	logger.Info("payment complete", "transaction", payment.TransactionID, "amount", payment.Amount)

	// Walk-in that never shows: cancel is a no-op for unknown ids.
	if cancelled, err := a.reservationSvc.CancelReservation(waiter, "00000000-0000-0000-0000-000000000000"); err != nil {
		return err
	} else if !cancelled {
		logger.Debug("no reservation matched cancellation request")
	}

	top, err := a.analyticsSvc.TopSellingItems(manager)
	if err != nil {
		return fmt.Errorf("top selling items: %w", err)
	}
	revenue, err := a.analyticsSvc.TotalRevenueToday(manager)
	if err != nil {
		return fmt.Errorf("revenue: %w", err)
	}
	logger.Info("closing numbers", "revenue_today", revenue, "distinct_items_sold", len(top))
	return nil
}

func printAuditTrail(chain *audit.Chain) {
	fmt.Println("\n=== Audit Trail ===")
	for i, entry := range chain.All() {
		fmt.Printf("%2d. [%s] %s %s %s/%s %s\n", i+1,
			entry.Timestamp.Format(time.RFC3339), entry.Actor, entry.Action,
			entry.EntityType, entry.EntityID, entry.Details)
	}
	if chain.VerifyChain() {
		fmt.Println("chain verified: no tampering detected")
	} else {
		fmt.Println("chain verification FAILED")
	}
}
