package service

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// PaymentService settles served orders. A payment's amount always comes from
// the order's total at settlement time.
type PaymentService struct {
	orders   *store.OrderStore
	payments *store.PaymentStore
	audits   *audit.Chain
	policy   *auth.Policy
	metrics  *monitoring.Metrics
	logger   *slog.Logger
}

// NewPaymentService creates a payment service over the given collaborators.
// Metrics may be nil; a nil logger falls back to slog.Default.
func NewPaymentService(orders *store.OrderStore, payments *store.PaymentStore, audits *audit.Chain, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		orders:   orders,
		payments: payments,
		audits:   audits,
		policy:   policy,
		metrics:  metrics,
		logger:   componentLogger(logger, "payment_service"),
	}
}

// CompletePayment settles a served order: creates the payment, attaches it,
// moves the order to PAID and stores the payment record.
func (s *PaymentService) CompletePayment(staff auth.Staff, orderID string, method models.PaymentMethod) (payment *models.Payment, err error) {
	defer func() {
		s.metrics.RecordOperation("payment", string(auth.OpCompletePayment), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpCompletePayment); err != nil {
		s.logger.Warn("complete payment denied", "role", staff.Role, "order_id", orderID)
		return nil, err
	}

	order, findErr := s.findOrder(orderID)
	if findErr != nil {
		err = fmt.Errorf("complete payment: %w", findErr)
		return nil, err
	}

	payment, payErr := order.ProcessPayment(method)
	if payErr != nil {
		err = fmt.Errorf("complete payment: %w: %v", ErrInvariant, payErr)
		s.logger.Warn("complete payment rejected", "order_id", orderID, "status", order.Status)
		return nil, err
	}

	s.orders.Save(order)
	s.payments.Save(payment)
	appendAudit(s.audits, s.metrics, staff, "COMPLETE_PAYMENT", entityPayment, payment.TransactionID,
		fmt.Sprintf("order %s paid $%s by %s", order.ID, payment.Amount.StringFixed(2), method))
	s.logger.Info("payment completed", "order_id", order.ID, "transaction_id", payment.TransactionID)
	return payment, nil
}

// PaymentForOrder returns the payment attached to an order. Payment data is
// sensitive, so the read is role-gated; it writes no audit entry.
func (s *PaymentService) PaymentForOrder(staff auth.Staff, orderID string) (payment *models.Payment, err error) {
	defer func() {
		s.metrics.RecordOperation("payment", string(auth.OpViewPayment), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpViewPayment); err != nil {
		s.logger.Warn("view payment denied", "role", staff.Role, "order_id", orderID)
		return nil, err
	}

	order, findErr := s.findOrder(orderID)
	if findErr != nil {
		err = fmt.Errorf("view payment: %w", findErr)
		return nil, err
	}
	if order.Payment == nil {
		err = fmt.Errorf("view payment: %w: order %s has no payment", ErrInvariant, orderID)
		return nil, err
	}
	return order.Payment, nil
}

func (s *PaymentService) findOrder(orderID string) (*models.Order, error) {
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
