package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"maitred/internal/audit"
	"maitred/internal/auth"
	"maitred/internal/models"
	"maitred/internal/monitoring"
	"maitred/internal/store"
)

// ReservationService books tables.
type ReservationService struct {
	reservations *store.ReservationStore
	audits       *audit.Chain
	policy       *auth.Policy
	metrics      *monitoring.Metrics
	logger       *slog.Logger
}

// NewReservationService creates a reservation service over the given
// collaborators. Metrics may be nil; a nil logger falls back to slog.Default.
func NewReservationService(reservations *store.ReservationStore, audits *audit.Chain, policy *auth.Policy, metrics *monitoring.Metrics, logger *slog.Logger) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		audits:       audits,
		policy:       policy,
		metrics:      metrics,
		logger:       componentLogger(logger, "reservation_service"),
	}
}

// CreateReservation books a confirmed, unassigned reservation for a guest.
func (s *ReservationService) CreateReservation(staff auth.Staff, name, phone, email string, partySize int, at time.Time) (reservation *models.Reservation, err error) {
	defer func() {
		s.metrics.RecordOperation("reservation", string(auth.OpCreateReservation), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpCreateReservation); err != nil {
		s.logger.Warn("create reservation denied", "role", staff.Role)
		return nil, err
	}
	if partySize <= 0 {
		err = fmt.Errorf("create reservation: %w: party size must be positive, got %d", ErrInvariant, partySize)
		return nil, err
	}

	customer := models.Customer{
		ID:    uuid.NewString(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
	reservation = models.NewReservation(customer, at, partySize)
	s.reservations.Save(reservation)
	appendAudit(s.audits, s.metrics, staff, "CREATE_RESERVATION", entityReservation, reservation.ID.String(),
		fmt.Sprintf("%s, party of %d at %s", name, partySize, at.Format(time.RFC3339)))
	s.logger.Info("reservation created", "reservation_id", reservation.ID, "party_size", partySize)
	return reservation, nil
}

// CancelReservation cancels a reservation. An unknown id is not an error:
// the call reports false and appends no audit entry.
func (s *ReservationService) CancelReservation(staff auth.Staff, reservationID string) (cancelled bool, err error) {
	defer func() {
		s.metrics.RecordOperation("reservation", string(auth.OpCancelReservation), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpCancelReservation); err != nil {
		s.logger.Warn("cancel reservation denied", "role", staff.Role, "reservation_id", reservationID)
		return false, err
	}

	reservation, ok := s.findReservation(reservationID)
	if !ok {
		s.logger.Info("cancel reservation skipped, id unknown", "reservation_id", reservationID)
		return false, nil
	}

	reservation.UpdateStatus(models.ReservationCancelled)
	s.reservations.Save(reservation)
	appendAudit(s.audits, s.metrics, staff, "CANCEL_RESERVATION", entityReservation, reservation.ID.String(),
		fmt.Sprintf("cancelled booking for %s", reservation.Customer.Name))
	s.logger.Info("reservation cancelled", "reservation_id", reservation.ID)
	return true, nil
}

// AssignTable seats a confirmed party at a table.
func (s *ReservationService) AssignTable(staff auth.Staff, reservationID string, tableNumber int) (err error) {
	defer func() {
		s.metrics.RecordOperation("reservation", string(auth.OpAssignTable), outcomeFor(err))
	}()

	if err = authorize(s.policy, staff, auth.OpAssignTable); err != nil {
		s.logger.Warn("assign table denied", "role", staff.Role, "reservation_id", reservationID)
		return err
	}

	reservation, ok := s.findReservation(reservationID)
	if !ok {
		err = fmt.Errorf("assign table: reservation %s %w", reservationID, ErrNotFound)
		return err
	}
	if tableNumber <= 0 {
		err = fmt.Errorf("assign table: %w: table number must be positive, got %d", ErrInvariant, tableNumber)
		return err
	}
	if reservation.Status != models.ReservationConfirmed {
		err = fmt.Errorf("assign table: %w: reservation is %s, not CONFIRMED", ErrInvariant, reservation.Status)
		return err
	}

	reservation.AssignTable(tableNumber)
	s.reservations.Save(reservation)
	appendAudit(s.audits, s.metrics, staff, "ASSIGN_TABLE", entityReservation, reservation.ID.String(),
		fmt.Sprintf("seated %s at table %d", reservation.Customer.Name, tableNumber))
	s.logger.Info("table assigned", "reservation_id", reservation.ID, "table", tableNumber)
	return nil
}

// FindReservation returns one reservation by id.
func (s *ReservationService) FindReservation(reservationID string) (*models.Reservation, error) {
	reservation, ok := s.findReservation(reservationID)
	if !ok {
		return nil, fmt.Errorf("find reservation: %s %w", reservationID, ErrNotFound)
	}
	return reservation, nil
}

// ActiveReservations lists reservations still occupying capacity.
func (s *ReservationService) ActiveReservations() []*models.Reservation {
	return s.reservations.FindActive()
}

// ReservationsOn lists reservations falling on the given calendar day.
func (s *ReservationService) ReservationsOn(date time.Time) []*models.Reservation {
	return s.reservations.FindByDate(date)
}

// findReservation resolves a reservation by its textual id; malformed ids
// behave like unknown ones.
func (s *ReservationService) findReservation(reservationID string) (*models.Reservation, bool) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, false
	}
	return s.reservations.FindByID(id.String())
}
