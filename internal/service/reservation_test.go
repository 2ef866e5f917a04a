package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maitred/internal/models"
)

var tomorrow = time.Now().AddDate(0, 0, 1)

func TestManagerCanCreateReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	r, err := svc.CreateReservation(f.manager, "John", "555-1111", "john@email.com", 4, tomorrow)

	require.NoError(t, err)
	assert.Equal(t, "John", r.Customer.Name)
	assert.Equal(t, models.ReservationConfirmed, r.Status)
	assert.Equal(t, models.UnassignedTable, r.AssignedTable)
	assert.True(t, r.IsActive())
	assert.Equal(t, 1, f.audits.Len())

	stored, ok := f.reservations.FindByID(r.ID.String())
	require.True(t, ok)
	assert.Same(t, r, stored)
}

func TestWaiterCanCreateReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	r, err := svc.CreateReservation(f.waiter, "Sarah", "555-2222", "sarah@email.com", 2, tomorrow)

	require.NoError(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, 1, f.audits.Len())
}

func TestChefCannotCreateReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	_, err := svc.CreateReservation(f.chef, "Mike", "555-3333", "mike@mail.com", 3, tomorrow)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 0, f.reservations.Len())
	assert.Equal(t, 0, f.audits.Len())
}

func TestCreateReservationRejectsNonPositiveParty(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	_, err := svc.CreateReservation(f.manager, "Nobody", "555-0000", "no@mail.com", 0, tomorrow)

	assert.ErrorIs(t, err, ErrInvariant)
	assert.Equal(t, 0, f.reservations.Len())
	assert.Equal(t, 0, f.audits.Len())
}

func TestManagerCanCancelReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.manager, "Bob", "555-7777", "bob@mail.com", 3, tomorrow)
	require.NoError(t, err)

	cancelled, err := svc.CancelReservation(f.manager, r.ID.String())

	require.NoError(t, err)
	assert.True(t, cancelled)
	stored, _ := f.reservations.FindByID(r.ID.String())
	assert.Equal(t, models.ReservationCancelled, stored.Status)
	assert.False(t, stored.IsActive())
	assert.Equal(t, 2, f.audits.Len()) // create + cancel
	assert.True(t, f.audits.VerifyChain())
}

func TestWaiterCanCancelReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.manager, "Leo", "555-9090", "leo@mail.com", 5, tomorrow)
	require.NoError(t, err)

	cancelled, err := svc.CancelReservation(f.waiter, r.ID.String())

	require.NoError(t, err)
	assert.True(t, cancelled)
}

func TestChefCannotCancelReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.manager, "Tim", "555-4444", "tim@mail.com", 2, tomorrow)
	require.NoError(t, err)

	_, err = svc.CancelReservation(f.chef, r.ID.String())

	assert.ErrorIs(t, err, ErrUnauthorized)
	stored, _ := f.reservations.FindByID(r.ID.String())
	assert.Equal(t, models.ReservationConfirmed, stored.Status)
}

func TestCancelReservationReturnsFalseIfMissing(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	cancelled, err := svc.CancelReservation(f.manager, uuid.NewString())
	require.NoError(t, err)
	assert.False(t, cancelled)

	cancelled, err = svc.CancelReservation(f.manager, "not-a-uuid")
	require.NoError(t, err)
	assert.False(t, cancelled)

	assert.Equal(t, 0, f.audits.Len())
}

func TestAssignTableSeatsParty(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.waiter, "Oliver", "555-1234", "oliver@mail.com", 3, tomorrow)
	require.NoError(t, err)

	require.NoError(t, svc.AssignTable(f.waiter, r.ID.String(), 7))

	stored, _ := f.reservations.FindByID(r.ID.String())
	assert.Equal(t, models.ReservationSeated, stored.Status)
	assert.Equal(t, 7, stored.AssignedTable)
	assert.Equal(t, 2, f.audits.Len())
}

func TestAssignTableRequiresConfirmedReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.manager, "Gone", "555-5555", "gone@mail.com", 2, tomorrow)
	require.NoError(t, err)
	_, err = svc.CancelReservation(f.manager, r.ID.String())
	require.NoError(t, err)
	auditsBefore := f.audits.Len()

	err = svc.AssignTable(f.manager, r.ID.String(), 4)

	assert.ErrorIs(t, err, ErrInvariant)
	stored, _ := f.reservations.FindByID(r.ID.String())
	assert.Equal(t, models.UnassignedTable, stored.AssignedTable)
	assert.Equal(t, auditsBefore, f.audits.Len())
}

func TestAssignTableNotFound(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()

	err := svc.AssignTable(f.manager, uuid.NewString(), 4)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindReservation(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	r, err := svc.CreateReservation(f.manager, "Oliver", "555-1234", "oliver@mail.com", 3, tomorrow)
	require.NoError(t, err)

	found, err := svc.FindReservation(r.ID.String())
	require.NoError(t, err)
	assert.Same(t, r, found)

	_, err = svc.FindReservation(uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActiveReservationsAndByDate(t *testing.T) {
	f := newFixture()
	svc := f.reservationService()
	kept, err := svc.CreateReservation(f.manager, "Keep", "555-1", "k@mail.com", 2, tomorrow)
	require.NoError(t, err)
	dropped, err := svc.CreateReservation(f.manager, "Drop", "555-2", "d@mail.com", 2, tomorrow.AddDate(0, 0, 1))
	require.NoError(t, err)
	_, err = svc.CancelReservation(f.manager, dropped.ID.String())
	require.NoError(t, err)

	active := svc.ActiveReservations()
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)

	onDay := svc.ReservationsOn(tomorrow)
	require.Len(t, onDay, 1)
	assert.Equal(t, kept.ID, onDay[0].ID)
}
