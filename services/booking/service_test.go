package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"tallerlink/models"
	"tallerlink/services/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePartnerRepo struct {
	partners map[string]*models.Partner
}

func (f *fakePartnerRepo) Create(ctx context.Context, p *models.Partner) error { return nil }
func (f *fakePartnerRepo) GetByID(ctx context.Context, id string) (*models.Partner, error) {
	if p, ok := f.partners[id]; ok {
		return p, nil
	}
	return nil, errors.New("partner not found")
}
func (f *fakePartnerRepo) GetAll(ctx context.Context) ([]models.Partner, error) { return nil, nil }
func (f *fakePartnerRepo) Search(ctx context.Context, filter models.PartnerSearchFilter) ([]models.Partner, error) {
	return nil, nil
}
func (f *fakePartnerRepo) Update(ctx context.Context, p *models.Partner) error { return nil }
func (f *fakePartnerRepo) Delete(ctx context.Context, id string) error         { return nil }

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	sessions map[string]*models.BookingSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]*models.BookingSession)}
}

func (m *memorySessionStore) Save(ctx context.Context, s *models.BookingSession) error {
	copied := *s
	m.sessions[s.ID] = &copied
	return nil
}

func (m *memorySessionStore) Load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (m *memorySessionStore) Drop(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

func newTestService(now time.Time, tickets *fakeTicketRepo) *DefaultBookingSessionService {
	clock := fixedClock(now)
	return &DefaultBookingSessionService{
		PartnerRepo:  &fakePartnerRepo{partners: map[string]*models.Partner{"p1": {ID: "p1"}}},
		TicketRepo:   tickets,
		Availability: &DefaultAvailabilityService{TicketRepo: tickets, Now: clock},
		Sessions:     newMemorySessionStore(),
		Now:          clock,
	}
}

func TestInitiateSessionOpensOnCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})

	session, err := svc.InitiateSession(context.Background(), "c1", "p1", "car1")
	require.NoError(t, err)

	assert.Equal(t, availability.CalendarCursor{Year: 2025, Month: 5}, session.Cursor)
	assert.Nil(t, session.Day)
	assert.Empty(t, session.Slot)
	// June through December of the current year.
	require.Len(t, session.MonthOptions, 7)
	assert.Equal(t, "Junio", session.MonthOptions[0].MonthName())
	assert.Equal(t, "Diciembre", session.MonthOptions[6].MonthName())
	// June opens on the 10th when browsed on the 10th.
	require.NotEmpty(t, session.BookableDays)
	assert.Equal(t, 10, session.BookableDays[0].Day)
}

func TestInitiateSessionUnknownPartner(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})

	_, err := svc.InitiateSession(context.Background(), "c1", "nope", "car1")
	assert.Error(t, err)
}

func TestUpdateSelectionMonthChangeClearsDayAndSlot(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	day := 25
	session, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &day, Slot: "09:00 AM",
	})
	require.NoError(t, err)
	require.NotNil(t, session.Day)
	assert.Equal(t, 25, session.Day.Day)
	assert.Equal(t, "09:00 AM", session.Slot)

	// Browsing to July drops the June selection entirely.
	session, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{Year: 2025, Month: 6})
	require.NoError(t, err)
	assert.Nil(t, session.Day)
	assert.Empty(t, session.Slot)
	// July from June 10 offers the full month, starting on day 1.
	assert.Equal(t, 1, session.BookableDays[0].Day)
	assert.Len(t, session.BookableDays, 31)
}

func TestUpdateSelectionDayChangeClearsSlot(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	day := 25
	session, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &day, Slot: "09:00 AM",
	})
	require.NoError(t, err)

	other := 26
	session, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &other,
	})
	require.NoError(t, err)
	assert.Equal(t, 26, session.Day.Day)
	assert.Empty(t, session.Slot)
}

func TestUpdateSelectionRejectsUnknownSlot(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	day := 25
	_, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &day, Slot: "11:00 AM",
	})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestUpdateSelectionSessionNotFound(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})

	_, err := svc.UpdateSelection(context.Background(), "missing", SelectionUpdate{Year: 2025, Month: 5})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmBookingCreatesPendingTicket(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	day := 25
	_, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &day, Slot: "09:00 AM",
	})
	require.NoError(t, err)

	ticket, err := svc.ConfirmBooking(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", ticket.PartnerID)
	assert.Equal(t, "c1", ticket.ClientID)
	assert.Equal(t, "2025-06-25", ticket.Date)
	assert.Equal(t, "09:00 AM", ticket.Time)
	assert.Equal(t, models.TicketStatusPending, ticket.Status)

	// The session is gone once the ticket exists.
	_, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{Year: 2025, Month: 5})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmBookingWithoutSelection(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	_, err = svc.ConfirmBooking(ctx, session.ID)
	assert.ErrorIs(t, err, ErrNoSelection)
}

func TestConfirmBookingSlotTakenMeanwhile(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	tickets := &fakeTicketRepo{}
	svc := newTestService(now, tickets)
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	day := 25
	_, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{
		Year: 2025, Month: 5, Day: &day, Slot: "09:00 AM",
	})
	require.NoError(t, err)

	// Another client grabbed the slot between selection and confirm.
	tickets.taken = true
	_, err = svc.ConfirmBooking(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestCancelSessionDropsState(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(now, &fakeTicketRepo{})
	ctx := context.Background()

	session, err := svc.InitiateSession(ctx, "c1", "p1", "car1")
	require.NoError(t, err)

	require.NoError(t, svc.CancelSession(ctx, session.ID))
	_, err = svc.UpdateSelection(ctx, session.ID, SelectionUpdate{Year: 2025, Month: 5})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
