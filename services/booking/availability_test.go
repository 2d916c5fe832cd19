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

// fakeTicketRepo implements ticketRepo.TicketRepository for availability
// tests; only the occupied-lookup methods matter here.
type fakeTicketRepo struct {
	occupied    map[string][]string // "partnerID|date" -> raw times
	occupiedErr error
	taken       bool
}

func (f *fakeTicketRepo) GetOccupiedTimes(ctx context.Context, partnerID, date string) ([]string, error) {
	if f.occupiedErr != nil {
		return nil, f.occupiedErr
	}
	return f.occupied[partnerID+"|"+date], nil
}

func (f *fakeTicketRepo) IsSlotTaken(ctx context.Context, partnerID, date, slot string) (bool, error) {
	return f.taken, nil
}

func (f *fakeTicketRepo) Create(ctx context.Context, t *models.Ticket) error { return nil }
func (f *fakeTicketRepo) GetByID(ctx context.Context, id string) (*models.Ticket, error) {
	return nil, errors.New("not implemented")
}
func (f *fakeTicketRepo) GetAll(ctx context.Context) ([]models.Ticket, error) { return nil, nil }
func (f *fakeTicketRepo) ListByClient(ctx context.Context, clientID string) ([]models.Ticket, error) {
	return nil, nil
}
func (f *fakeTicketRepo) ListByPartner(ctx context.Context, partnerID string) ([]models.Ticket, error) {
	return nil, nil
}
func (f *fakeTicketRepo) UpdateStatus(ctx context.Context, id, status string) error { return nil }
func (f *fakeTicketRepo) Delete(ctx context.Context, id string) error              { return nil }
func (f *fakeTicketRepo) ExpirePendingBefore(ctx context.Context, day time.Time) (int64, error) {
	return 0, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBookableSlotsNormalizesOccupied(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeTicketRepo{occupied: map[string][]string{
		// Legacy rows without the leading zero must still block the slot.
		"p1|2025-06-25": {"9:00 AM", "02:00 PM"},
	}}
	svc := &DefaultAvailabilityService{TicketRepo: repo, Now: fixedClock(now)}

	day := 25
	slots, err := svc.BookableSlots(context.Background(), "p1", availability.CursorOf(now), &day)
	require.NoError(t, err)

	assert.NotContains(t, slots, "09:00 AM")
	assert.NotContains(t, slots, "02:00 PM")
	assert.Len(t, slots, len(availability.SlotCatalog)-2)
}

func TestBookableSlotsLookupFailureIsPermissive(t *testing.T) {
	now := time.Date(2025, time.June, 10, 8, 0, 0, 0, time.UTC)
	repo := &fakeTicketRepo{occupiedErr: errors.New("connection refused")}
	svc := &DefaultAvailabilityService{TicketRepo: repo, Now: fixedClock(now)}

	day := 25
	slots, err := svc.BookableSlots(context.Background(), "p1", availability.CursorOf(now), &day)
	require.NoError(t, err)

	// Every slot is offered; the conflict surfaces at confirm time instead.
	assert.Equal(t, availability.SlotCatalog, slots)
}

func TestBookableSlotsNoDaySelected(t *testing.T) {
	now := time.Date(2025, time.June, 10, 17, 45, 0, 0, time.UTC)
	repo := &fakeTicketRepo{}
	svc := &DefaultAvailabilityService{TicketRepo: repo, Now: fixedClock(now)}

	slots, err := svc.BookableSlots(context.Background(), "p1", availability.CursorOf(now), nil)
	require.NoError(t, err)

	// No day means no occupied lookup and no today cutoff.
	assert.Equal(t, availability.SlotCatalog, slots)
}

func TestBookableSlotsTodayCutoff(t *testing.T) {
	now := time.Date(2025, time.June, 10, 10, 15, 0, 0, time.UTC)
	repo := &fakeTicketRepo{}
	svc := &DefaultAvailabilityService{TicketRepo: repo, Now: fixedClock(now)}

	day := 10
	slots, err := svc.BookableSlots(context.Background(), "p1", availability.CursorOf(now), &day)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"10:30 AM", "12:00 PM", "12:30 PM", "01:30 PM",
		"02:00 PM", "03:00 PM", "04:30 PM", "05:00 PM", "05:30 PM",
	}, slots)
}

func TestBookableDaysUsesClock(t *testing.T) {
	now := time.Date(2025, time.September, 28, 9, 0, 0, 0, time.UTC)
	svc := &DefaultAvailabilityService{TicketRepo: &fakeTicketRepo{}, Now: fixedClock(now)}

	days := svc.BookableDays(availability.CursorOf(now))
	require.Len(t, days, 3)
	assert.Equal(t, 28, days[0].Day)
	assert.Equal(t, 30, days[2].Day)
}

func TestDayCandidateWeekday(t *testing.T) {
	// 2025-06-01 is a Sunday; labels follow the Monday-first table.
	cursor := availability.CalendarCursor{Year: 2025, Month: 5}
	assert.Equal(t, "DOM", dayCandidate(cursor, 1).Weekday)
	assert.Equal(t, "LUN", dayCandidate(cursor, 2).Weekday)
	assert.Equal(t, "MAR", dayCandidate(cursor, 10).Weekday)
}
