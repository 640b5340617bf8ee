package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"physiocare/models"
)

// gatedService is an AppointmentService whose AvailableSlots calls park on a
// per-date gate, so tests can interleave two in-flight loads deterministically.
type gatedService struct {
	mu      sync.Mutex
	slots   map[string][]string
	gates   map[string]chan struct{}
	entered chan string
	appts   []models.Appointment
}

func newGatedService() *gatedService {
	return &gatedService{
		slots:   map[string][]string{},
		gates:   map[string]chan struct{}{},
		entered: make(chan string, 8),
	}
}

func (g *gatedService) gate(date string) chan struct{} {
	g.mu.Lock()
	defer g.mu.Unlock()
	ch, ok := g.gates[date]
	if !ok {
		ch = make(chan struct{})
		g.gates[date] = ch
	}
	return ch
}

func (g *gatedService) AvailableSlots(ctx context.Context, physioID, date string) ([]string, error) {
	g.entered <- date
	<-g.gate(date)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.slots[date], nil
}

func (g *gatedService) Book(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	return nil, nil
}

func (g *gatedService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return nil, ErrAppointmentNotFound
}

func (g *gatedService) Cancel(ctx context.Context, id, cancelledBy string) error { return nil }

func (g *gatedService) UpdateNotes(ctx context.Context, id, notes string) error { return nil }

func (g *gatedService) ListForPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return g.appts, nil, nil
}

func (g *gatedService) ListForPatient(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return nil, nil, nil
}

func (g *gatedService) BlockSlot(ctx context.Context, physioID, date, timeSlot, reason string) error {
	return nil
}

func (g *gatedService) UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error {
	return nil
}

func (g *gatedService) BlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error) {
	return nil, nil
}

func waitEntered(t *testing.T, svc *gatedService, date string) {
	t.Helper()
	select {
	case got := <-svc.entered:
		require.Equal(t, date, got)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for slot load of %s", date)
	}
}

func TestCalendarStaleLoadIsDiscarded(t *testing.T) {
	svc := newGatedService()
	svc.slots["2026-09-01"] = []string{"09:00 - 10:00"}
	svc.slots["2026-09-02"] = []string{"14:00 - 15:00"}

	cal := NewCalendar(svc, "physio-1")
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		cal.SelectDate(ctx, "2026-09-01")
	}()
	waitEntered(t, svc, "2026-09-01")

	go func() {
		defer wg.Done()
		cal.SelectDate(ctx, "2026-09-02")
	}()
	waitEntered(t, svc, "2026-09-02")

	// The newer selection finishes first; the older one arrives afterwards
	// and must not overwrite it.
	close(svc.gates["2026-09-02"])
	close(svc.gates["2026-09-01"])
	wg.Wait()

	state := cal.State()
	assert.Equal(t, "2026-09-02", state.SelectedDate)
	assert.Equal(t, []string{"14:00 - 15:00"}, state.AvailableSlots)
	assert.False(t, state.Loading)
	assert.Empty(t, state.ErrorMessage)
}

func TestCalendarSelectDateFiltersDay(t *testing.T) {
	svc := newGatedService()
	svc.appts = []models.Appointment{
		{ID: "a1", Date: "2026-09-01", TimeSlot: "09:00 - 10:00"},
		{ID: "a2", Date: "2026-09-02", TimeSlot: "10:00 - 11:00"},
		{ID: "a3", Date: "2026-09-01", TimeSlot: "13:00 - 14:00"},
	}
	svc.slots["2026-09-01"] = []string{"14:00 - 15:00"}
	close(svc.gate("2026-09-01"))

	cal := NewCalendar(svc, "physio-1")
	cal.SelectDate(context.Background(), "2026-09-01")
	// Drain the entry beacon so later tests on the same struct stay balanced.
	<-svc.entered

	state := cal.State()
	require.Len(t, state.DayAppointments, 0) // appointment list not loaded yet

	cal.Refresh(context.Background())
	<-svc.entered

	state = cal.State()
	require.Len(t, state.Appointments, 3)
	require.Len(t, state.DayAppointments, 2)
	assert.Equal(t, "a1", state.DayAppointments[0].ID)
	assert.Equal(t, "a3", state.DayAppointments[1].ID)
	assert.Equal(t, []string{"14:00 - 15:00"}, state.AvailableSlots)
}

func TestCalendarHubReusesSessions(t *testing.T) {
	svc := newGatedService()
	svc.slots["any"] = nil
	// Open every gate up front so Refresh completes inline.
	close(svc.gate(time.Now().Format("2006-01-02")))

	hub := NewCalendarHub(svc)
	ctx := context.Background()

	first := hub.Get(ctx, "physio-1")
	<-svc.entered
	second := hub.Get(ctx, "physio-1")
	assert.Same(t, first, second)

	other := hub.Get(ctx, "physio-2")
	<-svc.entered
	assert.NotSame(t, first, other)
}
