package appointment

import (
	"context"
	"sync"
	"time"

	"physiocare/models"
)

// CalendarState is an immutable snapshot of a physiotherapist's calendar
// view: the selected date, the loaded appointment list, the day's slice of
// it, and the date's blocked and available slots. Exactly one of Loading,
// ErrorMessage != "" or a populated snapshot is meaningful at a time.
type CalendarState struct {
	SelectedDate    string                   `json:"selectedDate"`
	Appointments    []models.Appointment     `json:"appointments"`
	DayAppointments []models.Appointment     `json:"dayAppointments"`
	BlockedSlots    []models.BlockedTimeSlot `json:"blockedSlots"`
	AvailableSlots  []string                 `json:"availableSlots"`
	Loading         bool                     `json:"loading"`
	ErrorMessage    string                   `json:"errorMessage,omitempty"`
}

// Calendar folds asynchronous availability loads into a single state
// snapshot for one physiotherapist. Every load is keyed by a generation
// counter taken while holding the lock; a result whose generation has been
// superseded by a newer selection is discarded on arrival instead of
// overwriting fresher state.
type Calendar struct {
	mu       sync.Mutex
	svc      AppointmentService
	physioID string
	gen      uint64
	state    CalendarState
}

// NewCalendar builds a calendar session for a physiotherapist, selecting
// today's date.
func NewCalendar(svc AppointmentService, physioID string) *Calendar {
	return &Calendar{
		svc:      svc,
		physioID: physioID,
		state: CalendarState{
			SelectedDate: time.Now().Format("2006-01-02"),
			Loading:      true,
		},
	}
}

// State returns a copy of the current snapshot.
func (c *Calendar) State() CalendarState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Refresh reloads the appointment list and the selected date's slots. This
// is also the only recovery path out of an error state.
func (c *Calendar) Refresh(ctx context.Context) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	date := c.state.SelectedDate
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.mu.Unlock()

	appts, _, err := c.svc.ListForPhysiotherapist(ctx, c.physioID)
	if err != nil {
		c.fail(gen, "Randevular yüklenemedi")
		return
	}

	c.mu.Lock()
	if gen == c.gen {
		c.state.Appointments = appts
		c.state.DayAppointments = filterByDate(appts, date)
	}
	c.mu.Unlock()

	c.loadSlots(ctx, date, gen)
}

// SelectDate switches the view to a date and reloads that date's slots. The
// appointment list is not re-fetched; the day's view filters the loaded list.
func (c *Calendar) SelectDate(ctx context.Context, date string) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.state.SelectedDate = date
	c.state.DayAppointments = filterByDate(c.state.Appointments, date)
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.mu.Unlock()

	c.loadSlots(ctx, date, gen)
}

// Block closes a slot on the selected date, then unconditionally reloads the
// date's slots.
func (c *Calendar) Block(ctx context.Context, timeSlot, reason string) {
	c.mutateSlots(ctx, func(date string) error {
		return c.svc.BlockSlot(ctx, c.physioID, date, timeSlot, reason)
	}, "Zaman dilimi kapatılamadı")
}

// Unblock reopens a slot on the selected date, then reloads.
func (c *Calendar) Unblock(ctx context.Context, timeSlot string) {
	c.mutateSlots(ctx, func(date string) error {
		return c.svc.UnblockSlot(ctx, c.physioID, date, timeSlot)
	}, "Zaman dilimi açılamadı")
}

func (c *Calendar) mutateSlots(ctx context.Context, mutate func(date string) error, errMsg string) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	date := c.state.SelectedDate
	c.state.Loading = true
	c.state.ErrorMessage = ""
	c.mu.Unlock()

	if err := mutate(date); err != nil {
		c.fail(gen, errMsg)
		return
	}
	c.loadSlots(ctx, date, gen)
}

// loadSlots fetches availability and blocked slots for the date and folds
// them in, unless the generation has been superseded meanwhile.
func (c *Calendar) loadSlots(ctx context.Context, date string, gen uint64) {
	available, err := c.svc.AvailableSlots(ctx, c.physioID, date)
	if err != nil {
		c.fail(gen, "Uygun zaman dilimleri yüklenemedi")
		return
	}
	blocked, err := c.svc.BlockedSlots(ctx, c.physioID, date)
	if err != nil {
		c.fail(gen, "Kapalı zaman dilimleri yüklenemedi")
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		// A newer selection owns the state now.
		return
	}
	c.state.AvailableSlots = available
	c.state.BlockedSlots = blocked
	c.state.Loading = false
	c.state.ErrorMessage = ""
}

func (c *Calendar) fail(gen uint64, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.state.Loading = false
	c.state.ErrorMessage = message
}

func filterByDate(appts []models.Appointment, date string) []models.Appointment {
	var day []models.Appointment
	for _, a := range appts {
		if a.Date == date {
			day = append(day, a)
		}
	}
	return day
}

// CalendarHub hands out one calendar session per physiotherapist.
type CalendarHub struct {
	mu        sync.Mutex
	svc       AppointmentService
	calendars map[string]*Calendar
}

func NewCalendarHub(svc AppointmentService) *CalendarHub {
	return &CalendarHub{
		svc:       svc,
		calendars: make(map[string]*Calendar),
	}
}

// Get returns the physiotherapist's calendar, creating and loading it on
// first use.
func (h *CalendarHub) Get(ctx context.Context, physioID string) *Calendar {
	h.mu.Lock()
	cal, ok := h.calendars[physioID]
	if !ok {
		cal = NewCalendar(h.svc, physioID)
		h.calendars[physioID] = cal
	}
	h.mu.Unlock()

	if !ok {
		cal.Refresh(ctx)
	}
	return cal
}
