package appointment

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"physiocare/models"
)

// fakeApptRepo keeps appointments and blocks in memory.
type fakeApptRepo struct {
	appointments []models.Appointment
	blocked      []models.BlockedTimeSlot
	nextID       int
}

func (f *fakeApptRepo) genID() string {
	f.nextID++
	return fmt.Sprintf("appt-%d", f.nextID)
}

func (f *fakeApptRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = f.genID()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentPending
	}
	f.appointments = append(f.appointments, appt)
	return appt.ID, nil
}

func (f *fakeApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.ID == id {
			cp := a
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeApptRepo) Update(ctx context.Context, appt models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == appt.ID {
			f.appointments[i] = appt
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApptRepo) Cancel(ctx context.Context, id, cancelledBy string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments[i].Status = models.AppointmentCancelled
			f.appointments[i].CancelledBy = cancelledBy
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApptRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeApptRepo) GetByPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PhysiotherapistID == physioID {
			out = append(out, a)
		}
	}
	return out, nil, nil
}

func (f *fakeApptRepo) GetByUser(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil, nil
}

func (f *fakeApptRepo) GetByPhysiotherapistAndDate(ctx context.Context, physioID, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PhysiotherapistID == physioID && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApptRepo) BlockSlot(ctx context.Context, blocked models.BlockedTimeSlot) (string, error) {
	if blocked.ID == "" {
		blocked.ID = f.genID()
	}
	f.blocked = append(f.blocked, blocked)
	return blocked.ID, nil
}

func (f *fakeApptRepo) UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error {
	for i, b := range f.blocked {
		if b.PhysiotherapistID == physioID && b.Date == date && b.TimeSlot == timeSlot {
			f.blocked = append(f.blocked[:i], f.blocked[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakeApptRepo) GetBlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error) {
	var out []models.BlockedTimeSlot
	for _, b := range f.blocked {
		if b.PhysiotherapistID == physioID && b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

// fakeUserRepo serves fixed accounts and profiles.
type fakeUserRepo struct {
	users    map[string]models.User
	profiles map[string]models.UserProfile
}

func (f *fakeUserRepo) Create(ctx context.Context, user models.User) (string, error) {
	return user.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) Update(ctx context.Context, user models.User) error { return nil }

func (f *fakeUserRepo) SetFCMToken(ctx context.Context, id, token string) error { return nil }

func (f *fakeUserRepo) SetTokenHash(ctx context.Context, id, hash string) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func (f *fakeUserRepo) GetProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	if p, ok := f.profiles[userID]; ok {
		return &p, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpsertProfile(ctx context.Context, profile models.UserProfile) error {
	return nil
}

func newTestService() (*DefaultAppointmentService, *fakeApptRepo, *fakeUserRepo) {
	repo := &fakeApptRepo{}
	users := &fakeUserRepo{
		users:    map[string]models.User{},
		profiles: map[string]models.UserProfile{},
	}
	return &DefaultAppointmentService{Repo: repo, Users: users}, repo, users
}

func TestAvailableSlotsExcludesBookedAndBlocked(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "09:00 - 10:00",
	})
	require.NoError(t, err)
	cancelledID, err := repo.Create(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p2",
		Date: "2026-09-01", TimeSlot: "10:00 - 11:00",
	})
	require.NoError(t, err)
	require.NoError(t, repo.Cancel(ctx, cancelledID, "patient"))
	_, err = repo.BlockSlot(ctx, models.BlockedTimeSlot{
		PhysiotherapistID: "physio-1", Date: "2026-09-01", TimeSlot: "13:00 - 14:00",
	})
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(ctx, "physio-1", "2026-09-01")
	require.NoError(t, err)

	assert.NotContains(t, slots, "09:00 - 10:00")
	assert.NotContains(t, slots, "13:00 - 14:00")
	// A cancelled appointment's slot reopens.
	assert.Contains(t, slots, "10:00 - 11:00")
	assert.Len(t, slots, len(models.WorkingTimeSlots)-2)
}

func TestAvailableSlotsOtherDateUnaffected(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := repo.Create(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "09:00 - 10:00",
	})
	require.NoError(t, err)

	slots, err := svc.AvailableSlots(ctx, "physio-1", "2026-09-02")
	require.NoError(t, err)
	assert.Equal(t, models.WorkingTimeSlots, slots)
}

func TestBookRejectsUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Book(context.Background(), models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "12:00 - 13:00", // lunch hour, never bookable
	})
	assert.ErrorIs(t, err, ErrUnknownSlot)
}

func TestBookRejectsTakenSlot(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first := models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "14:00 - 15:00",
	}
	_, err := svc.Book(ctx, first)
	require.NoError(t, err)

	second := first
	second.UserID = "p2"
	_, err = svc.Book(ctx, second)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestBookDenormalizesPatientName(t *testing.T) {
	svc, repo, users := newTestService()
	ctx := context.Background()

	users.profiles["p1"] = models.UserProfile{UserID: "p1", FirstName: "Ayşe", LastName: "Yılmaz", PhotoURL: "http://x/p.jpg"}
	users.users["p2"] = models.User{ID: "p2", Email: "mehmet@example.com"}

	booked, err := svc.Book(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "09:00 - 10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ayşe Yılmaz", booked.PatientName)
	assert.Equal(t, "http://x/p.jpg", booked.PatientPhotoURL)

	booked, err = svc.Book(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p2",
		Date: "2026-09-01", TimeSlot: "10:00 - 11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "mehmet@example.com", booked.PatientName)

	// Unknown user gets a synthesized placeholder.
	booked, err = svc.Book(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "patient-12345678",
		Date: "2026-09-01", TimeSlot: "11:00 - 12:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hasta patient-", booked.PatientName)

	require.Len(t, repo.appointments, 3)
}

func TestCancelReopensSlot(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	booked, err := svc.Book(ctx, models.Appointment{
		PhysiotherapistID: "physio-1", UserID: "p1",
		Date: "2026-09-01", TimeSlot: "15:00 - 16:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, booked.ID, "patient"))

	slots, err := svc.AvailableSlots(ctx, "physio-1", "2026-09-01")
	require.NoError(t, err)
	assert.Contains(t, slots, "15:00 - 16:00")

	got, err := svc.GetByID(ctx, booked.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, got.Status)
	assert.Equal(t, "patient", got.CancelledBy)
}

func TestCancelNotFound(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.Cancel(context.Background(), "missing", "patient")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestUnblockNotBlocked(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.UnblockSlot(context.Background(), "physio-1", "2026-09-01", "09:00 - 10:00")
	assert.ErrorIs(t, err, ErrSlotNotBlocked)
}

func TestBlockRejectsUnknownSlot(t *testing.T) {
	svc, _, _ := newTestService()
	err := svc.BlockSlot(context.Background(), "physio-1", "2026-09-01", "23:00 - 24:00", "tatil")
	assert.ErrorIs(t, err, ErrUnknownSlot)
}
