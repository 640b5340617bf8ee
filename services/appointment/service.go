package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"physiocare/database"
	"physiocare/models"
	"physiocare/services/tasks"
	"physiocare/utils"
)

// Book creates an appointment after confirming the slot label is valid and
// currently open, denormalizing the patient's display name onto the document.
func (s *DefaultAppointmentService) Book(ctx context.Context, appt models.Appointment) (*models.Appointment, error) {
	if appt.PhysiotherapistID == "" || appt.UserID == "" || appt.Date == "" {
		return nil, fmt.Errorf("appointment: physiotherapist, user and date are required")
	}
	if !isWorkingSlot(appt.TimeSlot) {
		return nil, ErrUnknownSlot
	}

	available, err := s.AvailableSlots(ctx, appt.PhysiotherapistID, appt.Date)
	if err != nil {
		return nil, err
	}
	open := false
	for _, slot := range available {
		if slot == appt.TimeSlot {
			open = true
			break
		}
	}
	if !open {
		return nil, ErrSlotUnavailable
	}

	name, photo := s.resolvePatientDisplay(ctx, appt.UserID)
	if appt.PatientName == "" {
		appt.PatientName = name
	}
	if appt.PatientPhotoURL == "" {
		appt.PatientPhotoURL = photo
	}

	id, err := s.Repo.Create(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("appointment: failed to create: %w", err)
	}
	appt.ID = id
	s.invalidateAvailability(ctx, appt.PhysiotherapistID, appt.Date)
	s.scheduleReminder(appt)

	return &appt, nil
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("appointment: failed to load %s: %w", id, err)
	}
	return appt, nil
}

// Cancel marks the appointment cancelled and reopens its slot.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, cancelledBy string) error {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Cancel(ctx, id, cancelledBy); err != nil {
		if database.IsNotFound(err) {
			return ErrAppointmentNotFound
		}
		return fmt.Errorf("appointment: failed to cancel %s: %w", id, err)
	}
	s.invalidateAvailability(ctx, appt.PhysiotherapistID, appt.Date)
	return nil
}

func (s *DefaultAppointmentService) UpdateNotes(ctx context.Context, id, notes string) error {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	appt.RehabilitationNotes = notes
	if err := s.Repo.Update(ctx, *appt); err != nil {
		return fmt.Errorf("appointment: failed to update notes on %s: %w", id, err)
	}
	return nil
}

func (s *DefaultAppointmentService) ListForPhysiotherapist(ctx context.Context, physioID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return s.Repo.GetByPhysiotherapist(ctx, physioID)
}

func (s *DefaultAppointmentService) ListForPatient(ctx context.Context, userID string) ([]models.Appointment, []models.DecodeFailure, error) {
	return s.Repo.GetByUser(ctx, userID)
}

// BlockSlot closes a slot label for a date.
func (s *DefaultAppointmentService) BlockSlot(ctx context.Context, physioID, date, timeSlot, reason string) error {
	if !isWorkingSlot(timeSlot) {
		return ErrUnknownSlot
	}
	blocked := models.BlockedTimeSlot{
		PhysiotherapistID: physioID,
		Date:              date,
		TimeSlot:          timeSlot,
		Reason:            reason,
	}
	if _, err := s.Repo.BlockSlot(ctx, blocked); err != nil {
		return fmt.Errorf("appointment: failed to block slot: %w", err)
	}
	s.invalidateAvailability(ctx, physioID, date)
	return nil
}

func (s *DefaultAppointmentService) UnblockSlot(ctx context.Context, physioID, date, timeSlot string) error {
	if err := s.Repo.UnblockSlot(ctx, physioID, date, timeSlot); err != nil {
		if database.IsNotFound(err) {
			return ErrSlotNotBlocked
		}
		return fmt.Errorf("appointment: failed to unblock slot: %w", err)
	}
	s.invalidateAvailability(ctx, physioID, date)
	return nil
}

func (s *DefaultAppointmentService) BlockedSlots(ctx context.Context, physioID, date string) ([]models.BlockedTimeSlot, error) {
	return s.Repo.GetBlockedSlots(ctx, physioID, date)
}

// resolvePatientDisplay resolves a display name through the profile, then the
// account email, then a synthesized placeholder.
func (s *DefaultAppointmentService) resolvePatientDisplay(ctx context.Context, userID string) (string, string) {
	if s.Users == nil {
		return placeholderName(userID), ""
	}
	if profile, err := s.Users.GetProfile(ctx, userID); err == nil {
		if name := profile.FullName(); name != "" {
			return name, profile.PhotoURL
		}
	}
	if user, err := s.Users.GetByID(ctx, userID); err == nil && user.Email != "" {
		return user.Email, ""
	}
	return placeholderName(userID), ""
}

func placeholderName(userID string) string {
	short := userID
	if len(short) > 8 {
		short = short[:8]
	}
	return "Hasta " + short
}

// scheduleReminder enqueues a push for the morning of the appointment.
// Best-effort; booking never fails on reminder problems.
func (s *DefaultAppointmentService) scheduleReminder(appt models.Appointment) {
	if s.Reminders == nil {
		return
	}
	logger := utils.GetLogger()

	day, err := time.ParseInLocation("2006-01-02", appt.Date, time.Local)
	if err != nil {
		logger.Warn("appointment: unparseable date, skipping reminder",
			zap.String("appointmentId", appt.ID), zap.String("date", appt.Date))
		return
	}
	fireAt := day.Add(8 * time.Hour)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		AppointmentID: appt.ID,
		Target:        "patient",
		UserID:        appt.UserID,
		Title:         "Randevu hatırlatması",
		Body:          fmt.Sprintf("Bugün %s saatinde randevunuz var", appt.TimeSlot),
		FireDate:      fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		logger.Warn("appointment: failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Reminders.Enqueue(task, opts...); err != nil {
		logger.Warn("appointment: failed to enqueue reminder", zap.Error(err))
	}
}
